package extractor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ilyichv/shadcn-zod-form/internal/syntax"
	"github.com/ilyichv/shadcn-zod-form/pkg/config"
	"github.com/ilyichv/shadcn-zod-form/pkg/importref"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
	pkgzod "github.com/ilyichv/shadcn-zod-form/pkg/zod"
)

// Extractor implements pkgzod.Extractor by matching builder call chains in the
// syntax tree. Source code is never evaluated.
type Extractor struct {
	options pkgzod.ExtractorOptions
}

var _ pkgzod.Extractor = (*Extractor)(nil)

// New constructs an Extractor with the given options.
func New(options pkgzod.ExtractorOptions) pkgzod.Extractor {
	return &Extractor{options: options}
}

// Extract parses doc and returns every top-level binding whose initializer
// resolves to an object constructor rooted at the builder namespace.
func (e *Extractor) Extract(ctx context.Context, doc schema.Document, cfg config.ResolvedConfig) (pkgzod.Extraction, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return pkgzod.Extraction{}, err
	}

	location := doc.Location()
	ix, err := syntax.Parse(ctx, doc.Raw(), location)
	if err != nil {
		return pkgzod.Extraction{}, err
	}
	defer ix.Close()

	namespace := e.namespace(ix, cfg)
	w := &walker{ix: ix, namespace: namespace}
	importPath := importref.Path(cfg.FormsDirectory, sourcePath(cfg, location))

	result := pkgzod.Extraction{Location: location, Namespace: namespace}
	for binding := range ix.Bindings() {
		if !ix.IsCallChainRootedAt(binding.Value, namespace) {
			continue
		}
		chain, ok := w.unwind(binding.Value)
		if !ok || chain.constructor != constructorObject {
			continue
		}
		node, warnings := w.build(binding.Value, binding.Name)
		if _, isObject := node.(schema.Object); !isObject {
			continue
		}
		result.Schemas = append(result.Schemas, pkgzod.Schema{
			Name:          binding.Name,
			Node:          node,
			ImportRef:     importref.Statement(importPath, binding.Name, binding.DefaultExport),
			ImportPath:    importPath,
			DefaultExport: binding.DefaultExport,
			Exported:      binding.Exported,
			Line:          binding.Line,
		})
		result.Warnings = append(result.Warnings, warnings...)
	}

	if len(result.Schemas) == 0 {
		return pkgzod.Extraction{}, fmt.Errorf("%w in %s", schema.ErrNoSchemaFound, location)
	}

	if e.options.OnWarning != nil {
		for _, warning := range result.Warnings {
			e.options.OnWarning(warning)
		}
	}
	return result, nil
}

func (e *Extractor) namespace(ix *syntax.Index, cfg config.ResolvedConfig) string {
	if e.options.Namespace != "" {
		return e.options.Namespace
	}
	if cfg.Namespace != "" {
		return cfg.Namespace
	}
	module := e.options.Module
	if module == "" {
		module = cfg.Module
	}
	if module == "" {
		module = config.DefaultModule
	}
	if name, ok := ix.NamespaceImport(module, config.DefaultNamespace); ok {
		return name
	}
	return config.DefaultNamespace
}

// sourcePath anchors a relative document location at the project directory
// when the forms directory has already been resolved to an absolute path.
func sourcePath(cfg config.ResolvedConfig, location string) string {
	if filepath.IsAbs(cfg.FormsDirectory) && !filepath.IsAbs(location) {
		return cfg.Abs(location)
	}
	return location
}
