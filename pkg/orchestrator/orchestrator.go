package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	internalloader "github.com/ilyichv/shadcn-zod-form/internal/loader"
	"github.com/ilyichv/shadcn-zod-form/internal/zod/extractor"
	"github.com/ilyichv/shadcn-zod-form/pkg/config"
	"github.com/ilyichv/shadcn-zod-form/pkg/importref"
	"github.com/ilyichv/shadcn-zod-form/pkg/model"
	"github.com/ilyichv/shadcn-zod-form/pkg/render"
	"github.com/ilyichv/shadcn-zod-form/pkg/renderers/fields"
	"github.com/ilyichv/shadcn-zod-form/pkg/renderers/shadcn"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
	pkgzod "github.com/ilyichv/shadcn-zod-form/pkg/zod"
)

const defaultRendererName = shadcn.Name

var (
	// ErrSchemaNotFound is returned when the requested schema is not declared
	// in the source file.
	ErrSchemaNotFound = errors.New("orchestrator: schema not found")
	// ErrAmbiguousSchema is returned when a file declares several schemas, the
	// request names none and no Selector is configured.
	ErrAmbiguousSchema = errors.New("orchestrator: several schemas found and no selector configured")
)

// Selector chooses one schema among the names found in a file.
type Selector interface {
	SelectSchema(ctx context.Context, names []string) (string, error)
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(ctx context.Context, names []string) (string, error)

func (fn SelectorFunc) SelectSchema(ctx context.Context, names []string) (string, error) {
	return fn(ctx, names)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom source loader.
func WithLoader(loader schema.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithExtractor injects a custom schema extractor.
func WithExtractor(extractor pkgzod.Extractor) Option {
	return func(o *Orchestrator) {
		o.extractor = extractor
	}
}

// WithDeriver injects a custom field deriver.
func WithDeriver(deriver model.Deriver) Option {
	return func(o *Orchestrator) {
		o.deriver = deriver
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSelector sets how a schema is chosen when a file declares several and
// the request names none.
func WithSelector(selector Selector) Option {
	return func(o *Orchestrator) {
		o.selector = selector
	}
}

// WithWarningHandler receives extraction and derivation warnings as each
// request completes, in emission order.
func WithWarningHandler(handler schema.WarningHandler) Option {
	return func(o *Orchestrator) {
		o.onWarning = handler
	}
}

// WithLogger receives stage-level debug logs.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTransformer registers a Transformer that can mutate forms after
// derivation but before decorators run.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDecorators registers decorators that run against the derived form
// before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// Orchestrator coordinates the pipeline from a schema source file to rendered
// output: load, extract, select, derive, transform, decorate, render.
type Orchestrator struct {
	loader          schema.Loader
	extractor       pkgzod.Extractor
	deriver         model.Deriver
	registry        *render.Registry
	defaultRenderer string
	selector        Selector
	onWarning       schema.WarningHandler
	logger          *slog.Logger
	transformer     Transformer
	decorators      []model.Decorator
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one generation.
type Request struct {
	// Source identifies the schema file. Optional when Document is supplied.
	Source schema.Source

	// Document allows callers to bypass the loader.
	Document *schema.Document

	// Extraction reuses the result of a previous Extract call so Generate
	// neither loads nor parses the source again.
	Extraction *pkgzod.Extraction

	// Config is the resolved project configuration.
	Config config.ResolvedConfig

	// Schema names the binding to generate. When empty a single schema is
	// selected automatically and several are resolved by the Selector.
	Schema string

	// FormName is the kebab-case form name. Defaults to the name derived from
	// the schema, e.g. "user-form" for "UserSchema".
	FormName string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// OutputDir is where the rendered file will be written. When set and
	// different from Config.FormsDirectory the schema import is recomputed
	// relative to it.
	OutputDir string
}

// Result is the outcome of Generate.
type Result struct {
	Schema      pkgzod.Schema
	FormName    string
	Form        model.Form
	Output      []byte
	ContentType string
	Warnings    []schema.Warning
}

// Extract runs the load and extract stages only.
func (o *Orchestrator) Extract(ctx context.Context, req Request) (pkgzod.Extraction, error) {
	if err := o.ready(ctx); err != nil {
		return pkgzod.Extraction{}, err
	}
	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return pkgzod.Extraction{}, err
	}

	o.logger.Debug("extracting schemas", "location", doc.Location())
	extraction, err := o.extractor.Extract(ctx, doc, req.Config)
	if err != nil {
		return pkgzod.Extraction{}, fmt.Errorf("orchestrator: extract: %w", err)
	}
	o.logger.Debug("extracted schemas", "location", extraction.Location, "namespace", extraction.Namespace, "schemas", extraction.Names())
	return extraction, nil
}

// Generate executes the full pipeline and returns the rendered output.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	extraction, err := o.extraction(ctx, req)
	if err != nil {
		return Result{}, err
	}

	selected, err := o.selectSchema(ctx, extraction, req.Schema)
	if err != nil {
		return Result{}, err
	}
	if req.OutputDir != "" && filepath.Clean(req.OutputDir) != filepath.Clean(req.Config.FormsDirectory) {
		selected = relocate(selected, extraction.Location, req)
	}

	derivation, err := o.deriver.Derive(selected.Node)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: derive %s: %w", selected.Name, err)
	}
	o.logger.Debug("derived fields", "schema", selected.Name, "fields", len(derivation.Fields), "groups", len(derivation.Groups))

	formName := req.FormName
	if formName == "" {
		formName = model.DefaultFormName(selected.Name)
	}
	form := model.Form{
		Name:       formName,
		Component:  model.ComponentName(formName),
		SchemaName: selected.Name,
		ImportRef:  selected.ImportRef,
		Derivation: derivation,
	}

	if err := o.applyTransformer(ctx, &form); err != nil {
		return Result{}, err
	}
	if err := o.applyDecorators(&form); err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}
	output, err := renderer.Render(ctx, form, render.RenderOptions{Aliases: req.Config.Aliases})
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.logger.Debug("rendered form", "renderer", renderer.Name(), "form", formName, "bytes", len(output))

	warnings := append(append([]schema.Warning(nil), extraction.Warnings...), derivation.Warnings...)
	if o.onWarning != nil {
		for _, warning := range warnings {
			o.onWarning(warning)
		}
	}

	return Result{
		Schema:      selected,
		FormName:    formName,
		Form:        form,
		Output:      output,
		ContentType: renderer.ContentType(),
		Warnings:    warnings,
	}, nil
}

func (o *Orchestrator) extraction(ctx context.Context, req Request) (pkgzod.Extraction, error) {
	if req.Extraction == nil {
		return o.Extract(ctx, req)
	}
	if err := o.ready(ctx); err != nil {
		return pkgzod.Extraction{}, err
	}
	return *req.Extraction, nil
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.initialiseErr
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (schema.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return schema.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return schema.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) selectSchema(ctx context.Context, extraction pkgzod.Extraction, name string) (pkgzod.Schema, error) {
	if name != "" {
		selected, ok := extraction.Lookup(name)
		if !ok {
			return pkgzod.Schema{}, fmt.Errorf("%w: %q in %s (found %v)", ErrSchemaNotFound, name, extraction.Location, extraction.Names())
		}
		return selected, nil
	}
	if len(extraction.Schemas) == 1 {
		return extraction.Schemas[0], nil
	}
	if o.selector == nil {
		return pkgzod.Schema{}, fmt.Errorf("%w: %v", ErrAmbiguousSchema, extraction.Names())
	}
	chosen, err := o.selector.SelectSchema(ctx, extraction.Names())
	if err != nil {
		return pkgzod.Schema{}, fmt.Errorf("orchestrator: select schema: %w", err)
	}
	selected, ok := extraction.Lookup(chosen)
	if !ok {
		return pkgzod.Schema{}, fmt.Errorf("%w: %q in %s", ErrSchemaNotFound, chosen, extraction.Location)
	}
	return selected, nil
}

// relocate recomputes the import of s for a form written to req.OutputDir.
func relocate(s pkgzod.Schema, location string, req Request) pkgzod.Schema {
	outputDir := req.Config.Abs(req.OutputDir)
	if filepath.IsAbs(outputDir) && !filepath.IsAbs(location) {
		location = req.Config.Abs(location)
	}
	s.ImportPath = importref.Path(outputDir, location)
	s.ImportRef = importref.Statement(s.ImportPath, s.Name, s.DefaultExport)
	return s
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(form *model.Form) error {
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return fmt.Errorf("orchestrator: decorate form: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, form *model.Form) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, form); err != nil {
		return fmt.Errorf("orchestrator: transform form: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalloader.New(schema.NewLoaderOptions())
	}
	if o.extractor == nil {
		o.extractor = extractor.New(pkgzod.NewExtractorOptions())
	}
	if o.deriver == nil {
		o.deriver = model.NewDeriver()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.registry == nil {
		registry, err := defaultRegistry()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderers: %w", err)
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

func defaultRegistry() (*render.Registry, error) {
	tsx, err := shadcn.New()
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(tsx, fields.New())
}
