package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/ilyichv/shadcn-zod-form/pkg/config"
	"github.com/ilyichv/shadcn-zod-form/pkg/export/openapi"
	"github.com/ilyichv/shadcn-zod-form/pkg/orchestrator"
	"github.com/ilyichv/shadcn-zod-form/pkg/renderers/fields"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
	pkgzod "github.com/ilyichv/shadcn-zod-form/pkg/zod"
)

func (a *app) inspectCommand(ctx context.Context, args []string) error {
	fs, cwd, verbose := a.flagSet("inspect")
	schemaName := fs.String("schema", "", "limit output to one schema")
	format := fs.String("format", "ir", "output format: ir, fields or openapi")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.stderr, "inspect: expected exactly one schema file")
		fs.Usage()
		return errUsage
	}
	a.configureLogger(*verbose)

	cfg, err := inspectConfig(*cwd)
	if err != nil {
		return err
	}
	gen := orchestrator.New(
		orchestrator.WithLogger(a.logger),
		orchestrator.WithWarningHandler(a.logWarning),
	)
	req := orchestrator.Request{
		Source: schema.SourceFromFile(cfg.Abs(fs.Arg(0))),
		Config: cfg,
		Schema: *schemaName,
	}

	switch *format {
	case "fields":
		req.Renderer = fields.Name
		result, err := gen.Generate(ctx, req)
		if err != nil {
			return err
		}
		_, err = a.stdout.Write(result.Output)
		return err
	case "ir", "openapi":
		extraction, err := gen.Extract(ctx, req)
		if err != nil {
			return err
		}
		for _, warning := range extraction.Warnings {
			a.logWarning(warning)
		}
		if *schemaName != "" {
			selected, ok := extraction.Lookup(*schemaName)
			if !ok {
				return fmt.Errorf("%w: %q (found %v)", orchestrator.ErrSchemaNotFound, *schemaName, extraction.Names())
			}
			extraction.Schemas = []pkgzod.Schema{selected}
		}
		if *format == "ir" {
			return a.writeJSON(extraction)
		}
		nodes := make(map[string]schema.Node, len(extraction.Schemas))
		for _, s := range extraction.Schemas {
			nodes[s.Name] = s.Node
		}
		doc, err := openapi.Document(extraction.Location, nodes)
		if err != nil {
			return err
		}
		return a.writeJSON(doc)
	}
	fmt.Fprintf(a.stderr, "inspect: unknown format %q\n", *format)
	return errUsage
}

// inspectConfig loads the project config, falling back to the project
// directory as forms directory when the project is not initialised.
func inspectConfig(cwd string) (config.ResolvedConfig, error) {
	cfg, err := config.Load(cwd)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, config.ErrConfigNotFound) && !errors.Is(err, config.ErrNotInitialized) {
		return config.ResolvedConfig{}, err
	}
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return config.ResolvedConfig{}, err
	}
	return config.ResolvedConfig{Cwd: abs, FormsDirectory: abs, Module: config.DefaultModule}, nil
}

func (a *app) writeJSON(value any) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintf(a.stdout, "%s\n", out)
	return err
}
