package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyichv/shadcn-zod-form/pkg/config"
	"github.com/ilyichv/shadcn-zod-form/pkg/model"
	"github.com/ilyichv/shadcn-zod-form/pkg/orchestrator"
	"github.com/ilyichv/shadcn-zod-form/pkg/prompt"
	"github.com/ilyichv/shadcn-zod-form/pkg/renderers/fields"
	"github.com/ilyichv/shadcn-zod-form/pkg/renderers/shadcn"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

// ErrFileExists is returned instead of overwriting a generated file.
var ErrFileExists = errors.New("output file already exists")

var extensions = map[string]string{
	shadcn.Name: ".tsx",
	fields.Name: ".json",
}

func (a *app) generateCommand(ctx context.Context, args []string) error {
	fs, cwd, verbose := a.flagSet("generate")
	name := fs.String("name", "", "kebab-case form name (default derived from the schema name)")
	schemaName := fs.String("schema", "", "schema to generate when the file declares several")
	outputDir := fs.String("output", "", "output directory (default: the forms alias directory)")
	rendererName := fs.String("renderer", shadcn.Name, "renderer to use")
	preset := fs.String("preset", "", "JSON or YAML file overriding labels")
	interactive := fs.Bool("interactive", true, "prompt for missing answers")
	if err := a.parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.stderr, "generate: expected exactly one schema file")
		fs.Usage()
		return errUsage
	}
	a.configureLogger(*verbose)

	cfg, err := config.Load(*cwd)
	if err != nil {
		return err
	}
	if *name != "" {
		if err := prompt.ValidateFormName(*name); err != nil {
			return err
		}
	}

	selector := prompt.NewSchemaSelector(a.driver)
	options := []orchestrator.Option{
		orchestrator.WithLogger(a.logger),
		orchestrator.WithWarningHandler(a.logWarning),
	}
	if *interactive {
		options = append(options, orchestrator.WithSelector(selector))
	}
	if *preset != "" {
		path := cfg.Abs(*preset)
		transformer, err := orchestrator.NewPresetTransformerFromFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return err
		}
		options = append(options, orchestrator.WithTransformer(transformer))
	}
	gen := orchestrator.New(options...)

	req := orchestrator.Request{
		Source:   schema.SourceFromFile(cfg.Abs(fs.Arg(0))),
		Config:   cfg,
		Schema:   *schemaName,
		FormName: *name,
		Renderer: *rendererName,
	}
	if *outputDir != "" {
		req.OutputDir = cfg.Abs(*outputDir)
	}

	if req.FormName == "" && *interactive {
		extraction, err := gen.Extract(ctx, req)
		if err != nil {
			return err
		}
		req.Extraction = &extraction
		if req.Schema == "" {
			if req.Schema, err = selector.SelectSchema(ctx, extraction.Names()); err != nil {
				return err
			}
		}
		if req.FormName, err = selector.FormName(ctx, model.DefaultFormName(req.Schema)); err != nil {
			return err
		}
	}

	dir := req.OutputDir
	if dir == "" {
		dir = cfg.FormsDirectory
	}
	formName := req.FormName
	if formName != "" {
		if err := refuseExisting(outputPath(dir, formName, *rendererName)); err != nil {
			return err
		}
	}

	result, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}

	target := outputPath(dir, result.FormName, *rendererName)
	if err := refuseExisting(target); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(target, result.Output, 0o644); err != nil {
		return fmt.Errorf("write form: %w", err)
	}
	a.logger.Debug("form written", "path", target, "schema", result.Schema.Name, "warnings", len(result.Warnings))
	fmt.Fprintf(a.stdout, "Form %s written to %s\n", result.Schema.Name, target)
	return nil
}

func outputPath(dir, formName, renderer string) string {
	ext, ok := extensions[renderer]
	if !ok {
		ext = ".txt"
	}
	return filepath.Join(dir, formName+ext)
}

func refuseExisting(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}
