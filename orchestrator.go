package zodform

import (
	"context"

	"github.com/ilyichv/shadcn-zod-form/pkg/config"
	"github.com/ilyichv/shadcn-zod-form/pkg/orchestrator"
	"github.com/ilyichv/shadcn-zod-form/pkg/render"
	"github.com/ilyichv/shadcn-zod-form/pkg/renderers/fields"
	"github.com/ilyichv/shadcn-zod-form/pkg/renderers/shadcn"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

// RenderOptions describes per-request data handed to renderers.
type RenderOptions = render.RenderOptions

// Result aliases orchestrator.Result for callers of Generate.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewRegistry returns a registry holding the built-in renderers: the shadcn
// TSX component and the JSON field dump.
func NewRegistry(options ...shadcn.Option) (*render.Registry, error) {
	tsx, err := shadcn.New(options...)
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(tsx, fields.New())
}

// Generate loads the schema file at path, selects schemaName (or the only
// schema declared there) and renders it with the named renderer.
func Generate(ctx context.Context, cfg config.ResolvedConfig, path, schemaName, rendererName string, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   schema.SourceFromFile(path),
		Config:   cfg,
		Schema:   schemaName,
		Renderer: rendererName,
	})
}

// GenerateFromDocument renders a form using a pre-loaded document, bypassing
// the loader stage.
func GenerateFromDocument(ctx context.Context, cfg config.ResolvedConfig, doc schema.Document, schemaName, rendererName string, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Config:   cfg,
		Schema:   schemaName,
		Renderer: rendererName,
	})
}
