package render

import (
	"context"

	"github.com/ilyichv/shadcn-zod-form/pkg/model"
)

// Renderer converts a derived Form into source text (TSX, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.Form, options RenderOptions) ([]byte, error)
}
