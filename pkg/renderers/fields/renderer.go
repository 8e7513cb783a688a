// Package fields renders the derived field model as JSON. It backs the
// inspect command and is useful for snapshotting derivations in tests.
package fields

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/ilyichv/shadcn-zod-form/pkg/model"
	"github.com/ilyichv/shadcn-zod-form/pkg/render"
)

// Name is the registry identifier of this renderer.
const Name = "fields"

type Option func(*Renderer)

// WithIndent sets the indentation used for each nesting level. An empty
// string produces compact output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer dumps a model.Form as JSON.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, form model.Form, _ render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if form.Fields == nil {
		form.Fields = []model.FieldDescriptor{}
	}
	if form.Groups == nil {
		form.Groups = []model.RepeatableGroup{}
	}
	if form.Entries == nil {
		form.Entries = []model.Entry{}
	}

	var (
		out []byte
		err error
	)
	if r.indent == "" {
		out, err = json.Marshal(form)
	} else {
		out, err = json.MarshalIndent(form, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("fields renderer: marshal form: %w", err)
	}
	return append(out, '\n'), nil
}
