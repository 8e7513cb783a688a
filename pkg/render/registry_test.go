package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ilyichv/shadcn-zod-form/pkg/model"
	"github.com/ilyichv/shadcn-zod-form/pkg/render"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, model.Form, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry(t *testing.T) {
	registry, err := render.NewRegistry(stubRenderer{"b"}, stubRenderer{"a"})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	if err := registry.Register(stubRenderer{"a"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := registry.Register(stubRenderer{""}); err == nil {
		t.Fatal("expected empty name error")
	}

	got, err := registry.Get("b")
	if err != nil || got.Name() != "b" {
		t.Fatalf("get b: %v %v", got, err)
	}
	if _, err := registry.Get("missing"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestRegistry_ZeroValueRegister(t *testing.T) {
	var registry render.Registry
	registry.MustRegister(stubRenderer{"x"})
	if _, err := registry.Get("x"); err != nil {
		t.Fatalf("get: %v", err)
	}
}
