package loader_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/ilyichv/shadcn-zod-form/internal/loader"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.ts")
	if err := os.WriteFile(path, []byte("export const A = 1;"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := loader.New(schema.NewLoaderOptions()).Load(context.Background(), schema.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != "export const A = 1;" || doc.Ext() != ".ts" {
		t.Fatalf("unexpected document: %q %q", doc.Raw(), doc.Ext())
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{"schemas/user.ts": {Data: []byte("const A = 1;")}}
	l := loader.New(schema.NewLoaderOptions(schema.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), schema.SourceFromFS("schemas/user.ts"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Location() != "schemas/user.ts" {
		t.Fatalf("location = %q", doc.Location())
	}

	if _, err := l.Load(context.Background(), schema.SourceFromFS("missing.ts")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoader_Errors(t *testing.T) {
	l := loader.New(schema.NewLoaderOptions())

	if _, err := l.Load(context.Background(), schema.SourceFromFS("a.ts")); err == nil {
		t.Fatal("expected error without filesystem")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Load(ctx, schema.SourceFromFile("a.ts")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.ts")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := l.Load(context.Background(), schema.SourceFromFile(empty)); err == nil {
		t.Fatal("expected error for empty file")
	}
}
