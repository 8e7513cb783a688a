// Package zod declares the contract for extracting zod-style schema
// declarations out of TypeScript sources. The default implementation lives in
// internal/zod/extractor; construction helpers live in the root zodform
// package.
package zod

import (
	"context"

	"github.com/ilyichv/shadcn-zod-form/pkg/config"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

// Extractor turns one source document into its schema roots.
type Extractor interface {
	Extract(ctx context.Context, doc schema.Document, cfg config.ResolvedConfig) (Extraction, error)
}

// Schema is one top-level object schema found in a file.
type Schema struct {
	Name          string      `json:"name"`
	Node          schema.Node `json:"ir"`
	ImportRef     string      `json:"importRef"`
	ImportPath    string      `json:"importPath"`
	DefaultExport bool        `json:"defaultExport"`
	Exported      bool        `json:"exported"`
	Line          int         `json:"line"`
}

// Extraction is the result of extracting a single file. Schemas keep their
// declaration order.
type Extraction struct {
	Location  string           `json:"location"`
	Namespace string           `json:"namespace"`
	Schemas   []Schema         `json:"schemas"`
	Warnings  []schema.Warning `json:"warnings,omitempty"`
}

// Names lists the schema names in declaration order.
func (e Extraction) Names() []string {
	names := make([]string, 0, len(e.Schemas))
	for _, s := range e.Schemas {
		names = append(names, s.Name)
	}
	return names
}

// Lookup finds a schema by binding name.
func (e Extraction) Lookup(name string) (Schema, bool) {
	for _, s := range e.Schemas {
		if s.Name == name {
			return s, true
		}
	}
	return Schema{}, false
}
