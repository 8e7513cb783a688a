// Package openapi exports the schema IR as OpenAPI 3 schema objects so
// extracted zod schemas can be inspected or reused by OpenAPI tooling.
package openapi

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

const (
	// OrderExtension lists object property names in declaration order, since
	// OpenAPI properties are an unordered map.
	OrderExtension = "x-zodform-order"
	// UnsupportedExtension carries the reason of an unsupported IR node.
	UnsupportedExtension = "x-zodform-unsupported"
)

// ErrNilNode is returned when Schema receives a nil node.
var ErrNilNode = errors.New("openapi export: node is nil")

// string refinements mapped onto OpenAPI formats.
var stringFormats = []struct {
	modifier string
	format   string
}{
	{"email", "email"},
	{"url", "uri"},
	{"datetime", "date-time"},
	{"date", "date"},
	{"uuid", "uuid"},
}

// Schema converts node into an OpenAPI schema.
func Schema(node schema.Node) (*openapi3.Schema, error) {
	if node == nil {
		return nil, ErrNilNode
	}
	return convert(node), nil
}

// Document wraps the named schemas into a components-only OpenAPI document.
func Document(title string, schemas map[string]schema.Node) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: title, Version: "1.0.0"},
		Paths:   openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas, len(schemas)),
		},
	}
	for name, node := range schemas {
		converted, err := Schema(node)
		if err != nil {
			return nil, fmt.Errorf("openapi export: schema %q: %w", name, err)
		}
		doc.Components.Schemas[name] = openapi3.NewSchemaRef("", converted)
	}
	return doc, nil
}

func convert(node schema.Node) *openapi3.Schema {
	switch n := node.(type) {
	case schema.Primitive:
		return primitive(n)
	case schema.Enum:
		values := make([]any, 0, len(n.Options))
		for _, option := range n.Options {
			values = append(values, option)
		}
		return openapi3.NewStringSchema().WithEnum(values...)
	case schema.Object:
		return object(n)
	case schema.Array:
		return openapi3.NewArraySchema().WithItems(convert(n.Element))
	case schema.Unsupported:
		out := &openapi3.Schema{Description: n.Reason}
		out.Extensions = map[string]any{UnsupportedExtension: n.Reason}
		return out
	}
	return &openapi3.Schema{}
}

func primitive(p schema.Primitive) *openapi3.Schema {
	var out *openapi3.Schema
	switch p.Type {
	case schema.TypeString:
		out = openapi3.NewStringSchema()
		for _, refinement := range stringFormats {
			if p.Chained.Has(refinement.modifier) {
				out.Format = refinement.format
				break
			}
		}
	case schema.TypeNumber:
		if p.Chained.Has("int") {
			out = openapi3.NewIntegerSchema()
		} else {
			out = openapi3.NewFloat64Schema()
		}
	case schema.TypeBoolean:
		out = openapi3.NewBoolSchema()
	case schema.TypeDate:
		out = openapi3.NewStringSchema().WithFormat("date")
	default:
		out = &openapi3.Schema{}
	}
	if p.Chained.HasAny("nullable", "nullish") {
		out.Nullable = true
	}
	return out
}

func object(o schema.Object) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	order := make([]any, 0, len(o.Properties))
	for _, prop := range o.Properties {
		out.WithProperty(prop.Name, convert(prop.Node))
		order = append(order, prop.Name)
		if required(prop.Node) {
			out.Required = append(out.Required, prop.Name)
		}
	}
	out.Extensions = map[string]any{OrderExtension: order}
	return out
}

// required reports whether a property must be present. Only primitives carry
// modifiers in the IR; other kinds are always required.
func required(node schema.Node) bool {
	p, ok := node.(schema.Primitive)
	if !ok {
		return true
	}
	return !p.Chained.HasAny("optional", "nullish", "default")
}
