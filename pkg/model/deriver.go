package model

import (
	"strings"

	"github.com/ilyichv/shadcn-zod-form/internal/model"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

// Deriver converts an object schema into its field model.
type Deriver interface {
	Derive(node schema.Node) (Derivation, error)
}

// DeriverOption configures the deriver behaviour.
type DeriverOption func(*deriverOptions)

type deriverOptions struct {
	labeler func(string) string
}

// WithLabeler overrides the label generated for each path segment.
func WithLabeler(labeler func(string) string) DeriverOption {
	return func(opts *deriverOptions) {
		opts.labeler = labeler
	}
}

// NewDeriver returns a Deriver backed by the internal implementation.
func NewDeriver(options ...DeriverOption) Deriver {
	cfg := deriverOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := model.Options{}
	if cfg.labeler != nil {
		internalOpts.Labeler = cfg.labeler
	}

	return model.New(internalOpts)
}

// DefaultLabeler is the label function used when none is configured.
func DefaultLabeler(name string) string {
	return model.DefaultLabeler(name)
}

// ComponentName turns a kebab-case form name into the exported component
// name, e.g. "user-form" becomes "UserForm".
func ComponentName(formName string) string {
	return model.PascalCase(formName)
}

// DefaultFormName derives the file name of a form from its schema name:
// "UserProfileSchema" becomes "user-profile-form".
func DefaultFormName(schemaName string) string {
	name := model.KebabCase(schemaName)
	if name == "schema" {
		return "form"
	}
	return strings.TrimSuffix(name, "-schema") + "-form"
}

// IsPlaceholder reports whether a path segment is a repeatable-group index
// token such as "$index" or "$index2".
func IsPlaceholder(segment string) bool {
	return model.IsPlaceholder(segment)
}
