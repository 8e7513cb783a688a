package render

import "github.com/ilyichv/shadcn-zod-form/pkg/config"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the derived form.
type RenderOptions struct {
	// Aliases carries the project import aliases. Renderers that emit imports
	// of UI primitives rewrite their registry paths onto Aliases.UI, or
	// Aliases.Components when no UI alias is configured.
	Aliases config.Aliases
}
