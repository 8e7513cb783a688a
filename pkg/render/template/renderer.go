package template

import "io"

// TemplateRenderer executes named or inline templates. Every method returns
// the rendered text and, when writers are supplied, copies it to them too.
type TemplateRenderer interface {
	// Render resolves name the same way RenderTemplate does.
	Render(name string, data any, out ...io.Writer) (string, error)
	// RenderTemplate executes a template from the configured source. The
	// extension may be omitted.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString executes inline template text.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	// RegisterFilter makes fn available to templates as {{ value|name }}.
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	// GlobalContext merges data into the values visible to every template.
	GlobalContext(data any) error
}
