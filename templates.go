package zodform

import (
	"io/fs"

	"github.com/ilyichv/shadcn-zod-form/pkg/renderers/shadcn"
)

// EmbeddedTemplates exposes the built-in shadcn renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return shadcn.TemplatesFS()
}
