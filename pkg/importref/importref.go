// Package importref computes the module reference a generated form uses to
// import its schema.
package importref

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var sourceExtPattern = regexp.MustCompile(`\.(ts|tsx|js|jsx)$`)

// Path returns the module path of filePath relative to formsDir. Separators
// are always forward slashes, script extensions are stripped, and a "./"
// prefix is added unless the result already starts with "." or is absolute.
func Path(formsDir, filePath string) string {
	from := toSlash(formsDir)
	to := toSlash(filePath)

	rel, err := filepath.Rel(filepath.FromSlash(from), filepath.FromSlash(to))
	if err != nil {
		// Mixed absolute and relative inputs cannot be related; keep the target.
		rel = to
	}
	rel = toSlash(rel)
	rel = sourceExtPattern.ReplaceAllString(rel, "")

	if !isAbsolute(rel) && !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}

// Statement renders the import statement for symbol from module.
func Statement(module, symbol string, isDefault bool) string {
	if isDefault {
		return fmt.Sprintf("import %s from %q;", symbol, module)
	}
	return fmt.Sprintf("import { %s } from %q;", symbol, module)
}

// Build combines Path and Statement.
func Build(formsDir, filePath, symbol string, isDefault bool) string {
	return Statement(Path(formsDir, filePath), symbol, isDefault)
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func isAbsolute(p string) bool {
	if path.IsAbs(p) || filepath.IsAbs(p) {
		return true
	}
	// Windows drive letters survive slash normalisation on any host.
	return len(p) >= 3 && p[1] == ':' && p[2] == '/'
}
