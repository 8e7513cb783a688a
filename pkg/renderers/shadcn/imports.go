package shadcn

import (
	"regexp"
	"sort"
	"strings"

	projectconfig "github.com/ilyichv/shadcn-zod-form/pkg/config"
)

var registryImportPattern = regexp.MustCompile(`(from\s+["'])` + regexp.QuoteMeta(registryPrefix))

// RewriteImports points registry imports at the project's UI alias, falling
// back to the components alias. Sources are returned unchanged when neither
// alias is configured.
func RewriteImports(src []byte, aliases projectconfig.Aliases) []byte {
	target := strings.TrimRight(aliases.UI, "/")
	if target == "" {
		target = strings.TrimRight(aliases.Components, "/")
	}
	if target == "" {
		return src
	}
	return registryImportPattern.ReplaceAll(src, []byte("${1}"+target))
}

// importSet collects registry component imports without duplicates.
type importSet map[string]map[string]struct{}

func (s importSet) add(module uiModule) {
	names, ok := s[module.path]
	if !ok {
		names = make(map[string]struct{}, len(module.names))
		s[module.path] = names
	}
	for _, name := range module.names {
		names[name] = struct{}{}
	}
}

// lines renders one import statement per module, sorted by module path.
func (s importSet) lines() []string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	out := make([]string, 0, len(paths))
	for _, path := range paths {
		names := make([]string, 0, len(s[path]))
		for name := range s[path] {
			names = append(names, name)
		}
		sort.Strings(names)
		out = append(out, importStatement(names, path))
	}
	return out
}

func importStatement(names []string, module string) string {
	if len(names) <= 3 {
		return "import { " + strings.Join(names, ", ") + " } from \"" + module + "\""
	}
	return "import {\n  " + strings.Join(names, ",\n  ") + ",\n} from \"" + module + "\""
}
