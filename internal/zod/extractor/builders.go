package extractor

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/ilyichv/shadcn-zod-form/internal/syntax"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

func primitive(kind string) builder {
	return func(*walker, []*sitter.Node, string) (schema.Node, []schema.Warning) {
		return schema.Primitive{Type: kind}, nil
	}
}

func buildObject(w *walker, args []*sitter.Node, path string) (schema.Node, []schema.Warning) {
	if len(args) == 0 {
		return unsupported(path, "object without shape")
	}
	shape := syntax.Unwrap(args[0])
	if shape.Type() != syntax.NodeObject {
		return unsupported(path, "object shape is not an object literal")
	}

	var (
		props    []schema.Property
		warnings []schema.Warning
	)
	for _, member := range syntax.NamedChildren(shape) {
		switch member.Type() {
		case syntax.NodePair:
			key, value := syntax.Pair(member)
			name, ok := w.ix.KeyName(key)
			if !ok {
				warnings = append(warnings, warn(path, fmt.Sprintf("computed key %s skipped", w.ix.Text(key))))
				continue
			}
			child, childWarnings := w.build(value, join(path, name))
			props = append(props, schema.Property{Name: name, Node: child})
			warnings = append(warnings, childWarnings...)
		case syntax.NodeShorthand:
			name := w.ix.Text(member)
			child, childWarnings := unsupported(join(path, name), "shorthand property references "+name)
			props = append(props, schema.Property{Name: name, Node: child})
			warnings = append(warnings, childWarnings...)
		case syntax.NodeSpread:
			warnings = append(warnings, warn(path, fmt.Sprintf("spread %s skipped", w.ix.Text(member))))
		default:
			warnings = append(warnings, warn(path, fmt.Sprintf("%s member skipped", member.Type())))
		}
	}
	return schema.NewObject(props...), warnings
}

func buildArray(w *walker, args []*sitter.Node, path string) (schema.Node, []schema.Warning) {
	if len(args) == 0 {
		return unsupported(path, "array without element")
	}
	element, warnings := w.build(args[0], path+"[]")
	return schema.Array{Element: element}, warnings
}

func buildEnum(w *walker, args []*sitter.Node, path string) (schema.Node, []schema.Warning) {
	options := []string{}
	if len(args) == 0 {
		return schema.Enum{Options: options}, nil
	}
	list := syntax.Unwrap(args[0])
	if list.Type() != syntax.NodeArray {
		return schema.Enum{Options: options}, []schema.Warning{warn(path, "enum options are not an array literal")}
	}
	for _, element := range syntax.NamedChildren(list) {
		options = append(options, syntax.StripQuotes(w.ix.Text(element)))
	}
	return schema.Enum{Options: options}, nil
}

func join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
