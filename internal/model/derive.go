package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

// ErrNotObject is returned when derivation is asked for a non-object schema.
var ErrNotObject = errors.New("model: derive requires an object schema")

const placeholderPrefix = "$index"

// Deriver flattens object schemas into field descriptors and repeatable groups.
type Deriver struct {
	opts Options
}

// New creates a Deriver with the supplied options.
func New(options Options) *Deriver {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	return &Deriver{opts: opts}
}

// Derive flattens node, which must be a schema.Object. Nested objects join
// their path with "."; arrays of objects become repeatable groups at the
// position of the array; arrays of anything else are skipped with a warning.
func (d *Deriver) Derive(node schema.Node) (Derivation, error) {
	obj, ok := node.(schema.Object)
	if !ok {
		return Derivation{}, ErrNotObject
	}

	out := d.object(obj, scope{ids: groupIDs{}})
	return Derivation{
		Fields:   out.fields,
		Groups:   out.groups,
		Entries:  out.entries,
		Defaults: formDefaults(obj),
		Warnings: out.warnings,
	}, nil
}

// scope locates an object inside the schema. path includes placeholders.
type scope struct {
	path    string
	groupID string
	depth   int
	ids     groupIDs
}

// groupIDs tracks the group identifiers handed out during one derivation.
type groupIDs map[string]bool

// claim reserves base, or base followed by the first free numeric suffix
// when another path already produced the same identifier.
func (g groupIDs) claim(base string) string {
	id := base
	for n := 2; g[id]; n++ {
		id = base + strconv.Itoa(n)
	}
	g[id] = true
	return id
}

type output struct {
	fields   []FieldDescriptor
	groups   []RepeatableGroup
	entries  []Entry
	warnings []schema.Warning
}

func (o output) merge(other output) output {
	o.fields = append(o.fields, other.fields...)
	o.groups = append(o.groups, other.groups...)
	o.entries = append(o.entries, other.entries...)
	o.warnings = append(o.warnings, other.warnings...)
	return o
}

func (d *Deriver) object(obj schema.Object, sc scope) output {
	var out output
	for _, prop := range obj.Properties {
		path := joinPath(sc.path, prop.Name)
		switch n := prop.Node.(type) {
		case schema.Object:
			out = out.merge(d.object(n, scope{path: path, groupID: sc.groupID, depth: sc.depth, ids: sc.ids}))
		case schema.Array:
			element, isObject := n.Element.(schema.Object)
			if !isObject {
				out.warnings = append(out.warnings, schema.Warning{
					Code:   schema.WarningUnsupportedArrayMember,
					Detail: fmt.Sprintf("%s: array of %s is not supported", path, n.Element.Kind()),
				})
				continue
			}
			out = out.merge(d.group(element, path, prop.Name, sc))
		default:
			field := d.field(path, prop.Name, n, sc.groupID)
			out.fields = append(out.fields, field)
			out.entries = append(out.entries, Entry{Kind: EntryField, Field: &field})
		}
	}
	return out
}

func (d *Deriver) group(element schema.Object, path, name string, parent scope) output {
	depth := parent.depth + 1
	placeholder := Placeholder(depth)
	id := parent.ids.claim(GroupID(path))

	inner := d.object(element, scope{path: path + "." + placeholder, groupID: id, depth: depth, ids: parent.ids})
	group := RepeatableGroup{
		ID:          id,
		Path:        path,
		Name:        name,
		Label:       d.label(path),
		Placeholder: placeholder,
		ParentID:    parent.groupID,
		Fields:      inner.fields,
		Entries:     inner.entries,
		Seed:        groupSeed(element),
	}
	return output{
		groups:   append([]RepeatableGroup{group}, inner.groups...),
		entries:  []Entry{{Kind: EntryGroup, Group: id}},
		warnings: inner.warnings,
	}
}

func (d *Deriver) field(path, name string, node schema.Node, groupID string) FieldDescriptor {
	kind := fieldKindFor(node)
	field := FieldDescriptor{
		Path:     path,
		Name:     name,
		Label:    d.label(path),
		Kind:     kind,
		GroupID:  groupID,
		Required: true,
	}
	switch n := node.(type) {
	case schema.Primitive:
		field.InputKind = inputKindFor(kind, n.Chained)
		field.Modifiers = n.Chained.Names()
		field.Required = !n.Chained.HasAny(optionalModifiers...)
	case schema.Enum:
		field.InputKind = inputKindFor(kind, nil)
		field.Options = append([]string(nil), n.Options...)
	}
	return field
}

// label joins the labels of every non-placeholder path segment.
func (d *Deriver) label(path string) string {
	var parts []string
	for _, segment := range strings.Split(path, ".") {
		if segment == "" || IsPlaceholder(segment) {
			continue
		}
		if label := d.opts.Labeler(segment); label != "" {
			parts = append(parts, label)
		}
	}
	return strings.Join(parts, " ")
}

// Placeholder returns the index token used for a group nested depth levels
// deep: "$index" for the outermost group, "$index2" below it and so on.
func Placeholder(depth int) string {
	if depth <= 1 {
		return placeholderPrefix
	}
	return placeholderPrefix + strconv.Itoa(depth)
}

// IsPlaceholder reports whether a path segment is a group index token.
func IsPlaceholder(segment string) bool {
	if !strings.HasPrefix(segment, placeholderPrefix) {
		return false
	}
	rest := segment[len(placeholderPrefix):]
	if rest == "" {
		return true
	}
	_, err := strconv.Atoi(rest)
	return err == nil
}

// GroupID derives a camel-case identifier from an array path, ignoring
// placeholder segments: "order.lineItems" becomes "orderLineItems". Distinct
// paths can share an identifier; Derive disambiguates them with a suffix.
func GroupID(path string) string {
	var words []string
	for _, segment := range strings.Split(path, ".") {
		if segment == "" || IsPlaceholder(segment) {
			continue
		}
		words = append(words, Words(segment)...)
	}
	return CamelCase(strings.Join(words, " "))
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
