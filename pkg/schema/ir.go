package schema

import (
	"encoding/json"
	"sort"
)

// Kind tags the variant held by a Node.
type Kind string

const (
	KindPrimitive   Kind = "primitive"
	KindEnum        Kind = "enum"
	KindObject      Kind = "object"
	KindArray       Kind = "array"
	KindUnsupported Kind = "unsupported"
)

// Primitive type names recognised by the extractor.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeDate    = "date"
)

// Node is the canonical schema IR produced by extractors and consumed by the
// field deriver. The set of implementations is closed: Primitive, Enum,
// Object, Array and Unsupported. Nodes are treated as immutable once built.
type Node interface {
	Kind() Kind
	isNode()
}

// Primitive is a scalar leaf. Chained records the modifiers observed on the
// builder chain; they refine the value but never change Type.
type Primitive struct {
	Type    string
	Chained ModifierSet
}

// Enum is a closed list of string options in declaration order.
type Enum struct {
	Options []string
}

// Property is a named member of an Object.
type Property struct {
	Name string
	Node Node
}

// Object holds its properties in source order. Names are unique.
type Object struct {
	Properties []Property
}

// Array wraps the schema of its elements.
type Array struct {
	Element Node
}

// Unsupported marks a construct that was recognised as a builder call but
// could not be classified.
type Unsupported struct {
	Reason string
}

func (Primitive) Kind() Kind   { return KindPrimitive }
func (Enum) Kind() Kind        { return KindEnum }
func (Object) Kind() Kind      { return KindObject }
func (Array) Kind() Kind       { return KindArray }
func (Unsupported) Kind() Kind { return KindUnsupported }

func (Primitive) isNode()   {}
func (Enum) isNode()        {}
func (Object) isNode()      {}
func (Array) isNode()       {}
func (Unsupported) isNode() {}

// NewObject builds an Object from ordered properties. A repeated name keeps
// the position of its first occurrence and the value of its last one.
func NewObject(props ...Property) Object {
	out := make([]Property, 0, len(props))
	index := make(map[string]int, len(props))
	for _, prop := range props {
		if i, ok := index[prop.Name]; ok {
			out[i].Node = prop.Node
			continue
		}
		index[prop.Name] = len(out)
		out = append(out, prop)
	}
	return Object{Properties: out}
}

// Property looks up a child by name.
func (o Object) Property(name string) (Node, bool) {
	for _, prop := range o.Properties {
		if prop.Name == name {
			return prop.Node, true
		}
	}
	return nil, false
}

// Names returns the property names in declaration order.
func (o Object) Names() []string {
	names := make([]string, 0, len(o.Properties))
	for _, prop := range o.Properties {
		names = append(names, prop.Name)
	}
	return names
}

// ModifierSet is a set of chained modifier names. Order carries no meaning.
type ModifierSet map[string]struct{}

// NewModifierSet returns a set holding the supplied names.
func NewModifierSet(names ...string) ModifierSet {
	if len(names) == 0 {
		return nil
	}
	set := make(ModifierSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Has reports whether the modifier was chained.
func (s ModifierSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// HasAny reports whether at least one of the names was chained.
func (s ModifierSet) HasAny(names ...string) bool {
	for _, name := range names {
		if s.Has(name) {
			return true
		}
	}
	return false
}

// Names returns the modifiers sorted alphabetically.
func (s ModifierSet) Names() []string {
	if len(s) == 0 {
		return nil
	}
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// With returns a copy of the set including name.
func (s ModifierSet) With(name string) ModifierSet {
	out := make(ModifierSet, len(s)+1)
	for existing := range s {
		out[existing] = struct{}{}
	}
	out[name] = struct{}{}
	return out
}

// MarshalJSON emits the set as a sorted array so snapshots stay stable.
func (s ModifierSet) MarshalJSON() ([]byte, error) {
	names := s.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

func (p Primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    Kind        `json:"kind"`
		Type    string      `json:"type"`
		Chained ModifierSet `json:"chained,omitempty"`
	}{KindPrimitive, p.Type, p.Chained})
}

func (e Enum) MarshalJSON() ([]byte, error) {
	options := e.Options
	if options == nil {
		options = []string{}
	}
	return json.Marshal(struct {
		Kind    Kind     `json:"kind"`
		Options []string `json:"options"`
	}{KindEnum, options})
}

func (o Object) MarshalJSON() ([]byte, error) {
	type property struct {
		Name string `json:"name"`
		Node Node   `json:"node"`
	}
	props := make([]property, 0, len(o.Properties))
	for _, prop := range o.Properties {
		props = append(props, property{Name: prop.Name, Node: prop.Node})
	}
	return json.Marshal(struct {
		Kind       Kind       `json:"kind"`
		Properties []property `json:"properties"`
	}{KindObject, props})
}

func (a Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    Kind `json:"kind"`
		Element Node `json:"element"`
	}{KindArray, a.Element})
}

func (u Unsupported) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   Kind   `json:"kind"`
		Reason string `json:"reason"`
	}{KindUnsupported, u.Reason})
}
