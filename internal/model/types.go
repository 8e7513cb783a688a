package model

import "github.com/ilyichv/shadcn-zod-form/pkg/schema"

// FieldKind is the schema kind driving the input and default of a field.
type FieldKind string

const (
	FieldKindString      FieldKind = "string"
	FieldKindNumber      FieldKind = "number"
	FieldKindBoolean     FieldKind = "boolean"
	FieldKindDate        FieldKind = "date"
	FieldKindEnum        FieldKind = "enum"
	FieldKindUnsupported FieldKind = "unsupported"
)

// InputKind names the control a renderer should use. Empty means no input is
// registered for the field kind.
type InputKind string

const (
	InputText          InputKind = "text"
	InputNumber        InputKind = "number"
	InputCheckbox      InputKind = "checkbox"
	InputDate          InputKind = "date"
	InputSelect        InputKind = "select"
	InputEmail         InputKind = "email"
	InputURL           InputKind = "url"
	InputDateTimeLocal InputKind = "datetime-local"
)

// FieldDescriptor is one flattened leaf of a schema.
type FieldDescriptor struct {
	Path      string    `json:"path"`
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Kind      FieldKind `json:"kind"`
	InputKind InputKind `json:"inputKind,omitempty"`
	Options   []string  `json:"options,omitempty"`
	GroupID   string    `json:"groupId,omitempty"`
	Required  bool      `json:"required"`
	Modifiers []string  `json:"modifiers,omitempty"`
}

// EntryKind tells whether an Entry is a field or a repeatable group.
type EntryKind string

const (
	EntryField EntryKind = "field"
	EntryGroup EntryKind = "group"
)

// Entry keeps the declaration order of fields and groups side by side.
// Field is set for field entries, Group holds the group ID otherwise.
type Entry struct {
	Kind  EntryKind        `json:"kind"`
	Field *FieldDescriptor `json:"field,omitempty"`
	Group string           `json:"group,omitempty"`
}

// RepeatableGroup is the derived form of an array of objects. Fields holds
// the group's own descriptors; nested groups are listed separately with
// ParentID pointing back here.
type RepeatableGroup struct {
	ID          string            `json:"id"`
	Path        string            `json:"path"`
	Name        string            `json:"name"`
	Label       string            `json:"label"`
	Placeholder string            `json:"placeholder"`
	ParentID    string            `json:"parentId,omitempty"`
	Fields      []FieldDescriptor `json:"fields"`
	Entries     []Entry           `json:"entries"`
	Seed        Seed              `json:"seed"`
}

// Derivation is the field model of one object schema.
type Derivation struct {
	Fields   []FieldDescriptor `json:"fields"`
	Groups   []RepeatableGroup `json:"groups"`
	Entries  []Entry           `json:"entries"`
	Defaults Seed              `json:"defaults"`
	Warnings []schema.Warning  `json:"warnings,omitempty"`
}

// Group looks up a repeatable group by ID.
func (d Derivation) Group(id string) (RepeatableGroup, bool) {
	for _, group := range d.Groups {
		if group.ID == id {
			return group, true
		}
	}
	return RepeatableGroup{}, false
}

// Form is what renderers consume: a derivation plus the identity of the
// schema it was derived from.
type Form struct {
	Name       string `json:"name"`
	Component  string `json:"component"`
	SchemaName string `json:"schemaName"`
	ImportRef  string `json:"importRef"`
	Derivation
	Metadata map[string]string `json:"metadata,omitempty"`
}
