package model

import internalmodel "github.com/ilyichv/shadcn-zod-form/internal/model"

// FieldKind re-exports the internal FieldKind enumeration.
type FieldKind = internalmodel.FieldKind

const (
	FieldKindString      = internalmodel.FieldKindString
	FieldKindNumber      = internalmodel.FieldKindNumber
	FieldKindBoolean     = internalmodel.FieldKindBoolean
	FieldKindDate        = internalmodel.FieldKindDate
	FieldKindEnum        = internalmodel.FieldKindEnum
	FieldKindUnsupported = internalmodel.FieldKindUnsupported
)

// InputKind re-exports the internal InputKind enumeration.
type InputKind = internalmodel.InputKind

const (
	InputText          = internalmodel.InputText
	InputNumber        = internalmodel.InputNumber
	InputCheckbox      = internalmodel.InputCheckbox
	InputDate          = internalmodel.InputDate
	InputSelect        = internalmodel.InputSelect
	InputEmail         = internalmodel.InputEmail
	InputURL           = internalmodel.InputURL
	InputDateTimeLocal = internalmodel.InputDateTimeLocal
)

type EntryKind = internalmodel.EntryKind

const (
	EntryField = internalmodel.EntryField
	EntryGroup = internalmodel.EntryGroup
)

type FieldDescriptor = internalmodel.FieldDescriptor
type RepeatableGroup = internalmodel.RepeatableGroup
type Entry = internalmodel.Entry
type Seed = internalmodel.Seed
type SeedEntry = internalmodel.SeedEntry
type Derivation = internalmodel.Derivation
type Form = internalmodel.Form

// ErrNotObject is returned when derivation is asked for a non-object schema.
var ErrNotObject = internalmodel.ErrNotObject
