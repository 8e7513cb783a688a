package model

import "github.com/ilyichv/shadcn-zod-form/pkg/schema"

var inputKinds = map[FieldKind]InputKind{
	FieldKindString:  InputText,
	FieldKindNumber:  InputNumber,
	FieldKindBoolean: InputCheckbox,
	FieldKindDate:    InputDate,
	FieldKindEnum:    InputSelect,
}

// String refinements, checked in order.
var stringInputs = []struct {
	modifier string
	input    InputKind
}{
	{"email", InputEmail},
	{"url", InputURL},
	{"datetime", InputDateTimeLocal},
}

// optionalModifiers mark a field as not required.
var optionalModifiers = []string{"optional", "nullable", "nullish"}

func inputKindFor(kind FieldKind, chained schema.ModifierSet) InputKind {
	if kind == FieldKindString {
		for _, refinement := range stringInputs {
			if chained.Has(refinement.modifier) {
				return refinement.input
			}
		}
	}
	return inputKinds[kind]
}

func fieldKindFor(node schema.Node) FieldKind {
	switch n := node.(type) {
	case schema.Primitive:
		switch n.Type {
		case schema.TypeString:
			return FieldKindString
		case schema.TypeNumber:
			return FieldKindNumber
		case schema.TypeBoolean:
			return FieldKindBoolean
		case schema.TypeDate:
			return FieldKindDate
		}
	case schema.Enum:
		return FieldKindEnum
	}
	return FieldKindUnsupported
}
