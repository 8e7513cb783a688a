package schema

// WarningCode classifies non-fatal findings.
type WarningCode string

const (
	WarningUnsupportedType        WarningCode = "unsupported_type"
	WarningUnsupportedArrayMember WarningCode = "unsupported_array_member"
)

// Warning is a non-fatal diagnostic emitted while extracting or deriving.
type Warning struct {
	Code   WarningCode `json:"code"`
	Detail string      `json:"detail"`
}

// WarningHandler receives warnings as they are produced.
type WarningHandler func(Warning)
