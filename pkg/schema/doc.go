// Package schema defines the schema IR shared by the extractor, the field
// deriver and the exporters, together with the source/document wrappers and
// the error and warning taxonomy of the pipeline.
//
// The IR is a closed tagged union: Primitive, Enum, Object, Array and
// Unsupported all implement Node. Object keeps its properties in declaration
// order because that order drives the order of generated form fields.
package schema
