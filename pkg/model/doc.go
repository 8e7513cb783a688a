// Package model defines the field model consumed by renderers. Derivation
// lives in internal/model but returns the types re-exported here: field
// descriptors with dotted paths, repeatable groups for arrays of objects with
// their "$index" placeholders and seed values, and the Form wrapper that adds
// the schema name and import statement a generated component needs.
package model
