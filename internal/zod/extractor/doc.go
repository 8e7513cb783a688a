// Package extractor is the syntactic zod schema extractor. It walks builder
// call chains in a tree-sitter index, strips chained modifiers and dispatches
// on the constructor name to build schema IR nodes.
package extractor
