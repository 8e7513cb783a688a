package syntax

import (
	"context"
	"fmt"
	"iter"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

// Binding is a top-level variable declarator.
type Binding struct {
	Name          string
	Value         *sitter.Node
	Exported      bool
	DefaultExport bool
	Line          int
}

// Index wraps the syntax tree of a single source file. It is scoped to one
// extraction call: create it with Parse and release it with Close. Nothing is
// shared between indexes, so separate files can be indexed concurrently.
type Index struct {
	location string
	src      []byte
	tree     *sitter.Tree
	root     *sitter.Node
}

// Parse builds an Index for src. The TSX grammar is used for .tsx/.jsx files,
// the TypeScript grammar otherwise. Any error or missing node in the tree is
// reported as a *schema.ParseError.
func Parse(ctx context.Context, src []byte, location string) (*Index, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(languageFor(location))

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, &schema.ParseError{Location: location, Line: 1, Column: 1, Err: err}
	}
	root := tree.RootNode()
	if root == nil {
		tree.Close()
		return nil, &schema.ParseError{Location: location, Line: 1, Column: 1, Err: fmt.Errorf("empty syntax tree")}
	}
	if root.HasError() {
		line, col := firstErrorPosition(root)
		tree.Close()
		return nil, &schema.ParseError{Location: location, Line: line, Column: col}
	}

	return &Index{
		location: location,
		src:      append([]byte(nil), src...),
		tree:     tree,
		root:     root,
	}, nil
}

// Close releases the underlying tree.
func (ix *Index) Close() {
	if ix == nil || ix.tree == nil {
		return
	}
	ix.tree.Close()
	ix.tree = nil
	ix.root = nil
}

// Location returns the location the index was parsed from.
func (ix *Index) Location() string {
	return ix.location
}

// Root returns the program node.
func (ix *Index) Root() *sitter.Node {
	return ix.root
}

func languageFor(location string) *sitter.Language {
	lower := strings.ToLower(location)
	if strings.HasSuffix(lower, ".tsx") || strings.HasSuffix(lower, ".jsx") {
		return tsx.GetLanguage()
	}
	return typescript.GetLanguage()
}

func firstErrorPosition(n *sitter.Node) (int, int) {
	var found *sitter.Node
	var walk func(*sitter.Node) bool
	walk = func(node *sitter.Node) bool {
		if node == nil {
			return false
		}
		if node.Type() == nodeError || node.IsMissing() {
			found = node
			return true
		}
		if !node.HasError() {
			return false
		}
		for i := 0; i < int(node.ChildCount()); i++ {
			if walk(node.Child(i)) {
				return true
			}
		}
		return false
	}
	walk(n)
	if found == nil {
		found = n
	}
	point := found.StartPoint()
	return int(point.Row) + 1, int(point.Column) + 1
}

// Bindings yields every top-level variable declarator in source order,
// including those wrapped in an export statement. Declarators whose name is a
// destructuring pattern or that have no initializer are skipped.
func (ix *Index) Bindings() iter.Seq[Binding] {
	return func(yield func(Binding) bool) {
		if ix.root == nil {
			return
		}
		defaults, named := ix.exportedNames()
		for i := 0; i < int(ix.root.NamedChildCount()); i++ {
			child := ix.root.NamedChild(i)
			declaration := child
			exported := false
			if child.Type() == nodeExportStatement {
				declaration = child.ChildByFieldName(fieldDeclaration)
				exported = true
			}
			if declaration == nil {
				continue
			}
			if t := declaration.Type(); t != nodeLexicalDeclaration && t != nodeVariableDeclaration {
				continue
			}
			for j := 0; j < int(declaration.NamedChildCount()); j++ {
				declarator := declaration.NamedChild(j)
				if declarator.Type() != nodeVariableDeclarator {
					continue
				}
				nameNode := declarator.ChildByFieldName(fieldName)
				value := declarator.ChildByFieldName(fieldValue)
				if nameNode == nil || value == nil || nameNode.Type() != nodeIdentifier {
					continue
				}
				name := ix.Text(nameNode)
				_, isDefault := defaults[name]
				_, isNamed := named[name]
				binding := Binding{
					Name:          name,
					Value:         value,
					Exported:      exported || isNamed || isDefault,
					DefaultExport: isDefault,
					Line:          int(declarator.StartPoint().Row) + 1,
				}
				if !yield(binding) {
					return
				}
			}
		}
	}
}

// exportedNames collects identifiers exported after their declaration, either
// as `export default Name` or through an export clause.
func (ix *Index) exportedNames() (defaults, named map[string]struct{}) {
	defaults = make(map[string]struct{})
	named = make(map[string]struct{})
	for i := 0; i < int(ix.root.NamedChildCount()); i++ {
		stmt := ix.root.NamedChild(i)
		if stmt.Type() != nodeExportStatement {
			continue
		}
		if value := stmt.ChildByFieldName(fieldValue); value != nil {
			if value = Unwrap(value); value.Type() == nodeIdentifier {
				defaults[ix.Text(value)] = struct{}{}
			}
			continue
		}
		// `export { A, B as default } from "x"` re-exports; only local clauses count.
		if stmt.ChildByFieldName(fieldSource) != nil {
			continue
		}
		for j := 0; j < int(stmt.NamedChildCount()); j++ {
			clause := stmt.NamedChild(j)
			if clause.Type() != nodeExportClause {
				continue
			}
			for k := 0; k < int(clause.NamedChildCount()); k++ {
				spec := clause.NamedChild(k)
				if spec.Type() != nodeExportSpecifier {
					continue
				}
				nameNode := spec.ChildByFieldName(fieldName)
				if nameNode == nil {
					continue
				}
				name := ix.Text(nameNode)
				if alias := spec.ChildByFieldName(fieldAlias); alias != nil && ix.Text(alias) == "default" {
					defaults[name] = struct{}{}
					continue
				}
				named[name] = struct{}{}
			}
		}
	}
	return defaults, named
}

// NamespaceImport returns the local identifier bound to module, either as a
// named import of exported (`import { z } from "zod"`), a namespace import
// (`import * as z from "zod"`) or a default import. Type-only imports are
// skipped and every import statement is considered.
func (ix *Index) NamespaceImport(module, exported string) (string, bool) {
	if ix.root == nil || module == "" {
		return "", false
	}
	for i := 0; i < int(ix.root.NamedChildCount()); i++ {
		stmt := ix.root.NamedChild(i)
		if stmt.Type() != nodeImportStatement || typeOnly(stmt) {
			continue
		}
		source := stmt.ChildByFieldName(fieldSource)
		if source == nil || ix.StringValue(source) != module {
			continue
		}
		for j := 0; j < int(stmt.NamedChildCount()); j++ {
			clause := stmt.NamedChild(j)
			if clause.Type() != nodeImportClause {
				continue
			}
			if name, ok := ix.importClauseName(clause, exported); ok {
				return name, true
			}
		}
	}
	return "", false
}

func (ix *Index) importClauseName(clause *sitter.Node, exported string) (string, bool) {
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		child := clause.NamedChild(i)
		switch child.Type() {
		case nodeIdentifier:
			return ix.Text(child), true
		case nodeNamespaceImport:
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if gc := child.NamedChild(j); gc.Type() == nodeIdentifier {
					return ix.Text(gc), true
				}
			}
		case nodeNamedImports:
			for j := 0; j < int(child.NamedChildCount()); j++ {
				spec := child.NamedChild(j)
				if spec.Type() != nodeImportSpecifier || typeOnly(spec) {
					continue
				}
				nameNode := spec.ChildByFieldName(fieldName)
				if nameNode == nil || ix.Text(nameNode) != exported {
					continue
				}
				if alias := spec.ChildByFieldName(fieldAlias); alias != nil {
					return ix.Text(alias), true
				}
				return ix.Text(nameNode), true
			}
		}
	}
	return "", false
}

// typeOnly reports whether an import statement or specifier carries the
// `type` or `typeof` keyword.
func typeOnly(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.IsNamed() {
			continue
		}
		if t := child.Type(); t == "type" || t == "typeof" {
			return true
		}
	}
	return false
}

// IsCallChainRootedAt reports whether expr is a call expression whose
// innermost receiver is a bare reference to namespace, however many calls and
// member accesses are chained on top of it.
func (ix *Index) IsCallChainRootedAt(expr *sitter.Node, namespace string) bool {
	expr = Unwrap(expr)
	if expr == nil || expr.Type() != NodeCallExpression {
		return false
	}
	current := expr
	for current != nil {
		switch current.Type() {
		case NodeCallExpression:
			current = Unwrap(current.ChildByFieldName(fieldFunction))
		case NodeMemberExpression:
			current = Unwrap(current.ChildByFieldName(fieldObject))
		case nodeIdentifier:
			return ix.Text(current) == namespace
		default:
			return false
		}
	}
	return false
}

// Text returns the source text covered by n.
func (ix *Index) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(ix.src)
}

// IsIdentifier reports whether n is a bare identifier with the given name.
func (ix *Index) IsIdentifier(n *sitter.Node, name string) bool {
	n = Unwrap(n)
	return n != nil && n.Type() == nodeIdentifier && ix.Text(n) == name
}

// StringValue returns the contents of a string or template literal without
// its delimiters. Other nodes return their raw text.
func (ix *Index) StringValue(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case nodeString, nodeTemplateString:
		var b strings.Builder
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			switch child.Type() {
			case nodeStringFragment, nodeEscapeSequence:
				b.WriteString(ix.Text(child))
			}
		}
		return b.String()
	default:
		return ix.Text(n)
	}
}

// KeyName returns the property name of an object pair key. Computed keys are
// reported with ok=false.
func (ix *Index) KeyName(key *sitter.Node) (string, bool) {
	if key == nil {
		return "", false
	}
	switch key.Type() {
	case nodePropertyIdentifier, nodeIdentifier, nodeNumber:
		return ix.Text(key), true
	case nodeString:
		return ix.StringValue(key), true
	default:
		return "", false
	}
}

// Call splits a call expression into its callee and argument expressions.
func Call(n *sitter.Node) (callee *sitter.Node, args []*sitter.Node) {
	if n == nil || n.Type() != NodeCallExpression {
		return nil, nil
	}
	callee = Unwrap(n.ChildByFieldName(fieldFunction))
	if list := n.ChildByFieldName(fieldArguments); list != nil {
		args = NamedChildren(list)
	}
	return callee, args
}

// Member splits a member expression into its receiver and property node.
func Member(n *sitter.Node) (object, property *sitter.Node) {
	if n == nil || n.Type() != NodeMemberExpression {
		return nil, nil
	}
	return Unwrap(n.ChildByFieldName(fieldObject)), n.ChildByFieldName(fieldProperty)
}

// Pair splits an object pair into its key and value.
func Pair(n *sitter.Node) (key, value *sitter.Node) {
	if n == nil || n.Type() != NodePair {
		return nil, nil
	}
	return n.ChildByFieldName(fieldKey), n.ChildByFieldName(fieldValue)
}

// NamedChildren returns the named children of n, skipping comments.
func NamedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == nodeComment {
			continue
		}
		out = append(out, child)
	}
	return out
}

// Unwrap strips parentheses, `as`/`satisfies` assertions and non-null
// assertions around an expression.
func Unwrap(n *sitter.Node) *sitter.Node {
	for n != nil {
		switch n.Type() {
		case nodeParenthesized, nodeAsExpression, nodeSatisfies, nodeNonNull:
			children := NamedChildren(n)
			if len(children) == 0 {
				return n
			}
			n = children[0]
		default:
			return n
		}
	}
	return n
}

// StripQuotes removes every quote character from literal text.
func StripQuotes(text string) string {
	return strings.NewReplacer(`"`, "", `'`, "", "`", "").Replace(text)
}
