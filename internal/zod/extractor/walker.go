package extractor

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/ilyichv/shadcn-zod-form/internal/syntax"
	"github.com/ilyichv/shadcn-zod-form/pkg/schema"
)

const (
	constructorObject  = "object"
	constructorEnum    = "enum"
	constructorString  = "string"
	constructorNumber  = "number"
	constructorBoolean = "boolean"
	constructorDate    = "date"
	constructorArray   = "array"

	modifierArray = "array"
)

// builder converts the arguments of a recognised constructor call into a node.
type builder func(w *walker, args []*sitter.Node, path string) (schema.Node, []schema.Warning)

// constructors is the single dispatch point for builder names. Adding a
// primitive kind is one entry here plus its input and default rules in the
// field deriver. Populated in init because builders recurse through it.
var constructors map[string]builder

// denied constructors are well-formed but deliberately left out of coverage.
var denied = map[string]string{
	"record": "record schemas are not supported",
	"map":    "map schemas are not supported",
}

func init() {
	constructors = map[string]builder{
		constructorObject:  buildObject,
		constructorEnum:    buildEnum,
		constructorArray:   buildArray,
		constructorString:  primitive(schema.TypeString),
		constructorNumber:  primitive(schema.TypeNumber),
		constructorBoolean: primitive(schema.TypeBoolean),
		constructorDate:    primitive(schema.TypeDate),
	}
}

// walker converts expressions of one index into IR. It holds no mutable
// state: every call returns its node and warnings for the caller to merge.
type walker struct {
	ix        *syntax.Index
	namespace string
}

// chain is a call chain split into its constructor and the modifiers applied
// on top of it, outermost first.
type chain struct {
	constructor string
	args        []*sitter.Node
	modifiers   []string
	reason      string
}

// build converts expr into an IR node. path names the property for warnings.
func (w *walker) build(expr *sitter.Node, path string) (schema.Node, []schema.Warning) {
	expr = syntax.Unwrap(expr)
	if expr == nil {
		return unsupported(path, "missing expression")
	}
	if expr.Type() != syntax.NodeCallExpression {
		return unsupported(path, fmt.Sprintf("%q is not a schema builder call", w.ix.Text(expr)))
	}
	if !w.ix.IsCallChainRootedAt(expr, w.namespace) {
		return unsupported(path, fmt.Sprintf("call is not rooted at %s", w.namespace))
	}

	c, ok := w.unwind(expr)
	if !ok {
		return unsupported(path, c.reason)
	}
	if reason, isDenied := denied[c.constructor]; isDenied {
		return unsupported(path, reason)
	}
	construct, known := constructors[c.constructor]
	if !known {
		return unsupported(path, "unknown constructor "+c.constructor)
	}

	node, warnings := construct(w, c.args, path)
	return applyModifiers(node, c.modifiers), warnings
}

// unwind strips modifier calls until it reaches the call whose receiver is the
// namespace, possibly through member qualifiers such as z.coerce.
func (w *walker) unwind(expr *sitter.Node) (chain, bool) {
	var c chain
	current := syntax.Unwrap(expr)
	for current != nil {
		switch current.Type() {
		case syntax.NodeCallExpression:
			callee, args := syntax.Call(current)
			if callee == nil {
				c.reason = "call without callee"
				return c, false
			}
			if w.ix.IsIdentifier(callee, w.namespace) {
				c.reason = "root without constructor"
				return c, false
			}
			if callee.Type() != syntax.NodeMemberExpression {
				c.reason = fmt.Sprintf("call is not rooted at %s", w.namespace)
				return c, false
			}
			object, property := syntax.Member(callee)
			name := w.ix.Text(property)
			if qualifiers, rooted := w.qualifiers(object); rooted {
				c.constructor = name
				c.args = args
				c.modifiers = append(c.modifiers, qualifiers...)
				return c, true
			}
			c.modifiers = append(c.modifiers, name)
			current = object
		case syntax.NodeMemberExpression:
			object, property := syntax.Member(current)
			c.modifiers = append(c.modifiers, w.ix.Text(property))
			current = object
		default:
			if w.ix.IsIdentifier(current, w.namespace) {
				c.reason = "root without constructor"
			} else {
				c.reason = fmt.Sprintf("call is not rooted at %s", w.namespace)
			}
			return c, false
		}
	}
	c.reason = "missing expression"
	return c, false
}

// qualifiers reports whether n is the namespace itself or a plain member
// chain on it, returning the qualifier names from the outside in.
func (w *walker) qualifiers(n *sitter.Node) ([]string, bool) {
	var names []string
	for n != nil {
		if w.ix.IsIdentifier(n, w.namespace) {
			return names, true
		}
		if n.Type() != syntax.NodeMemberExpression {
			return nil, false
		}
		object, property := syntax.Member(n)
		names = append(names, w.ix.Text(property))
		n = object
	}
	return nil, false
}

// applyModifiers applies modifiers innermost first. array wraps the node;
// every other modifier refines a primitive and is ignored elsewhere.
func applyModifiers(node schema.Node, modifiers []string) schema.Node {
	for i := len(modifiers) - 1; i >= 0; i-- {
		name := modifiers[i]
		if name == modifierArray {
			node = schema.Array{Element: node}
			continue
		}
		if p, ok := node.(schema.Primitive); ok {
			p.Chained = p.Chained.With(name)
			node = p
		}
	}
	return node
}

func unsupported(path, reason string) (schema.Node, []schema.Warning) {
	return schema.Unsupported{Reason: reason}, []schema.Warning{warn(path, reason)}
}

func warn(path, reason string) schema.Warning {
	return schema.Warning{Code: schema.WarningUnsupportedType, Detail: fmt.Sprintf("%s: %s", path, reason)}
}
