package syntax

// Tree-sitter node and field names used by the index. Reference:
// https://github.com/tree-sitter/tree-sitter-typescript
const (
	nodeProgram             = "program"
	nodeComment             = "comment"
	nodeError               = "ERROR"
	nodeImportStatement     = "import_statement"
	nodeImportClause        = "import_clause"
	nodeNamespaceImport     = "namespace_import"
	nodeNamedImports        = "named_imports"
	nodeImportSpecifier     = "import_specifier"
	nodeExportStatement     = "export_statement"
	nodeExportClause        = "export_clause"
	nodeExportSpecifier     = "export_specifier"
	nodeLexicalDeclaration  = "lexical_declaration"
	nodeVariableDeclaration = "variable_declaration"
	nodeVariableDeclarator  = "variable_declarator"
	nodeIdentifier          = "identifier"
	nodePropertyIdentifier  = "property_identifier"
	nodeString              = "string"
	nodeStringFragment      = "string_fragment"
	nodeEscapeSequence      = "escape_sequence"
	nodeTemplateString      = "template_string"
	nodeNumber              = "number"

	NodeCallExpression   = "call_expression"
	NodeMemberExpression = "member_expression"
	NodeObject           = "object"
	NodeArray            = "array"
	NodePair             = "pair"
	NodeShorthand        = "shorthand_property_identifier"
	NodeSpread           = "spread_element"
	NodeComputedProperty = "computed_property_name"

	nodeParenthesized = "parenthesized_expression"
	nodeAsExpression  = "as_expression"
	nodeSatisfies     = "satisfies_expression"
	nodeNonNull       = "non_null_expression"

	fieldName        = "name"
	fieldValue       = "value"
	fieldAlias       = "alias"
	fieldSource      = "source"
	fieldDeclaration = "declaration"
	fieldFunction    = "function"
	fieldArguments   = "arguments"
	fieldObject      = "object"
	fieldProperty    = "property"
	fieldKey         = "key"
)
