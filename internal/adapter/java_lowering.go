package adapter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// statementKinds are tree-sitter statements lowered to a plain Statement.
var statementKinds = map[string]struct{}{
	"if_statement":                 {},
	"for_statement":                {},
	"enhanced_for_statement":       {},
	"while_statement":              {},
	"do_statement":                 {},
	"return_statement":             {},
	"throw_statement":              {},
	"try_statement":                {},
	"try_with_resources_statement": {},
	"synchronized_statement":       {},
	"labeled_statement":            {},
	"break_statement":              {},
	"continue_statement":           {},
	"assert_statement":             {},
	"yield_statement":              {},
	"switch_block_statement_group": {},
}

// expressionKinds are tree-sitter expressions lowered to an Expression.
var expressionKinds = map[string]struct{}{
	"assignment_expression":      {},
	"binary_expression":          {},
	"unary_expression":           {},
	"update_expression":          {},
	"method_invocation":          {},
	"object_creation_expression": {},
	"field_access":               {},
	"array_access":               {},
	"cast_expression":            {},
	"ternary_expression":         {},
	"parenthesized_expression":   {},
	"lambda_expression":          {},
	"instanceof_expression":      {},
	"array_creation_expression":  {},
	"method_reference":           {},
	"switch_expression":          {},
	"class_literal":              {},
}

// typeDeclarationKinds are declarations that may appear as a local type
// inside a block.
var typeDeclarationKinds = map[string]struct{}{
	"record_declaration":          {},
	"interface_declaration":       {},
	"enum_declaration":            {},
	"annotation_type_declaration": {},
}

// lowerer converts a tree-sitter Java tree into model nodes. Calls are kept
// flat (`recv . name ( args )`) and class modifiers are hoisted into an
// enclosing TypeDeclaration so that the class declaration itself starts at
// the `class` keyword.
type lowerer struct {
	src []byte
}

func newLowerer(src []byte) *lowerer {
	return &lowerer{src: src}
}

func (l *lowerer) compilationUnit(root *tree_sitter.Node) *m.Node {
	return m.NewNode(m.KindCompilationUnit, l.children(root)...)
}

// lower converts one node. Most nodes map to a single model node; a few
// (argument lists, superclass clauses) are spliced into their parent.
func (l *lowerer) lower(n *tree_sitter.Node) []*m.Node {
	kind := n.Kind()

	switch kind {
	case "class_declaration":
		return []*m.Node{l.classDeclaration(n)}
	case "method_declaration":
		return []*m.Node{m.NewNode(m.KindMethodDeclaration, l.children(n)...)}
	case "constructor_declaration", "compact_constructor_declaration":
		return []*m.Node{m.NewNode(m.KindConstructorDeclaration, l.children(n)...)}
	case "field_declaration":
		return []*m.Node{m.NewNode(m.KindFieldDeclaration, l.children(n)...)}
	case "block", "constructor_body":
		return []*m.Node{l.block(n)}
	case "local_variable_declaration":
		return []*m.Node{m.NewNode(m.KindLocalVariableDeclarationStatement, l.children(n)...)}
	case "variable_declarator":
		return []*m.Node{l.declarator(n)}
	case "expression_statement":
		return []*m.Node{l.expressionStatement(n)}
	case "explicit_constructor_invocation":
		return []*m.Node{l.constructorInvocation(n)}
	case "argument_list":
		return l.argumentList(n)
	case "superclass":
		return l.children(n)
	}

	if _, ok := statementKinds[kind]; ok {
		return []*m.Node{m.NewNode(m.KindStatement, l.children(n)...)}
	}

	if _, ok := expressionKinds[kind]; ok {
		return []*m.Node{m.NewNode(m.KindExpression, l.children(n)...)}
	}

	if n.ChildCount() == 0 {
		return []*m.Node{m.Leaf(l.text(n))}
	}

	return []*m.Node{m.NewNode(m.KindOther, l.children(n)...)}
}

func (l *lowerer) children(n *tree_sitter.Node) []*m.Node {
	var out []*m.Node

	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || c.IsExtra() {
			continue
		}

		out = append(out, l.lower(c)...)
	}

	return out
}

func (l *lowerer) text(n *tree_sitter.Node) string {
	return string(l.src[n.StartByte():n.EndByte()])
}

// classDeclaration yields TypeDeclaration[modifiers..., ClassDeclaration[...]].
func (l *lowerer) classDeclaration(n *tree_sitter.Node) *m.Node {
	var modifiers, rest []*m.Node

	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || c.IsExtra() {
			continue
		}

		if c.Kind() == "modifiers" {
			modifiers = append(modifiers, l.lower(c)...)
			continue
		}

		rest = append(rest, l.lower(c)...)
	}

	return m.NewNode(m.KindTypeDeclaration, append(modifiers, m.NewNode(m.KindClassDeclaration, rest...))...)
}

// block yields Block['{', BlockStatement..., '}'].
func (l *lowerer) block(n *tree_sitter.Node) *m.Node {
	var out []*m.Node

	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || c.IsExtra() {
			continue
		}

		switch c.Kind() {
		case "{", "}":
			out = append(out, m.Leaf(c.Kind()))
		default:
			out = append(out, m.NewNode(m.KindBlockStatement, l.blockStatement(c)))
		}
	}

	return m.NewNode(m.KindBlock, out...)
}

func (l *lowerer) blockStatement(n *tree_sitter.Node) *m.Node {
	if _, ok := typeDeclarationKinds[n.Kind()]; ok {
		return m.NewNode(m.KindTypeDeclaration, l.lower(n)...)
	}

	lowered := l.lower(n)
	if len(lowered) == 1 {
		switch lowered[0].Kind {
		case m.KindStatement, m.KindLocalVariableDeclarationStatement, m.KindTypeDeclaration:
			return lowered[0]
		case m.KindCompilationUnit, m.KindClassDeclaration, m.KindMethodDeclaration,
			m.KindConstructorDeclaration, m.KindFieldDeclaration, m.KindBlock, m.KindBlockStatement,
			m.KindExpression, m.KindExpressionList, m.KindTerminal, m.KindOther:
		}
	}

	return m.NewNode(m.KindStatement, lowered...)
}

// declarator yields Expression[name, '=', value] for an initialized
// declarator and Other[name...] for a bare one.
func (l *lowerer) declarator(n *tree_sitter.Node) *m.Node {
	children := l.children(n)

	for _, c := range children {
		if c.Kind == m.KindTerminal && c.Token == "=" {
			return m.NewNode(m.KindExpression, children...)
		}
	}

	return m.NewNode(m.KindOther, children...)
}

// expressionStatement yields Statement[Expression, ';'].
func (l *lowerer) expressionStatement(n *tree_sitter.Node) *m.Node {
	var out []*m.Node

	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || c.IsExtra() {
			continue
		}

		if c.Kind() == ";" {
			out = append(out, m.Leaf(";"))
			continue
		}

		out = append(out, l.expression(c))
	}

	return m.NewNode(m.KindStatement, out...)
}

// constructorInvocation yields Statement[Expression[this|super ( args )], ';'].
func (l *lowerer) constructorInvocation(n *tree_sitter.Node) *m.Node {
	var call []*m.Node

	hasSemicolon := false

	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || c.IsExtra() {
			continue
		}

		if c.Kind() == ";" {
			hasSemicolon = true
			continue
		}

		call = append(call, l.lower(c)...)
	}

	out := []*m.Node{m.NewNode(m.KindExpression, call...)}
	if hasSemicolon {
		out = append(out, m.Leaf(";"))
	}

	return m.NewNode(m.KindStatement, out...)
}

func (l *lowerer) expression(n *tree_sitter.Node) *m.Node {
	lowered := l.lower(n)
	if len(lowered) == 1 && lowered[0].Kind == m.KindExpression {
		return lowered[0]
	}

	return m.NewNode(m.KindExpression, lowered...)
}

// argumentList is spliced into the call as '(' ExpressionList? ')'.
func (l *lowerer) argumentList(n *tree_sitter.Node) []*m.Node {
	var open, closing *m.Node

	var args []*m.Node

	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || c.IsExtra() {
			continue
		}

		switch c.Kind() {
		case "(":
			open = m.Leaf("(")
		case ")":
			closing = m.Leaf(")")
		default:
			args = append(args, l.lower(c)...)
		}
	}

	var out []*m.Node
	if open != nil {
		out = append(out, open)
	}

	if len(args) > 0 {
		out = append(out, m.NewNode(m.KindExpressionList, args...))
	}

	if closing != nil {
		out = append(out, closing)
	}

	return out
}
