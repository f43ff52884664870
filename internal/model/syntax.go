package model

import "strings"

// Kind discriminates the closed set of syntax node variants the analyzers
// understand. Every switch over Kind in this module lists all variants.
type Kind int

const (
	// KindCompilationUnit is the root of a parsed source file.
	KindCompilationUnit Kind = iota
	// KindClassDeclaration is `class Name [extends T] [implements ...] { ... }`
	// without its modifiers.
	KindClassDeclaration
	// KindMethodDeclaration is a method including its body.
	KindMethodDeclaration
	// KindConstructorDeclaration is a constructor including its body block.
	KindConstructorDeclaration
	// KindFieldDeclaration is a field declaration with its initializers.
	KindFieldDeclaration
	// KindBlock is a braced statement list: `{` BlockStatement* `}`.
	KindBlock
	// KindBlockStatement wraps exactly one statement-level node.
	KindBlockStatement
	// KindStatement is any statement that is not a local declaration.
	KindStatement
	// KindLocalVariableDeclarationStatement is `Type a = x, b;`.
	KindLocalVariableDeclarationStatement
	// KindTypeDeclaration holds modifiers followed by a type declaration.
	KindTypeDeclaration
	// KindExpression is any non-trivial expression.
	KindExpression
	// KindExpressionList is the comma separated argument list of a call.
	KindExpressionList
	// KindTerminal is a single source token.
	KindTerminal
	// KindOther covers structural nodes with no analysis meaning
	// (class bodies, parameter lists, types, modifiers).
	KindOther
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindCompilationUnit:
		return "CompilationUnit"
	case KindClassDeclaration:
		return "ClassDeclaration"
	case KindMethodDeclaration:
		return "MethodDeclaration"
	case KindConstructorDeclaration:
		return "ConstructorDeclaration"
	case KindFieldDeclaration:
		return "FieldDeclaration"
	case KindBlock:
		return "Block"
	case KindBlockStatement:
		return "BlockStatement"
	case KindStatement:
		return "Statement"
	case KindLocalVariableDeclarationStatement:
		return "LocalVariableDeclarationStatement"
	case KindTypeDeclaration:
		return "TypeDeclaration"
	case KindExpression:
		return "Expression"
	case KindExpressionList:
		return "ExpressionList"
	case KindTerminal:
		return "Terminal"
	case KindOther:
		return "Other"
	}

	return "Unknown"
}

// Node is an immutable syntax tree node. Terminals carry their token text;
// every other node derives its text from its children.
type Node struct {
	Kind     Kind
	Token    string
	Children []*Node
}

// NewNode builds an interior node.
func NewNode(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// Leaf builds a terminal node.
func Leaf(token string) *Node {
	return &Node{Kind: KindTerminal, Token: token}
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}

	return len(n.Children)
}

// Child returns the i-th child or nil when out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}

	return n.Children[i]
}

// Text concatenates the tokens under n with no separators, so `me = this`
// reads back as "me=this".
func (n *Node) Text() string {
	if n == nil {
		return ""
	}

	if n.Kind == KindTerminal {
		return n.Token
	}

	var b strings.Builder

	n.writeText(&b)

	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	if n.Kind == KindTerminal {
		b.WriteString(n.Token)
		return
	}

	for _, c := range n.Children {
		c.writeText(b)
	}
}

// TextIs reports whether n's text equals s without building the full text
// of large subtrees.
func (n *Node) TextIs(s string) bool {
	if n == nil {
		return s == ""
	}

	switch {
	case n.Kind == KindTerminal:
		return n.Token == s
	case len(n.Children) == 1:
		return n.Children[0].TextIs(s)
	case len(n.Children) == 0:
		return s == ""
	}

	return n.Text() == s
}

// IsSingleToken reports whether n is a terminal or a chain of single-child
// nodes ending in one.
func (n *Node) IsSingleToken() bool {
	for n != nil {
		if n.Kind == KindTerminal {
			return true
		}

		if len(n.Children) != 1 {
			return false
		}

		n = n.Children[0]
	}

	return false
}

// Inspect traverses the tree depth-first in document order. If f returns
// false the children of that node are skipped.
func Inspect(n *Node, f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}

	for _, c := range n.Children {
		Inspect(c, f)
	}
}
