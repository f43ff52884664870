package domain

import (
	"unicode"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

const (
	thisToken  = "this"
	superToken = "super"
)

// EscapeReport is the output of the constructor escape detector for one
// compilation unit.
type EscapeReport struct {
	Findings []m.Finding
	// Skipped holds one error per constructor that could not be scanned.
	Skipped []error
}

// DetectEscapes finds every constructor declared inside a class and scans
// the statements that are direct children of its body block.
//
// Declarations are located with a full recursive descent, but constructor
// bodies are only scanned one level deep: a statement nested inside an
// `if`, a loop or an inner block is never inspected.
func DetectEscapes(path m.Path, root *m.Node) EscapeReport {
	var report EscapeReport

	locateConstructors(path, root, false, &report)

	return report
}

func locateConstructors(path m.Path, n *m.Node, inClass bool, report *EscapeReport) {
	if n == nil {
		return
	}

	switch n.Kind {
	case m.KindClassDeclaration:
		inClass = true
	case m.KindConstructorDeclaration:
		if inClass {
			scanConstructor(path, n, report)
		}
	case m.KindMethodDeclaration, m.KindFieldDeclaration:
		// Method bodies and field initializers are not analyzed, but local
		// classes declared inside them are.
	case m.KindTerminal:
		return
	case m.KindCompilationUnit, m.KindBlock, m.KindBlockStatement, m.KindStatement,
		m.KindLocalVariableDeclarationStatement, m.KindTypeDeclaration, m.KindExpression,
		m.KindExpressionList, m.KindOther:
	}

	for _, c := range n.Children {
		locateConstructors(path, c, inClass, report)
	}
}

func scanConstructor(path m.Path, ctor *m.Node, report *EscapeReport) {
	body := bodyBlock(ctor)
	if body == nil {
		report.Skipped = append(report.Skipped, &m.StructuralError{
			Path:        path,
			Declaration: declarationName(ctor),
			Detail:      "constructor body block not found",
		})

		return
	}

	for _, stmt := range body.Children {
		if stmt.Kind != m.KindBlockStatement {
			continue
		}

		if finding, ok := classifyStatement(stmt); ok {
			report.Findings = append(report.Findings, finding)
		}
	}
}

// bodyBlock returns the body block of a constructor or method declaration.
func bodyBlock(decl *m.Node) *m.Node {
	for _, c := range decl.Children {
		if c.Kind == m.KindBlock {
			return c
		}
	}

	return nil
}

func declarationName(decl *m.Node) string {
	for _, c := range decl.Children {
		if c.Kind == m.KindTerminal && isIdentifier(c.Token) {
			return c.Token
		}
	}

	return decl.Kind.String()
}

// classifyStatement classifies the top-level expressions of one statement.
// At most one finding is produced per statement.
func classifyStatement(stmt *m.Node) (m.Finding, bool) {
	for _, expr := range statementExpressions(stmt) {
		if kind, ok := classifyExpression(expr); ok {
			return m.Finding{Text: expr.Text(), Kind: kind}, true
		}
	}

	return m.Finding{}, false
}

// statementExpressions extracts the expressions of a block statement: the
// declarators of a local variable declaration, the expression of an
// expression statement, or the expressions directly under a local type
// declaration. Any other statement yields nothing.
func statementExpressions(stmt *m.Node) []*m.Node {
	inner := stmt.Child(0)
	if inner == nil {
		return nil
	}

	switch inner.Kind {
	case m.KindLocalVariableDeclarationStatement, m.KindTypeDeclaration:
		return childrenOfKind(inner, m.KindExpression)
	case m.KindStatement:
		if first := inner.Child(0); first != nil && first.Kind == m.KindExpression {
			return []*m.Node{first}
		}

		return nil
	case m.KindCompilationUnit, m.KindClassDeclaration, m.KindMethodDeclaration,
		m.KindConstructorDeclaration, m.KindFieldDeclaration, m.KindBlock, m.KindBlockStatement,
		m.KindExpression, m.KindExpressionList, m.KindTerminal, m.KindOther:
	}

	return nil
}

func childrenOfKind(n *m.Node, kind m.Kind) []*m.Node {
	var out []*m.Node

	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}

	return out
}

// classifyExpression applies the escape rules in order; the first rule that
// matches decides the kind.
func classifyExpression(expr *m.Node) (m.EscapeKind, bool) {
	if isAssignment(expr) {
		rhs := expr.Child(2)

		switch {
		case rhs == nil:
			return 0, false
		case rhs.TextIs(thisToken), isCallPassingSelf(rhs):
			return m.StoringSelf, true
		case isDownCall(rhs):
			return m.DownCall, true
		}

		return 0, false
	}

	if isDownCall(expr) {
		return m.DownCall, true
	}

	if isCallPassingSelf(expr) {
		return m.StoringSelf, true
	}

	return 0, false
}

// isAssignment matches `lhs = rhs`. Compound assignments are not included.
func isAssignment(expr *m.Node) bool {
	op := expr.Child(1)

	return op != nil && op.Kind == m.KindTerminal && op.Token == "="
}

// isDownCall matches `name(...)` where name is a bare identifier other than
// this/super, and `this.name(...)`. Constructor chaining through super(...)
// and this(...) is excluded.
func isDownCall(expr *m.Node) bool {
	if expr.ChildCount() < 2 {
		return false
	}

	first, second := expr.Child(0), expr.Child(1)

	if first.IsSingleToken() && second.TextIs("(") {
		name := first.Text()
		return name != superToken && name != thisToken && isIdentifier(name)
	}

	if expr.ChildCount() >= 4 {
		return first.TextIs(thisToken) && second.TextIs(".") && expr.Child(3).TextIs("(")
	}

	return false
}

// isCallPassingSelf scans the direct children after the first `(` for a
// literal `this` before the closing `)`. An argument list child is scanned
// as if its items were direct children; nested calls are not searched.
func isCallPassingSelf(expr *m.Node) bool {
	inParams := false

	for _, c := range flattenArguments(expr) {
		if c.TextIs("(") {
			inParams = true
			continue
		}

		if !inParams {
			continue
		}

		if c.TextIs(")") {
			return false
		}

		if c.TextIs(thisToken) {
			return true
		}
	}

	return false
}

func flattenArguments(expr *m.Node) []*m.Node {
	out := make([]*m.Node, 0, len(expr.Children))

	for _, c := range expr.Children {
		if c.Kind == m.KindExpressionList {
			out = append(out, c.Children...)
			continue
		}

		out = append(out, c)
	}

	return out
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}
