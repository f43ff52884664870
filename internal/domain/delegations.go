package domain

import m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"

// DetectDelegations scans the statements directly under each method body of
// a class and returns the text of every expression that hands `this` to a
// method of another object, e.g. `registry.add(this)`. Assignments and casts
// are looked through, so `x = (Handle) pool.wrap(this)` counts too. Calls on
// `this` itself are not delegations.
//
// Constructors are left to DetectEscapes; methods without a body are skipped.
func DetectDelegations(root *m.Node) []string {
	var found []string

	locateMethods(root, false, &found)

	return found
}

func locateMethods(n *m.Node, inClass bool, found *[]string) {
	if n == nil {
		return
	}

	switch n.Kind {
	case m.KindClassDeclaration:
		inClass = true
	case m.KindMethodDeclaration:
		if inClass {
			scanMethod(n, found)
		}
	case m.KindTerminal:
		return
	case m.KindCompilationUnit, m.KindConstructorDeclaration, m.KindFieldDeclaration, m.KindBlock,
		m.KindBlockStatement, m.KindStatement, m.KindLocalVariableDeclarationStatement,
		m.KindTypeDeclaration, m.KindExpression, m.KindExpressionList, m.KindOther:
	}

	for _, c := range n.Children {
		locateMethods(c, inClass, found)
	}
}

func scanMethod(method *m.Node, found *[]string) {
	body := bodyBlock(method)
	if body == nil {
		return
	}

	for _, stmt := range body.Children {
		if stmt.Kind != m.KindBlockStatement {
			continue
		}

		for _, expr := range statementExpressions(stmt) {
			if isDelegation(expr) {
				*found = append(*found, expr.Text())
			}
		}
	}
}

func isDelegation(expr *m.Node) bool {
	switch {
	case expr == nil:
		return false
	case isAssignment(expr):
		return isDelegation(expr.Child(2))
	case isCast(expr):
		return isDelegation(expr.Child(3))
	}

	return isForeignCallPassingSelf(expr)
}

// isCast matches `( Type ) operand`.
func isCast(expr *m.Node) bool {
	return expr.ChildCount() == 4 && expr.Child(0).TextIs("(") && expr.Child(2).TextIs(")")
}

// isForeignCallPassingSelf matches `recv.name(..., this, ...)` where recv is
// anything but a bare `this`.
func isForeignCallPassingSelf(expr *m.Node) bool {
	if expr.ChildCount() != 6 {
		return false
	}

	recv, dot, name, open, args, closing := expr.Child(0), expr.Child(1), expr.Child(2),
		expr.Child(3), expr.Child(4), expr.Child(5)

	if !dot.TextIs(".") || !open.TextIs("(") || !closing.TextIs(")") || args.Kind != m.KindExpressionList {
		return false
	}

	if name.Kind != m.KindTerminal || !isIdentifier(name.Token) || recv.TextIs(thisToken) {
		return false
	}

	for _, arg := range args.Children {
		if arg.TextIs(thisToken) {
			return true
		}
	}

	return false
}
