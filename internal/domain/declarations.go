package domain

import (
	"strings"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// classDeclKeywords are skipped when looking for a class name among the
// children of a class declaration.
var classDeclKeywords = map[string]struct{}{
	"public":    {},
	"private":   {},
	"abstract":  {},
	"protected": {},
	"static":    {},
	"final":     {},
	"strictfp":  {},
	"class":     {},
}

// Declarations is what the declaration walker extracts from a compilation
// unit.
type Declarations struct {
	ClassName      string
	SuperclassName string
	ClassCount     int
}

// WalkDeclarations visits every node of the tree in document order. Each
// class declaration, nested ones included, increments ClassCount. ClassName
// and SuperclassName come from the first declaration that provides them, so
// a file declaring `A extends Base1` then `B extends Base2` reports Base1.
func WalkDeclarations(root *m.Node) Declarations {
	var decls Declarations

	m.Inspect(root, func(n *m.Node) bool {
		switch n.Kind {
		case m.KindClassDeclaration:
			decls.ClassCount++

			if decls.ClassName == "" {
				decls.ClassName = className(n)
			}

			if decls.SuperclassName == "" {
				decls.SuperclassName = superclassName(n)
			}
		case m.KindCompilationUnit, m.KindMethodDeclaration, m.KindConstructorDeclaration,
			m.KindFieldDeclaration, m.KindBlock, m.KindBlockStatement, m.KindStatement,
			m.KindLocalVariableDeclarationStatement, m.KindTypeDeclaration, m.KindExpression,
			m.KindExpressionList, m.KindOther:
		case m.KindTerminal:
			return false
		}

		return true
	})

	return decls
}

func className(decl *m.Node) string {
	for _, c := range decl.Children {
		text := c.Text()
		if _, ok := classDeclKeywords[strings.ToLower(text)]; ok {
			continue
		}

		return text
	}

	return ""
}

func superclassName(decl *m.Node) string {
	for i, c := range decl.Children {
		if !c.TextIs("extends") {
			continue
		}

		return decl.Child(i + 1).Text()
	}

	return ""
}
