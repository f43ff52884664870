package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

func parseJava(t *testing.T, source string) *m.Node {
	t.Helper()

	root, err := NewTreeSitterJavaAdapter().Parse(context.Background(), "Test.java", []byte(source))
	require.NoError(t, err)
	require.NotNil(t, root)

	return root
}

func findFirst(root *m.Node, kind m.Kind) *m.Node {
	var found *m.Node

	m.Inspect(root, func(n *m.Node) bool {
		if found != nil {
			return false
		}

		if n.Kind == kind {
			found = n
			return false
		}

		return true
	})

	return found
}

// constructorStatements returns the statement nodes wrapped by the
// BlockStatements of the first constructor body.
func constructorStatements(t *testing.T, root *m.Node) []*m.Node {
	t.Helper()

	ctor := findFirst(root, m.KindConstructorDeclaration)
	require.NotNil(t, ctor)

	body := findFirst(ctor, m.KindBlock)
	require.NotNil(t, body)

	var stmts []*m.Node

	for _, c := range body.Children {
		if c.Kind == m.KindBlockStatement {
			require.Equal(t, 1, c.ChildCount())
			stmts = append(stmts, c.Child(0))
		}
	}

	return stmts
}

func TestTreeSitterJavaAdapter_ClassShape(t *testing.T) {
	root := parseJava(t, `@Entity public final class A extends Base implements Runnable { }`)

	assert.Equal(t, m.KindCompilationUnit, root.Kind)

	typeDecl := root.Child(0)
	require.NotNil(t, typeDecl)
	assert.Equal(t, m.KindTypeDeclaration, typeDecl.Kind)

	class := typeDecl.Child(typeDecl.ChildCount() - 1)
	require.Equal(t, m.KindClassDeclaration, class.Kind)

	assert.True(t, class.Child(0).TextIs("class"))
	assert.True(t, class.Child(1).TextIs("A"))
	assert.True(t, class.Child(2).TextIs("extends"))
	assert.True(t, class.Child(3).TextIs("Base"))
}

func TestTreeSitterJavaAdapter_StatementShapes(t *testing.T) {
	root := parseJava(t, `class A {
		A me;
		A(int j) {
			// comment
			super(j);
			me = this;
			this.init();
			Helper.register(this);
			int k = j, l;
			if (j > 0) { init(); }
		}
		void init() {}
	}`)

	stmts := constructorStatements(t, root)
	require.Len(t, stmts, 6)

	superCall := stmts[0]
	assert.Equal(t, m.KindStatement, superCall.Kind)
	require.Equal(t, m.KindExpression, superCall.Child(0).Kind)
	assert.Equal(t, "super(j)", superCall.Child(0).Text())
	assert.True(t, superCall.Child(0).Child(1).TextIs("("))
	assert.Equal(t, m.KindExpressionList, superCall.Child(0).Child(2).Kind)

	assign := stmts[1].Child(0)
	assert.Equal(t, m.KindExpression, assign.Kind)
	assert.Equal(t, 3, assign.ChildCount())
	assert.True(t, assign.Child(1).TextIs("="))
	assert.True(t, assign.Child(2).TextIs("this"))

	selfCall := stmts[2].Child(0)
	assert.Equal(t, "this.init()", selfCall.Text())
	assert.True(t, selfCall.Child(0).TextIs("this"))
	assert.True(t, selfCall.Child(1).TextIs("."))
	assert.True(t, selfCall.Child(3).TextIs("("))

	register := stmts[3].Child(0)
	assert.Equal(t, "Helper.register(this)", register.Text())

	local := stmts[4]
	assert.Equal(t, m.KindLocalVariableDeclarationStatement, local.Kind)

	var declarators []*m.Node
	for _, c := range local.Children {
		if c.Kind == m.KindExpression {
			declarators = append(declarators, c)
		}
	}

	require.Len(t, declarators, 1)
	assert.Equal(t, "k=j", declarators[0].Text())

	ifStmt := stmts[5]
	assert.Equal(t, m.KindStatement, ifStmt.Kind)
	assert.NotEqual(t, m.KindExpression, ifStmt.Child(0).Kind)
}

func TestTreeSitterJavaAdapter_LocalClassIsTypeDeclaration(t *testing.T) {
	root := parseJava(t, `class A { A() { class L { L() { } } } }`)

	stmts := constructorStatements(t, root)
	require.Len(t, stmts, 1)
	assert.Equal(t, m.KindTypeDeclaration, stmts[0].Kind)
}

func TestTreeSitterJavaAdapter_SyntaxError(t *testing.T) {
	_, err := NewTreeSitterJavaAdapter().Parse(context.Background(), "Bad.java", []byte(`class A { A( { }`))
	require.Error(t, err)

	var failure *m.ParseFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, m.Path("Bad.java"), failure.Path)
	assert.ErrorIs(t, err, m.ErrSyntax)
}

func TestTreeSitterJavaAdapter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTreeSitterJavaAdapter().Parse(ctx, "A.java", []byte(`class A {}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTreeSitterJavaAdapter_WithDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	root, err := NewTreeSitterJavaAdapter().Parse(ctx, "A.java", []byte(`class A { A() { me = this; } }`))
	require.NoError(t, err)
	assert.Equal(t, m.KindCompilationUnit, root.Kind)
}

func TestTreeSitterJavaAdapter_DeadlineStopsParse(t *testing.T) {
	defer goleak.VerifyNone(t)

	var sb strings.Builder

	sb.WriteString("class Big {\n")

	for i := 0; i < 100000; i++ {
		fmt.Fprintf(&sb, "  int m%d(int a) { int b = a * %d; registry.add(this); return b + m%d(a - 1); }\n", i, i, i)
	}

	sb.WriteString("}\n")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	root, err := NewTreeSitterJavaAdapter().Parse(ctx, "Big.java", []byte(sb.String()))
	require.Error(t, err)
	assert.Nil(t, root)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var failure *m.ParseFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "timeout", failure.Reason)
	assert.Equal(t, m.Path("Big.java"), failure.Path)
}

func TestTreeSitterJavaAdapter_CancelledContextReason(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTreeSitterJavaAdapter().Parse(ctx, "A.java", []byte(`class A {}`))

	var failure *m.ParseFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "cancelled", failure.Reason)
}

func TestTreeSitterJavaAdapter_ParseUnderDeadlineLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	for i := 0; i < 20; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		_, err := NewTreeSitterJavaAdapter().Parse(ctx, "A.java", []byte(`class A { A() { me = this; } }`))
		cancel()
		require.NoError(t, err)
	}
}

func TestTreeSitterJavaAdapter_ConcurrentUse(t *testing.T) {
	parser := NewTreeSitterJavaAdapter()
	done := make(chan error, 8)

	for i := 0; i < 8; i++ {
		go func() {
			_, err := parser.Parse(context.Background(), "A.java", []byte(`class A { A() { init(); } void init() {} }`))
			done <- err
		}()
	}

	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
