package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// JavaParserAdapter turns Java source text into the analyzers' syntax tree.
type JavaParserAdapter interface {
	// Parse returns the compilation unit for source, or a *model.ParseFailure
	// when the text does not form a valid compilation unit.
	Parse(ctx context.Context, path m.Path, source []byte) (*m.Node, error)
}

// TreeSitterJavaAdapter is a JavaParserAdapter backed by the tree-sitter Java
// grammar. It is safe for concurrent use; every call gets its own parser.
type TreeSitterJavaAdapter struct {
	language *tree_sitter.Language
}

// NewTreeSitterJavaAdapter constructs a TreeSitterJavaAdapter.
func NewTreeSitterJavaAdapter() *TreeSitterJavaAdapter {
	return &TreeSitterJavaAdapter{
		language: tree_sitter.NewLanguage(tree_sitter_java.Language()),
	}
}

// Parse implements JavaParserAdapter. The parse stops as soon as ctx is done
// and the file is reported as a timeout or cancellation failure.
func (a *TreeSitterJavaAdapter) Parse(ctx context.Context, path m.Path, source []byte) (root *m.Node, err error) {
	if err := ctx.Err(); err != nil {
		return nil, m.NewParseFailure(path, interruptReason(err), err)
	}

	defer func() {
		if r := recover(); r != nil {
			root = nil
			err = m.NewParseFailure(path, "front end panic", fmt.Errorf("%v", r))
		}
	}()

	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(a.language); err != nil {
		return nil, m.NewParseFailure(path, "language setup", err)
	}

	// The parser polls the cancellation flag and gives up once it is set. The
	// flag lives in Go memory read by C, so it stays pinned for the parse.
	var cancelled uintptr

	var pinner runtime.Pinner
	pinner.Pin(&cancelled)
	defer pinner.Unpin()

	parser.SetCancellationFlag(&cancelled)
	defer parser.SetCancellationFlag(nil)

	// The C parser may hold on to the buffer; give it a private copy.
	buf := make([]byte, len(source))
	copy(buf, source)

	stop := context.AfterFunc(ctx, func() {
		atomic.StoreUintptr(&cancelled, 1)
	})
	tree := parser.Parse(buf, nil)
	stop()

	if tree == nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			slog.Warn("Parse stopped", "path", path, "error", ctxErr)
			return nil, m.NewParseFailure(path, interruptReason(ctxErr), ctxErr)
		}

		return nil, m.NewParseFailure(path, "no tree", m.ErrSyntax)
	}
	defer tree.Close()

	tsRoot := tree.RootNode()
	if tsRoot == nil {
		return nil, m.NewParseFailure(path, "no root", m.ErrSyntax)
	}

	if tsRoot.HasError() {
		return nil, m.NewParseFailure(path, "syntax", m.ErrSyntax)
	}

	return newLowerer(buf).compilationUnit(tsRoot), nil
}

func interruptReason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}

	return "cancelled"
}
