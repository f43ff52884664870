package domain

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/LukeInkster/JavaInheritanceAnalysis/internal/adapter"
	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// UnitAnalyzer builds the Unit of one source file.
type UnitAnalyzer interface {
	// Analyze never fails: a file that cannot be read, decoded or parsed
	// yields an unparsed Unit.
	Analyze(ctx context.Context, path m.Path) m.Unit
}

type unitAnalyzer struct {
	fs          adapter.SourceFSAdapter
	parser      adapter.JavaParserAdapter
	fileTimeout time.Duration
}

// NewUnitAnalyzer constructs a UnitAnalyzer. A zero fileTimeout leaves
// parses unbounded.
func NewUnitAnalyzer(fs adapter.SourceFSAdapter, parser adapter.JavaParserAdapter, fileTimeout time.Duration) UnitAnalyzer {
	return &unitAnalyzer{
		fs:          fs,
		parser:      parser,
		fileTimeout: fileTimeout,
	}
}

func (a *unitAnalyzer) Analyze(ctx context.Context, path m.Path) m.Unit {
	content, err := a.fs.ReadFile(path)
	if err != nil {
		return a.unparsed(path, m.NewParseFailure(path, "read", err))
	}

	text, charset, err := adapter.DecodeSource(content)
	if err != nil {
		return a.unparsed(path, m.NewParseFailure(path, "decode", err))
	}

	slog.Debug("Decoded source", "path", path, "charset", charset)

	root, err := a.parse(ctx, path, []byte(text))
	if err != nil {
		return a.unparsed(path, err)
	}

	decls := WalkDeclarations(root)
	escapes := DetectEscapes(path, root)

	for _, skipped := range escapes.Skipped {
		slog.Warn("Skipped declaration", "path", path, "error", skipped)
	}

	return m.Unit{
		Path:                 path,
		Parsed:               true,
		ClassCount:           decls.ClassCount,
		ClassName:            decls.ClassName,
		SuperclassName:       decls.SuperclassName,
		HasForwarding:        HasForwarding(text),
		Findings:             escapes.Findings,
		DelegationStatements: DetectDelegations(root),
		SkippedDeclarations:  len(escapes.Skipped),
	}
}

func (a *unitAnalyzer) parse(ctx context.Context, path m.Path, source []byte) (*m.Node, error) {
	if a.fileTimeout <= 0 {
		return a.parser.Parse(ctx, path, source)
	}

	parseCtx, cancel := context.WithTimeout(ctx, a.fileTimeout)
	defer cancel()

	return a.parser.Parse(parseCtx, path, source)
}

func (a *unitAnalyzer) unparsed(path m.Path, err error) m.Unit {
	var failure *m.ParseFailure
	if errors.As(err, &failure) {
		slog.Debug("Unit not parsed", "path", path, "reason", failure.Reason, "error", failure.Underlying)
	} else {
		slog.Debug("Unit not parsed", "path", path, "error", err)
	}

	return m.UnparsedUnit(path)
}
