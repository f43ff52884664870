package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LukeInkster/JavaInheritanceAnalysis/internal/adapter"
	"github.com/LukeInkster/JavaInheritanceAnalysis/internal/controller"
	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// InspectArgs contains the arguments for analyzing a single file.
type InspectArgs struct {
	Path m.Path `validate:"required"`
}

// DiffArgs contains the arguments for comparing two reports.
type DiffArgs struct {
	Old m.Path `validate:"required"`
	New m.Path `validate:"required"`
}

// Workflow drives the commands of the CLI.
type Workflow interface {
	// Scan analyzes a corpus, writes the report and displays the summary.
	Scan(ctx context.Context, args ScanArgs) (m.Corpus, error)
	// List displays the projects a scan with the same arguments would visit.
	List(ctx context.Context, args ScanArgs) error
	// Inspect analyzes one file as a one-unit project.
	Inspect(ctx context.Context, args InspectArgs) (m.Unit, error)
	// Diff compares two reports.
	Diff(ctx context.Context, args DiffArgs) (m.ReportDelta, error)
}

type workflow struct {
	adapter.ReportStore
	adapter.SourceFSAdapter
	controller.UI
	CorpusScanner
	UnitAnalyzer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	scanner CorpusScanner,
	analyzer UnitAnalyzer,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		CorpusScanner:   scanner,
		UnitAnalyzer:    analyzer,
	}
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) (m.Corpus, error) {
	if err := args.Validate(); err != nil {
		return m.Corpus{}, err
	}

	started := time.Now()

	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.Corpus{}, err
	}
	defer w.Close(ctx)

	sources, err := w.Discover(ctx, args)
	if err != nil {
		return m.Corpus{}, fmt.Errorf("discover projects: %w", err)
	}

	if err := w.DisplayProjects(ctx, sources); err != nil {
		return m.Corpus{}, fmt.Errorf("display: %w", err)
	}

	corpus, err := w.CorpusScanner.Scan(ctx, args.Root, sources, args.Threads, func(project m.Project, running m.Summary) {
		slog.Debug("Project scanned", "project", project.Path, "files", project.FileCount())
		w.DisplayProjectCompleted(ctx, project, running)
	})
	if err != nil {
		return m.Corpus{}, err
	}

	if err := w.SaveReport(args.Output, corpus.FindingSets()); err != nil {
		return m.Corpus{}, fmt.Errorf("save report: %w", err)
	}

	summary := corpus.Summary()
	elapsed := time.Since(started)

	slog.Info("Scan finished",
		"projects", summary.Projects,
		"files", summary.Files,
		"unparsed", summary.Unparsed,
		"findings", summary.Findings(),
		"elapsed", elapsed,
	)

	if err := w.DisplaySummary(ctx, summary, elapsed); err != nil {
		return m.Corpus{}, fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return corpus, nil
}

func (w *workflow) List(ctx context.Context, args ScanArgs) error {
	if err := args.Validate(); err != nil {
		return err
	}

	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	sources, err := w.Discover(ctx, args)
	if err != nil {
		return fmt.Errorf("discover projects: %w", err)
	}

	if err := w.DisplayProjects(ctx, sources); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Inspect(ctx context.Context, args InspectArgs) (m.Unit, error) {
	if err := validate.Struct(args); err != nil {
		return m.Unit{}, fmt.Errorf("invalid inspect arguments: %w", err)
	}

	info, err := w.FileInfo(args.Path)
	if err != nil {
		return m.Unit{}, fmt.Errorf("inspect %s: %w", args.Path, err)
	}

	if info.IsDir() {
		return m.Unit{}, fmt.Errorf("inspect %s: is a directory", args.Path)
	}

	if err := w.Start(ctx); err != nil {
		return m.Unit{}, err
	}
	defer w.Close(ctx)

	unit := w.Analyze(ctx, args.Path)

	if err := w.DisplayUnit(ctx, unit); err != nil {
		return m.Unit{}, fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return unit, nil
}

func (w *workflow) Diff(ctx context.Context, args DiffArgs) (m.ReportDelta, error) {
	if err := validate.Struct(args); err != nil {
		return m.ReportDelta{}, fmt.Errorf("invalid diff arguments: %w", err)
	}

	oldText, err := w.LoadReportText(args.Old)
	if err != nil {
		return m.ReportDelta{}, err
	}

	newText, err := w.LoadReportText(args.New)
	if err != nil {
		return m.ReportDelta{}, err
	}

	delta, err := DiffReports(args.Old, args.New, oldText, newText)
	if err != nil {
		return m.ReportDelta{}, err
	}

	if err := w.Start(ctx); err != nil {
		return m.ReportDelta{}, err
	}
	defer w.Close(ctx)

	if err := w.DisplayDiff(ctx, delta); err != nil {
		return m.ReportDelta{}, fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return delta, nil
}
