// Package controller provides output adapters for displaying scan results.
package controller

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// UI defines the interface for displaying scan progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish rendering
	DisplayProjects(ctx context.Context, projects []m.ProjectSources) error
	DisplayProjectCompleted(ctx context.Context, project m.Project, running m.Summary)
	DisplaySummary(ctx context.Context, summary m.Summary, elapsed time.Duration) error
	DisplayUnit(ctx context.Context, unit m.Unit) error
	DisplayDiff(ctx context.Context, delta m.ReportDelta) error
}

// NewUI picks the TUI for interactive terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
