package controller

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd   *cobra.Command
	total int
	done  int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayProjects prints the discovered projects with their file counts.
func (s *SimpleUI) DisplayProjects(ctx context.Context, projects []m.ProjectSources) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.total = len(projects)
	s.done = 0

	s.printf("\n%s", renderProjectsTable(projects))

	return nil
}

// DisplayProjectCompleted prints one progress line per project.
func (s *SimpleUI) DisplayProjectCompleted(ctx context.Context, project m.Project, running m.Summary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.done++
	s.printf("[%d/%d] %s: %d file(s), %d finding(s)\n",
		s.done, s.total, project.Path.Base(), project.FileCount(), running.Findings())
}

// DisplaySummary prints the corpus counters.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary, elapsed time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary, elapsed))

	return nil
}

// DisplayUnit prints the analysis of a single file.
func (s *SimpleUI) DisplayUnit(ctx context.Context, unit m.Unit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", renderUnit(unit))

	return nil
}

// DisplayDiff prints the unified diff of two reports.
func (s *SimpleUI) DisplayDiff(ctx context.Context, delta m.ReportDelta) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if delta.Unified != "" {
		s.printf("%s", delta.Unified)
	}

	s.printf("%s\n", diffSummaryLine(delta))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderProjectsTable(projects []m.ProjectSources) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Project", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	files := 0

	for _, p := range projects {
		table.Append([]string{string(p.Dir), fmt.Sprintf("%d", len(p.Files))})

		files += len(p.Files)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Projects %d", len(projects)),
		fmt.Sprintf("%d", files),
	})

	table.Render()

	return tableBuffer.String()
}

func summaryRows(summary m.Summary, elapsed time.Duration) [][]string {
	return [][]string{
		{"Projects", fmt.Sprintf("%d", summary.Projects)},
		{"Files", fmt.Sprintf("%d", summary.Files)},
		{"Unparsed files", fmt.Sprintf("%d", summary.Unparsed)},
		{"Classes", fmt.Sprintf("%d", summary.Classes)},
		{"Classes with findings", fmt.Sprintf("%d", summary.UnitsWithFindings)},
		{"Classes with down calls", fmt.Sprintf("%d", summary.UnitsWithDownCall)},
		{"Classes storing this", fmt.Sprintf("%d", summary.UnitsStoringSelf)},
		{"STORING_THIS findings", fmt.Sprintf("%d", summary.StoringSelfFindings)},
		{"DOWN_CALL findings", fmt.Sprintf("%d", summary.DownCallFindings)},
		{"Extends", fmt.Sprintf("%d", summary.Extends)},
		{"Extended", fmt.Sprintf("%d", summary.Extended)},
		{"Down calls in extended classes", fmt.Sprintf("%d", summary.DownCallExtended)},
		{"Forwarding", fmt.Sprintf("%d", summary.Forwarding)},
		{"Forwarding and extends", fmt.Sprintf("%d", summary.ForwardingExtends)},
		{"Delegation statements", fmt.Sprintf("%d", summary.DelegationStatements)},
		{"Skipped declarations", fmt.Sprintf("%d", summary.SkippedDeclarations)},
		{"Elapsed", elapsed.Round(time.Millisecond).String()},
	}
}

func renderSummaryTable(summary m.Summary, elapsed time.Duration) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.AppendBulk(summaryRows(summary, elapsed))
	table.Render()

	return tableBuffer.String()
}

func renderUnit(unit m.Unit) string {
	if !unit.Parsed {
		return fmt.Sprintf("%s\n  not parsed", unit.Path)
	}

	var b bytes.Buffer

	b.WriteString(unit.FindingBlock())

	fmt.Fprintf(&b, "\n\nclasses: %d", unit.ClassCount)

	if unit.ClassName != "" {
		fmt.Fprintf(&b, "\nclass: %s", unit.ClassName)
	}

	if unit.HasSuperclass() {
		fmt.Fprintf(&b, "\nextends: %s", unit.SuperclassName)
	}

	fmt.Fprintf(&b, "\nforwarding: %t", unit.HasForwarding)

	for _, d := range unit.DelegationStatements {
		fmt.Fprintf(&b, "\ndelegates: %s", d)
	}

	return b.String()
}

func diffSummaryLine(delta m.ReportDelta) string {
	if delta.Identical() {
		return "Reports contain the same findings"
	}

	return fmt.Sprintf("%d finding(s) added, %d finding(s) removed", delta.Added, delta.Removed)
}
