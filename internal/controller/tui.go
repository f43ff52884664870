package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle   = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("8"))
	countStyle = lipgloss.NewStyle().Bold(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.program != nil {
		return nil
	}

	options := append([]tea.ProgramOption{tea.WithOutput(t.output)}, t.options...)
	t.program = tea.NewProgram(newScanModel(), options...)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			slog.Error("TUI stopped", "error", err)
		}
	}()

	return nil
}

// Close stops the program and waits for the final frame.
func (t *TUI) Close(_ context.Context) {
	if t.program == nil {
		return
	}

	t.program.Quit()
	<-t.done
}

// Wait blocks until the program exits.
func (t *TUI) Wait(ctx context.Context) {
	if t.program == nil {
		return
	}

	select {
	case <-ctx.Done():
	case <-t.done:
	}
}

// DisplayProjects sets the number of projects the progress bar tracks.
func (t *TUI) DisplayProjects(ctx context.Context, projects []m.ProjectSources) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	files := 0
	for _, p := range projects {
		files += len(p.Files)
	}

	t.send(projectsMsg{projects: len(projects), files: files, table: renderProjectsTable(projects)})

	return nil
}

// DisplayProjectCompleted advances the progress bar.
func (t *TUI) DisplayProjectCompleted(ctx context.Context, project m.Project, running m.Summary) {
	if ctx.Err() != nil {
		return
	}

	t.send(projectDoneMsg{name: project.Path.Base(), running: running})
}

// DisplaySummary renders the final counters and ends the program.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.Summary, elapsed time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.send(finalMsg{text: renderSummaryTable(summary, elapsed)})

	return nil
}

// DisplayUnit renders a single file analysis and ends the program.
func (t *TUI) DisplayUnit(ctx context.Context, unit m.Unit) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.send(finalMsg{text: renderUnit(unit) + "\n"})

	return nil
}

// DisplayDiff renders a report diff and ends the program.
func (t *TUI) DisplayDiff(ctx context.Context, delta m.ReportDelta) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.send(finalMsg{text: delta.Unified + diffSummaryLine(delta) + "\n"})

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}

type projectsMsg struct {
	projects int
	files    int
	table    string
}

type projectDoneMsg struct {
	name    string
	running m.Summary
}

type finalMsg struct {
	text string
}

// scanModel is the Bubble Tea model shared by every command: a progress
// section while projects complete, then the final output.
type scanModel struct {
	spinner  spinner.Model
	progress progress.Model
	projects int
	files    int
	done     int
	current  string
	running  m.Summary
	table    string
	final    string
	quitting bool
}

func newScanModel() scanModel {
	return scanModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (sm scanModel) Init() tea.Cmd {
	return sm.spinner.Tick
}

func (sm scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			sm.quitting = true
			return sm, tea.Quit
		}

		return sm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd

	case projectsMsg:
		sm.projects = msg.projects
		sm.files = msg.files
		sm.table = msg.table

		return sm, nil

	case projectDoneMsg:
		sm.done++
		sm.current = msg.name
		sm.running = msg.running

		return sm, nil

	case finalMsg:
		sm.final = msg.text
		return sm, tea.Quit
	}

	return sm, nil
}

func (sm scanModel) percent() float64 {
	if sm.projects == 0 {
		return 0
	}

	return float64(sm.done) / float64(sm.projects)
}

func (sm scanModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("jia: constructor escape analysis"))
	b.WriteString("\n\n")

	if sm.table != "" {
		b.WriteString(sm.table)
		b.WriteString("\n")
	}

	if sm.projects > 0 && sm.final == "" {
		fmt.Fprintf(&b, "%s %s\n", sm.spinner.View(), sm.progress.ViewAs(sm.percent()))
		fmt.Fprintf(&b, "  %s/%d projects", countStyle.Render(fmt.Sprintf("%d", sm.done)), sm.projects)

		if sm.current != "" {
			fmt.Fprintf(&b, "  last: %s", sm.current)
		}

		b.WriteString("\n")
		fmt.Fprintf(&b, "  findings: %s\n\n", renderCount(sm.running.Findings()))
	}

	if sm.final != "" {
		b.WriteString(sm.final)
	}

	if sm.quitting && sm.final == "" {
		b.WriteString(dimStyle.Render("interrupted"))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCount dims zero values.
func renderCount(n int) string {
	if n == 0 {
		return dimStyle.Render("0")
	}

	return countStyle.Render(fmt.Sprintf("%d", n))
}
