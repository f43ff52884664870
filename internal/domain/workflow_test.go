package domain

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukeInkster/JavaInheritanceAnalysis/internal/adapter"
	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// recordingUI captures what the workflow displays.
type recordingUI struct {
	mu        sync.Mutex
	calls     []string
	projects  []m.ProjectSources
	completed []string
	summary   m.Summary
	unit      m.Unit
	delta     m.ReportDelta
}

func (r *recordingUI) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, call)
}

func (r *recordingUI) Start(context.Context) error {
	r.record("start")
	return nil
}

func (r *recordingUI) Close(context.Context) {
	r.record("close")
}

func (r *recordingUI) Wait(context.Context) {
	r.record("wait")
}

func (r *recordingUI) DisplayProjects(_ context.Context, projects []m.ProjectSources) error {
	r.record("projects")
	r.projects = projects

	return nil
}

func (r *recordingUI) DisplayProjectCompleted(_ context.Context, project m.Project, _ m.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.completed = append(r.completed, project.Path.Base())
}

func (r *recordingUI) DisplaySummary(_ context.Context, summary m.Summary, _ time.Duration) error {
	r.record("summary")
	r.summary = summary

	return nil
}

func (r *recordingUI) DisplayUnit(_ context.Context, unit m.Unit) error {
	r.record("unit")
	r.unit = unit

	return nil
}

func (r *recordingUI) DisplayDiff(_ context.Context, delta m.ReportDelta) error {
	r.record("diff")
	r.delta = delta

	return nil
}

func newTestWorkflow(ui *recordingUI) Workflow {
	fs := adapter.NewLocalSourceFSAdapter()
	analyzer := NewUnitAnalyzer(fs, adapter.NewTreeSitterJavaAdapter(), time.Second)

	return NewWorkflow(fs, adapter.NewTextReportStore(fs), ui, NewCorpusScanner(fs, analyzer), analyzer)
}

func TestWorkflow_Scan(t *testing.T) {
	root := newCorpus(t)
	ui := &recordingUI{}
	args := validScanArgs(root)
	args.Output = m.Path(filepath.Join(t.TempDir(), "reports", "failures.txt"))

	corpus, err := newTestWorkflow(ui).Scan(context.Background(), args)
	require.NoError(t, err)

	assert.Equal(t, []string{"start", "projects", "summary", "wait", "close"}, ui.calls)
	assert.Equal(t, []string{"alpha", "beta"}, projectNames(ui.projects))
	assert.ElementsMatch(t, []string{"alpha", "beta"}, ui.completed)
	assert.Equal(t, corpus.Summary(), ui.summary)

	report, err := os.ReadFile(string(args.Output))
	require.NoError(t, err)

	want := filepath.Join(string(root), "alpha", "A.java") + "\n  me=this\t\tSTORING_THIS\n" +
		filepath.Join(string(root), "alpha", "gen", "G.java") + "\n  init()\t\tDOWN_CALL\n" +
		filepath.Join(string(root), "beta", "B.java") + "\n  this.setup()\t\tDOWN_CALL\n"
	assert.Equal(t, want, string(report))
}

func TestWorkflow_ScanInvalidArgs(t *testing.T) {
	ui := &recordingUI{}
	args := validScanArgs(newCorpus(t))
	args.Threads = 0

	_, err := newTestWorkflow(ui).Scan(context.Background(), args)
	require.Error(t, err)
	assert.Empty(t, ui.calls)
}

func TestWorkflow_ScanMissingRoot(t *testing.T) {
	ui := &recordingUI{}
	args := validScanArgs(m.Path(filepath.Join(t.TempDir(), "missing")))

	_, err := newTestWorkflow(ui).Scan(context.Background(), args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discover projects")
	assert.Equal(t, []string{"start", "close"}, ui.calls)
}

func TestWorkflow_List(t *testing.T) {
	ui := &recordingUI{}
	args := validScanArgs(newCorpus(t))
	args.Limit = 1

	require.NoError(t, newTestWorkflow(ui).List(context.Background(), args))

	assert.Equal(t, []string{"start", "projects", "close"}, ui.calls)
	assert.Equal(t, []string{"alpha"}, projectNames(ui.projects))
	assert.NoFileExists(t, string(args.Output))
}

func TestWorkflow_Inspect(t *testing.T) {
	path := writeSource(t, filepath.Join(t.TempDir(), "A.java"), []byte(`class A extends B { A() { init(); } }`))
	ui := &recordingUI{}

	unit, err := newTestWorkflow(ui).Inspect(context.Background(), InspectArgs{Path: path})
	require.NoError(t, err)

	assert.Equal(t, unit, ui.unit)
	assert.Equal(t, "B", unit.SuperclassName)
	assert.Equal(t, []m.Finding{{Text: "init()", Kind: m.DownCall}}, unit.Findings)
	assert.Equal(t, []string{"start", "unit", "wait", "close"}, ui.calls)
}

func TestWorkflow_InspectErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path m.Path
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: m.Path(filepath.Join(dir, "Missing.java"))},
		{name: "directory", path: m.Path(dir)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &recordingUI{}

			_, err := newTestWorkflow(ui).Inspect(context.Background(), InspectArgs{Path: tt.path})
			require.Error(t, err)
			assert.Empty(t, ui.calls)
		})
	}
}

func TestWorkflow_Diff(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeSource(t, filepath.Join(dir, "old.txt"), []byte(baseReport))
	newPath := writeSource(t, filepath.Join(dir, "new.txt"), []byte(baseReport+"p/C.java\n  c()\t\tDOWN_CALL\n"))
	ui := &recordingUI{}

	delta, err := newTestWorkflow(ui).Diff(context.Background(), DiffArgs{Old: oldPath, New: newPath})
	require.NoError(t, err)

	assert.Equal(t, 1, delta.Added)
	assert.Zero(t, delta.Removed)
	assert.Equal(t, delta, ui.delta)
	assert.Equal(t, []string{"start", "diff", "wait", "close"}, ui.calls)
}

func TestWorkflow_DiffMissingReport(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeSource(t, filepath.Join(dir, "old.txt"), []byte(baseReport))
	ui := &recordingUI{}

	_, err := newTestWorkflow(ui).Diff(context.Background(), DiffArgs{Old: oldPath, New: m.Path(filepath.Join(dir, "nope.txt"))})
	require.Error(t, err)
	assert.Empty(t, ui.calls)
}
