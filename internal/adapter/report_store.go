package adapter

import (
	"fmt"
	"strings"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

// ReportStore persists the finding report of a scan.
type ReportStore interface {
	// SaveReport writes one block per finding set, each followed by a newline.
	SaveReport(path m.Path, sets []m.FindingSet) error
	// LoadReport reads a report written by SaveReport.
	LoadReport(path m.Path) ([]m.FindingSet, error)
	// LoadReportText returns the raw report text.
	LoadReportText(path m.Path) (string, error)
}

// TextReportStore is a ReportStore backed by plain text files.
type TextReportStore struct {
	fs SourceFSAdapter
}

// NewTextReportStore constructs a TextReportStore on top of fs.
func NewTextReportStore(fs SourceFSAdapter) *TextReportStore {
	return &TextReportStore{fs: fs}
}

// SaveReport implements ReportStore.
func (s *TextReportStore) SaveReport(path m.Path, sets []m.FindingSet) error {
	var b strings.Builder

	for _, set := range sets {
		b.WriteString(set.String())
		b.WriteString("\n")
	}

	if err := s.fs.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}

	return nil
}

// LoadReport implements ReportStore.
func (s *TextReportStore) LoadReport(path m.Path) ([]m.FindingSet, error) {
	text, err := s.LoadReportText(path)
	if err != nil {
		return nil, err
	}

	sets, err := m.ParseFindingSets(text)
	if err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}

	return sets, nil
}

// LoadReportText implements ReportStore.
func (s *TextReportStore) LoadReportText(path m.Path) (string, error) {
	content, err := s.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading report %s: %w", path, err)
	}

	return string(content), nil
}
