package domain

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

const diffContextLines = 3

// DiffReports compares two report texts. Findings are matched on path,
// text and kind; their order inside the files does not matter.
func DiffReports(oldPath, newPath m.Path, oldText, newText string) (m.ReportDelta, error) {
	oldSets, err := m.ParseFindingSets(oldText)
	if err != nil {
		return m.ReportDelta{}, fmt.Errorf("parsing %s: %w", oldPath, err)
	}

	newSets, err := m.ParseFindingSets(newText)
	if err != nil {
		return m.ReportDelta{}, fmt.Errorf("parsing %s: %w", newPath, err)
	}

	unified, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldText),
		B:        difflib.SplitLines(newText),
		FromFile: string(oldPath),
		ToFile:   string(newPath),
		Context:  diffContextLines,
	})
	if err != nil {
		return m.ReportDelta{}, fmt.Errorf("diffing reports: %w", err)
	}

	counts := make(map[findingKey]int)

	for _, set := range oldSets {
		for _, f := range set.Findings {
			counts[findingKey{set.Path, f}]--
		}
	}

	for _, set := range newSets {
		for _, f := range set.Findings {
			counts[findingKey{set.Path, f}]++
		}
	}

	delta := m.ReportDelta{OldPath: oldPath, NewPath: newPath, Unified: unified}

	for _, n := range counts {
		if n > 0 {
			delta.Added += n
		} else {
			delta.Removed -= n
		}
	}

	return delta, nil
}

type findingKey struct {
	path    m.Path
	finding m.Finding
}
