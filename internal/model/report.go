package model

import (
	"fmt"
	"strings"
)

const (
	findingIndent    = "  "
	findingSeparator = "\t\t"
)

// FindingSet is the report block of one unit: the file path followed by one
// indented line per finding.
type FindingSet struct {
	Path     Path
	Findings []Finding
}

// FindingSet returns the report block of the unit.
func (u Unit) FindingSet() FindingSet {
	return FindingSet{Path: u.Path, Findings: u.Findings}
}

// String renders the block as `<path>` then `\n  <text>\t\t<KIND>` per
// finding.
func (s FindingSet) String() string {
	var b strings.Builder

	b.WriteString(string(s.Path))

	for _, f := range s.Findings {
		b.WriteString("\n")
		b.WriteString(findingIndent)
		b.WriteString(f.Text)
		b.WriteString(findingSeparator)
		b.WriteString(f.Kind.String())
	}

	return b.String()
}

// ParseEscapeKind is the inverse of EscapeKind.String.
func ParseEscapeKind(tag string) (EscapeKind, error) {
	switch tag {
	case StoringSelf.String():
		return StoringSelf, nil
	case DownCall.String():
		return DownCall, nil
	}

	return 0, fmt.Errorf("unknown finding kind %q", tag)
}

// ParseFindingSets reads back a report written as a sequence of finding
// blocks. Blank lines are ignored.
func ParseFindingSets(text string) ([]FindingSet, error) {
	var sets []FindingSet

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !strings.HasPrefix(line, findingIndent) {
			sets = append(sets, FindingSet{Path: Path(line)})
			continue
		}

		if len(sets) == 0 {
			return nil, fmt.Errorf("line %d: finding before any path", i+1)
		}

		body := strings.TrimPrefix(line, findingIndent)

		sep := strings.LastIndex(body, findingSeparator)
		if sep < 0 {
			return nil, fmt.Errorf("line %d: missing kind tag", i+1)
		}

		kind, err := ParseEscapeKind(body[sep+len(findingSeparator):])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		last := &sets[len(sets)-1]
		last.Findings = append(last.Findings, Finding{Text: body[:sep], Kind: kind})
	}

	return sets, nil
}

// ReportDelta compares two reports.
type ReportDelta struct {
	OldPath Path
	NewPath Path
	// Unified is the line diff of the two report texts; empty when equal.
	Unified string
	Added   int
	Removed int
}

// Identical reports whether the two reports hold the same findings.
func (d ReportDelta) Identical() bool {
	return d.Added == 0 && d.Removed == 0
}
