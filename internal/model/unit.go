package model

// Unit is the analysis result for one source file. Units are built once and
// never mutated afterwards.
//
// SuperclassName holds only the first `extends` clause in the file, nested
// classes included; other superclasses declared in the same file are lost.
// Empty ClassName/SuperclassName mean absent.
//
// DelegationStatements holds the method-body expressions that pass `this`
// to a method of another object. They are not findings and never appear in
// the report.
type Unit struct {
	Path                 Path
	Parsed               bool
	ClassCount           int
	ClassName            string
	SuperclassName       string
	HasForwarding        bool
	Findings             []Finding
	DelegationStatements []string
	SkippedDeclarations  int
}

// UnparsedUnit is the result recorded for a file that failed to decode or
// parse.
func UnparsedUnit(path Path) Unit {
	return Unit{Path: path}
}

// HasSuperclass reports whether the file declares an `extends` clause.
func (u Unit) HasSuperclass() bool {
	return u.Parsed && u.SuperclassName != ""
}

// HasFindings reports whether any constructor statement was flagged.
func (u Unit) HasFindings() bool {
	return len(u.Findings) > 0
}

// HasFinding reports whether a finding of the given kind exists.
func (u Unit) HasFinding(kind EscapeKind) bool {
	for _, f := range u.Findings {
		if f.Kind == kind {
			return true
		}
	}

	return false
}

// Count returns the number of findings of the given kind.
func (u Unit) Count(kind EscapeKind) int {
	n := 0

	for _, f := range u.Findings {
		if f.Kind == kind {
			n++
		}
	}

	return n
}

// FindingBlock renders the report block for the unit.
func (u Unit) FindingBlock() string {
	return u.FindingSet().String()
}

// Summary folds the unit into the aggregate counters. Unparsed units only
// contribute to Files and Unparsed.
func (u Unit) Summary() Summary {
	s := Summary{Files: 1}
	if !u.Parsed {
		s.Unparsed = 1
		return s
	}

	s.Classes = u.ClassCount
	s.StoringSelfFindings = u.Count(StoringSelf)
	s.DownCallFindings = u.Count(DownCall)
	s.SkippedDeclarations = u.SkippedDeclarations
	s.DelegationStatements = len(u.DelegationStatements)

	if u.HasFindings() {
		s.UnitsWithFindings = 1
	}

	if u.HasFinding(DownCall) {
		s.UnitsWithDownCall = 1
	}

	if u.HasFinding(StoringSelf) {
		s.UnitsStoringSelf = 1
	}

	if u.HasSuperclass() {
		s.Extends = 1
	}

	if u.HasForwarding {
		s.Forwarding = 1

		if u.HasSuperclass() {
			s.ForwardingExtends = 1
		}
	}

	return s
}
