package model

// Summary holds the additive counters reported for a project or a corpus.
// Merge is commutative and associative, so partial summaries may be folded
// in any order.
type Summary struct {
	Projects             int
	Files                int
	Unparsed             int
	Classes              int
	UnitsWithFindings    int
	UnitsWithDownCall    int
	UnitsStoringSelf     int
	StoringSelfFindings  int
	DownCallFindings     int
	Extends              int
	Extended             int
	Forwarding           int
	ForwardingExtends    int
	DownCallExtended     int
	DelegationStatements int
	SkippedDeclarations  int
}

// Merge returns the field-wise sum of s and o.
func (s Summary) Merge(o Summary) Summary {
	return Summary{
		Projects:             s.Projects + o.Projects,
		Files:                s.Files + o.Files,
		Unparsed:             s.Unparsed + o.Unparsed,
		Classes:              s.Classes + o.Classes,
		UnitsWithFindings:    s.UnitsWithFindings + o.UnitsWithFindings,
		UnitsWithDownCall:    s.UnitsWithDownCall + o.UnitsWithDownCall,
		UnitsStoringSelf:     s.UnitsStoringSelf + o.UnitsStoringSelf,
		StoringSelfFindings:  s.StoringSelfFindings + o.StoringSelfFindings,
		DownCallFindings:     s.DownCallFindings + o.DownCallFindings,
		Extends:              s.Extends + o.Extends,
		Extended:             s.Extended + o.Extended,
		Forwarding:           s.Forwarding + o.Forwarding,
		ForwardingExtends:    s.ForwardingExtends + o.ForwardingExtends,
		DownCallExtended:     s.DownCallExtended + o.DownCallExtended,
		DelegationStatements: s.DelegationStatements + o.DelegationStatements,
		SkippedDeclarations:  s.SkippedDeclarations + o.SkippedDeclarations,
	}
}

// Parsed returns the number of files that produced a syntax tree.
func (s Summary) Parsed() int {
	return s.Files - s.Unparsed
}

// Findings returns the total number of findings of both kinds.
func (s Summary) Findings() int {
	return s.StoringSelfFindings + s.DownCallFindings
}
