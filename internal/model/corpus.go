package model

// Corpus is the collection of scanned projects. Every aggregate is a fold
// over the projects' own aggregates.
type Corpus struct {
	Root     Path
	Projects []Project
}

// Size returns the number of projects.
func (c Corpus) Size() int {
	return len(c.Projects)
}

// Summary merges the summaries of all projects.
func (c Corpus) Summary() Summary {
	var s Summary

	for _, p := range c.Projects {
		s = s.Merge(p.Summary())
	}

	return s
}

// CountFiles returns the number of source files across all projects.
func (c Corpus) CountFiles() int {
	return c.sum(Project.FileCount)
}

// CountClasses returns the number of class declarations in parsed units.
func (c Corpus) CountClasses() int {
	return c.sum(Project.ClassCount)
}

// CountExtends returns the number of units that extend another class.
func (c Corpus) CountExtends() int {
	return c.sum(Project.ExtendsCount)
}

// CountExtended sums the per-project number of distinct extended classes.
func (c Corpus) CountExtended() int {
	return c.sum(Project.ExtendedCount)
}

// CountClassesWithFindings returns the number of units with any finding.
func (c Corpus) CountClassesWithFindings() int {
	return len(c.UnitsWithFindings())
}

// CountClassesWithDownCalls returns the number of units with a DownCall
// finding.
func (c Corpus) CountClassesWithDownCalls() int {
	return c.countUnits(func(u Unit) bool { return u.HasFinding(DownCall) })
}

// CountClassesStoringSelf returns the number of units with a StoringSelf
// finding.
func (c Corpus) CountClassesStoringSelf() int {
	return c.countUnits(func(u Unit) bool { return u.HasFinding(StoringSelf) })
}

// UnitsWithFindings returns every unit with at least one finding, in
// project order.
func (c Corpus) UnitsWithFindings() []Unit {
	var units []Unit

	for _, p := range c.Projects {
		units = append(units, p.UnitsWithFindings()...)
	}

	return units
}

// FindingSets returns the report blocks of every unit with findings.
func (c Corpus) FindingSets() []FindingSet {
	units := c.UnitsWithFindings()

	sets := make([]FindingSet, 0, len(units))
	for _, u := range units {
		sets = append(sets, u.FindingSet())
	}

	return sets
}

// DownCallUnitsExtended returns the units with DownCall findings whose class
// is extended within its own project.
func (c Corpus) DownCallUnitsExtended() []Unit {
	var units []Unit

	for _, p := range c.Projects {
		units = append(units, p.DownCallUnitsExtended()...)
	}

	return units
}

// ForwardingUnitsExtending returns units with a forwarding method that also
// extend another class.
func (c Corpus) ForwardingUnitsExtending() []Unit {
	var units []Unit

	for _, p := range c.Projects {
		units = append(units, p.ForwardingUnitsExtending()...)
	}

	return units
}

func (c Corpus) sum(f func(Project) int) int {
	n := 0

	for _, p := range c.Projects {
		n += f(p)
	}

	return n
}

func (c Corpus) countUnits(pred func(Unit) bool) int {
	n := 0

	for _, p := range c.Projects {
		for _, u := range p.Units {
			if u.Parsed && pred(u) {
				n++
			}
		}
	}

	return n
}
