package model

import "sort"

// Project is one corpus entry: the units of every source file found under
// its directory. All counts are derived on demand.
type Project struct {
	Path  Path
	Units []Unit
}

// FileCount returns the number of source files, parsed or not.
func (p Project) FileCount() int {
	return len(p.Units)
}

// ClassCount sums the class declarations of the parsed units.
func (p Project) ClassCount() int {
	n := 0

	for _, u := range p.Units {
		if u.Parsed {
			n += u.ClassCount
		}
	}

	return n
}

// ExtendsCount returns the number of units with a superclass.
func (p Project) ExtendsCount() int {
	n := 0

	for _, u := range p.Units {
		if u.HasSuperclass() {
			n++
		}
	}

	return n
}

// ExtendedClasses returns the distinct superclass names referenced by the
// project's units.
func (p Project) ExtendedClasses() map[string]struct{} {
	extended := make(map[string]struct{})

	for _, u := range p.Units {
		if u.HasSuperclass() {
			extended[u.SuperclassName] = struct{}{}
		}
	}

	return extended
}

// ExtendedCount returns the number of distinct superclass names.
func (p Project) ExtendedCount() int {
	return len(p.ExtendedClasses())
}

// SortedExtendedClasses returns ExtendedClasses in lexical order.
func (p Project) SortedExtendedClasses() []string {
	extended := p.ExtendedClasses()

	names := make([]string, 0, len(extended))
	for name := range extended {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// UnitsWithFindings returns the units that have at least one finding, in
// project order.
func (p Project) UnitsWithFindings() []Unit {
	var units []Unit

	for _, u := range p.Units {
		if u.Parsed && u.HasFindings() {
			units = append(units, u)
		}
	}

	return units
}

// DownCallUnitsExtended returns the units with a DownCall finding whose class
// is extended by some unit of the same project.
func (p Project) DownCallUnitsExtended() []Unit {
	extended := p.ExtendedClasses()

	var units []Unit

	for _, u := range p.Units {
		if !u.Parsed || u.ClassName == "" || !u.HasFinding(DownCall) {
			continue
		}

		if _, ok := extended[u.ClassName]; ok {
			units = append(units, u)
		}
	}

	return units
}

// ForwardingUnitsExtending returns the units that contain a forwarding
// method and also extend another class.
func (p Project) ForwardingUnitsExtending() []Unit {
	var units []Unit

	for _, u := range p.Units {
		if u.Parsed && u.HasForwarding && u.HasSuperclass() {
			units = append(units, u)
		}
	}

	return units
}

// Summary folds the project's units into aggregate counters.
func (p Project) Summary() Summary {
	s := Summary{Projects: 1}

	for _, u := range p.Units {
		s = s.Merge(u.Summary())
	}

	s.Extended = p.ExtendedCount()
	s.DownCallExtended = len(p.DownCallUnitsExtended())

	return s
}
