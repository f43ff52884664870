// Package model defines the data structures for constructor escape analysis:
// syntax trees, findings and the Unit → Project → Corpus aggregation.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// ProjectSources is one corpus entry before analysis: a directory and the
// source files found beneath it.
type ProjectSources struct {
	Dir   Path
	Files []Path
}
