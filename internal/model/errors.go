package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUndecodable is returned when no charset in the fallback chain can
	// decode a file.
	ErrUndecodable = errors.New("no charset could decode the file")
	// ErrSyntax is returned when the front end reports syntax errors.
	ErrSyntax = errors.New("source contains syntax errors")
)

// ParseFailure marks a file that could not be turned into a syntax tree.
// The unit is recorded as unparsed and excluded from all counts.
type ParseFailure struct {
	Path       Path
	Reason     string
	Underlying error
}

// NewParseFailure wraps err with the path it was raised for.
func NewParseFailure(path Path, reason string, err error) *ParseFailure {
	return &ParseFailure{Path: path, Reason: reason, Underlying: err}
}

// Error implements the error interface.
func (e *ParseFailure) Error() string {
	return fmt.Sprintf("parse failure (%s) for %s: %v", e.Reason, e.Path, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *ParseFailure) Unwrap() error {
	return e.Underlying
}

// StructuralError marks a declaration whose tree shape the analyzers do not
// expect, such as a constructor with no body block. Only that declaration is
// skipped.
type StructuralError struct {
	Path        Path
	Declaration string
	Detail      string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unexpected shape of %q: %s", e.Declaration, e.Detail)
	}

	return fmt.Sprintf("%s: unexpected shape of %q: %s", e.Path, e.Declaration, e.Detail)
}
