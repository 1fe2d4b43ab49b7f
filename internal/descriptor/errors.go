package descriptor

import (
	"fmt"
	"strings"
)

// ValidationError reports user input that violates the descriptor
// invariants. It names every offending field so a caller can prompt the
// user again with a precise message.
//
// ValidationError is a local, synchronous failure: it is never retried
// automatically and is distinguishable from I/O failures via errors.As.
type ValidationError struct {
	// Fields lists the offending fields in the order they were checked.
	Fields []FieldError
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *ValidationError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s %s", f.Field, f.Reason)
	}
	return "invalid descriptor: " + strings.Join(parts, "; ")
}

// ParseError reports malformed or incomplete descriptor text during Decode.
//
// Decode does not attempt partial recovery: a ParseError means no usable
// Descriptor could be produced.
type ParseError struct {
	// Line is the 1-based line number of the offending line, or 0 when the
	// problem is a missing required key rather than a bad line.
	Line int

	// Reason describes what was wrong.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse descriptor: line %d: %s", e.Line, e.Reason)
	}
	return "parse descriptor: " + e.Reason
}
