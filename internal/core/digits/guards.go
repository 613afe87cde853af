// Package digits contains the pure business logic for random digit files.
// This is part of the Functional Core - no I/O, only pure functions.
package digits

import "github.com/example/textkit/internal/core/validation"

// ShapeContext describes the requested file shape.
type ShapeContext struct {
	LineCount  int
	LineLength int
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Field   string
	Value   any
	Reason  string
}

// Error returns the guard result as a validation error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return &validation.Error{Field: r.Field, Value: r.Value, Reason: r.Reason}
}

// CanGenerate evaluates whether a file of the given shape may be generated.
// Line length is checked before line count.
func CanGenerate(ctx ShapeContext) GuardResult {
	if ctx.LineLength <= 0 {
		return GuardResult{Field: "line_length", Value: ctx.LineLength, Reason: "must be positive"}
	}
	if ctx.LineCount <= 0 {
		return GuardResult{Field: "line_count", Value: ctx.LineCount, Reason: "must be positive"}
	}
	return GuardResult{Allowed: true}
}
