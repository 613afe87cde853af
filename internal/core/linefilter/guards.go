// Package linefilter contains the pure business logic for copying line prefixes.
// This is part of the Functional Core - no I/O, only pure functions.
package linefilter

import "github.com/example/textkit/internal/core/validation"

// CopyContext carries the request parameters checked before any file is opened.
type CopyContext struct {
	Substring string
	CharCount int
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Field   string // Offending parameter (populated when not allowed)
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

// CanCopy evaluates whether a copy request may proceed.
// Rules:
// - char_count must be a positive integer
// - the substring must not be empty
func CanCopy(ctx CopyContext) GuardResult {
	if ctx.CharCount <= 0 {
		return GuardResult{
			Allowed: false,
			Field:   "char_count",
			Value:   ctx.CharCount,
			Reason:  "must be positive",
		}
	}
	if ctx.Substring == "" {
		return GuardResult{
			Allowed: false,
			Field:   "substring",
			Reason:  "must not be empty",
		}
	}
	return GuardResult{Allowed: true}
}
