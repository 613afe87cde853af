// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// LineCopyService defines the primary port for copying line prefixes.
type LineCopyService interface {
	// CopyMatchingLines writes the prefix of every source line containing the
	// substring to the destination and returns how many lines matched.
	CopyMatchingLines(ctx context.Context, req CopyRequest) (*CopyResponse, error)
}

// CopyRequest contains parameters for a line copy.
type CopyRequest struct {
	Source      string
	Destination string
	Substring   string
	CharCount   int
	Encoding    string // Used for reading and writing; empty means UTF-8
}

// CopyResponse contains the result of a line copy.
type CopyResponse struct {
	Destination string
	Matches     int
}
