package primary

import "context"

// DigitFileService defines the primary port for generating random digit files.
type DigitFileService interface {
	// GenerateDigitFile writes LineCount lines of LineLength random digits.
	GenerateDigitFile(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest contains parameters for generating a digit file.
type GenerateRequest struct {
	Output     string
	LineCount  int
	LineLength int
}

// GenerateResponse contains the result of generating a digit file.
type GenerateResponse struct {
	Output       string
	LinesWritten int
}
