package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/textkit/internal/ports/primary"
)

// DigitAdapter is a thin adapter that translates CLI operations to DigitFileService calls.
// It prints nothing on success unless verbose is set.
type DigitAdapter struct {
	service primary.DigitFileService
	out     io.Writer
	verbose bool
}

// NewDigitAdapter creates a new DigitAdapter with the given service.
func NewDigitAdapter(service primary.DigitFileService, out io.Writer, verbose bool) *DigitAdapter {
	return &DigitAdapter{
		service: service,
		out:     out,
		verbose: verbose,
	}
}

// Generate writes the digit file.
func (a *DigitAdapter) Generate(ctx context.Context, req primary.GenerateRequest) error {
	resp, err := a.service.GenerateDigitFile(ctx, req)
	if err != nil {
		return err
	}

	if a.verbose {
		fmt.Fprintf(a.out, "Wrote %d lines of %d digits to %s.\n", resp.LinesWritten, req.LineLength, resp.Output)
	}
	return nil
}
