// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"io"

	"github.com/fatih/color"

	"github.com/example/textkit/internal/ports/primary"
)

// CopyAdapter is a thin adapter that translates CLI operations to LineCopyService calls.
type CopyAdapter struct {
	service primary.LineCopyService
	out     io.Writer
}

// NewCopyAdapter creates a new CopyAdapter with the given service.
func NewCopyAdapter(service primary.LineCopyService, out io.Writer) *CopyAdapter {
	return &CopyAdapter{
		service: service,
		out:     out,
	}
}

// Copy runs the line copy and prints a one-line summary.
func (a *CopyAdapter) Copy(ctx context.Context, req primary.CopyRequest) error {
	resp, err := a.service.CopyMatchingLines(ctx, req)
	if err != nil {
		return err
	}

	ColorFor(a.out, color.FgGreen).Fprintf(a.out, "Copied %d matching lines to %s.\n", resp.Matches, resp.Destination)
	return nil
}
