package app

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/example/textkit/internal/core/digits"
	"github.com/example/textkit/internal/ports/primary"
	"github.com/example/textkit/internal/ports/secondary"
)

// digitFileEncoding is fixed; the generator has no encoding option.
const digitFileEncoding = "utf-8"

// globalSource draws from the automatically seeded math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DigitFileServiceImpl implements the DigitFileService interface.
type DigitFileServiceImpl struct {
	files  secondary.TextFileStore
	source digits.Source
	logger *slog.Logger
}

// NewDigitFileService creates a new DigitFileService with injected dependencies.
// A nil source uses the process-wide random generator.
func NewDigitFileService(files secondary.TextFileStore, source digits.Source, logger *slog.Logger) *DigitFileServiceImpl {
	if source == nil {
		source = globalSource{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DigitFileServiceImpl{
		files:  files,
		source: source,
		logger: logger,
	}
}

// GenerateDigitFile writes LineCount newline-terminated lines of LineLength random digits.
// The shape is validated before the output file is created.
func (s *DigitFileServiceImpl) GenerateDigitFile(ctx context.Context, req primary.GenerateRequest) (resp *primary.GenerateResponse, err error) {
	guard := digits.CanGenerate(digits.ShapeContext{
		LineCount:  req.LineCount,
		LineLength: req.LineLength,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	out, err := s.files.CreateText(ctx, req.Output, digitFileEncoding)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			resp, err = nil, cerr
		}
	}()

	for i := 0; i < req.LineCount; i++ {
		if _, err := out.WriteString(digits.Line(s.source, req.LineLength) + "\n"); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("randdigits.done",
		"output", req.Output,
		"lines", req.LineCount,
		"line_length", req.LineLength,
	)

	return &primary.GenerateResponse{
		Output:       req.Output,
		LinesWritten: req.LineCount,
	}, nil
}

// Ensure DigitFileServiceImpl implements the interface
var _ primary.DigitFileService = (*DigitFileServiceImpl)(nil)
