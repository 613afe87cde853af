// Package app contains the application services that orchestrate business logic.
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/example/textkit/internal/core/linefilter"
	"github.com/example/textkit/internal/ports/primary"
	"github.com/example/textkit/internal/ports/secondary"
	"github.com/example/textkit/internal/textenc"
)

// LineCopyServiceImpl implements the LineCopyService interface.
type LineCopyServiceImpl struct {
	files  secondary.TextFileStore
	logger *slog.Logger
}

// NewLineCopyService creates a new LineCopyService with injected dependencies.
func NewLineCopyService(files secondary.TextFileStore, logger *slog.Logger) *LineCopyServiceImpl {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LineCopyServiceImpl{
		files:  files,
		logger: logger,
	}
}

// CopyMatchingLines copies the prefix of every matching source line to the destination.
// Parameters are validated before either file is opened.
func (s *LineCopyServiceImpl) CopyMatchingLines(ctx context.Context, req primary.CopyRequest) (resp *primary.CopyResponse, err error) {
	guard := linefilter.CanCopy(linefilter.CopyContext{
		Substring: req.Substring,
		CharCount: req.CharCount,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	if _, err := textenc.Lookup(req.Encoding); err != nil {
		return nil, err
	}

	s.logger.Debug("filtercopy.start",
		"source", req.Source,
		"destination", req.Destination,
		"substring", req.Substring,
		"char_count", req.CharCount,
		"encoding", textenc.Normalize(req.Encoding),
	)

	// The source is opened first so a missing source leaves no destination
	// directories or empty destination behind.
	src, err := s.files.OpenLines(ctx, req.Source, req.Encoding)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := s.files.CreateText(ctx, req.Destination, req.Encoding)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			resp, err = nil, cerr
		}
	}()

	matches := 0
	scanned := 0
	for {
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		scanned++

		fragment, ok := linefilter.Process(line, req.Substring, req.CharCount)
		if !ok {
			continue
		}
		if _, err := dst.WriteString(fragment); err != nil {
			return nil, err
		}
		matches++
	}

	s.logger.Debug("filtercopy.done", "scanned", scanned, "matches", matches)

	return &primary.CopyResponse{
		Destination: req.Destination,
		Matches:     matches,
	}, nil
}

// Ensure LineCopyServiceImpl implements the interface
var _ primary.LineCopyService = (*LineCopyServiceImpl)(nil)
