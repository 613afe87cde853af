// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/transform"

	"github.com/example/textkit/internal/ports/secondary"
	"github.com/example/textkit/internal/textenc"
)

// maxLineSize bounds a single decoded line held in memory.
const maxLineSize = 256 << 20

// TextFileAdapter implements secondary.TextFileStore on the local filesystem.
type TextFileAdapter struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// NewTextFileAdapter creates a new filesystem text file adapter.
func NewTextFileAdapter() *TextFileAdapter {
	return &TextFileAdapter{
		dirPerm:  0755,
		filePerm: 0644,
	}
}

// OpenLines opens path for reading in the named encoding.
func (a *TextFileAdapter) OpenLines(ctx context.Context, path, encoding string) (secondary.LineReader, error) {
	enc, err := textenc.Lookup(encoding)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}

	scanner := bufio.NewScanner(transform.NewReader(f, enc.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanUniversalLines)

	return &lineReader{file: f, scanner: scanner}, nil
}

// CreateText creates or truncates path for writing in the named encoding.
func (a *TextFileAdapter) CreateText(ctx context.Context, path, encoding string) (secondary.TextWriter, error) {
	enc, err := textenc.Lookup(encoding)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), a.dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create parent directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, a.filePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination: %w", err)
	}

	tw := transform.NewWriter(f, enc.NewEncoder())
	return &textWriter{
		file:    f,
		encoder: tw,
		buf:     bufio.NewWriter(tw),
	}, nil
}

type lineReader struct {
	file    *os.File
	scanner *bufio.Scanner
}

// Next returns the next line. A decode error surfaces before any partial
// line decoded ahead of it.
func (r *lineReader) Next() (string, error) {
	if !r.scanner.Scan() {
		return "", r.readErr()
	}
	line := r.scanner.Text()
	if strings.HasSuffix(line, "\n") {
		return line, nil
	}

	// An unterminated line is either the true last line or whatever was
	// decoded before the reader failed; only another Scan tells them apart.
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read source: %w", err)
		}
		return line, nil
	}
	return "", errors.New("failed to read source: unterminated line before end of input")
}

func (r *lineReader) readErr() error {
	if err := r.scanner.Err(); err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}
	return io.EOF
}

func (r *lineReader) Close() error {
	return r.file.Close()
}

// textWriter layers buffering over the encoder over the file.
type textWriter struct {
	file    *os.File
	encoder *transform.Writer
	buf     *bufio.Writer
}

func (w *textWriter) WriteString(s string) (int, error) {
	n, err := w.buf.WriteString(s)
	if err != nil {
		return n, fmt.Errorf("failed to write destination: %w", err)
	}
	return n, nil
}

// Close flushes every layer and always closes the file.
func (w *textWriter) Close() error {
	var errs []error
	if err := w.buf.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("failed to write destination: %w", err))
	}
	if err := w.encoder.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to write destination: %w", err))
	}
	if err := w.file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close destination: %w", err))
	}
	return errors.Join(errs...)
}

// scanUniversalLines is a bufio.SplitFunc that keeps line terminators.
// "\n", "\r\n" and a lone "\r" each end a line and are returned as "\n".
// A final line without a terminator is returned as is.
func scanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	i := bytes.IndexAny(data, "\r\n")
	if i < 0 {
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}

	line := append(data[:i:i], '\n')
	if data[i] == '\n' {
		return i + 1, line, nil
	}

	// '\r' may be the first half of "\r\n"; wait for the next byte.
	if i+1 < len(data) {
		if data[i+1] == '\n' {
			return i + 2, line, nil
		}
		return i + 1, line, nil
	}
	if !atEOF {
		return 0, nil, nil
	}
	return i + 1, line, nil
}

// Ensure TextFileAdapter implements the interface
var _ secondary.TextFileStore = (*TextFileAdapter)(nil)
