// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// TextFileStore defines the secondary port for line-oriented text file access.
type TextFileStore interface {
	// OpenLines opens path for reading in the named encoding.
	OpenLines(ctx context.Context, path, encoding string) (LineReader, error)

	// CreateText creates or truncates path for writing in the named encoding.
	// Missing parent directories are created.
	CreateText(ctx context.Context, path, encoding string) (TextWriter, error)
}

// LineReader yields decoded lines. Every line except possibly the last ends
// in "\n"; "\r\n" and lone "\r" terminators are normalized to "\n".
type LineReader interface {
	// Next returns the next line, or io.EOF when the input is exhausted.
	Next() (string, error)
	Close() error
}

// TextWriter encodes and writes text.
type TextWriter interface {
	WriteString(s string) (int, error)
	// Close flushes buffered output and releases the file.
	Close() error
}
