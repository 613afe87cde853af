package app

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/example/textkit/internal/ports/secondary"
)

// Ensure mockTextFileStore implements the interface
var _ secondary.TextFileStore = (*mockTextFileStore)(nil)

// mockTextFileStore implements secondary.TextFileStore in memory for testing.
// Source content is split on "\n" only; terminator handling is covered by
// the filesystem adapter tests.
type mockTextFileStore struct {
	files map[string]string

	openErr   error
	createErr error
	writeErr  error
	closeErr  error

	// Track calls for verification
	opened      []string
	created     []string
	readersOpen int
	writersOpen int
}

func newMockTextFileStore() *mockTextFileStore {
	return &mockTextFileStore{
		files: make(map[string]string),
	}
}

func (m *mockTextFileStore) OpenLines(ctx context.Context, path, encoding string) (secondary.LineReader, error) {
	m.opened = append(m.opened, path)
	if m.openErr != nil {
		return nil, m.openErr
	}
	content, ok := m.files[path]
	if !ok {
		return nil, errors.New("file not found: " + path)
	}
	m.readersOpen++
	return &mockLineReader{store: m, lines: strings.SplitAfter(content, "\n")}, nil
}

func (m *mockTextFileStore) CreateText(ctx context.Context, path, encoding string) (secondary.TextWriter, error) {
	m.created = append(m.created, path)
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.files[path] = ""
	m.writersOpen++
	return &mockTextWriter{store: m, path: path}, nil
}

type mockLineReader struct {
	store *mockTextFileStore
	lines []string
	pos   int
}

func (r *mockLineReader) Next() (string, error) {
	for r.pos < len(r.lines) {
		line := r.lines[r.pos]
		r.pos++
		if line != "" {
			return line, nil
		}
	}
	return "", io.EOF
}

func (r *mockLineReader) Close() error {
	r.store.readersOpen--
	return nil
}

type mockTextWriter struct {
	store *mockTextFileStore
	path  string
}

func (w *mockTextWriter) WriteString(s string) (int, error) {
	if w.store.writeErr != nil {
		return 0, w.store.writeErr
	}
	w.store.files[w.path] += s
	return len(s), nil
}

func (w *mockTextWriter) Close() error {
	w.store.writersOpen--
	return w.store.closeErr
}
