// Package fs provides file-system adapters for the voxview ports.
package fs

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
)

// LineFile implements ports.LineSource over a plain text file. It owns the
// file handle: OpenLineFile acquires it and Close releases it, so callers
// can defer Close and get the release on every exit path, parse errors
// included.
type LineFile struct {
	f      *os.File
	reader *bufio.Reader
}

// OpenLineFile opens the file at path for line-by-line reading.
func OpenLineFile(path string) (*LineFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &LineFile{f: f, reader: bufio.NewReaderSize(f, 64*1024)}, nil
}

// Next returns the next line without its terminator, or io.EOF when the
// file is exhausted. A final line with no trailing newline is returned
// before EOF, not swallowed with it.
func (l *LineFile) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close releases the file handle.
func (l *LineFile) Close() error {
	return l.f.Close()
}
