package ports

import "context"

// LineSource supplies raw text lines, in input order, to the voxel loader.
// Implementations own the underlying resource (typically an open file) and
// must release it in Close on every path, parse failures included.
type LineSource interface {
	// Next returns the next raw line without its terminator.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (string, error)

	// Close releases the underlying resource.
	Close() error
}
