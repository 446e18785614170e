package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by ReadDocument when the document has never
// been written. Callers treat it as "start empty", not as a failure.
var ErrNotFound = errors.New("document not found")

// DocumentStore reads and writes a single whole document. Every write
// replaces the previous contents; there is no incremental format.
type DocumentStore interface {
	ReadDocument(ctx context.Context) ([]byte, error)
	WriteDocument(ctx context.Context, data []byte) error
}
