// Package blobstore abstracts where catalog source files live.
//
// The engine itself never touches disk or network; stores exist so the
// loader can pull an uploaded spreadsheet from the local filesystem, memory,
// or S3-compatible object storage with one interface. Implementations for
// AWS S3 and MinIO live in subpackages.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a source blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading catalog source files.
type Store interface {
	// Open opens the named source for reading. The caller closes it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
