package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local is a Store rooted at a filesystem directory.
type Local struct {
	root string
}

// NewLocal creates a Store serving files under root.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Open opens a file under the root. Names that escape the root are rejected.
func (s *Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full := filepath.Join(s.root, filepath.Clean("/"+name))
	if rel, err := filepath.Rel(s.root, full); err != nil || strings.HasPrefix(rel, "..") {
		return nil, fmt.Errorf("blobstore: name %q escapes root", name)
	}

	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("blobstore: %q: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return f, nil
}
