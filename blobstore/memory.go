package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

// Memory is an in-memory Store, mainly for tests and for callers that
// already hold the uploaded bytes.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory creates an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Put stores data under name, replacing any previous content.
func (s *Memory) Put(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.blobs[name] = buf
}

// Open returns a reader over the named blob.
func (s *Memory) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	data, ok := s.blobs[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("blobstore: %q: %w", name, ErrNotFound)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
