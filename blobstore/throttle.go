package blobstore

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// Throttled wraps a Store and limits read throughput to bytesPerSec across
// all blobs opened through it. Useful when catalog files are fetched from
// shared object storage and downloads must not saturate the link.
func Throttled(inner Store, bytesPerSec int) Store {
	if bytesPerSec <= 0 {
		return inner
	}
	return &throttledStore{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec),
	}
}

type throttledStore struct {
	inner   Store
	limiter *rate.Limiter
}

func (s *throttledStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &throttledReader{rc: rc, limiter: s.limiter, ctx: ctx}, nil
}

type throttledReader struct {
	rc      io.ReadCloser
	limiter *rate.Limiter
	ctx     context.Context
}

func (r *throttledReader) Read(p []byte) (int, error) {
	// Cap a single wait at the limiter burst so large buffers cannot
	// request more tokens than the bucket can ever hold.
	burst := r.limiter.Burst()
	if len(p) > burst {
		p = p[:burst]
	}

	n, err := r.rc.Read(p)
	if n > 0 {
		if werr := r.limiter.WaitN(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

func (r *throttledReader) Close() error {
	return r.rc.Close()
}
