// Package s3 provides an AWS S3-backed blobstore.Store for catalog source
// files.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hanbitlee/catalook/blobstore"
)

// Client is the subset of the S3 API the store uses. Satisfied by
// *s3.Client; kept narrow so tests can stub it.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Store implements blobstore.Store backed by an S3 bucket.
type Store struct {
	client Client
	bucket string
	prefix string
}

// NewStore creates an S3 blob store. rootPrefix is prepended to all names
// (e.g. "catalogs/").
func NewStore(client Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

// NewStoreFromConfig creates a Store using the default AWS configuration
// chain (environment, shared config, instance roles).
func NewStoreFromConfig(ctx context.Context, bucket, rootPrefix string) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3: failed to load AWS config: %w", err)
	}
	return NewStore(s3.NewFromConfig(cfg), bucket, rootPrefix), nil
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open streams the named object.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("s3: %q: %w", name, blobstore.ErrNotFound)
		}
		return nil, err
	}
	return out.Body, nil
}

// Download fetches the named object into w using the concurrent transfer
// manager. Suited to large catalog files where ranged parallel GETs help.
func Download(ctx context.Context, client manager.DownloadAPIClient, bucket, key string, w io.WriterAt) (int64, error) {
	dl := manager.NewDownloader(client)
	n, err := dl.Download(ctx, w, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return 0, fmt.Errorf("s3: %q: %w", key, blobstore.ErrNotFound)
		}
		return 0, err
	}
	return n, nil
}
