package service

import (
	"context"
	"io"
)

// ObjectStorage is a bucket based blob store. Delete returns
// asset.ErrObjectNotFound (possibly wrapped) when the object does not exist.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, name string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, bucket, name string) error
}
