// Package blobstore holds raw file bytes behind a small interface so the
// metadata layer only ever sees opaque keys. The local-disk store is the
// default; an S3-compatible store can be selected through configuration.
package blobstore

import "context"

type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}
