// Package blobstore keeps ciphertext blobs outside the relational store.
package blobstore

import "context"

// Store is implemented by the local, S3 and in-memory backends. Get on a
// missing key returns common.ErrorNotFound; Delete on a missing key is not an
// error.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
