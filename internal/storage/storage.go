// Package storage defines the durable key-value contract the form state is
// persisted through. Backends live in subpackages.
package storage

import "context"

// Fixed keys of the two persisted blobs.
const (
	KeyDocument  = "document"
	KeyFormState = "formState"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock.go
type KV interface {
	// Get returns e.ErrNotFound when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
