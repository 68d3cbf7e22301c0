// Package metadata is a key/value repository over the client's local
// database. Credential and preference stores are built on top of it.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the value for key, or nil when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
