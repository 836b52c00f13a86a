// Package metadata is the durable key/value store of the client. The
// session keeps its token and serialized user here so they survive restarts.
package metadata

import (
	"context"
)

// Repository is a string-keyed blob store.
//
// Get returns (nil, nil) for an absent key. Delete of an absent key is not
// an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
