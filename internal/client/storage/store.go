// Package storage provides the durable key-value store used for the
// persisted session. The capability is a small interface with exactly one
// implementation selected at startup; call sites never branch on the host
// environment.
package storage

import "context"

// Store is a durable key-value store for opaque byte values.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Delete is idempotent.
//   - SetAll and DeleteAll apply all entries atomically, so related keys
//     (the credential pair) can never diverge.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	SetAll(ctx context.Context, entries map[string][]byte) error
	DeleteAll(ctx context.Context, keys ...string) error
	Close() error
}
