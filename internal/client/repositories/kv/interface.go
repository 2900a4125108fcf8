package kv

import (
	"context"
)

// Store is an untyped key-value store: string keys, opaque byte values.
// It has no indexing; callers own the key scheme and the value encoding.
type Store interface {
	// Get returns the value stored at key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value at key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// List returns every key with its value.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error
}

// TxStore is a Store that can group several writes so that they are applied
// together or not at all.
type TxStore interface {
	Store

	// Atomically runs fn with a Store whose writes become visible only if fn
	// returns nil. An error from fn is returned unchanged; failures of the
	// transaction itself are wrapped in common.ErrStorage. Calling
	// Atomically on the Store handed to fn joins the running transaction.
	Atomically(ctx context.Context, fn func(ctx context.Context, s TxStore) error) error
}
