// Package kv is the key-value store adapter every other repository is built
// on.
//
// # Data Model
//
// A single SQLite table, kv(key TEXT PRIMARY KEY, value BLOB NOT NULL),
// created by the embedded goose migration. Values are opaque to this
// package; account records and deposit histories are JSON documents encoded
// by their own repositories.
//
// # Errors
//
// Absent keys are not errors: Get returns (nil, nil). Every driver failure is
// wrapped in common.ErrStorage.
//
// # Transactions
//
// SQLiteRepository.Atomically runs a callback inside one SQLite transaction.
// Repositories constructed over the Store handed to the callback share that
// transaction, which is how a deposit updates the balance and the history in
// one write.
//
//	err := store.Atomically(ctx, func(ctx context.Context, tx kv.TxStore) error {
//	    if err := tx.Set(ctx, "a", []byte("1")); err != nil {
//	        return err
//	    }
//	    return tx.Set(ctx, "b", []byte("2"))
//	})
package kv
