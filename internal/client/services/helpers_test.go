package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/pocketbank/internal/client/database"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/kv"
	"github.com/dmitrijs2005/pocketbank/internal/common"
	"github.com/dmitrijs2005/pocketbank/internal/logging"
	"github.com/dmitrijs2005/pocketbank/internal/timex"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *kv.SQLiteRepository {
	t.Helper()
	db, err := database.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "services.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return kv.NewSQLiteRepository(db)
}

func bufferLogger(t *testing.T) (logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logging.New(&buf, "debug")
	require.NoError(t, err)
	return l, &buf
}

var fixedClock = timex.Fixed(time.Date(2026, 10, 15, 15, 4, 5, 0, time.UTC))

// failSetStore fails every write to failKey, including writes made inside
// Atomically.
type failSetStore struct {
	kv.TxStore
	failKey string
}

func (f *failSetStore) Set(ctx context.Context, key string, value []byte) error {
	if key == f.failKey {
		return fmt.Errorf("%w: disk full", common.ErrStorage)
	}
	return f.TxStore.Set(ctx, key, value)
}

func (f *failSetStore) Atomically(ctx context.Context, fn func(ctx context.Context, s kv.TxStore) error) error {
	return f.TxStore.Atomically(ctx, func(ctx context.Context, tx kv.TxStore) error {
		return fn(ctx, &failSetStore{TxStore: tx, failKey: f.failKey})
	})
}
