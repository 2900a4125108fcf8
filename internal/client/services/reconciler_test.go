package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/pocketbank/internal/client/models"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/ledger"
	"github.com/dmitrijs2005/pocketbank/internal/common"
	"github.com/dmitrijs2005/pocketbank/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_CleanSessionUsesSnapshot(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	repo := accounts.NewKVRepository(store)
	require.NoError(t, repo.Save(ctx, models.Account{Email: "a@b.com", Balance: decimal.NewFromInt(100)}))

	rec := NewReconciler(store, logging.Nop())
	s := rec.Adopt(ctx, models.Account{Email: "a@b.com", Name: "Handed over", Balance: decimal.NewFromInt(100)})

	d, err := rec.View(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "Handed over", d.Account.Name, "no re-read when clean")
}

func TestView_DirtySessionRefreshes(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	repo := accounts.NewKVRepository(store)
	require.NoError(t, repo.Save(ctx, models.Account{Email: "a@b.com", Balance: decimal.NewFromInt(100)}))

	rec := NewReconciler(store, logging.Nop())
	deposits := NewDepositService(store, fixedClock, logging.Nop())
	s := rec.Adopt(ctx, models.Account{Email: "a@b.com", Balance: decimal.NewFromInt(100)})

	_, err := deposits.Deposit(ctx, s, "50.5")
	require.NoError(t, err)

	d, err := rec.View(ctx, s)
	require.NoError(t, err)
	assert.True(t, d.Account.Balance.Equal(decimal.RequireFromString("150.5")))
	assert.True(t, d.LedgerSum.Equal(decimal.RequireFromString("50.5")))
	require.Len(t, d.History, 1)
	assert.False(t, s.Dirty())
	assert.True(t, s.Account().Balance.Equal(decimal.RequireFromString("150.5")))
}

func TestRefresh_VanishedRecordIsStale(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	rec := NewReconciler(store, logging.Nop())
	s := rec.Adopt(ctx, models.Account{Email: "a@b.com"})

	_, err := rec.Refresh(ctx, s)
	require.ErrorIs(t, err, common.ErrStaleSession)
	assert.False(t, s.Active())

	_, err = rec.View(ctx, s)
	require.ErrorIs(t, err, common.ErrStaleSession)
}

func TestRefresh_WarnsWhenLedgerExceedsBalance(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	repo := accounts.NewKVRepository(store)
	require.NoError(t, repo.Save(ctx, models.Account{Email: "a@b.com", Balance: decimal.NewFromInt(10)}))
	require.NoError(t, ledger.NewKVLedger(store).Append(ctx, "a@b.com",
		models.DepositEntry{Amount: decimal.NewFromInt(40), Timestamp: "t"}))

	log, buf := bufferLogger(t)
	rec := NewReconciler(store, log)
	s := rec.Adopt(ctx, models.Account{Email: "a@b.com"})

	d, err := rec.Refresh(ctx, s)
	require.NoError(t, err)
	assert.True(t, d.LedgerSum.Equal(decimal.NewFromInt(40)))
	assert.Contains(t, buf.String(), "ledger exceeds balance")
}

func TestLogout_KeepsAccountAndHistory(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	repo := accounts.NewKVRepository(store)
	require.NoError(t, repo.Save(ctx, models.Account{Email: "a@b.com", Balance: decimal.NewFromInt(100)}))
	require.NoError(t, store.Set(ctx, LegacySessionKey, []byte(`{"email":"a@b.com"}`)))

	rec := NewReconciler(store, logging.Nop())
	deposits := NewDepositService(store, fixedClock, logging.Nop())
	s := rec.Adopt(ctx, models.Account{Email: "a@b.com", Balance: decimal.NewFromInt(100)})
	_, err := deposits.Deposit(ctx, s, "1")
	require.NoError(t, err)

	require.NoError(t, rec.Logout(ctx, s))
	assert.False(t, s.Active())

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, all, LegacySessionKey)
	assert.Contains(t, all, "a@b.com")
	assert.Contains(t, all, ledger.HistoryKey("a@b.com"))

	require.NoError(t, rec.Logout(ctx, s), "logging out twice is harmless")
}
