// Package ledger keeps the append-only deposit history of each account.
//
// The whole history of one account is a JSON array stored under
// HistoryKey(identity), separate from the account record. Entries are kept
// in insertion order; List reverses them for display.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/pocketbank/internal/client/models"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/kv"
	"github.com/dmitrijs2005/pocketbank/internal/common"
	"github.com/shopspring/decimal"
)

const historySuffix = "_deposit_history"

// HistoryKey returns the storage key of the deposit history for identity.
func HistoryKey(identity string) string {
	return identity + historySuffix
}

// Ledger is the per-account deposit history.
type Ledger interface {
	// Append adds entry after the existing ones. Non-positive amounts are
	// rejected with common.ErrInvalidAmount.
	Append(ctx context.Context, identity string, entry models.DepositEntry) error

	// List returns the history most recent first. It is empty, not an error,
	// for an account without deposits.
	List(ctx context.Context, identity string) ([]models.DepositEntry, error)

	// Entries returns the history in insertion order.
	Entries(ctx context.Context, identity string) ([]models.DepositEntry, error)

	// Sum totals every amount in the history.
	Sum(ctx context.Context, identity string) (decimal.Decimal, error)
}

// KVLedger implements Ledger over a kv.Store.
type KVLedger struct {
	store kv.Store
}

func NewKVLedger(store kv.Store) *KVLedger {
	return &KVLedger{store: store}
}

func (l *KVLedger) Append(ctx context.Context, identity string, entry models.DepositEntry) error {
	if !entry.Amount.IsPositive() {
		return fmt.Errorf("%w: %s", common.ErrInvalidAmount, entry.Amount)
	}

	entries, err := l.Entries(ctx, identity)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: encode history: %w", common.ErrStorage, err)
	}
	return l.store.Set(ctx, HistoryKey(identity), data)
}

func (l *KVLedger) Entries(ctx context.Context, identity string) ([]models.DepositEntry, error) {
	data, err := l.store.Get(ctx, HistoryKey(identity))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []models.DepositEntry{}, nil
	}

	var entries []models.DepositEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode history of %s: %w", common.ErrStorage, identity, err)
	}
	if entries == nil {
		entries = []models.DepositEntry{}
	}
	return entries, nil
}

func (l *KVLedger) List(ctx context.Context, identity string) ([]models.DepositEntry, error) {
	entries, err := l.Entries(ctx, identity)
	if err != nil {
		return nil, err
	}
	slices.Reverse(entries)
	return entries, nil
}

func (l *KVLedger) Sum(ctx context.Context, identity string) (decimal.Decimal, error) {
	entries, err := l.Entries(ctx, identity)
	if err != nil {
		return decimal.Zero, err
	}
	return models.SumDeposits(entries), nil
}
