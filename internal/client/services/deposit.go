package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pocketbank/internal/client/models"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/kv"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/ledger"
	"github.com/dmitrijs2005/pocketbank/internal/common"
	"github.com/dmitrijs2005/pocketbank/internal/logging"
	"github.com/dmitrijs2005/pocketbank/internal/timex"
	"github.com/shopspring/decimal"
)

// DepositService records deposits for the signed-in account.
type DepositService struct {
	store kv.TxStore
	clock timex.Clock
	log   logging.Logger
}

func NewDepositService(store kv.TxStore, clock timex.Clock, log logging.Logger) *DepositService {
	return &DepositService{store: store, clock: clock, log: log}
}

const (
	maxAmountInput = 32
	amountPlaces   = 2
)

// maxDeposit is the exclusive upper bound of a single deposit.
var maxDeposit = decimal.New(1, 12)

// ParseAmount reads a deposit amount typed by the user: plain decimal
// notation, positive, at most two decimal places and below maxDeposit.
// Anything else fails with common.ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if len(s) > maxAmountInput || strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("%w: %q", common.ErrInvalidAmount, raw)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", common.ErrInvalidAmount, raw)
	}
	switch {
	case !amount.IsPositive():
		return decimal.Zero, fmt.Errorf("%w: must be greater than zero", common.ErrInvalidAmount)
	case !amount.Equal(amount.Truncate(amountPlaces)):
		return decimal.Zero, fmt.Errorf("%w: at most %d decimal places", common.ErrInvalidAmount, amountPlaces)
	case amount.GreaterThanOrEqual(maxDeposit):
		return decimal.Zero, fmt.Errorf("%w: must be less than %s", common.ErrInvalidAmount, maxDeposit)
	}
	return amount, nil
}

// Receipt is the outcome of a stored deposit.
type Receipt struct {
	Account models.Account
	Entry   models.DepositEntry
}

// Deposit adds rawAmount to the session's account. The history entry and the
// new balance are written in one transaction; the balance is computed from
// the stored record, not from the snapshot. On success the session is marked
// dirty and the updated record is returned with the stored entry.
func (d *DepositService) Deposit(ctx context.Context, s *models.Session, rawAmount string) (*Receipt, error) {
	if !s.Active() {
		return nil, common.ErrStaleSession
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	id := s.Identity()
	entry := models.DepositEntry{Amount: amount, Timestamp: timex.Display(d.clock.Now())}

	var updated *models.Account
	err = d.store.Atomically(ctx, func(ctx context.Context, tx kv.TxStore) error {
		repo := accounts.NewKVRepository(tx)

		current, err := repo.FindByIdentity(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("%w: %s", common.ErrStaleSession, id)
		}

		if err := ledger.NewKVLedger(tx).Append(ctx, id, entry); err != nil {
			return err
		}

		updated, err = repo.UpdateBalance(ctx, id, current.Balance.Add(amount))
		return err
	})
	if err != nil {
		d.log.Error(ctx, "deposit failed", "session", s.ID, "email", id, "amount", amount.String(), "error", err)
		return nil, err
	}

	s.MarkDirty()
	d.log.Info(ctx, "deposit stored", "session", s.ID, "email", id,
		"amount", amount.String(), "balance", updated.Balance.String())
	return &Receipt{Account: *updated, Entry: entry}, nil
}

// History returns the session account's deposits, most recent first.
func (d *DepositService) History(ctx context.Context, s *models.Session) ([]models.DepositEntry, error) {
	if !s.Active() {
		return nil, common.ErrStaleSession
	}
	return ledger.NewKVLedger(d.store).List(ctx, s.Identity())
}
