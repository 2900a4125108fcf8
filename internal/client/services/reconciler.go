package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/pocketbank/internal/client/models"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/kv"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/ledger"
	"github.com/dmitrijs2005/pocketbank/internal/common"
	"github.com/dmitrijs2005/pocketbank/internal/logging"
)

// LegacySessionKey is removed from the store on logout. Nothing reads it.
const LegacySessionKey = "user"

// Reconciler keeps a session snapshot in line with the durable record.
type Reconciler struct {
	store    kv.Store
	accounts accounts.Repository
	ledger   ledger.Ledger
	log      logging.Logger
}

func NewReconciler(store kv.Store, log logging.Logger) *Reconciler {
	return &Reconciler{
		store:    store,
		accounts: accounts.NewKVRepository(store),
		ledger:   ledger.NewKVLedger(store),
		log:      log,
	}
}

// Adopt starts a session from a record just returned by sign-in or
// registration. The record is not re-read.
func (r *Reconciler) Adopt(ctx context.Context, a models.Account) *models.Session {
	s := models.NewSession(a)
	r.log.Info(ctx, "session started", "session", s.ID, "email", a.Email)
	return s
}

// Refresh re-reads the account and its history and replaces the snapshot.
// When the record has vanished the session is cleared and
// common.ErrStaleSession is returned.
func (r *Reconciler) Refresh(ctx context.Context, s *models.Session) (*models.Dashboard, error) {
	if !s.Active() {
		return nil, common.ErrStaleSession
	}
	id := s.Identity()

	a, err := r.accounts.FindByIdentity(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		r.log.Error(ctx, "account record vanished", "session", s.ID, "email", id)
		s.Clear()
		return nil, fmt.Errorf("%w: %s", common.ErrStaleSession, id)
	}
	s.Replace(*a)

	return r.dashboard(ctx, s)
}

// View returns the dashboard, refreshing first only when the session is
// dirty.
func (r *Reconciler) View(ctx context.Context, s *models.Session) (*models.Dashboard, error) {
	if !s.Active() {
		return nil, common.ErrStaleSession
	}
	if s.Dirty() {
		return r.Refresh(ctx, s)
	}
	return r.dashboard(ctx, s)
}

// Logout ends the session. Account and history stay in the store.
func (r *Reconciler) Logout(ctx context.Context, s *models.Session) error {
	if err := r.store.Remove(ctx, LegacySessionKey); err != nil {
		return err
	}
	if s.Active() {
		r.log.Info(ctx, "session ended", "session", s.ID, "email", s.Identity())
		s.Clear()
	}
	return nil
}

func (r *Reconciler) dashboard(ctx context.Context, s *models.Session) (*models.Dashboard, error) {
	a := s.Account()

	entries, err := r.ledger.Entries(ctx, a.Email)
	if err != nil {
		return nil, err
	}
	sum := models.SumDeposits(entries)

	// Deposits start from a zero balance and nothing else moves money, so
	// the history can never add up to more than the balance.
	if sum.GreaterThan(a.Balance) {
		r.log.Warn(ctx, "ledger exceeds balance", "session", s.ID, "email", a.Email,
			"balance", a.Balance.String(), "ledger_sum", sum.String())
	}

	slices.Reverse(entries)
	return &models.Dashboard{Account: a, History: entries, LedgerSum: sum}, nil
}
