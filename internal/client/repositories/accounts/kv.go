package accounts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/pocketbank/internal/client/models"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/kv"
	"github.com/dmitrijs2005/pocketbank/internal/common"
	"github.com/dmitrijs2005/pocketbank/internal/cryptox"
	"github.com/shopspring/decimal"
)

// KVRepository implements Repository over a kv.Store. The account key is the
// identity itself.
type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Create(ctx context.Context, a models.Account) error {
	existing, err := r.store.Get(ctx, a.Identity())
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", common.ErrDuplicateIdentity, a.Identity())
	}
	return r.Save(ctx, a)
}

func (r *KVRepository) Save(ctx context.Context, a models.Account) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("%w: encode account: %w", common.ErrStorage, err)
	}
	return r.store.Set(ctx, a.Identity(), data)
}

func (r *KVRepository) FindByIdentity(ctx context.Context, id string) (*models.Account, error) {
	data, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var a models.Account
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: decode account %s: %w", common.ErrStorage, id, err)
	}
	return &a, nil
}

func (r *KVRepository) Authenticate(ctx context.Context, id string, password []byte) (*models.Account, error) {
	a, err := r.FindByIdentity(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, common.ErrNotFound
	}

	ok, err := cryptox.VerifyPassword(a.Password, password)
	if err != nil {
		return nil, fmt.Errorf("%w: account %s: %w", common.ErrStorage, id, err)
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}
	return a, nil
}

func (r *KVRepository) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) (*models.Account, error) {
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: negative balance %s", common.ErrInvalidAmount, balance)
	}

	a, err := r.FindByIdentity(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, common.ErrNotFound
	}

	a.Balance = balance
	if err := r.Save(ctx, *a); err != nil {
		return nil, err
	}
	return a, nil
}
