package accounts

import (
	"context"

	"github.com/dmitrijs2005/pocketbank/internal/client/models"
	"github.com/shopspring/decimal"
)

// Repository stores account records keyed by identity (the email address).
type Repository interface {
	// Create writes a new record. It fails with common.ErrDuplicateIdentity
	// when a record already exists at a.Email.
	Create(ctx context.Context, a models.Account) error

	// Save writes a unconditionally, replacing any prior record.
	Save(ctx context.Context, a models.Account) error

	// FindByIdentity returns the record stored for id, or (nil, nil) when
	// there is none.
	FindByIdentity(ctx context.Context, id string) (*models.Account, error)

	// Authenticate returns the record for id when password matches.
	// It fails with common.ErrNotFound or common.ErrInvalidCredentials.
	Authenticate(ctx context.Context, id string, password []byte) (*models.Account, error)

	// UpdateBalance rewrites the record for id with a new balance and returns
	// the stored result.
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) (*models.Account, error)
}
