package services

import (
	"context"

	"github.com/dmitrijs2005/pocketbank/internal/client/config"
	"github.com/dmitrijs2005/pocketbank/internal/client/models"
	"github.com/dmitrijs2005/pocketbank/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/pocketbank/internal/client/validation"
	"github.com/dmitrijs2005/pocketbank/internal/cryptox"
	"github.com/dmitrijs2005/pocketbank/internal/logging"
	"github.com/shopspring/decimal"
)

// AccountService defines registration and sign-in.
//
// Contract:
//   - Register: validate every field, then store a new account with a zero
//     balance. Returns the stored record.
//   - SignIn: validate the sign-in form, then check the credentials.
//
// Validation failures are *validation.FormError values and nothing is read
// or written.
type AccountService interface {
	Register(ctx context.Context, form validation.AccountForm) (*models.Account, error)
	SignIn(ctx context.Context, form validation.SignInForm) (*models.Account, error)
}

type accountService struct {
	repo            accounts.Repository
	createMode      config.CreateMode
	passwordStorage config.PasswordStorage
	log             logging.Logger
}

func NewAccountService(repo accounts.Repository, cfg *config.Config, log logging.Logger) AccountService {
	return &accountService{
		repo:            repo,
		createMode:      cfg.CreateMode,
		passwordStorage: cfg.PasswordStorage,
		log:             log,
	}
}

func (s *accountService) Register(ctx context.Context, form validation.AccountForm) (*models.Account, error) {
	if _, err := validation.ValidateAccountForm(form); err != nil {
		return nil, err
	}

	a := models.Account{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Aadhar:   form.Aadhar,
		PAN:      form.PAN,
		Password: form.Password,
		Balance:  decimal.Zero,
	}
	if s.passwordStorage == config.PasswordArgon2 {
		a.Password = cryptox.HashPassword([]byte(form.Password))
	}

	var err error
	if s.createMode == config.CreateOverwrite {
		err = s.repo.Save(ctx, a)
	} else {
		err = s.repo.Create(ctx, a)
	}
	if err != nil {
		s.log.Warn(ctx, "registration failed", "email", a.Email, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "account created", "email", a.Email, "mode", s.createMode)
	return &a, nil
}

func (s *accountService) SignIn(ctx context.Context, form validation.SignInForm) (*models.Account, error) {
	if _, err := validation.ValidateSignInForm(form); err != nil {
		return nil, err
	}

	a, err := s.repo.Authenticate(ctx, form.Email, []byte(form.Password))
	if err != nil {
		s.log.Info(ctx, "sign-in rejected", "email", form.Email, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "signed in", "email", a.Email)
	return a, nil
}
