package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/pocketbank/internal/client/validation"
	"github.com/dmitrijs2005/pocketbank/internal/common"
)

// Register collects the account form with live validation, creates the
// account and signs the new user in.
func (a *App) Register(ctx context.Context) error {
	var f validation.AccountForm
	var err error

	steps := []struct {
		field  validation.Field
		prompt string
		dst    *string
	}{
		{validation.FieldName, "Full name", &f.Name},
		{validation.FieldEmail, "Email", &f.Email},
		{validation.FieldPhone, "Phone (10 digits)", &f.Phone},
		{validation.FieldAadhar, "Aadhar number (12 digits)", &f.Aadhar},
		{validation.FieldPAN, "PAN (e.g. ABCDE1234F)", &f.PAN},
	}
	for _, s := range steps {
		if *s.dst, err = a.promptField(s.field, s.prompt); err != nil {
			return err
		}
	}
	if f.Password, err = a.promptSecret(validation.FieldPassword, "Password"); err != nil {
		return err
	}

	account, err := a.accounts.Register(ctx, f)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateIdentity):
			a.println("An account with this email already exists.")
		case errors.Is(err, common.ErrValidationFailed):
			a.println("Please fix the highlighted fields:", err)
		default:
			a.println("Failed to create account. Please try again.")
		}
		return err
	}

	a.println("Account created successfully!")
	a.session = a.reconciler.Adopt(ctx, *account)
	return a.Dashboard(ctx)
}

// Login asks for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := a.promptField(validation.FieldSignInEmail, "Email")
	if err != nil {
		return err
	}
	password, err := a.promptSecret(validation.FieldSignInPassword, "Password")
	if err != nil {
		return err
	}

	account, err := a.accounts.SignIn(ctx, validation.SignInForm{Email: email, Password: password})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrInvalidCredentials):
			a.println("Incorrect email or password.")
		default:
			a.println("Login failed. Please try again.")
		}
		return err
	}

	a.session = a.reconciler.Adopt(ctx, *account)
	a.printf("Welcome back, %s!\n", displayName(*account))
	return a.Dashboard(ctx)
}

// Dashboard shows the account, re-reading it first if a deposit happened
// since it was last shown.
func (a *App) Dashboard(ctx context.Context) error {
	d, err := a.reconciler.View(ctx, a.session)
	if err != nil {
		return a.sessionFailure(err)
	}
	renderDashboard(a.out, d)
	return nil
}

// Refresh re-reads the account unconditionally.
func (a *App) Refresh(ctx context.Context) error {
	d, err := a.reconciler.Refresh(ctx, a.session)
	if err != nil {
		return a.sessionFailure(err)
	}
	renderDashboard(a.out, d)
	return nil
}

// Deposit asks for an amount and adds it to the balance.
func (a *App) Deposit(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Amount to deposit (₹)", a.out)
	if err != nil {
		return err
	}

	receipt, err := a.deposits.Deposit(ctx, a.session, raw)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidAmount):
			a.println("Please enter a valid amount greater than 0.")
			return err
		case errors.Is(err, common.ErrStaleSession):
			return a.sessionFailure(err)
		}
		a.println("Deposit failed. Your balance was not changed.")
		return err
	}

	a.printf("Deposited %s. New balance: %s\n", FormatINR(receipt.Entry.Amount), FormatINR(receipt.Account.Balance))
	return a.Dashboard(ctx)
}

// History lists the deposits, most recent first.
func (a *App) History(ctx context.Context) error {
	entries, err := a.deposits.History(ctx, a.session)
	if err != nil {
		if errors.Is(err, common.ErrStaleSession) {
			return a.sessionFailure(err)
		}
		a.println("Could not load deposit history.")
		return err
	}
	renderHistory(a.out, entries)
	return nil
}

// Logout ends the session. Stored data is kept.
func (a *App) Logout(ctx context.Context) error {
	if err := a.reconciler.Logout(ctx, a.session); err != nil {
		a.println("Logout failed. Please try again.")
		return err
	}
	a.session = nil
	a.println("Logged out.")
	return nil
}

// sessionFailure reports a failed dashboard read. A stale session is
// terminal: the user is signed out.
func (a *App) sessionFailure(err error) error {
	if errors.Is(err, common.ErrStaleSession) {
		a.println("User data not found. Please log in again.")
		a.session = nil
		return err
	}
	a.println("Could not load account data.")
	return err
}
