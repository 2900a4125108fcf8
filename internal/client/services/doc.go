// Package services contains the application services the CLI calls.
//
//   - AccountService validates and stores new accounts and signs users in.
//   - DepositService records deposits and reads the deposit history.
//   - Reconciler owns the session snapshot: it adopts accounts handed over
//     from sign-in or registration, re-reads them after a deposit and ends
//     the session on logout.
//
// Services return the sentinel errors of internal/common, wrapped; callers
// match them with errors.Is.
package services
