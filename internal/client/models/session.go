package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session holds the signed-in account snapshot. It is never persisted.
//
// The dirty flag means the durable record may be newer than the snapshot,
// e.g. after a deposit; the next dashboard view must re-read it.
type Session struct {
	ID      uuid.UUID
	account *Account
	dirty   bool
}

// NewSession adopts a as the current snapshot.
func NewSession(a Account) *Session {
	return &Session{ID: uuid.New(), account: &a}
}

// Active reports whether the session still holds an account.
func (s *Session) Active() bool { return s != nil && s.account != nil }

// Account returns a copy of the snapshot. It must only be called on an
// active session.
func (s *Session) Account() Account { return *s.account }

func (s *Session) Identity() string {
	if !s.Active() {
		return ""
	}
	return s.account.Email
}

func (s *Session) Dirty() bool { return s.dirty }

func (s *Session) MarkDirty() { s.dirty = true }

// Replace swaps in a freshly read record and clears the dirty flag.
func (s *Session) Replace(a Account) {
	s.account = &a
	s.dirty = false
}

// Clear drops the snapshot; the session becomes inactive.
func (s *Session) Clear() {
	s.account = nil
	s.dirty = false
}

// Dashboard is what the signed-in screen renders.
type Dashboard struct {
	Account Account
	// History is most recent first.
	History   []DepositEntry
	LedgerSum decimal.Decimal
}
