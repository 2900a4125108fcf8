// Package models defines the client-side data models: stored account
// records, ledger entries and the in-memory session.
package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Account is the stored account record, keyed by Email.
//
// The JSON form is the storage format: fields name, email, phone, aadhar,
// pan, password, balance, with balance as a JSON number. A missing balance
// decodes as zero.
type Account struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Aadhar string `json:"aadhar"`
	PAN    string `json:"pan"`

	// Password is either plaintext or an argon2id hash, see cryptox.
	Password string `json:"password"`

	Balance decimal.Decimal `json:"balance"`
}

// Identity returns the account key.
func (a Account) Identity() string { return a.Email }

func (a Account) MarshalJSON() ([]byte, error) {
	type plain Account
	return json.Marshal(struct {
		plain
		Balance json.Number `json:"balance"`
	}{plain: plain(a), Balance: json.Number(a.Balance.String())})
}
