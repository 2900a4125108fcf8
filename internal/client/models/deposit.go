package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DepositEntry is one ledger line. Timestamp is a display string and only
// insertion order is meaningful.
type DepositEntry struct {
	Amount    decimal.Decimal `json:"amount"`
	Timestamp string          `json:"timestamp"`
}

func (e DepositEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount    json.Number `json:"amount"`
		Timestamp string      `json:"timestamp"`
	}{Amount: json.Number(e.Amount.String()), Timestamp: e.Timestamp})
}

// SumDeposits totals the amounts of entries.
func SumDeposits(entries []DepositEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}
