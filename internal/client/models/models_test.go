package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_JSONUsesStorageFieldNames(t *testing.T) {
	a := Account{
		Name: "Asha", Email: "a@b.com", Phone: "9876543210", Aadhar: "123412341234",
		PAN: "ABCDE1234F", Password: "Abcdef1!", Balance: decimal.RequireFromString("150.5"),
	}

	b, err := json.Marshal(a)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Len(t, raw, 7)
	assert.Equal(t, "a@b.com", raw["email"])
	assert.Equal(t, "ABCDE1234F", raw["pan"])
	assert.Equal(t, 150.5, raw["balance"], "balance is a JSON number, not a string")
}

func TestAccount_DecodesRecordWithoutBalance(t *testing.T) {
	// Records written by account creation carry no balance field.
	in := `{"name":"Asha","email":"a@b.com","phone":"9876543210","aadhar":"123412341234","pan":"ABCDE1234F","password":"Abcdef1!"}`

	var a Account
	require.NoError(t, json.Unmarshal([]byte(in), &a))
	assert.True(t, a.Balance.IsZero())
	assert.Equal(t, "a@b.com", a.Identity())
}

func TestAccount_DecodesNumericAndQuotedBalance(t *testing.T) {
	var a Account
	require.NoError(t, json.Unmarshal([]byte(`{"email":"x@y.io","balance":175.5}`), &a))
	assert.True(t, a.Balance.Equal(decimal.RequireFromString("175.5")))

	require.NoError(t, json.Unmarshal([]byte(`{"email":"x@y.io","balance":"12.25"}`), &a))
	assert.True(t, a.Balance.Equal(decimal.RequireFromString("12.25")))
}

func TestDepositEntry_JSON(t *testing.T) {
	history := []DepositEntry{
		{Amount: decimal.RequireFromString("50.5"), Timestamp: "10/15/2026, 3:04:05 PM"},
		{Amount: decimal.NewFromInt(25), Timestamp: "10/15/2026, 3:05:00 PM"},
	}
	b, err := json.Marshal(history)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"amount":50.5,"timestamp":"10/15/2026, 3:04:05 PM"},{"amount":25,"timestamp":"10/15/2026, 3:05:00 PM"}]`, string(b))

	var back []DepositEntry
	require.NoError(t, json.Unmarshal(b, &back))
	require.Len(t, back, 2)
	assert.True(t, back[0].Amount.Equal(history[0].Amount))
}

func TestSumDeposits(t *testing.T) {
	assert.True(t, SumDeposits(nil).IsZero())
	sum := SumDeposits([]DepositEntry{
		{Amount: decimal.RequireFromString("0.1")},
		{Amount: decimal.RequireFromString("0.2")},
	})
	assert.True(t, sum.Equal(decimal.RequireFromString("0.3")), "decimal arithmetic, no float drift")
}

func TestSession_Lifecycle(t *testing.T) {
	s := NewSession(Account{Email: "a@b.com", Balance: decimal.NewFromInt(100)})
	require.True(t, s.Active())
	assert.Equal(t, "a@b.com", s.Identity())
	assert.False(t, s.Dirty())

	s.MarkDirty()
	assert.True(t, s.Dirty())

	s.Replace(Account{Email: "a@b.com", Balance: decimal.NewFromInt(150)})
	assert.False(t, s.Dirty())
	assert.True(t, s.Account().Balance.Equal(decimal.NewFromInt(150)))

	snap := s.Account()
	snap.Balance = decimal.Zero
	assert.True(t, s.Account().Balance.Equal(decimal.NewFromInt(150)), "Account returns a copy")

	s.Clear()
	assert.False(t, s.Active())
	assert.Equal(t, "", s.Identity())

	var nilSession *Session
	assert.False(t, nilSession.Active())
}
