package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		pw      string
		score   int
		level   Level
		missing []string
	}{
		{"Passw0rd!", 5, VeryStrong, nil},
		{"Abcdef1!", 5, VeryStrong, nil},
		{"password", 2, Medium, []string{ReqUppercase, ReqNumber, ReqSymbol}},
		{"pass", 1, Weak, []string{ReqLength, ReqUppercase, ReqNumber, ReqSymbol}},
		{"", 0, Weak, []string{ReqLength, ReqUppercase, ReqLowercase, ReqNumber, ReqSymbol}},
		{"PASSWORD1", 3, Medium, []string{ReqLowercase, ReqSymbol}},
		{"Password1", 4, Strong, []string{ReqSymbol}},
		{"pass word", 3, Medium, []string{ReqUppercase, ReqNumber}},
		{"ÄÖÜäöüßé", 2, Medium, []string{ReqUppercase, ReqLowercase, ReqNumber}},
	}
	for _, tc := range tests {
		t.Run(tc.pw, func(t *testing.T) {
			s := PasswordStrength(tc.pw)
			assert.Equal(t, tc.score, s.Score)
			assert.Equal(t, tc.level, s.Level)
			assert.Equal(t, tc.missing, s.Missing)
		})
	}
}

func TestStrength_Message(t *testing.T) {
	assert.Equal(t, "Very strong", PasswordStrength("Passw0rd!").Message())
	assert.Equal(t, "Weak: need 8+ characters, uppercase, number, special char", PasswordStrength("pass").Message())
	assert.Equal(t, "Strong: need special char", PasswordStrength("Password1").Message())
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "Weak", Weak.String())
	assert.Equal(t, "Medium", Medium.String())
	assert.Equal(t, "Strong", Strong.String())
	assert.Equal(t, "Very strong", VeryStrong.String())
}
