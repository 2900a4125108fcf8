package validation

import (
	"strings"
	"unicode/utf8"
)

// Level buckets a password strength score.
type Level int

const (
	Weak Level = iota
	Medium
	Strong
	VeryStrong
)

func (l Level) String() string {
	switch l {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	}
	return "Very strong"
}

// Requirement names, in the order they are checked and reported.
const (
	ReqLength    = "8+ characters"
	ReqUppercase = "uppercase"
	ReqLowercase = "lowercase"
	ReqNumber    = "number"
	ReqSymbol    = "special char"
)

const passwordMinLen = 8

// Strength is a password score from 0 to 5 with the requirements it misses.
type Strength struct {
	Score   int
	Missing []string
	Level   Level
}

// Message is the live status line, e.g. "Medium: need uppercase, number".
func (s Strength) Message() string {
	if s.Level == VeryStrong {
		return s.Level.String()
	}
	return s.Level.String() + ": need " + strings.Join(s.Missing, ", ")
}

// PasswordStrength scores pw one point each for length, an ASCII upper-case
// letter, an ASCII lower-case letter, a digit and any other character.
func PasswordStrength(pw string) Strength {
	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	checks := []struct {
		ok   bool
		name string
	}{
		{utf8.RuneCountInString(pw) >= passwordMinLen, ReqLength},
		{upper, ReqUppercase},
		{lower, ReqLowercase},
		{digit, ReqNumber},
		{symbol, ReqSymbol},
	}

	var s Strength
	for _, c := range checks {
		if c.ok {
			s.Score++
		} else {
			s.Missing = append(s.Missing, c.name)
		}
	}

	switch {
	case s.Score < 2:
		s.Level = Weak
	case s.Score < 4:
		s.Level = Medium
	case s.Score < 5:
		s.Level = Strong
	default:
		s.Level = VeryStrong
	}
	return s
}
