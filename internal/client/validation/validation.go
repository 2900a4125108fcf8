// Package validation maps raw form input to a verdict and a status message.
//
// Everything here is pure: Validate is called on every input change and on
// submission, and holds no state between calls. Callers that want to keep
// the latest result per field use Status, which is a value they own.
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Field names a validated input.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldAadhar   Field = "aadhar"
	FieldPAN      Field = "pan"
	FieldPassword Field = "password"

	// Sign-in uses its own, weaker rules and wording.
	FieldSignInEmail    Field = "signin_email"
	FieldSignInPassword Field = "signin_password"
)

// Verdict is the three-way outcome used for live feedback. Only Valid lets a
// form through.
type Verdict int

const (
	Invalid Verdict = iota
	Incomplete
	Valid
)

func (v Verdict) String() string {
	switch v {
	case Invalid:
		return "invalid"
	case Incomplete:
		return "incomplete"
	case Valid:
		return "valid"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// Result is the outcome of validating one field value.
type Result struct {
	Field   Field
	Verdict Verdict
	Message string
	// Remaining is the number of characters still missing for length-gated
	// fields, zero otherwise.
	Remaining int
}

func (r Result) OK() bool { return r.Verdict == Valid }

const (
	phoneLen     = 10
	aadharLen    = 12
	panLen       = 10
	nameMinLen   = 2
	signInMinLen = 6
)

var (
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	digitsOnly = regexp.MustCompile(`^[0-9]*$`)
	panRegex   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// Validate checks raw against the rule for field. It never fails: an unknown
// field is reported as Invalid.
func Validate(field Field, raw string) Result {
	switch field {
	case FieldName:
		return validateName(raw)
	case FieldEmail:
		return validateEmail(raw, "Invalid email format", "Valid email")
	case FieldSignInEmail:
		r := validateEmail(raw, "Complete the email address", "Valid email format")
		r.Field = FieldSignInEmail
		return r
	case FieldPhone:
		return validateDigits(FieldPhone, raw, phoneLen, "Valid phone number")
	case FieldAadhar:
		return validateDigits(FieldAadhar, raw, aadharLen, "Valid Aadhar number")
	case FieldPAN:
		return validatePAN(raw)
	case FieldPassword:
		return validatePassword(raw)
	case FieldSignInPassword:
		return validateSignInPassword(raw)
	}
	return Result{Field: field, Verdict: Invalid, Message: fmt.Sprintf("unknown field %q", field)}
}

func validateName(raw string) Result {
	n := utf8.RuneCountInString(raw)
	switch {
	case n == 0:
		return Result{Field: FieldName, Verdict: Invalid, Message: "Name is required"}
	case n < nameMinLen:
		return Result{Field: FieldName, Verdict: Incomplete, Message: "Name must be at least 2 characters", Remaining: nameMinLen - n}
	}
	return Result{Field: FieldName, Verdict: Valid, Message: "Valid name"}
}

func validateEmail(raw, formatMsg, validMsg string) Result {
	switch {
	case raw == "":
		return Result{Field: FieldEmail, Verdict: Invalid, Message: "Email is required"}
	case !containsAt(raw):
		return Result{Field: FieldEmail, Verdict: Incomplete, Message: "Must include @ symbol"}
	case !emailRegex.MatchString(raw):
		return Result{Field: FieldEmail, Verdict: Invalid, Message: formatMsg}
	}
	return Result{Field: FieldEmail, Verdict: Valid, Message: validMsg}
}

func containsAt(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '@' {
			return true
		}
	}
	return false
}

// validateDigits is the shared policy for phone and Aadhar numbers: digits
// only, counted down to an exact length.
func validateDigits(field Field, raw string, want int, validMsg string) Result {
	if !digitsOnly.MatchString(raw) {
		return Result{Field: field, Verdict: Invalid, Message: "Only numbers allowed"}
	}
	n := len(raw)
	switch {
	case n < want:
		return Result{Field: field, Verdict: Incomplete, Message: fmt.Sprintf("%d digits remaining", want-n), Remaining: want - n}
	case n > want:
		return Result{Field: field, Verdict: Invalid, Message: fmt.Sprintf("Must be exactly %d digits", want)}
	}
	return Result{Field: field, Verdict: Valid, Message: validMsg}
}

func validatePAN(raw string) Result {
	n := utf8.RuneCountInString(raw)
	switch {
	case n < panLen:
		return Result{Field: FieldPAN, Verdict: Incomplete, Message: fmt.Sprintf("%d characters remaining", panLen-n), Remaining: panLen - n}
	case !panRegex.MatchString(raw):
		return Result{Field: FieldPAN, Verdict: Invalid, Message: "Must match format: ABCDE1234F"}
	}
	return Result{Field: FieldPAN, Verdict: Valid, Message: "Valid PAN number"}
}

func validatePassword(raw string) Result {
	s := PasswordStrength(raw)
	r := Result{Field: FieldPassword, Message: s.Message()}
	switch s.Level {
	case VeryStrong:
		r.Verdict = Valid
	case Weak:
		r.Verdict = Invalid
	default:
		r.Verdict = Incomplete
	}
	return r
}

func validateSignInPassword(raw string) Result {
	n := utf8.RuneCountInString(raw)
	switch {
	case n == 0:
		return Result{Field: FieldSignInPassword, Verdict: Invalid, Message: "Password is required"}
	case n < signInMinLen:
		return Result{
			Field:     FieldSignInPassword,
			Verdict:   Incomplete,
			Message:   fmt.Sprintf("%d more characters needed", signInMinLen-n),
			Remaining: signInMinLen - n,
		}
	}
	return Result{Field: FieldSignInPassword, Verdict: Valid, Message: "Password length OK"}
}
