package validation

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pocketbank/internal/common"
)

// Status is the caller-owned map of the latest result per field.
type Status map[Field]Result

// With returns a copy of s with field re-validated against raw.
func (s Status) With(field Field, raw string) Status {
	next := make(Status, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[field] = Validate(field, raw)
	return next
}

// Failed lists the results that are not Valid, in form order.
func (s Status) Failed() []Result {
	var failed []Result
	for _, f := range fieldOrder {
		if r, ok := s[f]; ok && !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}

var fieldOrder = []Field{
	FieldName, FieldEmail, FieldPhone, FieldAadhar, FieldPAN, FieldPassword,
	FieldSignInEmail, FieldSignInPassword,
}

// FormError blocks a submission. It matches common.ErrValidationFailed.
type FormError struct {
	Status Status
}

func (e *FormError) Error() string {
	failed := e.Status.Failed()
	parts := make([]string, 0, len(failed))
	for _, r := range failed {
		parts = append(parts, fmt.Sprintf("%s: %s", r.Field, r.Message))
	}
	return fmt.Sprintf("%s: %s", common.ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *FormError) Unwrap() error { return common.ErrValidationFailed }

// AccountForm is the raw registration input.
type AccountForm struct {
	Name     string
	Email    string
	Phone    string
	Aadhar   string
	PAN      string
	Password string
}

// SignInForm is the raw sign-in input.
type SignInForm struct {
	Email    string
	Password string
}

// ValidateAccountForm validates every registration field. The error is a
// *FormError when any field is not Valid.
func ValidateAccountForm(f AccountForm) (Status, error) {
	s := Status{}.
		With(FieldName, f.Name).
		With(FieldEmail, f.Email).
		With(FieldPhone, f.Phone).
		With(FieldAadhar, f.Aadhar).
		With(FieldPAN, f.PAN).
		With(FieldPassword, f.Password)
	return s, s.err()
}

// ValidateSignInForm validates sign-in input: email format and a password of
// at least six characters.
func ValidateSignInForm(f SignInForm) (Status, error) {
	s := Status{}.
		With(FieldSignInEmail, f.Email).
		With(FieldSignInPassword, f.Password)
	return s, s.err()
}

func (s Status) err() error {
	if len(s.Failed()) == 0 {
		return nil
	}
	return &FormError{Status: s}
}
