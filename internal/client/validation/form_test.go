package validation

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/pocketbank/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() AccountForm {
	return AccountForm{
		Name:     "Asha Rao",
		Email:    "a@b.com",
		Phone:    "9876543210",
		Aadhar:   "123412341234",
		PAN:      "ABCDE1234F",
		Password: "Abcdef1!",
	}
}

func TestValidateAccountForm_Valid(t *testing.T) {
	s, err := ValidateAccountForm(validForm())
	require.NoError(t, err)
	assert.Len(t, s, 6)
	assert.Empty(t, s.Failed())
}

func TestValidateAccountForm_BlocksOnAnyField(t *testing.T) {
	f := validForm()
	f.Phone = "98765"
	f.PAN = "abcde1234f"

	s, err := ValidateAccountForm(f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidationFailed))

	var fe *FormError
	require.ErrorAs(t, err, &fe)
	failed := fe.Status.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, FieldPhone, failed[0].Field)
	assert.Equal(t, FieldPAN, failed[1].Field)
	assert.Equal(t, s, fe.Status)
	assert.Contains(t, err.Error(), "phone: 5 digits remaining")
	assert.Contains(t, err.Error(), "pan: Must match format: ABCDE1234F")
}

func TestValidateAccountForm_MediumPasswordBlocks(t *testing.T) {
	f := validForm()
	f.Password = "Password1"

	_, err := ValidateAccountForm(f)
	require.ErrorIs(t, err, common.ErrValidationFailed)
}

func TestValidateSignInForm(t *testing.T) {
	_, err := ValidateSignInForm(SignInForm{Email: "a@b.com", Password: "wrong!"})
	require.NoError(t, err, "six characters of anything pass")

	_, err = ValidateSignInForm(SignInForm{Email: "a@b.com", Password: "wrong"})
	require.ErrorIs(t, err, common.ErrValidationFailed)

	_, err = ValidateSignInForm(SignInForm{Email: "a@b", Password: "Abcdef1!"})
	require.ErrorIs(t, err, common.ErrValidationFailed)
}

func TestStatus_WithIsPure(t *testing.T) {
	var s Status
	s1 := s.With(FieldPhone, "98")
	s2 := s1.With(FieldPhone, "9876543210")

	assert.Nil(t, s)
	assert.Equal(t, Incomplete, s1[FieldPhone].Verdict, "earlier status is not mutated")
	assert.Equal(t, Valid, s2[FieldPhone].Verdict)

	s3 := s2.With(FieldEmail, "x")
	assert.Len(t, s2, 1)
	assert.Len(t, s3, 2)
}
