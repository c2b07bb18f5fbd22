package validator_test

import (
	"testing"

	"shop/internal/usecase"
	auth "shop/internal/usecase/auth_usecase"
	"shop/internal/validator"

	"github.com/stretchr/testify/assert"
)

func validRegisterInput() auth.RegisterUserInput {
	return auth.RegisterUserInput{
		FirstName: "Taro",
		LastName:  "Yamada",
		Email:     "taro@example.com",
		Password:  "Str0ng!Pass",
		Phone:     "090-1234-5678",
	}
}

func TestAuthValidator_ValidateRegister_Success(t *testing.T) {
	v := validator.NewAuthValidator()

	err := v.ValidateRegister(validRegisterInput())

	assert.NoError(t, err)
}

func TestAuthValidator_ValidateRegister_PhoneOptional(t *testing.T) {
	v := validator.NewAuthValidator()

	in := validRegisterInput()
	in.Phone = ""

	assert.NoError(t, v.ValidateRegister(in))
}

func TestAuthValidator_ValidateRegister_ShortFirstName(t *testing.T) {
	v := validator.NewAuthValidator()

	in := validRegisterInput()
	in.FirstName = "T"

	err := v.ValidateRegister(in)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Contains(t, he.Message, "first_name")
}

func TestAuthValidator_ValidateRegister_BadEmail(t *testing.T) {
	v := validator.NewAuthValidator()

	in := validRegisterInput()
	in.Email = "not-an-email"

	err := v.ValidateRegister(in)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestAuthValidator_ValidateRegister_WeakPasswords(t *testing.T) {
	v := validator.NewAuthValidator()

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "S1!a"},
		{"no uppercase", "str0ng!pass"},
		{"no lowercase", "STR0NG!PASS"},
		{"no digit", "Strong!Pass"},
		{"no special", "Str0ngPass"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegisterInput()
			in.Password = tc.password

			err := v.ValidateRegister(in)

			he, ok := usecase.AsHTTPError(err)
			assert.True(t, ok)
			assert.Equal(t, 400, he.Status)
		})
	}
}

func TestAuthValidator_ValidateRegister_BadPhone(t *testing.T) {
	v := validator.NewAuthValidator()

	in := validRegisterInput()
	in.Phone = "123"

	err := v.ValidateRegister(in)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestAuthValidator_ValidateLogin_MissingFields(t *testing.T) {
	v := validator.NewAuthValidator()

	err := v.ValidateLogin("", "secret")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestAuthValidator_ValidateLogin_Success(t *testing.T) {
	v := validator.NewAuthValidator()

	assert.NoError(t, v.ValidateLogin("taro@example.com", "whatever"))
}
