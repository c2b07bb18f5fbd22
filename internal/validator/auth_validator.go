package validator

import (
	"net/http"
	"regexp"
	"strings"

	"shop/internal/usecase"
	auth "shop/internal/usecase/auth_usecase"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z\x{00C0}-\x{024F} '-]{2,50}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-() ]{10,15}$`)
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() auth.AuthValidator {
	return &authValidator{}
}

// サインアップの入力を検証
func (v *authValidator) ValidateRegister(in auth.RegisterUserInput) error {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if !nameRe.MatchString(first) {
		return usecase.NewHTTPError(http.StatusBadRequest, "first_name must be 2-50 letters")
	}
	if !nameRe.MatchString(last) {
		return usecase.NewHTTPError(http.StatusBadRequest, "last_name must be 2-50 letters")
	}
	if !emailRe.MatchString(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid email format")
	}
	if err := validatePasswordStrength(in.Password); err != nil {
		return err
	}

	// 電話番号は任意入力
	if phone != "" && !phoneRe.MatchString(phone) {
		return usecase.NewHTTPError(http.StatusBadRequest, "phone must be 10-15 digits")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(email string, password string) error {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}
	if !emailRe.MatchString(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid email format")
	}

	return nil
}

// パスワードは8文字以上で大文字・小文字・数字・記号を各1つ以上
func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return usecase.NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return usecase.NewHTTPError(http.StatusBadRequest,
			"password must contain uppercase, lowercase, number and special character")
	}

	return nil
}
