// Package validation contains deterministic, side-effect-free checks for the
// authentication forms: email format, password strength, password match, and
// name presence, plus per-form composites that collect every field error in
// a single pass so the caller can show them all at once.
package validation

import (
	"regexp"
	"strings"
)

// Field names used as keys in Result.Errors.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldName            = "name"
	FieldNewPassword     = "newPassword"
	FieldConfirmPassword = "confirmPassword"
)

// emailRegexp is intentionally permissive: any non-space/non-@ run, a single
// '@', another run, a dot, and a final run. It does not require a TLD of any
// minimum length and does not reject consecutive dots.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result is the outcome of validating a form. Errors holds one message per
// invalid field; keys are present only for fields that failed.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

func newResult(errors map[string]string) Result {
	return Result{IsValid: len(errors) == 0, Errors: errors}
}

// IsValidEmail reports whether s, after trimming, looks like an email
// address. Empty input is invalid.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	return emailRegexp.MatchString(strings.TrimSpace(s))
}

// ValidatePassword checks minimum password length. Returns an error message,
// or "" when the password is acceptable.
func ValidatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long"
	}
	return ""
}

// ValidatePasswordMatch checks that both entries are byte-for-byte equal.
// No trimming, case-sensitive.
func ValidatePasswordMatch(password, confirmPassword string) string {
	if password != confirmPassword {
		return "Passwords do not match"
	}
	return ""
}

// ValidateName checks that the name is present and at least two characters
// after trimming.
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) == 0 {
		return "Name is required"
	}
	if len(trimmed) < 2 {
		return "Name must be at least 2 characters long"
	}
	return ""
}

func checkEmail(email string, errors map[string]string) {
	if strings.TrimSpace(email) == "" {
		errors[FieldEmail] = "Email is required"
	} else if !IsValidEmail(email) {
		errors[FieldEmail] = "Please enter a valid email address"
	}
}

func checkPassword(field, password string, errors map[string]string) {
	if strings.TrimSpace(password) == "" {
		if field == FieldNewPassword {
			errors[field] = "New password is required"
		} else {
			errors[field] = "Password is required"
		}
		return
	}
	if msg := ValidatePassword(password); msg != "" {
		errors[field] = msg
	}
}

// ValidateLoginForm validates the login form fields.
func ValidateLoginForm(email, password string) Result {
	errors := make(map[string]string)
	checkEmail(email, errors)
	checkPassword(FieldPassword, password, errors)
	return newResult(errors)
}

// ValidateSignupForm validates the signup form fields.
func ValidateSignupForm(email, password, name string) Result {
	errors := make(map[string]string)
	checkEmail(email, errors)
	checkPassword(FieldPassword, password, errors)
	if strings.TrimSpace(name) == "" {
		errors[FieldName] = "Name is required"
	} else if msg := ValidateName(name); msg != "" {
		errors[FieldName] = msg
	}
	return newResult(errors)
}

// ValidateForgotPasswordForm validates the forgot-password form.
func ValidateForgotPasswordForm(email string) Result {
	errors := make(map[string]string)
	checkEmail(email, errors)
	return newResult(errors)
}

// ValidateResetPasswordForm validates the reset-password form.
func ValidateResetPasswordForm(newPassword, confirmPassword string) Result {
	errors := make(map[string]string)
	checkPassword(FieldNewPassword, newPassword, errors)
	if strings.TrimSpace(confirmPassword) == "" {
		errors[FieldConfirmPassword] = "Please confirm your password"
	} else if msg := ValidatePasswordMatch(newPassword, confirmPassword); msg != "" {
		errors[FieldConfirmPassword] = msg
	}
	return newResult(errors)
}
