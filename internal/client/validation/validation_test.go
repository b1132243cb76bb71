package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"empty", "", false},
		{"plain word", "notanemail", false},
		{"missing at", "user.example.com", false},
		{"no dot after at", "a@b", false},
		{"minimal valid", "a@b.c", true},
		{"typical", "user@example.com", true},
		{"surrounding spaces trimmed", "  user@example.com  ", true},
		{"space inside local part", "us er@example.com", false},
		{"double at", "a@@b.c", false},
		// The pattern is deliberately permissive: no TLD length requirement
		// and no rejection of consecutive dots.
		{"empty host before dot", "a@.com", true},
		{"consecutive dots", "a@b..c", true},
		{"single char tld", "user@host.x", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	require.Equal(t, "Password must be at least 8 characters long", ValidatePassword(""))
	require.Equal(t, "Password must be at least 8 characters long", ValidatePassword("short1"))
	require.Equal(t, "Password must be at least 8 characters long", ValidatePassword("1234567"))
	require.Empty(t, ValidatePassword("12345678"))
	require.Empty(t, ValidatePassword("a much longer password"))
}

func TestValidatePasswordMatch(t *testing.T) {
	require.Empty(t, ValidatePasswordMatch("secret123", "secret123"))
	require.Equal(t, "Passwords do not match", ValidatePasswordMatch("secret123", "Secret123"))
	require.Equal(t, "Passwords do not match", ValidatePasswordMatch("secret123", "secret123 "))
}

func TestValidateName(t *testing.T) {
	require.Equal(t, "Name is required", ValidateName(""))
	require.Equal(t, "Name is required", ValidateName("   "))
	require.Equal(t, "Name must be at least 2 characters long", ValidateName("A"))
	require.Equal(t, "Name must be at least 2 characters long", ValidateName(" A "))
	require.Empty(t, ValidateName("Al"))
	require.Empty(t, ValidateName("Alice Smith"))
}

func TestValidateLoginForm(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		res := ValidateLoginForm("a@b.com", "password1")
		require.True(t, res.IsValid)
		require.Empty(t, res.Errors)
	})

	t.Run("all errors collected, not fail-fast", func(t *testing.T) {
		res := ValidateLoginForm("", "")
		require.False(t, res.IsValid)
		require.Equal(t, "Email is required", res.Errors[FieldEmail])
		require.Equal(t, "Password is required", res.Errors[FieldPassword])
	})

	t.Run("bad format and short password", func(t *testing.T) {
		res := ValidateLoginForm("nope", "short")
		require.False(t, res.IsValid)
		require.Equal(t, "Please enter a valid email address", res.Errors[FieldEmail])
		require.Equal(t, "Password must be at least 8 characters long", res.Errors[FieldPassword])
	})
}

func TestValidateSignupForm(t *testing.T) {
	t.Run("all three fields reported simultaneously", func(t *testing.T) {
		res := ValidateSignupForm("", "", "")
		require.False(t, res.IsValid)
		require.Len(t, res.Errors, 3)
		require.Contains(t, res.Errors, FieldEmail)
		require.Contains(t, res.Errors, FieldPassword)
		require.Contains(t, res.Errors, FieldName)
	})

	t.Run("single-char name", func(t *testing.T) {
		res := ValidateSignupForm("a@b.com", "password1", "X")
		require.False(t, res.IsValid)
		require.Equal(t, "Name must be at least 2 characters long", res.Errors[FieldName])
		require.Len(t, res.Errors, 1)
	})

	t.Run("valid", func(t *testing.T) {
		res := ValidateSignupForm("a@b.com", "password1", "Alice")
		require.True(t, res.IsValid)
	})
}

func TestValidateForgotPasswordForm(t *testing.T) {
	require.False(t, ValidateForgotPasswordForm("").IsValid)
	require.False(t, ValidateForgotPasswordForm("bad").IsValid)
	require.True(t, ValidateForgotPasswordForm("a@b.com").IsValid)
}

func TestValidateResetPasswordForm(t *testing.T) {
	t.Run("mismatch flags only confirm field", func(t *testing.T) {
		res := ValidateResetPasswordForm("abcdefgh", "abcdefgi")
		require.False(t, res.IsValid)
		require.Equal(t, "Passwords do not match", res.Errors[FieldConfirmPassword])
		require.NotContains(t, res.Errors, FieldNewPassword)
		require.Len(t, res.Errors, 1)
	})

	t.Run("both empty", func(t *testing.T) {
		res := ValidateResetPasswordForm("", "")
		require.False(t, res.IsValid)
		require.Equal(t, "New password is required", res.Errors[FieldNewPassword])
		require.Equal(t, "Please confirm your password", res.Errors[FieldConfirmPassword])
	})

	t.Run("short password reported on its own field", func(t *testing.T) {
		res := ValidateResetPasswordForm("short", "short")
		require.False(t, res.IsValid)
		require.Equal(t, "Password must be at least 8 characters long", res.Errors[FieldNewPassword])
		require.NotContains(t, res.Errors, FieldConfirmPassword)
	})

	t.Run("valid", func(t *testing.T) {
		res := ValidateResetPasswordForm("abcdefgh", "abcdefgh")
		require.True(t, res.IsValid)
	})
}
