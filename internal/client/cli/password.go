package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/zapulam/myapp/internal/client/validation"
	"github.com/zapulam/myapp/internal/common"
)

// ForgotPassword requests a password-reset email for the entered address.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if res := validation.ValidateForgotPasswordForm(email); !res.IsValid {
		PrintValidationErrors(res, os.Stdout)
		return nil
	}

	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		fmt.Println("Request failed:", err)
		return err
	}

	fmt.Printf("If an account exists for %s, a reset link has been sent.\n", email)
	return nil
}

// ResetPassword submits a new password under a reset token (from the emailed
// link). An empty token fails before any prompt for the new password reaches
// the network.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}

	newPassword, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if res := validation.ValidateResetPasswordForm(string(newPassword), string(confirm)); !res.IsValid {
		PrintValidationErrors(res, os.Stdout)
		return nil
	}

	if err := a.auth.ResetPassword(ctx, token, string(newPassword)); err != nil {
		fmt.Println("Password reset failed:", err)
		return err
	}

	fmt.Println("Password reset complete. You can now log in with your new password.")
	return nil
}
