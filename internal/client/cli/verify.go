package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/zapulam/myapp/internal/client/services"
)

// VerifyEmail consumes a verification token (from the emailed link). The
// orchestrator guarantees the token is submitted at most once; repeating the
// command with the same token reprints the cached outcome.
func (a *App) VerifyEmail(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter verification token", os.Stdout)
	if err != nil {
		return err
	}

	state := a.auth.VerifyEmail(ctx, token)
	switch state.Status {
	case services.VerifyNoToken:
		fmt.Println("No verification token provided.")
	case services.VerifySucceeded:
		fmt.Printf("Email %s verified! You can now log in.\n", state.Email)
	case services.VerifyFailed:
		fmt.Println("Verification failed:", state.Err)
	}
	return state.Err
}

// ResendVerification asks the backend to re-send the verification email to
// the address known from a prior signup or verification attempt.
func (a *App) ResendVerification(ctx context.Context) error {
	email, err := a.auth.ResendVerification(ctx)
	if err != nil {
		fmt.Println("Resend failed:", err)
		return err
	}
	fmt.Printf("Verification email sent to %s. Please check your inbox.\n", email)
	return nil
}
