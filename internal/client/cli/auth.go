package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/zapulam/myapp/internal/client/session"
	"github.com/zapulam/myapp/internal/client/validation"
	"github.com/zapulam/myapp/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, validates them locally, and authenticates.
// Validation failures print every field error at once and do not touch the
// network. On success the session is persisted and the prompt shows the
// user's email. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if res := validation.ValidateLoginForm(email, string(password)); !res.IsValid {
		PrintValidationErrors(res, os.Stdout)
		return nil
	}

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println("Login failed:", err)
		return err
	}

	a.loggedIn = true
	a.userEmail = user.Email
	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

// Register prompts for the signup fields and creates an account. No session
// is established: the user must verify their email first, and the REPL keeps
// the submitted address for the resend command.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if res := validation.ValidateSignupForm(email, string(password), name); !res.IsValid {
		PrintValidationErrors(res, os.Stdout)
		return nil
	}

	if _, err := a.auth.Signup(ctx, email, name, string(password)); err != nil {
		fmt.Println("Signup failed:", err)
		return err
	}

	fmt.Printf("Account created! A verification link was sent to %s.\n", email)
	fmt.Println("Use 'verify' once you have the token, or 'resend' to request another email.")
	return nil
}

// Logout clears the persisted session. Both slots are attempted even when
// one delete fails; the only recovery for a reported failure is retrying.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}
	a.loggedIn = false
	a.userEmail = ""
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the persisted session: the cached user if present, and the
// token expiry when the token carries one. A token with no cached user is
// reported as such rather than treated as an error.
func (a *App) Whoami(ctx context.Context) error {
	token, err := a.auth.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		fmt.Println("Not logged in.")
		return nil
	}

	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Logged in (profile not cached).")
	} else {
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		if !user.IsActive {
			fmt.Println("Account is inactive.")
		}
	}

	a.printTokenExpiry(token)
	return nil
}

func (a *App) printTokenExpiry(token string) {
	if exp, ok := session.TokenExpiry(token); ok {
		fmt.Printf("Session expires %s\n", exp.Local().Format(time.RFC1123))
	}
}

// Ping probes the backend.
func (a *App) Ping(ctx context.Context) error {
	if err := a.auth.Ping(ctx); err != nil {
		fmt.Println("Server unreachable:", err)
		return err
	}
	fmt.Println("Server is up.")
	return nil
}
