// Package services contains the application services for the myapp client.
// This file defines the authentication orchestrator: it sequences one
// user-initiated intent (login, signup, password reset, verification) through
// its network round trip(s), updates the persisted session, and reports a
// terminal outcome. One operation is in flight at a time; the caller is
// expected to disable the trigger while a call runs.
package services

import (
	"context"
	"fmt"

	"github.com/zapulam/myapp/internal/client/api"
	"github.com/zapulam/myapp/internal/client/models"
	"github.com/zapulam/myapp/internal/client/session"
	"github.com/zapulam/myapp/internal/logging"
)

// AuthService defines the authentication operations for the client.
//
// Contract:
//   - Login: authenticate, then fetch and cache the user profile.
//   - Signup: create an account; no session is established until the email
//     is verified.
//   - ForgotPassword / ResetPassword: the password-reset flow.
//   - VerifyEmail / VerificationState / ResendVerification: the email
//     verification flow; VerifyEmail runs at most once per token.
//   - Logout: best-effort clear of both session slots.
//   - CurrentUser / Token: read the persisted session.
//   - Ping: backend liveness probe.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, email, name, password string) (*models.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	VerifyEmail(ctx context.Context, token string) VerifyState
	VerificationState() VerifyState
	ResendVerification(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Token(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote API client and
// the durable session store.
type authService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger

	// pendingEmail is the address awaiting verification, captured from the
	// last signup or from a successful verify-email response. Used by
	// ResendVerification.
	pendingEmail string

	verify VerifyState
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// Login authenticates and establishes a session. The two network calls are
// strictly sequential: authenticate, then fetch the profile with the fresh
// token. The token is persisted before the profile fetch is attempted, so a
// failure between the two calls leaves a token with no cached user; callers
// must tolerate CurrentUser returning nil alongside a valid token.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	auth, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, classifyLoginError(err)
	}

	if err := a.store.SetToken(ctx, auth.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	user, err := a.client.CurrentUser(ctx, auth.AccessToken)
	if err != nil {
		a.log.Warn(ctx, "profile fetch failed after login, token kept", "email", email)
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}

	if err := a.store.SetUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	a.log.Info(ctx, "login succeeded", "email", user.Email)
	return user, nil
}

// Signup creates a new account. No session is created: the account requires
// email verification before the first login. The submitted email is recorded
// for ResendVerification.
func (a *authService) Signup(ctx context.Context, email, name, password string) (*models.User, error) {
	user, err := a.client.Signup(ctx, email, name, password)
	if err != nil {
		return nil, err
	}
	a.pendingEmail = email
	a.log.Info(ctx, "signup succeeded, verification pending", "email", email)
	return user, nil
}

// ForgotPassword requests a password-reset email. No session change.
func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	if _, err := a.client.ForgotPassword(ctx, email); err != nil {
		return err
	}
	return nil
}

// ResetPassword submits a new password under a reset token obtained from the
// deep-link mechanism. An absent token fails fast without a network call.
func (a *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrMissingResetToken
	}
	if _, err := a.client.ResetPassword(ctx, token, newPassword); err != nil {
		return err
	}
	return nil
}

// ResendVerification asks the backend to re-send the verification email to
// the address known from a prior signup or verification. Fails fast when no
// address is known.
func (a *authService) ResendVerification(ctx context.Context) (string, error) {
	if a.pendingEmail == "" {
		return "", ErrEmailNotFound
	}
	if _, err := a.client.ResendVerification(ctx, a.pendingEmail); err != nil {
		return "", err
	}
	return a.pendingEmail, nil
}

// Logout clears both session slots. The deletes are independent and both are
// always attempted; any failure is surfaced but there is no partial-recovery
// action beyond retrying logout.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.ClearAuth(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// CurrentUser returns the cached user record, or nil when none is stored.
// A nil user does not imply an absent token; see Login.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return a.store.User(ctx)
}

// Token returns the persisted bearer token, or "" when none is stored.
func (a *authService) Token(ctx context.Context) (string, error) {
	return a.store.Token(ctx)
}

// Ping proxies a liveness check to the backend.
func (a *authService) Ping(ctx context.Context) error {
	_, err := a.client.Health(ctx)
	return err
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
