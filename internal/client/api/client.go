package api

import (
	"context"

	"github.com/zapulam/myapp/internal/client/models"
)

// Client is the contract with the myapp authentication backend. All calls
// take a context and honor the client-side request timeout; authenticated
// calls take the bearer token explicitly.
type Client interface {
	Signup(ctx context.Context, email, name, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	VerifyEmail(ctx context.Context, token string) (*models.MessageResponse, error)
	ResendVerification(ctx context.Context, email string) (*models.MessageResponse, error)
	ForgotPassword(ctx context.Context, email string) (*models.MessageResponse, error)
	ResetPassword(ctx context.Context, token, newPassword string) (*models.MessageResponse, error)
	Health(ctx context.Context) (*models.MessageResponse, error)
	Close() error
}
