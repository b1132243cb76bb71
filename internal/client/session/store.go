package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zapulam/myapp/internal/client/models"
)

// Store exposes typed access to the two session slots over a Repository.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Token returns the persisted bearer token, or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	value, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, TokenKey, []byte(token))
}

// User returns the cached user record, or nil when none is stored.
func (s *Store) User(ctx context.Context) (*models.User, error) {
	value, err := s.repo.Get(ctx, UserKey)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	user := &models.User{}
	if err := json.Unmarshal(value, user); err != nil {
		return nil, fmt.Errorf("failed to decode cached user: %w", err)
	}
	return user, nil
}

func (s *Store) SetUser(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.repo.Set(ctx, UserKey, data)
}

// ClearAuth removes both session slots. The deletes are independent: a
// failure removing the token must not prevent attempting the user slot.
// Errors from both attempts are joined and returned.
func (s *Store) ClearAuth(ctx context.Context) error {
	tokenErr := s.repo.Delete(ctx, TokenKey)
	userErr := s.repo.Delete(ctx, UserKey)
	return errors.Join(tokenErr, userErr)
}
