// Package api implements the HTTP/JSON client for the myapp authentication
// backend: signup, login, current-user, email verification, password reset,
// and a liveness probe. Every request runs under the configured timeout and
// carries a generated request ID for correlation with debug logs.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zapulam/myapp/internal/client/models"
	"github.com/zapulam/myapp/internal/logging"
)

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient constructs a client for the given base URL. The timeout
// applies per request, including connection setup and body read.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		timeout: timeout,
		http:    &http.Client{},
		log:     log,
	}
}

// errorBody is the shape of a FastAPI-style error response.
type errorBody struct {
	Detail string `json:"detail"`
}

// do performs one round trip: marshals body (if any), sets headers, enforces
// the timeout, and decodes the response into out (if non-nil). Non-2xx
// responses become *Error; an exceeded deadline becomes ErrTimeout.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, token string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.log.Warn(ctx, "api request timed out", "path", path, "request_id", requestID)
			return ErrTimeout
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return fmt.Errorf("failed to read response body: %w", err)
	}

	c.log.Debug(ctx, "api response", "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var eb errorBody
		if err := json.Unmarshal(data, &eb); err == nil {
			apiErr.Detail = eb.Detail
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Signup(ctx context.Context, email, name, password string) (*models.User, error) {
	req := &models.SignupRequest{Email: email, Name: name, Password: password}
	user := &models.User{}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, "", user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := &models.LoginRequest{Email: email, Password: password}
	resp := &models.AuthResponse{}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, "", resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	user := &models.User{}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, token, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, token string) (*models.MessageResponse, error) {
	req := &models.VerifyEmailRequest{Token: token}
	resp := &models.MessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/auth/verify-email", req, "", resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) ResendVerification(ctx context.Context, email string) (*models.MessageResponse, error) {
	req := &models.ResendVerificationRequest{Email: email}
	resp := &models.MessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/auth/resend-verification", req, "", resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (*models.MessageResponse, error) {
	req := &models.ResendVerificationRequest{Email: email}
	resp := &models.MessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", req, "", resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, token, newPassword string) (*models.MessageResponse, error) {
	req := &models.ResetPasswordRequest{Token: token, NewPassword: newPassword}
	resp := &models.MessageResponse{}
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", req, "", resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Health probes the backend root endpoint.
func (c *HTTPClient) Health(ctx context.Context) (*models.MessageResponse, error) {
	resp := &models.MessageResponse{}
	if err := c.do(ctx, http.MethodGet, "/", nil, "", resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Close releases idle connections held by the underlying transport.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
