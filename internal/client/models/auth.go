package models

// AuthResponse is the body of a successful login call.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is the body returned by verify-email, resend-verification,
// forgot-password, reset-password, and the health check. Email is present on
// the verification endpoints only.
type MessageResponse struct {
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
}

// SignupRequest is the body sent to the signup endpoint.
type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the body sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyEmailRequest is the body sent to the verify-email endpoint.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// ResendVerificationRequest is the body sent to the resend-verification
// and forgot-password endpoints.
type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body sent to the reset-password endpoint.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
