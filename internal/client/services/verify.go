package services

import "context"

// VerifyStatus is the state of the email-verification flow.
type VerifyStatus string

const (
	// VerifyIdle: no verification has been attempted yet.
	VerifyIdle VerifyStatus = "idle"
	// VerifyNoToken: VerifyEmail was invoked without a token. Distinct from
	// a failure: nothing was attempted.
	VerifyNoToken VerifyStatus = "no_token"
	// VerifyInFlight: the network call for the current token is running.
	VerifyInFlight VerifyStatus = "in_flight"
	// VerifySucceeded: the current token was accepted by the backend.
	VerifySucceeded VerifyStatus = "succeeded"
	// VerifyFailed: the backend rejected the current token.
	VerifyFailed VerifyStatus = "failed"
)

// Terminal reports whether no further transition happens without a new token.
func (s VerifyStatus) Terminal() bool {
	return s == VerifySucceeded || s == VerifyFailed
}

// VerifyState is the outcome of the verification flow for one token. Email
// is set on success (the verified address, usable for resend); Err is set on
// failure.
type VerifyState struct {
	Status VerifyStatus
	Email  string
	Err    error

	token string
}

// VerifyEmail drives the verification flow for the given token. The token is
// consumed at most once: repeated calls with the same token return the cached
// state without touching the network, whether the first attempt is still in
// flight or already terminal. A new token value resets the flow. An empty
// token yields VerifyNoToken without a network call.
func (a *authService) VerifyEmail(ctx context.Context, token string) VerifyState {
	if token == "" {
		a.verify = VerifyState{Status: VerifyNoToken}
		return a.verify
	}

	if a.verify.token == token && a.verify.Status != VerifyIdle {
		return a.verify
	}

	a.verify = VerifyState{Status: VerifyInFlight, token: token}

	resp, err := a.client.VerifyEmail(ctx, token)
	if err != nil {
		a.log.Warn(ctx, "email verification failed", "error", err)
		a.verify = VerifyState{Status: VerifyFailed, Err: err, token: token}
		return a.verify
	}

	a.pendingEmail = resp.Email
	a.verify = VerifyState{Status: VerifySucceeded, Email: resp.Email, token: token}
	a.log.Info(ctx, "email verified", "email", resp.Email)
	return a.verify
}

// VerificationState returns the current state of the verification flow.
func (a *authService) VerificationState() VerifyState {
	if a.verify.Status == "" {
		return VerifyState{Status: VerifyIdle}
	}
	return a.verify
}
