// Package cli provides the interactive myapp command-line client.
//
// It wires configuration, the local session store, the API client, and an
// interactive REPL that drives the authentication flows. Typical flow:
// restore a persisted session if one exists, then execute user commands.
//
// Key features:
//   - Login / Logout with a durable session
//   - Register with email verification (verify, resend)
//   - Password reset flow (forgot, reset)
//   - Session inspection (whoami) and a server liveness probe (ping)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
