package services

import (
	"errors"
	"strings"
)

// classifiedLoginErrors maps known server detail strings, matched as
// substrings, to more specific user-facing text. All other login errors pass
// through unmodified.
//
// Matching on message text is fragile: a server copy change silently breaks
// classification. A structured error code from the backend would be the
// robust fix; until then this mirrors the server's detail strings exactly.
var classifiedLoginErrors = []struct {
	detail   string
	friendly string
}{
	{"Incorrect email or password", "Incorrect email or password. Please check your credentials and try again."},
	{"Inactive user", "Your account is inactive. Please contact support."},
	{"Email not verified", "Please verify your email address before logging in."},
}

func classifyLoginError(err error) error {
	msg := err.Error()
	for _, c := range classifiedLoginErrors {
		if strings.Contains(msg, c.detail) {
			return errors.New(c.friendly)
		}
	}
	return err
}
