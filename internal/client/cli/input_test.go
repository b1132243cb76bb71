package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zapulam/myapp/internal/client/validation"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  hello \n"))

	got, err := GetSimpleText(reader, "Enter something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello", got)
	require.Equal(t, "Enter something\n> ", out.String())
}

func TestGetSimpleTextEOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("partial"))

	got, err := GetSimpleText(reader, "Prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "partial", got)
}

func TestGetSimpleTextEOFEmpty(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Prompt", &out)
	require.Error(t, err)
}

func TestGetPasswordUsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte("secret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword("Enter password", &out)
	require.NoError(t, err)
	require.Equal(t, []byte("secret"), pw)
	require.Contains(t, out.String(), "Enter password: ")
}

func TestPrintValidationErrorsStableOrder(t *testing.T) {
	res := validation.ValidateSignupForm("", "", "")
	var out bytes.Buffer
	PrintValidationErrors(res, &out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	// Sorted by field name: email, name, password.
	require.Contains(t, lines[0], "email:")
	require.Contains(t, lines[1], "name:")
	require.Contains(t, lines[2], "password:")
}
