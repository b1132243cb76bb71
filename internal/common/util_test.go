package common

import (
	"bytes"
	"testing"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("password1")
	WipeByteArray(b)
	if !bytes.Equal(b, make([]byte, len("password1"))) {
		t.Fatalf("expected wiped slice, got %v", b)
	}
}

func TestWipeByteArrayEmpty(t *testing.T) {
	WipeByteArray(nil)
	WipeByteArray([]byte{})
}
