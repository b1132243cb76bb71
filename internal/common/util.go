// Package common contains small helpers shared across client components.
package common

// WipeByteArray overwrites the slice contents with zeros. Used to shorten
// the in-memory lifetime of passwords after a form submission.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
