// Package common contains small helpers shared across the Pankitchen client.
package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to remove sensitive data such as passwords from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
