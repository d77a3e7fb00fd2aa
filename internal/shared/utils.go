// Package shared provides small utilities used across the client.
package shared

// WipeByteArray overwrites b with zeros. Used to scrub passwords from
// memory once they have been sent. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
