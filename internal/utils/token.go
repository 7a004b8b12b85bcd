package utils // package utils provides helper functions for token creation and filename handling

import (
	"crypto/rand"  // secure random number generation
	"encoding/hex" // hex encoding for token strings
)

// NewVerificationToken returns a cryptographically secure random token for
// email verification.  32 bytes of randomness encoded as 64 hex characters
// makes the token unguessable with negligible collision probability, and
// hex keeps it safe to embed in a URL path without escaping.
func NewVerificationToken() (string, error) {
	return randomHex(32)
}

// NewSessionID returns a random identifier for a server-side session
// record.  The ID itself carries no meaning; the signed cookie binds it
// to the browser and the session store binds it to an account.
func NewSessionID() (string, error) {
	return randomHex(24)
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.  If the random number generator
// fails, an error is returned.
func randomHex(n int) (string, error) {
	// Allocate a slice of n bytes.
	buf := make([]byte, n)
	// Fill the slice with secure random data.  rand.Read returns the number
	// of bytes read and an error.  We ignore the count since we request
	// exactly n bytes.
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	// Convert the random bytes to a hex string and return.
	return hex.EncodeToString(buf), nil
}
