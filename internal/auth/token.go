package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken returns a hex-encoded opaque token built from 16 random
// bytes. Used for account verification and password reset tokens.
func GenerateRandomToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; nothing
		// sensible to degrade to.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
