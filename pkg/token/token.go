// Package token generates the secret invitation tokens. A token is the sole
// credential for viewing an invitation and checking in, so it carries 256 bits
// of entropy from crypto/rand.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
)

// Size is the number of random bytes per token. Hex encoding doubles it
// on the wire.
const Size = 32

// New returns a fresh 64-character hex token.
func New() (string, error) {
	b := make([]byte, Size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// InvitationURL returns the public invitation link a QR code encodes.
func InvitationURL(baseURL, token string) string {
	return fmt.Sprintf("%s/invitation?id=%s", baseURL, url.QueryEscape(token))
}
