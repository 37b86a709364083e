// Package token generates short random identifiers from crypto/rand.
//
// Tokens back order numbers and blob-storage key prefixes. They are
// collision-resistant, not guaranteed unique; callers that need a hard
// uniqueness guarantee must enforce it at the store.
package token

import (
	"crypto/rand"
	"encoding/hex"
)

// New returns a lowercase hex token of length n (n must be even and
// positive; odd lengths are rounded up).
func New(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, (n+1)/2)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)[:n]
}

// OrderNumber returns the 8-character token used as a default order
// number when the caller does not supply one.
func OrderNumber() string { return New(8) }
