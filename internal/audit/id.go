package audit

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewSessionID generates a random session ID with an "s" prefix.
func NewSessionID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// Fallback to timestamp-based ID if crypto/rand fails
		return fmt.Sprintf("s-%x", time.Now().UnixNano())
	}
	return "s-" + hex.EncodeToString(b)
}
