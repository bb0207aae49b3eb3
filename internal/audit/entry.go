package audit

import (
	"crypto/sha256"
	"encoding/hex"
)

// Entry is one line in the hash-chained JSONL audit log. All fields are
// scalars (no map[string]any) to guarantee deterministic json.Marshal
// field order for reproducible hashing. The classified text itself is
// never stored, only its hash and length.
type Entry struct {
	Timestamp    string  `json:"ts"`
	SessionID    string  `json:"session_id"`
	TextHash     string  `json:"text_sha256"`
	TextBytes    int     `json:"text_bytes"`
	Accepted     bool    `json:"accepted"`
	Signal       string  `json:"signal"`
	MatchedToken string  `json:"matched_token,omitempty"`
	Score        float64 `json:"score"`
	RulesHash    string  `json:"rules_hash"`
	PrevHash     string  `json:"prev_hash"`
}

// HashText returns "sha256:<hex>" of the classified text.
func HashText(text string) string {
	h := sha256.Sum256([]byte(text))
	return "sha256:" + hex.EncodeToString(h[:])
}
