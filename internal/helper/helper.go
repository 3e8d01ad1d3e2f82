package helper

import (
	"crypto/rand"
	"encoding/hex"
)

// RequestID returns a short random hex identifier for correlating log lines.
func RequestID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}
