package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

// identifierAlphabet omits easily confused characters (0/O, 1/I/L).
const identifierAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// GeneratePublicIdentifier creates a human-facing report identifier of the
// form "DR-2025-X7K2Q9". Uniqueness is enforced by the database constraint,
// the random suffix only makes collisions unlikely.
func GeneratePublicIdentifier(now time.Time) (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range b {
		b[i] = identifierAlphabet[int(b[i])%len(identifierAlphabet)]
	}
	return fmt.Sprintf("DR-%d-%s", now.Year(), string(b)), nil
}
