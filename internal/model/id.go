package model

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"
)

var ccaIDRegex = regexp.MustCompile(`^cca_[0-9]{10}_[0-9a-f]{8}$`)

// GenerateCCAItemID returns a new collection item ID of the form
// cca_<unix seconds>_<8 hex chars>. IDs are stable for the lifetime of the
// item and never reassigned on edits or removals of siblings.
func GenerateCCAItemID() (string, error) {
	timestamp := time.Now().Unix()
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return fmt.Sprintf("cca_%010d_%s", timestamp, hex.EncodeToString(randomBytes)), nil
}

func ValidateCCAItemID(id string) bool {
	return ccaIDRegex.MatchString(id)
}
