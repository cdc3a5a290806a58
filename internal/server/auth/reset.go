package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/mealgenie/backend/internal/common"
)

// resetTokenBytes is the entropy of a reset token before hex encoding, so
// the plaintext token in the email link is 64 characters.
const resetTokenBytes = 32

// NewResetToken generates a password-reset token. The plaintext goes into
// the reset link and is never persisted; only its hash is stored.
func NewResetToken() (plaintext, hash string, err error) {
	plaintext, err = common.MakeRandHexString(resetTokenBytes)
	if err != nil {
		return "", "", err
	}
	return plaintext, HashResetToken(plaintext), nil
}

// HashResetToken computes the hex-encoded SHA-256 digest of a reset token.
// The input is high-entropy and single-use, so an unsalted fast hash is
// sufficient here, unlike passwords.
func HashResetToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
