package users

import "time"

// User is the identity record. ResetTokenHash and ResetTokenExpiresAt are
// either both set (a reset is outstanding) or both nil; a successful reset
// clears them together with the password update.
type User struct {
	ID                  string
	Name                string
	Email               string
	PasswordHash        string
	ResetTokenHash      *string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
}
