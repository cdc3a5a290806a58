package users

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id, name, email string) (*User, error)

	// SetResetToken stores the reset-token hash and expiry on the user in a
	// single update, overwriting any previous outstanding token.
	SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error

	// ConsumeResetToken atomically rewrites the password hash and clears the
	// reset-token fields of the user whose unexpired token hash matches.
	// It returns common.ErrNotFound when no row matches, which covers wrong,
	// expired and already consumed tokens alike.
	ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string) (userID string, err error)
}
