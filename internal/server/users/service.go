package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mealgenie/backend/internal/common"
	"github.com/mealgenie/backend/internal/server/auth"
	"github.com/mealgenie/backend/internal/server/config"
	"github.com/mealgenie/backend/internal/server/mailer"
)

// Service implements registration, login and the password-reset lifecycle.
type Service struct {
	repo          Repository
	mailer        mailer.Mailer
	jwtSecret     []byte
	tokenTTL      time.Duration
	resetTokenTTL time.Duration
	baseURL       string
}

func NewService(repo Repository, m mailer.Mailer, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		mailer:        m,
		jwtSecret:     []byte(cfg.Auth.SecretKey),
		tokenTTL:      cfg.Auth.TokenTTL,
		resetTokenTTL: cfg.Auth.ResetTokenTTL,
		baseURL:       cfg.BaseURL,
	}
}

// Register creates a user and returns it together with a session token.
// A duplicate email surfaces as common.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, name, email, password string) (*User, string, error) {

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{Name: name, Email: email, PasswordHash: passwordHash})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, "", common.ErrAlreadyExists
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("error generating token: %w", err)
	}

	return user, token, nil
}

// Login verifies the credentials and returns the user with a fresh session
// token. Unknown email and wrong password both come back as
// common.ErrUnauthorized so the endpoint cannot be used to probe for
// registered addresses.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrUnauthorized
		}
		return nil, "", common.ErrInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	return user, token, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID, name, email string) (*User, error) {
	return s.repo.UpdateProfile(ctx, userID, name, email)
}

// RequestPasswordReset generates a single-use reset token for the account
// with the given email, stores only its hash with a fresh expiry and mails
// the plaintext token inside the reset link. Requesting again overwrites
// the stored hash, so only the most recent token stays valid.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error looking up user: %w", err)
	}

	plaintext, tokenHash, err := auth.NewResetToken()
	if err != nil {
		return fmt.Errorf("error generating reset token: %w", err)
	}

	expiresAt := time.Now().Add(s.resetTokenTTL)
	if err := s.repo.SetResetToken(ctx, user.ID, tokenHash, expiresAt); err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/resetpassword.html?token=%s", s.baseURL, plaintext)

	err = s.mailer.Send(mailer.Mail{
		To:      user.Email,
		Subject: mailer.ResetEmailSubject,
		HTML:    mailer.ResetEmailHTML(user.Name, resetURL),
	})
	if err != nil {
		return fmt.Errorf("error sending reset email: %w", err)
	}

	return nil
}

// ResetPassword consumes a reset token. Wrong, expired and already used
// tokens are indistinguishable to the caller: all of them return
// common.ErrInvalidOrExpiredToken.
func (s *Service) ResetPassword(ctx context.Context, plaintext, newPassword string) error {

	newHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	_, err = s.repo.ConsumeResetToken(ctx, auth.HashResetToken(plaintext), newHash)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("error consuming reset token: %w", err)
	}

	return nil
}
