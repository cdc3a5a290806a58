package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mealgenie/backend/internal/common"
)

const uniqueViolationCode = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {

	query :=
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query :=
		`SELECT id, name, email, password_hash, reset_token_hash, reset_token_expires_at, created_at
		 FROM users
		 WHERE email = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query :=
		`SELECT id, name, email, password_hash, reset_token_hash, reset_token_expires_at, created_at
		 FROM users
		 WHERE id = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id, name, email string) (*User, error) {
	query :=
		`UPDATE users SET name = $2, email = $3
		 WHERE id = $1
		 RETURNING id, name, email, password_hash, reset_token_hash, reset_token_expires_at, created_at
		 `

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, id, name, email))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, common.ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresRepository) SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	query :=
		`UPDATE users
		 SET reset_token_hash = $2, reset_token_expires_at = $3
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID, tokenHash, expiresAt)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// ConsumeResetToken is a single UPDATE so the password change and the
// token clearing cannot be torn apart: either both happen or neither.
// The expiry comparison happens in the WHERE clause against now().
func (r *PostgresRepository) ConsumeResetToken(ctx context.Context, tokenHash, newPasswordHash string) (string, error) {
	query :=
		`UPDATE users
		 SET password_hash = $2, reset_token_hash = NULL, reset_token_expires_at = NULL
		 WHERE reset_token_hash = $1 AND reset_token_expires_at > now()
		 RETURNING id
		 `

	var userID string
	err := r.db.QueryRowContext(ctx, query, tokenHash, newPasswordHash).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("error performing sql request: %w", err)
	}

	return userID, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) scanUser(row rowScanner) (*User, error) {
	user := &User{}
	var resetHash sql.NullString
	var resetExpires sql.NullTime

	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&resetHash, &resetExpires, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	if resetHash.Valid {
		user.ResetTokenHash = &resetHash.String
	}
	if resetExpires.Valid {
		user.ResetTokenExpiresAt = &resetExpires.Time
	}

	return user, nil
}
