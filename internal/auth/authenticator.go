package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure. The cause
// (unknown email vs wrong password) is deliberately not distinguished.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Authenticator checks operator credentials against admin_users.
type Authenticator struct {
	pool *pgxpool.Pool
}

// NewAuthenticator returns an Authenticator on pool.
func NewAuthenticator(pool *pgxpool.Pool) *Authenticator {
	return &Authenticator{pool: pool}
}

// Check verifies email/password. Returns ErrInvalidCredentials on any
// mismatch; other errors indicate a database problem.
func (a *Authenticator) Check(ctx context.Context, email, password string) error {
	var hash string
	err := a.pool.QueryRow(ctx,
		`SELECT password_hash FROM admin_users WHERE email = $1`, email,
	).Scan(&hash)
	if err != nil {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces a bcrypt hash for seeding admin_users.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
