package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/welcomehome/inventory/internal/model"
)

// UserRepo provides access to the users table (the credential store).
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user record. The password hash and salt must
// already be derived; plaintext never reaches this layer.
func (r *UserRepo) Create(ctx context.Context, u model.User) error {
	const q = `INSERT INTO users (username, password_hash, salt, role) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, u.Username, u.PasswordHash, u.Salt, string(u.Role))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// GetByUsername fetches a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	const q = `SELECT username, password_hash, salt, role FROM users WHERE username = ? LIMIT 1`
	var u model.User
	var role string
	err := r.db.QueryRowContext(ctx, q, username).Scan(&u.Username, &u.PasswordHash, &u.Salt, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, err
	}
	u.Role = model.Role(role)
	return u, nil
}

// Exists reports whether a username is registered.
func (r *UserRepo) Exists(ctx context.Context, username string) (bool, error) {
	const q = `SELECT 1 FROM users WHERE username = ? LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, q, username).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
