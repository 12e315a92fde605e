package service

import (
	"context"
	"errors"

	"github.com/welcomehome/inventory/internal/model"
	"github.com/welcomehome/inventory/internal/repository"
	"github.com/welcomehome/inventory/internal/utils"
)

// Register creates a new user account. The password is salted and
// hashed with PBKDF2 before it reaches the store; the plaintext is
// never persisted or logged. Registering an existing username fails
// with repository.ErrDuplicateUser and leaves the original credentials
// untouched.
func (a *App) Register(ctx context.Context, username, password string, role model.Role) error {
	salt, err := utils.NewSalt()
	if err != nil {
		return err
	}
	hash := utils.HashPassword(password, salt, a.iterations)
	return a.users.Create(ctx, model.User{
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
		Role:         role,
	})
}

// Authenticate verifies credentials and, on success, establishes a new
// session. An unknown username and a wrong password both surface as
// ErrAuthenticationFailed so the caller learns nothing about which
// part was wrong.
func (a *App) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	u, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}
	if !utils.VerifyPassword(u.PasswordHash, u.Salt, password, a.iterations) {
		return nil, ErrAuthenticationFailed
	}
	id, err := utils.NewSessionID()
	if err != nil {
		return nil, err
	}
	s := &Session{ID: id, Username: u.Username, Role: u.Role}
	a.sessions.Put(s)
	return s, nil
}

// Logout clears a session's state. Unknown session IDs are ignored.
func (a *App) Logout(sessionID string) {
	a.sessions.Remove(sessionID)
}
