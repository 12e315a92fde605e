package model

import "errors"

// Role is a closed enumeration of account roles.  Keeping the set
// closed means a bad role string is rejected at the boundary instead
// of leaking into the users table.
type Role string

const (
	RoleClient    Role = "client"
	RoleStaff     Role = "staff"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

// ErrUnknownRole is returned by ParseRole for values outside the enumeration.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a free-form role string against the enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleStaff, RoleVolunteer, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// Elevated reports whether the role may perform staff operations
// (donation intake, donor registration, order management).
func (r Role) Elevated() bool {
	return r == RoleStaff || r == RoleAdmin
}

// User mirrors the 'users' table.  Only the PBKDF2 hash and its salt
// are persisted, never the plaintext password.
type User struct {
	Username     string
	PasswordHash string // hex-encoded PBKDF2-HMAC-SHA256 digest
	Salt         string // hex-encoded per-user random salt
	Role         Role
}
