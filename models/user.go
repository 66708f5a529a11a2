package models

import (
	"fmt"
	"strings"
)

// Role defines the fixed access level of a user account.
// The set of roles is closed and the value never changes after the account
// is created.
type Role string

const (
	// RoleAdmin marks an administrator account with full access to catalogue
	// and account management.
	RoleAdmin Role = "Admin"

	// RoleRegular marks an ordinary library member account.
	RoleRegular Role = "Regular User"
)

// ErrUnknownRole is returned by ParseRole when the supplied tag does not
// resolve to any known user role. Callers should use errors.Is to match
// against this value.
var ErrUnknownRole = fmt.Errorf("unknown user role")

// ParseRole resolves a free-form role tag to a Role constant.
//
// Matching is case-insensitive and accepts a small fixed set of synonyms per
// role, including the display form under which the role is persisted:
//
//	"admin", "administrator"
//	"regularuser", "regular_user", "regular user", "user"
//
// An unrecognised tag yields an error wrapping ErrUnknownRole that names the
// offending value.
func ParseRole(tag string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "admin", "administrator":
		return RoleAdmin, nil
	case "regularuser", "regular_user", "regular user", "user":
		return RoleRegular, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, tag)
	}
}

// User represents a library account used for authentication and for linking
// borrow records to a borrower. UserID is the unique key; Username is unique
// as well and is the login identifier.
//
// Password is stored as-is. The original system the schema is compatible with
// keeps plaintext credentials, and hashing is explicitly out of scope here.
type User struct {
	// UserID is the unique identifier of the account.
	UserID string `json:"userId"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Password is the login credential.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// Email is the contact address of the account holder.
	Email string `json:"email"`

	// Role is the fixed access level of the account.
	Role Role `json:"role"`
}

// IsAdmin reports whether the account carries the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NewUser constructs a User of the role selected by tag.
// The tag is resolved via ParseRole; an unrecognised tag returns the wrapped
// ErrUnknownRole and no user.
//
// NewUser is a pure constructor: it performs no I/O and has no side effects.
func NewUser(tag, userID, username, password, email string) (User, error) {
	role, err := ParseRole(tag)
	if err != nil {
		return User{}, err
	}

	return User{
		UserID:   userID,
		Username: username,
		Password: password,
		Email:    email,
		Role:     role,
	}, nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
