package domain

import "strings"

// Role is a user's permission level.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// UserDetails holds the editable fields of a user.
type UserDetails struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Validate checks the required fields and the role.
func (d UserDetails) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyUserName
	}
	if strings.TrimSpace(d.Email) == "" {
		return ErrEmptyEmail
	}
	if !d.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// User is a back-office account.
type User struct {
	ID string `json:"id"`
	UserDetails
}

// NewUser creates a validated user.
func NewUser(id string, details UserDetails) (User, error) {
	if err := details.Validate(); err != nil {
		return User{}, err
	}
	return User{ID: id, UserDetails: details}, nil
}

// HasEmail reports an exact email match, as used for login.
func (u User) HasEmail(email string) bool {
	return u.Email == email
}

// SameEmail compares emails case-insensitively, as used for uniqueness.
func (u User) SameEmail(email string) bool {
	return strings.EqualFold(strings.TrimSpace(u.Email), strings.TrimSpace(email))
}
