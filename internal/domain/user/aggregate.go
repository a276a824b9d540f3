package user

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/chamados/servicedesk/internal/shared/authorization"
)

// User is a person who can log in. Passwords are kept as entered.
type User struct {
	id        int64
	name      string
	login     string
	password  string
	role      authorization.UserRole
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewUser validates and builds an active user. The id is assigned by the repository.
func NewUser(name, login, password string, role authorization.UserRole, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	login = strings.TrimSpace(login)
	if name == "" || login == "" || password == "" {
		return nil, NewDomainError("name, login, password and role are required")
	}
	if !role.IsValid() {
		return nil, NewDomainError("invalid role", fmt.Sprintf("role %q is not one of admin, analyst", role))
	}

	return &User{
		name:      name,
		login:     login,
		password:  password,
		role:      role,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a user from a stored record
func ReconstructUser(id int64, name, login, password string, role authorization.UserRole, active bool, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if strings.TrimSpace(login) == "" {
		return nil, fmt.Errorf("user %d has no login", id)
	}
	if !role.IsValid() {
		role = authorization.RoleAnalyst
	}

	return &User{
		id:        id,
		name:      name,
		login:     login,
		password:  password,
		role:      role,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// NormalizeLogin is the case-insensitive form used for uniqueness and ledger keys.
func NormalizeLogin(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}

func (u *User) ID() int64                    { return u.id }
func (u *User) Name() string                 { return u.name }
func (u *User) Login() string                { return u.login }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) IsActive() bool               { return u.active }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

// Password is exposed for persistence only.
func (u *User) Password() string { return u.password }

func (u *User) NormalizedLogin() string {
	return NormalizeLogin(u.login)
}

// SetID is called once by the repository when the user is first stored.
func (u *User) SetID(id int64) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	u.id = id
	return nil
}

// PasswordMatches compares in constant time.
func (u *User) PasswordMatches(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(u.password), []byte(candidate)) == 1
}

func (u *User) ChangePassword(password string, now time.Time) error {
	if password == "" {
		return NewDomainError("password is required")
	}
	u.password = password
	u.updatedAt = now
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole, now time.Time) error {
	if !role.IsValid() {
		return NewDomainError("invalid role", fmt.Sprintf("role %q is not one of admin, analyst", role))
	}
	u.role = role
	u.updatedAt = now
	return nil
}

func (u *User) SetActive(active bool, now time.Time) {
	u.active = active
	u.updatedAt = now
}

func (u *User) Actor() authorization.Actor {
	return authorization.Actor{ID: u.id, Name: u.name, Role: u.role}
}
