// Package user holds the administrative account registry. Accounts exist to
// label annotations and prefill the intake form; there are no roles and no
// server-side session gating requests. That gap is deliberate and documented:
// closing it means issuing and validating sessions server-side.
package user

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/biztime"
)

// User is an administrative account. The name doubles as the login
// identifier, compared case-insensitively via uppercase normalization.
type User struct {
	id           uint
	name         string
	area         string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, area, passwordHash string) (*User, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(strings.TrimSpace(area)) == 0 {
		return nil, fmt.Errorf("area is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.Now()
	return &User{
		name:         strings.TrimSpace(name),
		area:         strings.TrimSpace(area),
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, name, area, passwordHash string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &User{
		id:           id,
		name:         name,
		area:         area,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

// NormalizedName returns the uppercase form used for case-insensitive login
// and uniqueness checks.
func (u *User) NormalizedName() string {
	return NormalizeName(u.name)
}

func (u *User) Area() string {
	return u.area
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Rename(name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	u.name = strings.TrimSpace(name)
	u.updatedAt = biztime.Now()
	return nil
}

func (u *User) ChangeArea(area string) error {
	if len(strings.TrimSpace(area)) == 0 {
		return fmt.Errorf("area cannot be empty")
	}
	u.area = strings.TrimSpace(area)
	u.updatedAt = biztime.Now()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = biztime.Now()
	return nil
}

// NormalizeName uppercases a login name for comparison.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
