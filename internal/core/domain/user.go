package domain

import (
	"errors"
	"time"
)

// Role classifies an account. Assigned once at creation and never mutated
// afterwards by the auth core.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUserExists          = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrAuthFailed          = errors.New("email or password is wrong")
	ErrBiometricNotEnabled = errors.New("biometric authentication not enabled")
	ErrBiometricFailed     = errors.New("biometric authentication failed")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// User is the identity and session record. RefreshToken is a single slot:
// its presence denotes the one active session for the account, and every
// new login or rotation replaces it.
type User struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email"`
	PasswordHash          string     `json:"-"`
	Role                  Role       `json:"role"`
	BiometricEnabled      bool       `json:"biometricEnabled"`
	BiometricHash         string     `json:"-"`
	BiometricRegisteredAt *time.Time `json:"biometricRegisteredAt,omitempty"`
	RefreshToken          string     `json:"-"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// EnableBiometric stores hash as the single biometric credential and marks
// the account enabled. Re-enrollment overwrites the previous hash but keeps
// the original registration timestamp: it is set only on the transition from
// no hash to some hash.
func (u *User) EnableBiometric(hash string, now time.Time) {
	if u.BiometricHash == "" {
		ts := now.UTC()
		u.BiometricRegisteredAt = &ts
	}
	u.BiometricHash = hash
	u.BiometricEnabled = true
}

// DisableBiometric clears the biometric credential and its registration
// timestamp. Safe to call when nothing is enrolled.
func (u *User) DisableBiometric() {
	u.BiometricHash = ""
	u.BiometricEnabled = false
	u.BiometricRegisteredAt = nil
}
