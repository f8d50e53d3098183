package ports

import (
	"context"

	"github.com/quickbasket/commerce-api/internal/core/domain"
)

// SignupInput carries a registration request. BiometricData is optional; when
// present the account is enrolled for biometric login at signup.
type SignupInput struct {
	Name          string
	Email         string
	Password      string
	BiometricData string
}

// AuthResult is returned by every successful authentication flow: the token
// triad plus the public profile fields.
type AuthResult struct {
	AccessToken      string
	RefreshToken     string
	JWTToken         string
	Name             string
	Email            string
	Role             domain.Role
	UserID           string
	BiometricEnabled bool
}

// RefreshResult is the rotated triad.
type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	JWTToken     string
	UserID       string
}

// BiometricStatus is the read-only enrollment projection. No hash material
// is ever exposed.
type BiometricStatus struct {
	BiometricEnabled bool
	Email            string
	Name             string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	BiometricLogin(ctx context.Context, email, biometricData string) (*AuthResult, error)
	AddBiometric(ctx context.Context, userID, biometricData string) error
	RemoveBiometric(ctx context.Context, userID string) error
	BiometricStatus(ctx context.Context, email string) (*BiometricStatus, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error)
	Logout(ctx context.Context, refreshToken string) error
}
