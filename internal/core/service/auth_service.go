package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickbasket/commerce-api/internal/core/credential"
	"github.com/quickbasket/commerce-api/internal/core/domain"
	"github.com/quickbasket/commerce-api/internal/core/ports"
	"github.com/quickbasket/commerce-api/internal/core/token"
)

// BootstrapAdmin is the configured admin identity. An account matching Email
// signs up as admin; a login with both values when no record exists creates
// the admin account on the fly.
type BootstrapAdmin struct {
	Email    string
	Password string
}

const bootstrapAdminName = "Admin User"

// AuthService orchestrates credential verification and the session-token
// lifecycle. It is the only place that maps verifier and store failures to
// the user-facing error taxonomy.
type AuthService struct {
	repo     ports.UserRepository
	sessions sessionManager
	admin    BootstrapAdmin
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, admin BootstrapAdmin, logger zerolog.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		sessions: sessionManager{repo: repo, issuer: issuer},
		admin:    admin,
		logger:   logger,
	}
}

// Signup registers a new account, optionally enrolling a biometric credential,
// and opens its first session.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := credential.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         s.roleFor(input.Email),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.BiometricData != "" {
		user.EnableBiometric(credential.HashBiometric(input.BiometricData), now)
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	triad, err := s.sessions.Begin(ctx, created, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user signed up")
	return authResult(created, triad), nil
}

// Login verifies a password and opens a session, replacing any previous one.
// Unknown email and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrAuthFailed
	}

	user, resolution, err := s.resolveOrBootstrap(ctx, email, password)
	if err != nil {
		return nil, err
	}
	switch resolution {
	case resolutionNotFound:
		return nil, domain.ErrAuthFailed
	case resolutionBootstrap:
		if user, err = s.bootstrapAdmin(ctx); err != nil {
			return nil, err
		}
	}

	ok, err := credential.CheckPassword(password, user.PasswordHash)
	if err != nil {
		// A malformed stored digest must look exactly like a wrong password.
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("stored password digest unusable")
		return nil, domain.ErrAuthFailed
	}
	if !ok {
		return nil, domain.ErrAuthFailed
	}

	triad, err := s.sessions.Begin(ctx, user, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password login")
	return authResult(user, triad), nil
}

// BiometricLogin verifies a biometric assertion against the enrolled digest.
// Unlike Login, its failure reasons are distinguishable.
func (s *AuthService) BiometricLogin(ctx context.Context, email, biometricData string) (*ports.AuthResult, error) {
	if email == "" || biometricData == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.BiometricEnabled || user.BiometricHash == "" {
		return nil, domain.ErrBiometricNotEnabled
	}
	if !credential.CompareBiometric(credential.HashBiometric(biometricData), user.BiometricHash) {
		return nil, domain.ErrBiometricFailed
	}

	triad, err := s.sessions.Begin(ctx, user, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("biometric login")
	return authResult(user, triad), nil
}

// AddBiometric enrolls (or re-enrolls) the single biometric credential for
// the account. Idempotent: repeat enrollment just overwrites the digest.
func (s *AuthService) AddBiometric(ctx context.Context, userID, biometricData string) error {
	if userID == "" || biometricData == "" {
		return domain.ErrInvalidInput
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.EnableBiometric(credential.HashBiometric(biometricData), time.Now().UTC())
	return s.repo.Save(ctx, user)
}

// RemoveBiometric clears the biometric credential. Idempotent.
func (s *AuthService) RemoveBiometric(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrInvalidInput
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.DisableBiometric()
	return s.repo.Save(ctx, user)
}

// BiometricStatus returns the enrollment projection for the account.
func (s *AuthService) BiometricStatus(ctx context.Context, email string) (*ports.BiometricStatus, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &ports.BiometricStatus{
		BiometricEnabled: user.BiometricEnabled,
		Email:            user.Email,
		Name:             user.Name,
	}, nil
}

// Refresh rotates the session: the presented token must verify against the
// refresh secret and must still occupy the account's session slot. Rotation
// writes a new slot value, so each refresh token is usable exactly once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.RefreshResult, error) {
	identity, err := s.sessions.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.repo.FindByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, err
	}
	if user.RefreshToken != refreshToken {
		// Already rotated or revoked.
		return nil, domain.ErrInvalidRefreshToken
	}

	triad, err := s.sessions.Begin(ctx, user, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &ports.RefreshResult{
		AccessToken:  triad.AccessToken,
		RefreshToken: triad.RefreshToken,
		JWTToken:     triad.JWTToken,
		UserID:       user.ID,
	}, nil
}

// Logout revokes the session holding the presented token. Always succeeds.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.sessions.Revoke(ctx, refreshToken)
}

// loginResolution is the outcome of looking up a login email.
type loginResolution int

const (
	resolutionFound loginResolution = iota
	resolutionBootstrap
	resolutionNotFound
)

// resolveOrBootstrap finds the account for a login attempt. When no record
// exists and the credentials exactly match the configured admin pair, the
// caller should materialize the admin account instead of failing.
func (s *AuthService) resolveOrBootstrap(ctx context.Context, email, password string) (*domain.User, loginResolution, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return user, resolutionFound, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, resolutionNotFound, err
	}

	if email == s.admin.Email && password == s.admin.Password {
		return nil, resolutionBootstrap, nil
	}
	return nil, resolutionNotFound, nil
}

// bootstrapAdmin lazily creates the admin account from configuration. If a
// concurrent login created it first, the existing record is used.
func (s *AuthService) bootstrapAdmin(ctx context.Context) (*domain.User, error) {
	hash, err := credential.HashPassword(s.admin.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         bootstrapAdminName,
		Email:        s.admin.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return s.repo.FindByEmail(ctx, s.admin.Email)
		}
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("bootstrap admin account created")
	return created, nil
}

// roleFor assigns the role at creation time: admin iff the email matches the
// configured admin address exactly.
func (s *AuthService) roleFor(email string) domain.Role {
	if email == s.admin.Email {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

func authResult(user *domain.User, triad token.Triad) *ports.AuthResult {
	return &ports.AuthResult{
		AccessToken:      triad.AccessToken,
		RefreshToken:     triad.RefreshToken,
		JWTToken:         triad.JWTToken,
		Name:             user.Name,
		Email:            user.Email,
		Role:             user.Role,
		UserID:           user.ID,
		BiometricEnabled: user.BiometricEnabled,
	}
}
