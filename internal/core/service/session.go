package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickbasket/commerce-api/internal/core/domain"
	"github.com/quickbasket/commerce-api/internal/core/ports"
	"github.com/quickbasket/commerce-api/internal/core/token"
)

// sessionManager owns the single refresh-token slot per user. Beginning a
// session writes a new value into the slot, which invalidates whatever token
// a previous login or rotation left there. There is no lock around the
// read-modify-write: two racing logins both succeed and the loser's triad
// dies on its first refresh, forcing that caller to re-authenticate.
type sessionManager struct {
	repo   ports.UserRepository
	issuer *token.Issuer
}

// Begin issues a fresh triad for the user and persists its refresh token as
// the account's session slot.
func (m sessionManager) Begin(ctx context.Context, user *domain.User, now time.Time) (token.Triad, error) {
	identity := token.Identity{UserID: user.ID, Email: user.Email, Role: string(user.Role)}
	triad, err := m.issuer.IssueTriad(identity, now)
	if err != nil {
		return token.Triad{}, err
	}

	user.RefreshToken = triad.RefreshToken
	if err := m.repo.Save(ctx, user); err != nil {
		return token.Triad{}, fmt.Errorf("persist session: %w", err)
	}
	return triad, nil
}

// Revoke clears whichever account currently holds the presented refresh
// token. Idempotent: an unknown or already-cleared token is a no-op.
func (m sessionManager) Revoke(ctx context.Context, refreshToken string) error {
	user, err := m.repo.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	user.RefreshToken = ""
	return m.repo.Save(ctx, user)
}
