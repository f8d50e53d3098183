// Package token signs and verifies the three session tokens issued on every
// successful authentication: a short-lived access token, a rotating refresh
// token, and a 24h token kept for older clients.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind selects which of the three tokens to sign. Each kind has its own
// secret and its own validity window.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
	KindLegacy  Kind = "legacy"
)

var lifetimes = map[Kind]time.Duration{
	KindAccess:  15 * time.Minute,
	KindRefresh: 7 * 24 * time.Hour,
	KindLegacy:  24 * time.Hour,
}

// ErrVerification is returned for any refresh token that fails verification:
// bad signature, wrong algorithm, expired, or malformed. Callers are not told
// which.
var ErrVerification = errors.New("token verification failed")

// Secrets carries the three independent signing secrets.
type Secrets struct {
	Access  string
	Refresh string
	Legacy  string
}

// Identity is the subject carried inside every token.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// Issued is a single signed token together with its expiry.
type Issued struct {
	Kind      Kind
	Token     string
	ExpiresAt time.Time
}

// Triad bundles the three tokens issued together on every successful
// authentication event. JWTToken is the legacy 24h token.
type Triad struct {
	AccessToken  string
	RefreshToken string
	JWTToken     string
}

// Issuer signs tokens with HS256. Pure: output depends only on identity,
// clock, and configured secrets.
type Issuer struct {
	secrets map[Kind][]byte
}

// NewIssuer validates that all three secrets are present. A missing secret
// is a startup-fatal condition, never a per-request error.
func NewIssuer(s Secrets) (*Issuer, error) {
	pairs := map[Kind]string{
		KindAccess:  s.Access,
		KindRefresh: s.Refresh,
		KindLegacy:  s.Legacy,
	}
	secrets := make(map[Kind][]byte, len(pairs))
	for kind, secret := range pairs {
		if secret == "" {
			return nil, fmt.Errorf("token: missing %s secret", kind)
		}
		secrets[kind] = []byte(secret)
	}
	return &Issuer{secrets: secrets}, nil
}

// Issue signs a single token of the given kind for the identity.
func (i *Issuer) Issue(kind Kind, id Identity, now time.Time) (Issued, error) {
	secret, ok := i.secrets[kind]
	if !ok {
		return Issued{}, fmt.Errorf("token: unknown kind %q", kind)
	}

	// iat is kept at nanosecond resolution: refresh rotation depends on the
	// replacement token differing from the spent one, and second-resolution
	// claims would sign identical tokens for back-to-back issuances.
	expiresAt := now.Add(lifetimes[kind])
	claims := jwt.MapClaims{
		"email": id.Email,
		"id":    id.UserID,
		"role":  id.Role,
		"iat":   now.UnixNano(),
		"exp":   expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return Issued{}, fmt.Errorf("token: sign %s: %w", kind, err)
	}
	return Issued{Kind: kind, Token: signed, ExpiresAt: expiresAt}, nil
}

// IssueTriad signs all three kinds for the identity.
func (i *Issuer) IssueTriad(id Identity, now time.Time) (Triad, error) {
	var triad Triad
	for kind, dst := range map[Kind]*string{
		KindAccess:  &triad.AccessToken,
		KindRefresh: &triad.RefreshToken,
		KindLegacy:  &triad.JWTToken,
	} {
		issued, err := i.Issue(kind, id, now)
		if err != nil {
			return Triad{}, err
		}
		*dst = issued.Token
	}
	return triad, nil
}

// VerifyRefresh checks signature and expiry against the refresh secret and
// returns the embedded identity. Every failure mode collapses into
// ErrVerification.
func (i *Issuer) VerifyRefresh(tokenStr string) (Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secrets[KindRefresh], nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrVerification
	}

	userID, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return Identity{}, ErrVerification
	}
	return Identity{UserID: userID, Email: email}, nil
}
