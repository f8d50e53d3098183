package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecrets = Secrets{
	Access:  "access-secret",
	Refresh: "refresh-secret",
	Legacy:  "legacy-secret",
}

var testIdentity = Identity{UserID: "user-1", Email: "alice@example.com", Role: "user"}

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()
	issuer, err := NewIssuer(testSecrets)
	if err != nil {
		t.Fatalf("NewIssuer returned error: %v", err)
	}
	return issuer
}

func parseWithSecret(t *testing.T, tokenStr, secret string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	return claims
}

func TestNewIssuer_MissingSecret(t *testing.T) {
	if _, err := NewIssuer(Secrets{Access: "a", Refresh: "r"}); err == nil {
		t.Fatalf("expected error for missing legacy secret")
	}
	if _, err := NewIssuer(Secrets{}); err == nil {
		t.Fatalf("expected error for empty secrets")
	}
}

func TestIssue_ExpiryPerKind(t *testing.T) {
	issuer := newTestIssuer(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		kind Kind
		ttl  time.Duration
	}{
		{KindAccess, 15 * time.Minute},
		{KindRefresh, 7 * 24 * time.Hour},
		{KindLegacy, 24 * time.Hour},
	}
	for _, tc := range cases {
		issued, err := issuer.Issue(tc.kind, testIdentity, now)
		if err != nil {
			t.Fatalf("Issue(%s) returned error: %v", tc.kind, err)
		}
		if want := now.Add(tc.ttl); !issued.ExpiresAt.Equal(want) {
			t.Fatalf("%s: expected expiry %v, got %v", tc.kind, want, issued.ExpiresAt)
		}
	}
}

func TestIssueTriad_IndependentSecrets(t *testing.T) {
	issuer := newTestIssuer(t)
	now := time.Now().UTC()

	triad, err := issuer.IssueTriad(testIdentity, now)
	if err != nil {
		t.Fatalf("IssueTriad returned error: %v", err)
	}
	if triad.AccessToken == triad.RefreshToken || triad.RefreshToken == triad.JWTToken {
		t.Fatalf("triad tokens must be distinct")
	}

	claims := parseWithSecret(t, triad.AccessToken, testSecrets.Access)
	if claims["email"] != testIdentity.Email || claims["id"] != testIdentity.UserID {
		t.Fatalf("unexpected access claims: %v", claims)
	}
	parseWithSecret(t, triad.RefreshToken, testSecrets.Refresh)
	claims = parseWithSecret(t, triad.JWTToken, testSecrets.Legacy)
	if claims["role"] != "user" {
		t.Fatalf("expected role claim, got %v", claims["role"])
	}
}

func TestIssue_SameSecondTokensDiffer(t *testing.T) {
	issuer := newTestIssuer(t)
	now := time.Now().UTC()

	// Rotation hands the caller a replacement refresh token; if two
	// issuances inside one wall-clock second signed the same bytes, the
	// "new" token would equal the spent one and the slot would never move.
	first, err := issuer.Issue(KindRefresh, testIdentity, now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	second, err := issuer.Issue(KindRefresh, testIdentity, now.Add(time.Nanosecond))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if first.Token == second.Token {
		t.Fatalf("same-second issuances signed identical tokens")
	}

	for _, tok := range []string{first.Token, second.Token} {
		if _, err := issuer.VerifyRefresh(tok); err != nil {
			t.Fatalf("VerifyRefresh returned error: %v", err)
		}
	}
}

func TestVerifyRefresh_RoundTrip(t *testing.T) {
	issuer := newTestIssuer(t)

	triad, err := issuer.IssueTriad(testIdentity, time.Now().UTC())
	if err != nil {
		t.Fatalf("IssueTriad returned error: %v", err)
	}

	id, err := issuer.VerifyRefresh(triad.RefreshToken)
	if err != nil {
		t.Fatalf("VerifyRefresh returned error: %v", err)
	}
	if id.UserID != testIdentity.UserID || id.Email != testIdentity.Email {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestVerifyRefresh_RejectsOtherKinds(t *testing.T) {
	issuer := newTestIssuer(t)

	triad, err := issuer.IssueTriad(testIdentity, time.Now().UTC())
	if err != nil {
		t.Fatalf("IssueTriad returned error: %v", err)
	}

	for name, tok := range map[string]string{
		"access": triad.AccessToken,
		"legacy": triad.JWTToken,
	} {
		if _, err := issuer.VerifyRefresh(tok); err != ErrVerification {
			t.Fatalf("%s token: expected ErrVerification, got %v", name, err)
		}
	}
}

func TestVerifyRefresh_Expired(t *testing.T) {
	issuer := newTestIssuer(t)

	issued, err := issuer.Issue(KindRefresh, testIdentity, time.Now().UTC().Add(-8*24*time.Hour))
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := issuer.VerifyRefresh(issued.Token); err != ErrVerification {
		t.Fatalf("expected ErrVerification for expired token, got %v", err)
	}
}

func TestVerifyRefresh_Malformed(t *testing.T) {
	issuer := newTestIssuer(t)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := issuer.VerifyRefresh(tok); err != ErrVerification {
			t.Fatalf("token %q: expected ErrVerification, got %v", tok, err)
		}
	}
}
