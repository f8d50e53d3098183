package credential

import (
	"strings"
	"testing"
)

func TestCheckPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal the plaintext")
	}

	ok, err := CheckPassword("s3cret", digest)
	if err != nil {
		t.Fatalf("CheckPassword returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected match for correct password")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	digest, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	ok, err := CheckPassword("wrong", digest)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	ok, err := CheckPassword("s3cret", "not-a-bcrypt-digest")
	if err == nil {
		t.Fatalf("expected error for malformed digest")
	}
	if ok {
		t.Fatalf("malformed digest must never match")
	}
}

func TestHashPassword_SaltedDigests(t *testing.T) {
	a, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	b, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ (salt)")
	}
}

func TestHashBiometric_Deterministic(t *testing.T) {
	a := HashBiometric("fingerprint-blob")
	b := HashBiometric("fingerprint-blob")
	if a != b {
		t.Fatalf("same assertion must produce the same digest")
	}
	if len(a) != 64 || strings.ToLower(a) != a {
		t.Fatalf("expected lowercase hex sha-256, got %q", a)
	}
	if a == "fingerprint-blob" {
		t.Fatalf("digest must not equal the raw assertion")
	}
}

func TestCompareBiometric(t *testing.T) {
	stored := HashBiometric("fingerprint-blob")

	if !CompareBiometric(HashBiometric("fingerprint-blob"), stored) {
		t.Fatalf("expected equal digests to match")
	}
	if CompareBiometric(HashBiometric("other-blob"), stored) {
		t.Fatalf("expected different digests to mismatch")
	}
	if CompareBiometric("", "") {
		t.Fatalf("empty digests must never match")
	}
}
