package credential

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashBiometric digests a raw biometric assertion with SHA-256 and returns
// the lowercase hex encoding. The digest is deliberately deterministic and
// unsalted so no raw biometric material needs to be retained; the same
// assertion always maps to the same digest. Without a per-attempt challenge
// the digest behaves as a static shared secret, which matches the wire
// contract this service has to honor.
func HashBiometric(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// CompareBiometric reports whether two biometric digests are equal.
func CompareBiometric(candidate, stored string) bool {
	return candidate != "" && candidate == stored
}
