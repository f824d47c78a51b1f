package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash is returned by Verify when the stored credential is not
// recognizable as a bcrypt hash at all. A wrong-but-well-formed hash is a
// plain mismatch, not an error.
var ErrMalformedHash = errors.New("stored credential is not a valid bcrypt hash")

// Hasher wraps bcrypt with a configurable work factor. The salt and cost
// are embedded in the hash output, so nothing is stored separately.
type Hasher struct {
	Cost int
}

func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{Cost: cost}
}

// Hash returns the bcrypt hash of plain. Two calls with the same input
// produce different hashes because each embeds a fresh random salt.
func (h Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compares plain against a stored bcrypt hash. The comparison is
// constant-time with respect to mismatches. It reports (false, nil) on a
// wrong password and ErrMalformedHash when stored is not parseable bcrypt.
func (h Hasher) Verify(plain, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrMalformedHash
}

// IsHash reports whether stored carries a bcrypt prefix. Pre-migration
// records may hold plaintext; the login path uses this to pick the legacy
// equality comparison and trigger a transparent rehash.
func IsHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}
