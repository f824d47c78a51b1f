package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired marks a well-formed token whose exp claim is past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure: bad
	// signature, wrong algorithm, undecodable claims.
	ErrTokenInvalid = errors.New("token invalid")
)

// ClaimSubject is the single claim name carrying the user id. Every issuer
// writes it and every verifier reads it; no alternate claim is honored.
const ClaimSubject = "sub"

// TokenIssuer creates and verifies HS256 bearer tokens with a process-wide
// symmetric secret. Rotating the secret invalidates all issued tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttlMinutes int) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// TTL returns the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token for the given subject id, merging extra claims on
// top of sub/exp/iat. Extras cannot override the standard claims.
func (t *TokenIssuer) Issue(subjectID string, extra map[string]interface{}) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(t.ttl)

	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims[ClaimSubject] = subjectID
	claims["exp"] = exp.Unix()
	claims["iat"] = now.Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify checks the signature and expiry and returns the decoded claims
// unchanged. It performs no storage lookup; resolving the subject to a
// user record is the caller's concern.
func (t *TokenIssuer) Verify(raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tok.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Subject extracts the subject claim from a verified claim set. The empty
// string means the claim is absent or not a string.
func Subject(claims jwt.MapClaims) string {
	s, _ := claims[ClaimSubject].(string)
	return s
}
