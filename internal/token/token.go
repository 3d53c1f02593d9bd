// Package token signs and verifies the bearer credentials used by the API.
// A token is an HS256-signed JWT carrying the user's email claim. Tokens are
// valid indefinitely unless a TTL is configured, in which case an exp claim
// is issued and enforced at verification.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSecret is returned when the signing secret is not configured.
	ErrNoSecret = errors.New("token signing secret is not configured")
	// ErrInvalidToken is returned when a token is malformed, carries a bad
	// signature, has expired, or lacks the email claim.
	ErrInvalidToken = errors.New("invalid token")
)

// Issuer signs and verifies bearer tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer. A zero ttl issues tokens without an expiry.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token carrying the given email claim.
func (i *Issuer) Issue(email string) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrNoSecret
	}

	claims := jwt.MapClaims{
		"email": email,
	}
	if i.ttl != 0 {
		claims["exp"] = time.Now().Add(i.ttl).Unix()
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return t.SignedString(i.secret)
}

// Verify validates the signature and structure of a token and returns the
// email claim it carries.
func (i *Issuer) Verify(tok string) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrNoSecret
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidToken
	}

	return email, nil
}
