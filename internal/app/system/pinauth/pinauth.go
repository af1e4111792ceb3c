// Package pinauth implements the shared-secret PIN check that gates the admin UI.
//
// The configured secret is either a plain PIN or a bcrypt hash of one.
// Check is stateless: it issues no session and keeps no attempt counters.
package pinauth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DemoPIN is the well-known development PIN. Configuring it is rejected.
const DemoPIN = "1234"

// MinLength is the shortest plain PIN accepted by Validate.
const MinLength = 4

var (
	ErrEmptySecret = errors.New("auth PIN is not configured")
	ErrDemoSecret  = errors.New("auth PIN must not be the demo value 1234")
	ErrShortSecret = errors.New("auth PIN must be at least 4 characters")
)

// Gate compares submitted PINs against one configured secret.
type Gate struct {
	secret string
	hashed bool
}

// New returns a Gate for secret. Secrets with a bcrypt prefix are treated as hashes.
func New(secret string) *Gate {
	secret = strings.TrimSpace(secret)
	return &Gate{secret: secret, hashed: IsHash(secret)}
}

// Check reports whether pin matches the configured secret.
func (g *Gate) Check(pin string) bool {
	if g == nil || g.secret == "" || pin == "" {
		return false
	}
	if g.hashed {
		return bcrypt.CompareHashAndPassword([]byte(g.secret), []byte(pin)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(g.secret), []byte(pin)) == 1
}

// Validate checks a secret at startup.
func Validate(secret string) error {
	secret = strings.TrimSpace(secret)
	switch {
	case secret == "":
		return ErrEmptySecret
	case IsHash(secret):
		_, err := bcrypt.Cost([]byte(secret))
		return err
	case secret == DemoPIN:
		return ErrDemoSecret
	case len(secret) < MinLength:
		return ErrShortSecret
	}
	return nil
}

// Hash returns a bcrypt hash suitable for use as the configured secret.
func Hash(pin string) (string, error) {
	if strings.TrimSpace(pin) == "" {
		return "", ErrEmptySecret
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IsHash reports whether s looks like a bcrypt hash.
func IsHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
