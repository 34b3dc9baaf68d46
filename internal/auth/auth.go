// Package auth verifies bearer tokens issued by the identity provider and
// exposes the verified principal to request handlers.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds token verification parameters.
type Config struct {
	Secret string
	Issuer string
}

// Principal is the verified identity derived from a bearer token. Handlers
// must use Principal.UID as the authorization subject, never a client-supplied
// uid field.
type Principal struct {
	UID       string
	Email     string
	ExpiresAt time.Time
}

// ErrMissingToken is returned when the Authorization header is absent or not
// of the literal form "Bearer <token>".
var ErrMissingToken = errors.New("missing or malformed authorization header")

// ErrInvalidToken wraps provider rejections: expired, malformed or revoked tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// Verify validates a bearer token and returns the principal it asserts.
func Verify(token string, cfg Config) (*Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if subject == "" {
		return nil, ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing expiry", ErrInvalidToken)
	}

	return &Principal{
		UID:       subject,
		Email:     email,
		ExpiresAt: exp.Time,
	}, nil
}
