package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// TokenIssuer signs and verifies auth tokens. Admin tokens are signed with a
// dedicated secret that falls back to the default secret when unset; all
// principal types share one token namespace.
type TokenIssuer struct {
	secret      []byte
	adminSecret []byte
	ttl         time.Duration
}

// NewTokenIssuer builds an issuer from the configured secrets.
func NewTokenIssuer(secret, adminSecret string, ttl time.Duration) *TokenIssuer {
	if adminSecret == "" {
		adminSecret = secret
	}
	return &TokenIssuer{
		secret:      []byte(secret),
		adminSecret: []byte(adminSecret),
		ttl:         ttl,
	}
}

// Issue creates a signed token for the given principal id. Admin tokens are
// signed with the admin secret.
func (t *TokenIssuer) Issue(subject string, admin bool) (string, error) {
	if subject == "" {
		return "", errors.New("token subject is required")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(t.ttl).Unix(),
	}
	key := t.secret
	if admin {
		key = t.adminSecret
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// Verify validates a token against the default secret, then the admin
// secret. The secret that verifies sets the admin hint; the hint narrows the
// lookup order downstream but does not decide the principal type.
func (t *TokenIssuer) Verify(tokenString string) (subject string, adminHint bool, err error) {
	subject, err = t.verifyWith(tokenString, t.secret)
	if err == nil {
		return subject, false, nil
	}
	subject, adminErr := t.verifyWith(tokenString, t.adminSecret)
	if adminErr == nil {
		return subject, true, nil
	}
	return "", false, err
}

func (t *TokenIssuer) verifyWith(tokenString string, key []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
