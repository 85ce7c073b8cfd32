package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for signing the session cookie
)

// ErrInvalidToken is returned when a cookie token fails signature or
// claim validation. Middleware treats the request as having no session.
var ErrInvalidToken = errors.New("invalid session token")

// SignSessionID wraps a session id in an HS256-signed JWT suitable for
// use as a cookie value. The token carries the session id as the "sid"
// claim plus issued-at and expiry timestamps. Signing the id keeps the
// cookie opaque and tamper-evident; the actual admin flag lives only
// in the server-side store.
func SignSessionID(secret, sid string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionID verifies a cookie token and extracts the session id.
// Tokens signed with a different secret, expired tokens and tokens
// using an unexpected signing method all fail with ErrInvalidToken.
func ParseSessionID(secret, token string) (string, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is ever used for session cookies; reject anything else.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}
