// Package cookie issues and parses the portal session cookie. The cookie
// carries only a signed session ID; the session itself lives in the store.
package cookie

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Name is the session cookie name.
const Name = "portal_session"

// Issue mints a session cookie wrapping sid in an HS256-signed token.
func Issue(sid, secret string, ttl time.Duration) (*http.Cookie, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     Name,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Expire returns a cookie that removes the session cookie from the browser.
func Expire() *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionID extracts and verifies the session ID from the request cookie.
// Absent, expired, or tampered cookies yield ("", false); the caller treats
// that as an anonymous request, not an error.
func SessionID(r *http.Request, secret string) (string, bool) {
	c, err := r.Cookie(Name)
	if err != nil || c.Value == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(c.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}

	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}
