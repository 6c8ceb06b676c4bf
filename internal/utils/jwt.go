package utils // package utils provides helpers for session token creation

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionToken represents a signed JWT issued by this service after a
// successful backend login.  It wraps the backend's own bearer token so
// subsequent requests can be forwarded without the client having to hold
// two credentials.  The Token field contains the JWT string; Exp stores
// the expiration timestamp.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for a logged-in user.  It
// takes the signing secret, the backend user ID, display name, the role
// derived from the backend profile ("STAFF" or "CUSTOMER"), the backend
// bearer token and a TTL in minutes.  The JWT includes the subject (sub),
// role, name and backend token (btok) claims along with exp and iat.
func NewSessionToken(secret string, userID uint64, name, role, backendToken string, ttlMin int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": name,
		"role": role,
		"btok": backendToken,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}
