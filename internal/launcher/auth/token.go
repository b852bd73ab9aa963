package auth

import (
	"time"

	"github.com/derol/majestic-launcher/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the payload of the persisted session token: the public
// fields of the authenticated user. Tokens carry no expiry; a session lives
// until an explicit logout.
type sessionClaims struct {
	jwt.RegisteredClaims
	Login string `json:"login"`
	Email string `json:"email"`
}

func issueSessionToken(s *Session, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Login: s.Login,
		Email: s.Email,
	})
	return token.SignedString(secret)
}

// parseSessionToken recovers a Session from a stored token. A malformed,
// tampered or otherwise unverifiable blob yields common.ErrInvalidSessionToken.
func parseSessionToken(tokenString string, secret []byte) (*Session, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, common.ErrInvalidSessionToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidSessionToken
	}

	return &Session{Login: claims.Login, Email: claims.Email}, nil
}
