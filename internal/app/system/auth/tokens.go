// internal/app/system/auth/tokens.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in login tokens.
type Claims struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies login tokens. There is no refresh
// mechanism; a token is valid until its fixed expiry passes.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewTokenIssuer builds an issuer from the configured signing secret and
// token lifetime.
func NewTokenIssuer(secret string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), expiry: expiry}
}

// Issue signs an HS256 token embedding the user's email, name, and id.
func (t *TokenIssuer) Issue(email, name, userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:  email,
		Name:   name,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ErrInvalidToken is returned when a token fails signature or expiry checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// Verify parses and validates a token string and returns its claims.
func (t *TokenIssuer) Verify(tokenStr string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
