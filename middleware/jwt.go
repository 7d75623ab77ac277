package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of the session cookie. The account itself lives
// in the cache under the session id; AccountID is 0 for visitors.
type Claims struct {
	SessionID string `json:"sid"`
	AccountID int64  `json:"account_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session cookie value.
func GenerateToken(sessionID string, accountID int64, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		SessionID: sessionID,
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a cookie value and returns the claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
