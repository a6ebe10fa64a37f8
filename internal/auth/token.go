package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

func signingKey() []byte {
	key := os.Getenv("SESSION_SIGNING_KEY")
	if key == "" {
		key = "fieldflow-dev-signing-key"
	}
	return []byte(key)
}

// IssueToken wraps a session id in a signed bearer token.
func IssueToken(sessionID, operatorID string, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"sub": operatorID,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString(signingKey())
}

// ParseToken validates a bearer token and returns the session id.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}
