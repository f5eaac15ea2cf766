package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenAuth mints and verifies the session tokens the gateway hands out.
// It is created once at startup and passed around explicitly.
type TokenAuth struct {
	JWTAuth *jwtauth.JWTAuth
	exp     time.Duration
}

func NewTokenAuth(secret []byte, exp time.Duration) *TokenAuth {
	return &TokenAuth{
		JWTAuth: jwtauth.New("HS256", secret, nil),
		exp:     exp,
	}
}

// GenerateToken returns a signed token for the given user. Every token
// carries a unique jti so it can be revoked individually on logout.
func (t *TokenAuth) GenerateToken(userID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"jti":      uuid.NewString(),
		"exp":      now.Add(t.exp).Unix(),
		"iat":      now.Unix(),
	}
	_, tokenString, err := t.JWTAuth.Encode(claims)
	return tokenString, err
}

// Helper functions to extract claims, can be used in middleware or handlers
func GetUserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetUsernameFromClaims(claims jwt.MapClaims) (string, error) {
	username, ok := claims["username"].(string)
	if !ok {
		return "", errors.New("username claim is missing or not a string")
	}
	return username, nil
}

func GetTokenIDFromClaims(claims jwt.MapClaims) (string, error) {
	jti, ok := claims["jti"].(string)
	if !ok {
		return "", errors.New("jti claim is missing or not a string")
	}
	return jti, nil
}
