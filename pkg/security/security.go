package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const (
	TOKEN_KEY = "Authorization"
)

// TokenClaims is the session identity carried by every authenticated request.
// User stays stable for the lifetime of the account; anonymous sessions get a
// freshly minted id at sign-in and keep it until the token expires.
type TokenClaims struct {
	User       string `json:"u"`
	Anonymous  bool   `json:"anon"`
	ExpireTime int64  `json:"exp"`
	NotBefore  int64  `json:"nbf"`
}

func NewTokenClaims(userID string, anonymous bool, expireTime int64) TokenClaims {
	return TokenClaims{
		User:       userID,
		Anonymous:  anonymous,
		ExpireTime: expireTime,
		NotBefore:  time.Now().Unix() - 1,
	}
}

func (t TokenClaims) GetUser() string {
	return t.User
}

var (
	ErrInvalidJWT = errors.New("invalid token")
)

func GenerateJWT(info TokenClaims, signKey []byte) (string, error) {
	claims := jwt.MapClaims{
		"u":    info.User,
		"anon": info.Anonymous,
		"exp":  info.ExpireTime,
		"nbf":  info.NotBefore,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signKey)
}

func VerifyToken(tokenString string, key []byte) (*TokenClaims, error) {
	claims, err := ParseJWT(tokenString, key)
	if err != nil {
		return nil, err
	}

	if claims.ExpireTime < time.Now().Unix() || claims.NotBefore > time.Now().Unix() {
		return nil, fmt.Errorf("expired token, %w", ErrInvalidJWT)
	}

	return claims, nil
}

func ParseJWT(tokenString string, key []byte) (*TokenClaims, error) {
	result := &TokenClaims{}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v, %w", t.Header["alg"], ErrInvalidJWT)
		}
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s, %w", err.Error(), ErrInvalidJWT)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWT
	}

	if u, ok := claims["u"].(string); ok {
		result.User = u
	}
	if anon, ok := claims["anon"].(bool); ok {
		result.Anonymous = anon
	}
	if exp, ok := claims["exp"].(float64); ok {
		result.ExpireTime = int64(exp)
	}
	if nbf, ok := claims["nbf"].(float64); ok {
		result.NotBefore = int64(nbf)
	}

	if result.User == "" {
		return nil, ErrInvalidJWT
	}

	return result, nil
}
