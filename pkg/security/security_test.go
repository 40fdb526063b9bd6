package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testKey = []byte("unit-test-sign-key")

func Test_GenerateAndVerify(t *testing.T) {
	claims := NewTokenClaims("user-1", false, time.Now().Add(time.Hour).Unix())

	token, err := GenerateJWT(claims, testKey)
	assert.NoError(t, err)

	parsed, err := VerifyToken(token, testKey)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", parsed.User)
	assert.False(t, parsed.Anonymous)
}

func Test_VerifyExpired(t *testing.T) {
	claims := NewTokenClaims("user-1", true, time.Now().Add(-time.Minute).Unix())

	token, err := GenerateJWT(claims, testKey)
	assert.NoError(t, err)

	_, err = VerifyToken(token, testKey)
	assert.ErrorIs(t, err, ErrInvalidJWT)
}

func Test_VerifyWrongKey(t *testing.T) {
	claims := NewTokenClaims("user-1", false, time.Now().Add(time.Hour).Unix())

	token, err := GenerateJWT(claims, testKey)
	assert.NoError(t, err)

	_, err = VerifyToken(token, []byte("another-key"))
	assert.ErrorIs(t, err, ErrInvalidJWT)
}
