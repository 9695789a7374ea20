//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("round trip keeps the user id", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)

		token, err := svc.GenerateToken(42)
		require.NoError(t, err)

		userID, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)

		token, err := svc.GenerateToken(1)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(1)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("token from another issuer", func(t *testing.T) {
		claims := gojwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   "1",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("disabled without secret", func(t *testing.T) {
		assert.False(t, jwt.NewService("", time.Hour).Enabled())
		assert.True(t, jwt.NewService("secret", time.Hour).Enabled())
	})
}
