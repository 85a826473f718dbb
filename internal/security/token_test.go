package security

import (
	"testing"
	"time"

	"rentwheels-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", "rentwheels-test", time.Hour)

	provider := &domain.User{ID: 10, Email: "owner@test.com", Role: domain.RoleProvider, ProviderStatus: domain.ProviderStatusApproved}
	token, err := tm.GenerateAccessToken(provider)
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, domain.Actor{ID: 10, Role: domain.RoleProvider, ProviderStatus: domain.ProviderStatusApproved}, claims.Actor())
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_RenterHasNoProviderStatus(t *testing.T) {
	tm := NewTokenManager("test-secret", "rentwheels-test", time.Hour)

	token, err := tm.GenerateAccessToken(&domain.User{ID: 20, Role: domain.RoleUser, ProviderStatus: domain.ProviderStatusApproved})
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.ProviderStatus)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager("test-secret", "rentwheels-test", time.Hour)

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewTokenManager("other-secret", "rentwheels-test", time.Hour)
		token, err := other.GenerateAccessToken(&domain.User{ID: 1, Role: domain.RoleAdmin})
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		claims := UserClaims{
			UserID: 1,
			Type:   TokenTypeAccess,
			Role:   domain.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				Audience:  jwt.ClaimStrings{accessAudience},
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Unknown role", func(t *testing.T) {
		claims := UserClaims{
			UserID: 1,
			Type:   TokenTypeAccess,
			Role:   "superuser",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
				Audience:  jwt.ClaimStrings{accessAudience},
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Non-numeric subject", func(t *testing.T) {
		claims := UserClaims{
			Type: TokenTypeAccess,
			Role: domain.RoleUser,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "alice",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
				Audience:  jwt.ClaimStrings{accessAudience},
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Numeric subject fills the user id", func(t *testing.T) {
		claims := UserClaims{
			Type: TokenTypeAccess,
			Role: domain.RoleUser,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
				Audience:  jwt.ClaimStrings{accessAudience},
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		got, err := tm.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int32(42), got.UserID)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := tm.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
