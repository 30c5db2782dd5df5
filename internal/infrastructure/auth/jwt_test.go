package auth

import (
	"testing"
	"time"

	"github.com/farmcore/backend/internal/domain/identity"
	"github.com/farmcore/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	cfg := config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: 168 * time.Hour,
		Issuer:     "test-issuer",
	}
	return NewJWTService(cfg)
}

func TestNewJWTService(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:     "test-secret",
		Expiration: 168 * time.Hour,
		Issuer:     "test-issuer",
	}

	svc := NewJWTService(cfg)

	assert.NotNil(t, svc)
	assert.Equal(t, []byte(cfg.Secret), svc.secret)
	assert.Equal(t, cfg.Expiration, svc.expiration)
	assert.Equal(t, cfg.Issuer, svc.issuer)
}

func TestGenerateToken(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	issued, err := svc.GenerateToken(userID, "owner@example.com", identity.RoleFarmOwner)

	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, "Bearer", issued.TokenType)
	assert.True(t, issued.ExpiresAt.After(time.Now()))
}

func TestValidateToken_Success(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	issued, err := svc.GenerateToken(userID, "owner@example.com", identity.RoleFarmOwner)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(issued.Token)

	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, string(identity.RoleFarmOwner), claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateToken_InvalidString(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateToken("not-a-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:     "a-completely-different-secret-key",
		Expiration: time.Hour,
		Issuer:     "test-issuer",
	})

	issued, err := other.GenerateToken(uuid.New(), "user@example.com", identity.RoleWorker)
	require.NoError(t, err)

	_, err = svc.ValidateToken(issued.Token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: -time.Minute,
		Issuer:     "test-issuer",
	})

	issued, err := svc.GenerateToken(uuid.New(), "user@example.com", identity.RoleWorker)
	require.NoError(t, err)

	_, err = svc.ValidateToken(issued.Token)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_RejectsUnsignedToken(t *testing.T) {
	svc := newTestJWTService()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.New().String()})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingUserID(t *testing.T) {
	svc := newTestJWTService()

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: "user@example.com",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(svc.secret)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)

	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestClaims_GetUserUUID(t *testing.T) {
	userID := uuid.New()
	claims := &Claims{UserID: userID.String()}

	parsed, err := claims.GetUserUUID()

	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestClaims_GetUserUUID_Invalid(t *testing.T) {
	claims := &Claims{UserID: "not-a-uuid"}

	_, err := claims.GetUserUUID()

	assert.Error(t, err)
}

func TestClaims_GetRole(t *testing.T) {
	claims := &Claims{Role: "admin"}

	assert.Equal(t, identity.RoleAdmin, claims.GetRole())
}

func TestClaims_GetRemainingTTL(t *testing.T) {
	t.Run("future expiration", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		assert.Greater(t, claims.GetRemainingTTL(), 55*time.Minute)
	})

	t.Run("past expiration returns zero", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		assert.Equal(t, time.Duration(0), claims.GetRemainingTTL())
	})

	t.Run("nil expiration returns zero", func(t *testing.T) {
		claims := &Claims{}
		assert.Equal(t, time.Duration(0), claims.GetRemainingTTL())
	})
}

func TestGetExpiration(t *testing.T) {
	svc := newTestJWTService()
	assert.Equal(t, 168*time.Hour, svc.GetExpiration())
}
