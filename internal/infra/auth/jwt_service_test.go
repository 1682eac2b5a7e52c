package auth

import (
	"testing"
	"time"

	"canopy/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := jwtTestConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	roles := []string{"customer", "supplier"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token against the access secret
	token, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])

	gotRoles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Len(t, gotRoles, 2)

	// Validate refresh token against the refresh secret
	token, err = jwtService.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok = token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
	// Refresh tokens carry no roles
	_, hasRoles := claims["roles"]
	assert.False(t, hasRoles)
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := jwtTestConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	// Access token must not validate against the refresh secret
	_, err = jwtService.ValidateToken(accessToken, cfg.SecretKey.Refresh)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := jwtTestConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format", cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_ConfiguredTTLs(t *testing.T) {
	cfg := jwtTestConfig()
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.GetRefreshTokenDuration())
}
