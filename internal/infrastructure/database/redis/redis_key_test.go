package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey_Convencion(t *testing.T) {
	rkg := NewRedisKeyGenerator()

	key, err := rkg.GenerateKey("auth_session", "abc-123")
	require.NoError(t, err)
	assert.Equal(t, "historial_clinico_auth_session:abc-123", key)
}

func TestGenerateKey_PatternDesconocido(t *testing.T) {
	rkg := NewRedisKeyGenerator()

	_, err := rkg.GenerateKey("pattern_inexistente", "x")
	require.Error(t, err)
}

func TestHelpersDeClaves(t *testing.T) {
	rkg := NewRedisKeyGenerator()

	assert.Equal(t, "historial_clinico_auth_session:tok", rkg.SessionKey("tok"))
	assert.Equal(t, "historial_clinico_auth_blacklist:tok", rkg.BlacklistKey("tok"))
	assert.Equal(t, "historial_clinico_auth_user_sessions:7", rkg.UserSessionsKey("7"))
	assert.Equal(t, "historial_clinico_cache_paciente:12345678", rkg.PacienteCacheKey("12345678"))
}
