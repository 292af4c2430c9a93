package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "historial_clinico", cfg.Database.Database)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "historial_clinico_auditoria", cfg.MongoDB.Database)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Session.InactivityWindow)
	assert.True(t, cfg.CORS.AllowCredentials)
}

func TestNewConfig_EntornoInvalido(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entorno no soportado")
}

func TestNewConfig_VentanaInactividadMayorQueTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "60")
	t.Setenv("SESSION_INACTIVITY_WINDOW", "120")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_INACTIVITY_WINDOW")
}

func TestNewConfig_OverridesDeEntorno(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_NAME", "historial_test")
	t.Setenv("SESSION_INACTIVITY_WINDOW", "600")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "historial_test", cfg.Database.Database)
	assert.Equal(t, 10*time.Minute, cfg.Session.InactivityWindow)
}

func TestGetEnvStringSlice(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local,http://b.local")

	valores := getEnvStringSlice("CORS_ALLOWED_ORIGINS", nil)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, valores)
}
