package redis

import (
	"fmt"
	"strings"
)

// RedisKeyGenerator genera y valida claves Redis según las convenciones del proyecto
type RedisKeyGenerator struct{}

// NewRedisKeyGenerator crea una nueva instancia del generador
func NewRedisKeyGenerator() *RedisKeyGenerator {
	return &RedisKeyGenerator{}
}

// RedisKeyPattern define los patterns estándar de claves
// Pattern: historial_clinico_{dominio}_{contexto}:{identificador}
type RedisKeyPattern struct {
	Domain  string // auth, cache
	Context string // session, blacklist, user_sessions, paciente
	TTL     int    // TTL en segundos, 0 = sin expiración
}

// Patterns predefinidos según las convenciones del proyecto
var RedisKeyPatterns = map[string]RedisKeyPattern{
	// Sesión principal: TTL = ventana de inactividad, renovada en cada request válido
	"auth_session": {Domain: "auth", Context: "session", TTL: 300},
	// Tokens revocados por logout
	"auth_blacklist": {Domain: "auth", Context: "blacklist", TTL: 3600},
	// Índice de sesiones por usuario
	"auth_user_sessions": {Domain: "auth", Context: "user_sessions", TTL: 3600},
	// Cache de pacientes consultados recientemente
	"cache_paciente": {Domain: "cache", Context: "paciente", TTL: 3600},
}

// GenerateKey genera una clave Redis según la convención:
// historial_clinico_{dominio}_{contexto}:{identificador}
func (rkg *RedisKeyGenerator) GenerateKey(patternName string, identifier ...string) (string, error) {
	pattern, exists := RedisKeyPatterns[patternName]
	if !exists {
		return "", fmt.Errorf("pattern Redis no encontrado: %s", patternName)
	}

	prefix := fmt.Sprintf("historial_clinico_%s_%s", pattern.Domain, pattern.Context)

	if len(identifier) > 0 {
		identifierStr := strings.Join(identifier, "_")
		return fmt.Sprintf("%s:%s", prefix, identifierStr), nil
	}

	return prefix, nil
}

// SessionKey clave de la sesión principal
func (rkg *RedisKeyGenerator) SessionKey(token string) string {
	key, _ := rkg.GenerateKey("auth_session", token)
	return key
}

// BlacklistKey clave de blacklist de tokens revocados
func (rkg *RedisKeyGenerator) BlacklistKey(token string) string {
	key, _ := rkg.GenerateKey("auth_blacklist", token)
	return key
}

// UserSessionsKey índice de sesiones activas de un usuario
func (rkg *RedisKeyGenerator) UserSessionsKey(userID string) string {
	key, _ := rkg.GenerateKey("auth_user_sessions", userID)
	return key
}

// PacienteCacheKey clave de cache de un paciente por DNI
func (rkg *RedisKeyGenerator) PacienteCacheKey(dni string) string {
	key, _ := rkg.GenerateKey("cache_paciente", dni)
	return key
}
