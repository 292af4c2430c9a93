package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"historial-clinico-core/internal/app/config"
	"historial-clinico-core/internal/infrastructure/database/postgres"
	"historial-clinico-core/internal/infrastructure/database/redis"
	"historial-clinico-core/internal/modules/auth/dto"
	"historial-clinico-core/internal/modules/auth/queries"
)

// SessionService gestiona el ciclo de vida de las sesiones.
// Redis es la fuente primaria (hash con TTL deslizante), PostgreSQL el fallback.
// Toda mutación de estado de sesión pasa por este servicio.
type SessionService struct {
	redisClient *redis.Client
	db          *postgres.Client
	cfg         config.SessionConfig
}

// NewSessionService crea el servicio de sesiones
func NewSessionService(redisClient *redis.Client, db *postgres.Client, cfg *config.Config) *SessionService {
	return &SessionService{
		redisClient: redisClient,
		db:          db,
		cfg:         cfg.Session,
	}
}

// CreateSession crea una sesión nueva en Redis con fallback PostgreSQL.
// El TTL de la clave Redis es la ventana de inactividad; expires_at marca
// el límite absoluto de la sesión.
func (s *SessionService) CreateSession(ctx context.Context, usuario *dto.UsuarioInfo, ipAddress, userAgent string) (string, *dto.SessionData, error) {
	token := uuid.New().String()
	now := time.Now()
	expiresAt := now.Add(s.cfg.TTL)

	sessionData := &dto.SessionData{
		UserID:       strconv.FormatInt(usuario.ID, 10),
		Email:        usuario.Email,
		Nombre:       usuario.Nombre,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
		CreatedAt:    now.Format(time.RFC3339),
		LastActivity: now.Format(time.RFC3339),
		ExpiresAt:    expiresAt.Format(time.RFC3339),
	}

	sessionKey := s.redisClient.Keys().SessionKey(token)
	userSessionsKey := s.redisClient.Keys().UserSessionsKey(sessionData.UserID)

	// Pipeline: hash de sesión + índice por usuario en un solo round-trip
	pipe := s.redisClient.Client().Pipeline()
	pipe.HSet(ctx, sessionKey, sessionData.ToMap())
	pipe.Expire(ctx, sessionKey, s.cfg.InactivityWindow)
	pipe.SAdd(ctx, userSessionsKey, token)
	pipe.Expire(ctx, userSessionsKey, s.cfg.TTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return "", nil, fmt.Errorf("error creando sesión en Redis: %w", err)
	}

	// Fallback PostgreSQL (best-effort, no bloquea el login)
	if err := s.db.Exec(ctx, queries.UsuarioQueries.CreateSession,
		token, usuario.ID, ipAddress, userAgent, expiresAt); err != nil {
		fmt.Printf("[SESSION] ⚠️ Fallback PostgreSQL no disponible: %v\n", err)
	}

	return token, sessionData, nil
}

// GetSession recupera y valida una sesión. Cada lectura exitosa renueva
// la ventana de inactividad (TTL deslizante). Orden de verificación:
// blacklist → Redis → fallback PostgreSQL → expiración absoluta.
func (s *SessionService) GetSession(ctx context.Context, token string) (*dto.SessionData, error) {
	if token == "" {
		return nil, dto.NewAuthError("TOKEN_MISSING", "Token de sesión requerido", nil)
	}

	// 1. Verificar blacklist (tokens revocados por logout)
	blacklisted, err := s.redisClient.Exists(ctx, s.redisClient.Keys().BlacklistKey(token))
	if err == nil && blacklisted {
		return nil, dto.NewAuthError("SESSION_REVOKED", "La sesión fue cerrada", nil)
	}

	sessionKey := s.redisClient.Keys().SessionKey(token)

	// 2. Redis primero
	data, err := s.redisClient.HGetAll(ctx, sessionKey)
	if err != nil || len(data) == 0 {
		// 3. Fallback PostgreSQL + resincronización a Redis
		session, pgErr := s.getSessionFromPostgres(ctx, token)
		if pgErr != nil {
			return nil, dto.NewAuthError("SESSION_NOT_FOUND", "Sesión no encontrada o expirada", nil)
		}
		s.resyncToRedis(ctx, token, session)
		data = map[string]string{}
		for k, v := range session.ToMap() {
			data[k] = v.(string)
		}
	}

	session := dto.SessionFromMap(data)

	// 4. Verificar expiración absoluta
	expiresAt, err := time.Parse(time.RFC3339, session.ExpiresAt)
	if err != nil || time.Now().After(expiresAt) {
		_ = s.DeleteSession(ctx, token)
		return nil, dto.NewAuthError("SESSION_EXPIRED", "La sesión expiró", nil)
	}

	// 5. Renovar ventana de inactividad y marcar actividad
	now := time.Now()
	session.LastActivity = now.Format(time.RFC3339)

	pipe := s.redisClient.Client().Pipeline()
	pipe.HSet(ctx, sessionKey, "last_activity", session.LastActivity)
	pipe.Expire(ctx, sessionKey, s.cfg.InactivityWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		fmt.Printf("[SESSION] ⚠️ No se pudo renovar la ventana de inactividad: %v\n", err)
	}

	// Actualización asíncrona del fallback
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.db.Exec(bgCtx, queries.UsuarioQueries.UpdateLastActivity, token)
	}()

	return session, nil
}

// DeleteSession cierra la sesión de forma idempotente: revocar un token
// ya revocado o inexistente no es un error.
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	sessionKey := s.redisClient.Keys().SessionKey(token)

	// Recuperar user_id antes de borrar para limpiar el índice
	userID, _ := s.redisClient.HGet(ctx, sessionKey, "user_id")

	pipe := s.redisClient.Client().Pipeline()
	pipe.Del(ctx, sessionKey)
	pipe.Set(ctx, s.redisClient.Keys().BlacklistKey(token), "1", s.cfg.TTL)
	if userID != "" {
		pipe.SRem(ctx, s.redisClient.Keys().UserSessionsKey(userID), token)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		fmt.Printf("[SESSION] ⚠️ Error limpiando sesión en Redis: %v\n", err)
	}

	if err := s.db.Exec(ctx, queries.UsuarioQueries.DeleteSession, token); err != nil {
		fmt.Printf("[SESSION] ⚠️ Error eliminando fallback PostgreSQL: %v\n", err)
	}

	return nil
}

// CleanExpiredSessions purga sesiones expiradas del fallback PostgreSQL
func (s *SessionService) CleanExpiredSessions(ctx context.Context) error {
	return s.db.Exec(ctx, queries.UsuarioQueries.CleanExpiredSessions)
}

// getSessionFromPostgres recupera la sesión del fallback relacional
func (s *SessionService) getSessionFromPostgres(ctx context.Context, token string) (*dto.SessionData, error) {
	var (
		userID               int64
		email, nombre        string
		ipAddress, userAgent string
		createdAt, lastAct   time.Time
		expiresAt            time.Time
	)

	err := s.db.QueryRow(ctx, queries.UsuarioQueries.GetSessionByToken, token).Scan(
		&userID, &email, &nombre, &ipAddress, &userAgent,
		&createdAt, &lastAct, &expiresAt,
	)
	if err != nil {
		return nil, err
	}

	return &dto.SessionData{
		UserID:       strconv.FormatInt(userID, 10),
		Email:        email,
		Nombre:       nombre,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
		CreatedAt:    createdAt.Format(time.RFC3339),
		LastActivity: lastAct.Format(time.RFC3339),
		ExpiresAt:    expiresAt.Format(time.RFC3339),
	}, nil
}

// resyncToRedis restaura en Redis una sesión recuperada desde PostgreSQL
func (s *SessionService) resyncToRedis(ctx context.Context, token string, session *dto.SessionData) {
	sessionKey := s.redisClient.Keys().SessionKey(token)

	pipe := s.redisClient.Client().Pipeline()
	pipe.HSet(ctx, sessionKey, session.ToMap())
	pipe.Expire(ctx, sessionKey, s.cfg.InactivityWindow)
	pipe.SAdd(ctx, s.redisClient.Keys().UserSessionsKey(session.UserID), token)
	if _, err := pipe.Exec(ctx); err != nil {
		fmt.Printf("[SESSION] ⚠️ Resincronización a Redis fallida: %v\n", err)
	}
}
