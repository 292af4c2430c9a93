package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"historial-clinico-core/internal/infrastructure/database/postgres"
	"historial-clinico-core/internal/modules/auth/dto"
	"historial-clinico-core/internal/modules/auth/queries"
)

// AuthService orquesta login, logout y consulta del usuario autenticado
type AuthService struct {
	db             *postgres.Client
	sessionService *SessionService
}

// NewAuthService crea el servicio de autenticación
func NewAuthService(db *postgres.Client, sessionService *SessionService) *AuthService {
	return &AuthService{
		db:             db,
		sessionService: sessionService,
	}
}

// Login valida credenciales y abre una sesión.
// Credenciales inválidas y usuario inexistente devuelven el mismo error
// para no filtrar qué emails existen.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResult, error) {
	var (
		usuario      dto.UsuarioInfo
		passwordHash string
	)

	err := s.db.QueryRow(ctx, queries.UsuarioQueries.GetUsuarioByEmail, req.Email).Scan(
		&usuario.ID, &usuario.Email, &usuario.Nombre, &passwordHash,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, dto.NewAuthError("INVALID_CREDENTIALS", "Email o contraseña incorrectos", nil)
		}
		return nil, fmt.Errorf("error consultando usuario: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return nil, dto.NewAuthError("INVALID_CREDENTIALS", "Email o contraseña incorrectos", nil)
	}

	token, session, err := s.sessionService.CreateSession(ctx, &usuario, ipAddress, userAgent)
	if err != nil {
		return nil, fmt.Errorf("error creando sesión: %w", err)
	}

	fmt.Printf("[AUTH] ✅ Login exitoso: %s\n", usuario.Email)

	return &dto.LoginResult{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Usuario:   usuario,
	}, nil
}

// Logout cierra la sesión asociada al token. Idempotente.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessionService.DeleteSession(ctx, token)
}

// Me devuelve el usuario y la sesión asociados a un token válido.
// Los datos del usuario se releen de PostgreSQL para no servir un
// email o nombre desactualizados desde el hash de Redis; si la fila
// ya no existe la sesión deja de ser válida.
func (s *AuthService) Me(ctx context.Context, token string) (*dto.MeResult, error) {
	session, err := s.sessionService.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}

	var usuario dto.UsuarioInfo
	err = s.db.QueryRow(ctx, queries.UsuarioQueries.GetUsuarioByID, session.UserIDInt()).Scan(
		&usuario.ID, &usuario.Email, &usuario.Nombre,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			if delErr := s.sessionService.DeleteSession(ctx, token); delErr != nil {
				fmt.Printf("[AUTH] ⚠️ No se pudo revocar sesión de usuario eliminado: %v\n", delErr)
			}
			return nil, dto.NewAuthError("SESSION_INVALID", "La sesión ya no es válida", nil)
		}
		return nil, fmt.Errorf("error consultando usuario: %w", err)
	}

	return &dto.MeResult{
		Usuario: usuario,
		Session: dto.SessionInfo{
			Token:     token,
			ExpiresAt: session.ExpiresAt,
		},
	}, nil
}

// HashPassword genera el hash bcrypt de una contraseña (seed de usuarios)
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// StartSessionJanitor lanza la limpieza periódica del fallback PostgreSQL
func (s *AuthService) StartSessionJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := s.sessionService.CleanExpiredSessions(ctx); err != nil {
				fmt.Printf("[AUTH] ⚠️ Limpieza de sesiones expiradas fallida: %v\n", err)
			}
			cancel()
		}
	}()
}
