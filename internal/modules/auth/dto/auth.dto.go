package dto

import (
	"fmt"
	"strconv"
)

// LoginRequest datos de conexión
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UsuarioInfo información pública del usuario autenticado
type UsuarioInfo struct {
	ID     int64  `json:"id_usuario"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
}

// SessionInfo información de la sesión activa
type SessionInfo struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// LoginResult respuesta de un login exitoso
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expires_at"`
	Usuario   UsuarioInfo `json:"usuario"`
}

// MeResult respuesta del endpoint /me
type MeResult struct {
	Usuario UsuarioInfo `json:"usuario"`
	Session SessionInfo `json:"session"`
}

// SessionData datos de sesión almacenados en Redis (hash) y PostgreSQL (fallback)
type SessionData struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Nombre       string `json:"nombre"`
	IPAddress    string `json:"ip_address"`
	UserAgent    string `json:"user_agent"`
	CreatedAt    string `json:"created_at"`
	LastActivity string `json:"last_activity"`
	ExpiresAt    string `json:"expires_at"`
}

// ToMap convierte la sesión a map para almacenamiento en hash Redis
func (s *SessionData) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"user_id":       s.UserID,
		"email":         s.Email,
		"nombre":        s.Nombre,
		"ip_address":    s.IPAddress,
		"user_agent":    s.UserAgent,
		"created_at":    s.CreatedAt,
		"last_activity": s.LastActivity,
		"expires_at":    s.ExpiresAt,
	}
}

// SessionFromMap reconstruye la sesión desde un hash Redis
func SessionFromMap(data map[string]string) *SessionData {
	return &SessionData{
		UserID:       data["user_id"],
		Email:        data["email"],
		Nombre:       data["nombre"],
		IPAddress:    data["ip_address"],
		UserAgent:    data["user_agent"],
		CreatedAt:    data["created_at"],
		LastActivity: data["last_activity"],
		ExpiresAt:    data["expires_at"],
	}
}

// UserIDInt retorna el id de usuario como entero
func (s *SessionData) UserIDInt() int64 {
	id, _ := strconv.ParseInt(s.UserID, 10, 64)
	return id
}

// AuthError error de autenticación con código máquina
type AuthError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAuthError crea un nuevo error de autenticación
func NewAuthError(code, message string, details map[string]interface{}) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Details: details,
	}
}
