package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"historial-clinico-core/internal/modules/auth/dto"
	"historial-clinico-core/internal/modules/auth/services"
)

// Claves de contexto inyectadas por el middleware
const (
	ContextSessionKey = "session"
	ContextUserIDKey  = "user_id"
)

// SessionMiddleware protege rutas validando el token de sesión.
// Cada request válido renueva la ventana de inactividad de la sesión.
type SessionMiddleware struct {
	sessionService *services.SessionService
}

// NewSessionMiddleware crea el middleware de sesión
func NewSessionMiddleware(sessionService *services.SessionService) *SessionMiddleware {
	return &SessionMiddleware{
		sessionService: sessionService,
	}
}

// RequireSession valida el token Bearer y anexa la sesión al contexto
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token de sesión requerido",
				"details": gin.H{
					"code": "TOKEN_MISSING",
				},
			})
			return
		}

		session, err := m.sessionService.GetSession(c.Request.Context(), token)
		if err != nil {
			code := "SESSION_INVALID"
			message := "Sesión inválida o expirada"
			if authErr, ok := err.(*dto.AuthError); ok {
				code = authErr.Code
				message = authErr.Message
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": message,
				"details": gin.H{
					"code": code,
				},
			})
			return
		}

		c.Set(ContextSessionKey, session)
		c.Set(ContextUserIDKey, session.UserIDInt())
		c.Next()
	}
}

// SessionFromContext recupera la sesión anexada por RequireSession
func SessionFromContext(c *gin.Context) (*dto.SessionData, bool) {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*dto.SessionData)
	return session, ok
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
