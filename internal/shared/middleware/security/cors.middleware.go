package security

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"historial-clinico-core/internal/app/config"
)

// CORSMiddleware configura CORS según el entorno
type CORSMiddleware struct {
	config *config.Config
}

// NewCORSMiddleware crea el middleware CORS
func NewCORSMiddleware(cfg *config.Config) *CORSMiddleware {
	return &CORSMiddleware{
		config: cfg,
	}
}

// Handler retorna el handler gin de CORS
func (m *CORSMiddleware) Handler() gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     m.config.CORS.AllowedOrigins,
		AllowMethods:     m.config.CORS.AllowedMethods,
		AllowHeaders:     m.config.CORS.AllowedHeaders,
		AllowCredentials: m.config.CORS.AllowCredentials,
		MaxAge:           time.Duration(m.config.CORS.MaxAge) * time.Second,
	}

	// En desarrollo se acepta cualquier origen local
	if m.config.Environment == "development" {
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}

	return cors.New(corsConfig)
}
