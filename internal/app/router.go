package app

import (
	"net/http"

	"historial-clinico-core/internal/app/config"
	"historial-clinico-core/internal/infrastructure/logger"
	"historial-clinico-core/internal/modules/auth"
	authcontrollers "historial-clinico-core/internal/modules/auth/controllers"
	"historial-clinico-core/internal/modules/consultas"
	consultascontrollers "historial-clinico-core/internal/modules/consultas/controllers"
	"historial-clinico-core/internal/modules/historiales"
	historialescontrollers "historial-clinico-core/internal/modules/historiales/controllers"
	"historial-clinico-core/internal/modules/pacientes"
	pacientescontrollers "historial-clinico-core/internal/modules/pacientes/controllers"
	authmw "historial-clinico-core/internal/shared/middleware/auth"
	securitymw "historial-clinico-core/internal/shared/middleware/security"

	"github.com/gin-gonic/gin"
)

// NewRouter construye el engine con los middlewares base y los health checks
func NewRouter(cfg *config.Config, loggerMW *logger.LoggerMiddleware, corsMW *securitymw.CORSMiddleware) *gin.Engine {
	configureGinMode(cfg.Environment)

	// Router sin middleware por defecto para configuración propia
	r := gin.New()

	// Middlewares en orden de importancia
	r.Use(loggerMW.GinLogger())
	r.Use(loggerMW.GinRecovery())
	r.Use(corsMW.Handler())

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "healthy",
			},
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"status": "ready",
			},
		})
	})

	return r
}

// RegisterRoutes registra las rutas de todos los módulos bajo /api/v1
func RegisterRoutes(
	r *gin.Engine,
	sessionMW *authmw.SessionMiddleware,
	authCtrl *authcontrollers.AuthController,
	pacienteCtrl *pacientescontrollers.PacienteController,
	consultaCtrl *consultascontrollers.ConsultaController,
	historialCtrl *historialescontrollers.HistorialController,
) {
	apiV1 := r.Group("/api/v1")
	{
		auth.RegisterAuthRoutes(apiV1, authCtrl, sessionMW)
		pacientes.RegisterPacienteRoutes(apiV1, pacienteCtrl, sessionMW)
		consultas.RegisterConsultaRoutes(apiV1, consultaCtrl, sessionMW)
		historiales.RegisterHistorialRoutes(apiV1, historialCtrl, sessionMW)
	}
}

// configureGinMode configura el modo de Gin según el entorno
func configureGinMode(environment string) {
	switch environment {
	case "docker":
		gin.SetMode(gin.ReleaseMode)
	case "development":
		gin.SetMode(gin.DebugMode)
	default:
		// Modo debug por defecto para desarrollo local
		gin.SetMode(gin.DebugMode)
	}
}
