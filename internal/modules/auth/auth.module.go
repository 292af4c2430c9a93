package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"historial-clinico-core/internal/modules/auth/controllers"
	"historial-clinico-core/internal/modules/auth/services"
	authmw "historial-clinico-core/internal/shared/middleware/auth"
)

// Module módulo de autenticación y sesiones
var Module = fx.Options(
	fx.Provide(
		services.NewSessionService,
		services.NewAuthService,
		controllers.NewAuthController,
	),
	fx.Invoke(StartSessionJanitor),
)

// StartSessionJanitor arranca la limpieza periódica del fallback de sesiones
func StartSessionJanitor(authService *services.AuthService) {
	authService.StartSessionJanitor(time.Hour)
}

// RegisterAuthRoutes registra las rutas de autenticación
func RegisterAuthRoutes(api *gin.RouterGroup, ctrl *controllers.AuthController, sessionMW *authmw.SessionMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Login)
		authGroup.POST("/logout", ctrl.Logout)
		authGroup.GET("/me", sessionMW.RequireSession(), ctrl.Me)
	}
}
