package consultas

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"historial-clinico-core/internal/modules/consultas/controllers"
	"historial-clinico-core/internal/modules/consultas/services"
	authmw "historial-clinico-core/internal/shared/middleware/auth"
)

// Module módulo de consultas médicas
var Module = fx.Options(
	fx.Provide(
		services.NewConsultaService,
		controllers.NewConsultaController,
	),
)

// RegisterConsultaRoutes registra las rutas de consultas (protegidas)
func RegisterConsultaRoutes(api *gin.RouterGroup, ctrl *controllers.ConsultaController, sessionMW *authmw.SessionMiddleware) {
	api.POST("/pacientes/:id/consultas", sessionMW.RequireSession(), ctrl.Registrar)

	consultas := api.Group("/consultas", sessionMW.RequireSession())
	{
		consultas.GET("", ctrl.Listar)
		consultas.GET("/estadisticas", ctrl.Estadisticas)
	}
}
