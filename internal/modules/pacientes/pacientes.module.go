package pacientes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"historial-clinico-core/internal/modules/pacientes/controllers"
	"historial-clinico-core/internal/modules/pacientes/services"
	authmw "historial-clinico-core/internal/shared/middleware/auth"
)

// Module módulo de pacientes
var Module = fx.Options(
	fx.Provide(
		services.NewPacienteRegistroService,
		services.NewPacienteSearchService,
		controllers.NewPacienteController,
	),
)

// RegisterPacienteRoutes registra las rutas de pacientes (protegidas)
func RegisterPacienteRoutes(api *gin.RouterGroup, ctrl *controllers.PacienteController, sessionMW *authmw.SessionMiddleware) {
	pacientes := api.Group("/pacientes", sessionMW.RequireSession())
	{
		pacientes.GET("", ctrl.Buscar)
		pacientes.POST("", ctrl.Registrar)
		// count antes de :id para que gin no lo capture como parámetro
		pacientes.GET("/count", ctrl.Count)
		pacientes.GET("/:id", ctrl.Detalle)
	}
}
