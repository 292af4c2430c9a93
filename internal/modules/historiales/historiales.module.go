package historiales

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"historial-clinico-core/internal/modules/historiales/controllers"
	"historial-clinico-core/internal/modules/historiales/services"
	authmw "historial-clinico-core/internal/shared/middleware/auth"
)

// Module módulo de historiales clínicos y exportaciones
var Module = fx.Options(
	fx.Provide(
		services.NewHistorialService,
		services.NewPDFExportService,
		services.NewWordExportService,
		services.NewExportAuditService,
		controllers.NewHistorialController,
	),
)

// RegisterHistorialRoutes registra las rutas de historiales (protegidas)
func RegisterHistorialRoutes(api *gin.RouterGroup, ctrl *controllers.HistorialController, sessionMW *authmw.SessionMiddleware) {
	historiales := api.Group("/historiales", sessionMW.RequireSession())
	{
		historiales.GET("", ctrl.Listado)
		historiales.GET("/:id", ctrl.Expediente)
		historiales.GET("/:id/export/pdf", ctrl.ExportarPDF)
		historiales.GET("/:id/export/word", ctrl.ExportarWord)
	}
}
