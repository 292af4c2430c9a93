package middleware

import (
	"go.uber.org/fx"

	"historial-clinico-core/internal/shared/middleware/auth"
	"historial-clinico-core/internal/shared/middleware/security"
)

// Module middlewares compartidos de la aplicación
var Module = fx.Options(
	fx.Provide(
		auth.NewSessionMiddleware,
		security.NewCORSMiddleware,
	),
)
