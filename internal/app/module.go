package app

import (
	"context"

	"historial-clinico-core/internal/app/bootstrap"
	"historial-clinico-core/internal/app/config"
	"historial-clinico-core/internal/infrastructure/database"
	"historial-clinico-core/internal/infrastructure/logger"
	"historial-clinico-core/internal/modules/auth"
	"historial-clinico-core/internal/modules/consultas"
	"historial-clinico-core/internal/modules/historiales"
	"historial-clinico-core/internal/modules/pacientes"
	"historial-clinico-core/internal/shared/middleware"

	"go.uber.org/fx"
)

var AppModule = fx.Options(
	// Configuración (debe proveerse primero)
	fx.Provide(config.NewConfig),
	fx.Provide(config.NewPostgresConfig),
	fx.Provide(config.NewRedisConfig),
	fx.Provide(config.NewMongoConfig),

	// Infraestructura
	database.Module,
	logger.Module,

	// Middlewares compartidos (después de infraestructura, antes de módulos)
	middleware.Module,

	// Módulos de dominio
	auth.Module,
	pacientes.Module,
	consultas.Module,
	historiales.Module,

	// Bootstrap - migraciones embebidas
	fx.Provide(bootstrap.NewMigrationRunner),

	// Router
	fx.Provide(NewRouter),

	// Application
	fx.Provide(NewApplication),

	// Lifecycle
	fx.Invoke(RegisterMigrationsLifecycle),
	fx.Invoke(RegisterRoutes),
	fx.Invoke((*Application).Start),
)

// RegisterMigrationsLifecycle aplica las migraciones antes de aceptar tráfico
func RegisterMigrationsLifecycle(lc fx.Lifecycle, runner *bootstrap.MigrationRunner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return runner.Run(ctx)
		},
	})
}
