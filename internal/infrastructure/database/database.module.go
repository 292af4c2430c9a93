package database

import (
	"go.uber.org/fx"

	"historial-clinico-core/internal/infrastructure/database/mongodb"
	"historial-clinico-core/internal/infrastructure/database/postgres"
	"historial-clinico-core/internal/infrastructure/database/redis"
)

var Module = fx.Options(

	// Módulos database
	postgres.Module,
	redis.Module,
	mongodb.Module,
)
