package bootstrap

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"sync"

	"historial-clinico-core/internal/infrastructure/database/postgres"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationRunner aplica las migraciones SQL embebidas al arranque
type MigrationRunner struct {
	db         *postgres.Client
	txManager  *postgres.TransactionManager
	mutex      sync.Mutex
	inProgress bool
}

// NewMigrationRunner crea el runner de migraciones
func NewMigrationRunner(db *postgres.Client, txManager *postgres.TransactionManager) *MigrationRunner {
	return &MigrationRunner{
		db:        db,
		txManager: txManager,
	}
}

// Run aplica en orden las migraciones pendientes. Cada migración corre
// en su propia transacción y queda registrada en schema_migrations.
func (r *MigrationRunner) Run(ctx context.Context) error {
	// Protección de concurrencia
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.inProgress {
		return fmt.Errorf("migración ya en curso")
	}
	r.inProgress = true
	defer func() { r.inProgress = false }()

	fmt.Printf("[BOOTSTRAP] 🔍 Verificando estado de migraciones\n")

	if err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`); err != nil {
		return fmt.Errorf("error creando schema_migrations: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("error leyendo migraciones embebidas: %w", err)
	}

	versions := make([]string, 0, len(entries))
	for _, entry := range entries {
		versions = append(versions, entry.Name())
	}
	sort.Strings(versions)

	applied := 0
	for _, version := range versions {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version,
		).Scan(&exists); err != nil {
			return fmt.Errorf("error verificando migración %s: %w", version, err)
		}
		if exists {
			continue
		}

		sqlBytes, err := migrationsFS.ReadFile("migrations/" + version)
		if err != nil {
			return fmt.Errorf("error leyendo migración %s: %w", version, err)
		}

		err = r.txManager.WithTransaction(ctx, func(tx *postgres.Transaction) error {
			if err := tx.Exec(ctx, string(sqlBytes)); err != nil {
				return fmt.Errorf("error aplicando migración %s: %w", version, err)
			}
			return tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version)
		})
		if err != nil {
			return err
		}

		applied++
		fmt.Printf("[BOOTSTRAP] ✅ Migración aplicada: %s\n", version)
	}

	if applied == 0 {
		fmt.Printf("[BOOTSTRAP] ✅ Esquema al día (%d migraciones)\n", len(versions))
	}

	return nil
}
