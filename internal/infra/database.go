package infra

import (
	"fmt"

	"tempero/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express (partial unique indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates or updates the schema. Also used by integration tests
// against a disposable Postgres container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Empresa{},
		&model.Usuario{},
		&model.Insumo{},
		&model.ReceitaIntermediaria{},
		&model.Produto{},
		&model.FichaTecnica{},
		&model.PrecoCanal{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches applies idempotent DDL that AutoMigrate cannot express.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Channel prices are unique per (produto, canal) — the upsert key used
		// by the migration engine's stage 5.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_precos_canais_produto_canal
		   ON precos_canais (produto_id, canal)`,
		// Recipe lines are looked up and bulk-deleted by owner.
		`CREATE INDEX IF NOT EXISTS idx_receitas_intermediarias_composto
		   ON receitas_intermediarias (insumo_composto_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fichas_tecnicas_produto
		   ON fichas_tecnicas (produto_id)`,
	}
	for _, p := range patches {
		if err := db.Exec(p).Error; err != nil {
			return fmt.Errorf("schema patch: %w", err)
		}
	}
	return nil
}
