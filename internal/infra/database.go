package infra

import (
	"fmt"

	"github.com/VexyyCat/ChromaBags/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches for the DDL
// GORM cannot express (CHECK constraints, partial indexes).
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

// RunMigrations applies AutoMigrate plus schema patches. NewDatabase runs it
// on connect; it is exported for tools that open their own connection.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() lives in pgcrypto on Postgres < 13.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Administrador{},
		&model.PaletaColor{},
		&model.Color{},
		&model.ModeloBolsa{},
		&model.Combinacion{},
		&model.Material{},
		&model.InventarioMaterial{},
		&model.Cliente{},
		&model.ProductoTerminado{},
		&model.Cotizacion{},
		&model.CotizacionItem{},
		&model.Pedido{},
		&model.PedidoItem{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Every CHECK constraint backs a validation the services already enforce, so
// a violation here means a write path skipped the service layer.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"colores hex format check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_colores_codigo_hex') THEN
    ALTER TABLE colores
      ADD CONSTRAINT chk_colores_codigo_hex CHECK (codigo_hex ~ '^#[0-9A-Fa-f]{6}$');
  END IF;
END $$`},
		{"paletas esquema check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_paletas_esquema') THEN
    ALTER TABLE paletas_colores
      ADD CONSTRAINT chk_paletas_esquema
      CHECK (esquema IN ('armonico', 'complementario', 'analogo'));
  END IF;
END $$`},
		{"combinaciones esquema check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_combinaciones_esquema') THEN
    ALTER TABLE combinaciones
      ADD CONSTRAINT chk_combinaciones_esquema
      CHECK (esquema IN ('armonico', 'complementario', 'analogo'));
  END IF;
END $$`},
		{"modelos tipo check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_modelos_tipo') THEN
    ALTER TABLE modelos_bolsas
      ADD CONSTRAINT chk_modelos_tipo
      CHECK (tipo IN ('simple', 'combinado', 'especial'));
  END IF;
END $$`},
		{"clientes tipo check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_clientes_tipo') THEN
    ALTER TABLE clientes
      ADD CONSTRAINT chk_clientes_tipo
      CHECK (tipo IN ('FRECUENTE', 'PRIMERA_VEZ', 'OCASIONAL'));
  END IF;
END $$`},
		{"cotizaciones estado check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_cotizaciones_estado') THEN
    ALTER TABLE cotizaciones
      ADD CONSTRAINT chk_cotizaciones_estado
      CHECK (estado IN ('pendiente', 'aceptada', 'rechazada', 'vencida'));
  END IF;
END $$`},
		{"pedidos estado check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_pedidos_estado') THEN
    ALTER TABLE pedidos
      ADD CONSTRAINT chk_pedidos_estado
      CHECK (estado IN ('pendiente', 'en_produccion', 'entregado', 'cancelado'));
  END IF;
END $$`},
		{"pedido_items cantidad positiva", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_pedido_items_cantidad') THEN
    ALTER TABLE pedido_items
      ADD CONSTRAINT chk_pedido_items_cantidad CHECK (cantidad > 0);
  END IF;
END $$`},
		{"cotizacion_items cantidad positiva", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_cotizacion_items_cantidad') THEN
    ALTER TABLE cotizacion_items
      ADD CONSTRAINT chk_cotizacion_items_cantidad CHECK (cantidad > 0);
  END IF;
END $$`},
		{"materiales costo no negativo", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_materiales_costo') THEN
    ALTER TABLE materiales
      ADD CONSTRAINT chk_materiales_costo CHECK (costo_unitario >= 0);
  END IF;
END $$`},
		{"productos stock no negativo", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_productos_stock') THEN
    ALTER TABLE productos_terminados
      ADD CONSTRAINT chk_productos_stock CHECK (stock >= 0);
  END IF;
END $$`},
		// One inventory snapshot row per material.
		{"inventario unico por material", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_inventario_material') THEN
    CREATE UNIQUE INDEX uni_inventario_material
        ON inventario_materiales (material_id);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
