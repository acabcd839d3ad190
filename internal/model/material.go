package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Material is supply-side reference data (fabric, thread, hardware…).
type Material struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre        string    `gorm:"not null"`
	Tipo          string    `gorm:"not null"`
	UnidadMedida  string    `gorm:"not null;default:'m'"`
	CostoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descripcion   *string
}

func (Material) TableName() string { return "materiales" }

// InventarioMaterial is a point-in-time stock snapshot per material.
// No movement ledger is retained; Cantidad is overwritten on adjustment.
type InventarioMaterial struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MaterialID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	UpdatedAt  time.Time

	Material *Material `gorm:"foreignKey:MaterialID"`
}

func (InventarioMaterial) TableName() string { return "inventario_materiales" }
