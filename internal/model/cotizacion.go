package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cotizacion is a pre-sale estimate for a client, composed of material lines.
type Cotizacion struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	FechaEmision  time.Time        `gorm:"autoCreateTime"`
	TotalEstimado decimal.Decimal  `gorm:"type:decimal(14,2);not null;default:0"`
	Estado        EstadoCotizacion `gorm:"type:varchar(20);not null;default:'pendiente';index"`

	Cliente *Cliente         `gorm:"foreignKey:ClienteID"`
	Items   []CotizacionItem `gorm:"foreignKey:CotizacionID;constraint:OnDelete:CASCADE"`
}

func (Cotizacion) TableName() string { return "cotizaciones" }

// CotizacionItem is a material line. Subtotal is stored, not computed: the
// schema never reconciles it against Cantidad × CostoUnitario.
type CotizacionItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CotizacionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	MaterialID   uuid.UUID       `gorm:"type:uuid;not null"`
	Cantidad     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CostoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	Material *Material `gorm:"foreignKey:MaterialID"`
}

func (CotizacionItem) TableName() string { return "cotizacion_items" }
