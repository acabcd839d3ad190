package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ModeloBolsa is a bag model: long-lived reference data created by admins.
// Dimensions are unitless numerics, default 30.00 × 40.00.
type ModeloBolsa struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string     `gorm:"not null"`
	Tipo        TipoModelo `gorm:"type:varchar(20);not null"`
	Descripcion *string
	Ancho       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:30.00"`
	Alto        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:40.00"`
}

func (ModeloBolsa) TableName() string { return "modelos_bolsas" }
