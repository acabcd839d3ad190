package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductoTerminado is a finished bag ready for sale, referencing the model
// it was cut from and, optionally, the saved color combination applied.
type ProductoTerminado struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ModeloID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	CombinacionID   *uuid.UUID `gorm:"type:uuid;index"`
	Nombre          string     `gorm:"index;not null"`
	CostoProduccion decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PrecioSugerido  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock           int             `gorm:"not null;default:0"`
	FechaRegistro   time.Time       `gorm:"autoCreateTime"`

	Modelo      *ModeloBolsa `gorm:"foreignKey:ModeloID"`
	Combinacion *Combinacion `gorm:"foreignKey:CombinacionID"`
}

func (ProductoTerminado) TableName() string { return "productos_terminados" }
