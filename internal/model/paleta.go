package model

import (
	"github.com/google/uuid"
)

// PaletaColor is a named collection of colors sharing a pairing scheme.
type PaletaColor struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string       `gorm:"not null"`
	Esquema     EsquemaColor `gorm:"type:varchar(20);not null"`
	Descripcion *string

	// Deleting a palette detaches its colors instead of deleting them.
	Colores []Color `gorm:"foreignKey:PaletaID;constraint:OnDelete:SET NULL"`
}

func (PaletaColor) TableName() string { return "paletas_colores" }

// Color is a single catalog color. CodigoHex always holds the leading '#'
// plus exactly six hex digits; format is enforced by a CHECK constraint and
// re-validated at the service boundary.
type Color struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string     `gorm:"not null"`
	CodigoHex string     `gorm:"type:char(7);not null"`
	PaletaID  *uuid.UUID `gorm:"type:uuid;index"`
}

func (Color) TableName() string { return "colores" }
