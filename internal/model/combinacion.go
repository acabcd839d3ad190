package model

import (
	"time"

	"github.com/google/uuid"
)

// Combinacion assigns up to four color roles to a bag model, optionally
// saved under a name. Roles may reference colors from any palette — no rule
// ties them to the model's intended palette.
type Combinacion struct {
	ID                uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ModeloID          *uuid.UUID   `gorm:"type:uuid;index"`
	Esquema           EsquemaColor `gorm:"type:varchar(20);not null;default:'armonico'"`
	ColorPrincipalID  *uuid.UUID   `gorm:"type:uuid"`
	ColorSecundarioID *uuid.UUID   `gorm:"type:uuid"`
	ColorHiloID       *uuid.UUID   `gorm:"type:uuid"`
	ColorAsaID        *uuid.UUID   `gorm:"type:uuid"`
	Nombre            string
	CreatedAt         time.Time

	Modelo          *ModeloBolsa `gorm:"foreignKey:ModeloID"`
	ColorPrincipal  *Color       `gorm:"foreignKey:ColorPrincipalID"`
	ColorSecundario *Color       `gorm:"foreignKey:ColorSecundarioID"`
	ColorHilo       *Color       `gorm:"foreignKey:ColorHiloID"`
	ColorAsa        *Color       `gorm:"foreignKey:ColorAsaID"`
}

func (Combinacion) TableName() string { return "combinaciones" }
