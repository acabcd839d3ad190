package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a customer of the workshop.
type Cliente struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre        string      `gorm:"not null"`
	Telefono      string
	Email         string
	Direccion     string
	Tipo          TipoCliente `gorm:"type:varchar(20);not null;default:'PRIMERA_VEZ'"`
	FechaRegistro time.Time   `gorm:"autoCreateTime"`
}

func (Cliente) TableName() string { return "clientes" }
