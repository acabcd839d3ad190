package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxAdministradoresActivos is the hard cap on rows with Activo=true.
// Enforced at insert time inside a serializable transaction — see
// repository.AdminRepository.Crear. The cap deliberately does NOT gate
// reactivation of an existing row.
const MaxAdministradoresActivos = 2

// Administrador stores system users. Password hashing and session logic
// belong to the auth service; this table only persists the hash and role.
type Administrador struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre        string    `gorm:"not null"`
	Email         string    `gorm:"uniqueIndex;not null"`
	PasswordHash  string    `gorm:"not null"`
	Rol           string    `gorm:"type:varchar(30);not null;default:'administrador'"`
	FechaRegistro time.Time `gorm:"autoCreateTime"`
	Activo        bool      `gorm:"not null;default:true"`
}

func (Administrador) TableName() string { return "administradores" }
