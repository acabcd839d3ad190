package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido is a confirmed commercial transaction for finished products.
type Pedido struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	FechaPedido  time.Time       `gorm:"autoCreateTime"`
	FechaEntrega *time.Time
	Estado       EstadoPedido    `gorm:"type:varchar(20);not null;default:'pendiente';index"`
	Total        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	Cliente *Cliente     `gorm:"foreignKey:ClienteID"`
	Items   []PedidoItem `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE"`
}

func (Pedido) TableName() string { return "pedidos" }

// PedidoItem is a product line. Cantidad must be strictly positive (CHECK
// constraint + boundary validation); Subtotal carries the same stored-not-
// computed caveat as CotizacionItem.
type PedidoItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	Producto *ProductoTerminado `gorm:"foreignKey:ProductoID"`
}

func (PedidoItem) TableName() string { return "pedido_items" }
