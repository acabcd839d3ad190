package repository

import (
	"context"

	"github.com/VexyyCat/ChromaBags/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoRepository interface {
	// Crear persists the order and its lines in one transaction.
	Crear(ctx context.Context, p *model.Pedido) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	Listar(ctx context.Context, clienteID *uuid.UUID, estado *model.EstadoPedido) ([]model.Pedido, error)
	ActualizarEstado(ctx context.Context, id uuid.UUID, estado model.EstadoPedido) error
	// Eliminar removes the order; ON DELETE CASCADE drops its lines.
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) Crear(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(p).Error
	})
}

func (r *pedidoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Items").
		Preload("Items.Producto").
		First(&p, id).Error
	return &p, err
}

func (r *pedidoRepo) Listar(ctx context.Context, clienteID *uuid.UUID, estado *model.EstadoPedido) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	q := r.db.WithContext(ctx).Preload("Cliente").Preload("Items")
	if clienteID != nil {
		q = q.Where("cliente_id = ?", *clienteID)
	}
	if estado != nil {
		q = q.Where("estado = ?", *estado)
	}
	err := q.Order("fecha_pedido desc").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ActualizarEstado(ctx context.Context, id uuid.UUID, estado model.EstadoPedido) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *pedidoRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Pedido{}, "id = ?", id).Error
}
