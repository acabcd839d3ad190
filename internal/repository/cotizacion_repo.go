package repository

import (
	"context"

	"github.com/VexyyCat/ChromaBags/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CotizacionRepository interface {
	// Crear persists the quotation and its lines in one transaction.
	Crear(ctx context.Context, c *model.Cotizacion) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cotizacion, error)
	Listar(ctx context.Context, clienteID *uuid.UUID, estado *model.EstadoCotizacion) ([]model.Cotizacion, error)
	ActualizarEstado(ctx context.Context, id uuid.UUID, estado model.EstadoCotizacion) error
	// Eliminar removes the quotation; ON DELETE CASCADE drops its lines.
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type cotizacionRepo struct{ db *gorm.DB }

func NewCotizacionRepository(db *gorm.DB) CotizacionRepository { return &cotizacionRepo{db: db} }

func (r *cotizacionRepo) Crear(ctx context.Context, c *model.Cotizacion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(c).Error
	})
}

func (r *cotizacionRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cotizacion, error) {
	var c model.Cotizacion
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Items").
		Preload("Items.Material").
		First(&c, id).Error
	return &c, err
}

func (r *cotizacionRepo) Listar(ctx context.Context, clienteID *uuid.UUID, estado *model.EstadoCotizacion) ([]model.Cotizacion, error) {
	var cotizaciones []model.Cotizacion
	q := r.db.WithContext(ctx).Preload("Cliente").Preload("Items")
	if clienteID != nil {
		q = q.Where("cliente_id = ?", *clienteID)
	}
	if estado != nil {
		q = q.Where("estado = ?", *estado)
	}
	err := q.Order("fecha_emision desc").Find(&cotizaciones).Error
	return cotizaciones, err
}

func (r *cotizacionRepo) ActualizarEstado(ctx context.Context, id uuid.UUID, estado model.EstadoCotizacion) error {
	return r.db.WithContext(ctx).Model(&model.Cotizacion{}).
		Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *cotizacionRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cotizacion{}, "id = ?", id).Error
}
