package repository

import (
	"context"

	"github.com/VexyyCat/ChromaBags/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaletaRepository interface {
	Crear(ctx context.Context, p *model.PaletaColor) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.PaletaColor, error)
	Listar(ctx context.Context, esquema *model.EsquemaColor) ([]model.PaletaColor, error)
	Actualizar(ctx context.Context, p *model.PaletaColor) error
	// Eliminar removes the palette; the ON DELETE SET NULL constraint detaches
	// its colors instead of deleting them.
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type paletaRepo struct{ db *gorm.DB }

func NewPaletaRepository(db *gorm.DB) PaletaRepository { return &paletaRepo{db: db} }

func (r *paletaRepo) Crear(ctx context.Context, p *model.PaletaColor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paletaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.PaletaColor, error) {
	var p model.PaletaColor
	err := r.db.WithContext(ctx).Preload("Colores").First(&p, id).Error
	return &p, err
}

func (r *paletaRepo) Listar(ctx context.Context, esquema *model.EsquemaColor) ([]model.PaletaColor, error) {
	var paletas []model.PaletaColor
	q := r.db.WithContext(ctx).Preload("Colores")
	if esquema != nil {
		q = q.Where("esquema = ?", *esquema)
	}
	err := q.Order("nombre asc").Find(&paletas).Error
	return paletas, err
}

func (r *paletaRepo) Actualizar(ctx context.Context, p *model.PaletaColor) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *paletaRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PaletaColor{}, "id = ?", id).Error
}

type ColorRepository interface {
	Crear(ctx context.Context, c *model.Color) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Color, error)
	Listar(ctx context.Context, paletaID *uuid.UUID) ([]model.Color, error)
	Actualizar(ctx context.Context, c *model.Color) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type colorRepo struct{ db *gorm.DB }

func NewColorRepository(db *gorm.DB) ColorRepository { return &colorRepo{db: db} }

func (r *colorRepo) Crear(ctx context.Context, c *model.Color) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *colorRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Color, error) {
	var c model.Color
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *colorRepo) Listar(ctx context.Context, paletaID *uuid.UUID) ([]model.Color, error) {
	var colores []model.Color
	q := r.db.WithContext(ctx)
	if paletaID != nil {
		q = q.Where("paleta_id = ?", *paletaID)
	}
	err := q.Order("nombre asc").Find(&colores).Error
	return colores, err
}

func (r *colorRepo) Actualizar(ctx context.Context, c *model.Color) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *colorRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Color{}, "id = ?", id).Error
}
