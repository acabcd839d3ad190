package repository

import (
	"context"
	"errors"

	"github.com/VexyyCat/ChromaBags/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	Crear(ctx context.Context, m *model.Material) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	Listar(ctx context.Context, tipo string) ([]model.Material, error)
	Actualizar(ctx context.Context, m *model.Material) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) MaterialRepository { return &materialRepo{db: db} }

func (r *materialRepo) Crear(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *materialRepo) Listar(ctx context.Context, tipo string) ([]model.Material, error) {
	var materiales []model.Material
	q := r.db.WithContext(ctx)
	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	err := q.Order("nombre asc").Find(&materiales).Error
	return materiales, err
}

func (r *materialRepo) Actualizar(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Material{}, "id = ?", id).Error
}

type InventarioRepository interface {
	ObtenerPorMaterial(ctx context.Context, materialID uuid.UUID) (*model.InventarioMaterial, error)
	Listar(ctx context.Context) ([]model.InventarioMaterial, error)
	// Ajustar adds delta to the snapshot, creating it at delta if absent.
	// The snapshot is point-in-time state: no movement history is kept.
	Ajustar(ctx context.Context, materialID uuid.UUID, delta decimal.Decimal) (*model.InventarioMaterial, error)
	// BajoStock lists snapshots at or below the given threshold.
	BajoStock(ctx context.Context, umbral decimal.Decimal) ([]model.InventarioMaterial, error)
}

type inventarioRepo struct{ db *gorm.DB }

func NewInventarioRepository(db *gorm.DB) InventarioRepository { return &inventarioRepo{db: db} }

func (r *inventarioRepo) ObtenerPorMaterial(ctx context.Context, materialID uuid.UUID) (*model.InventarioMaterial, error) {
	var inv model.InventarioMaterial
	err := r.db.WithContext(ctx).Preload("Material").
		First(&inv, "material_id = ?", materialID).Error
	return &inv, err
}

func (r *inventarioRepo) Listar(ctx context.Context) ([]model.InventarioMaterial, error) {
	var invs []model.InventarioMaterial
	err := r.db.WithContext(ctx).Preload("Material").Find(&invs).Error
	return invs, err
}

func (r *inventarioRepo) Ajustar(ctx context.Context, materialID uuid.UUID, delta decimal.Decimal) (*model.InventarioMaterial, error) {
	var inv model.InventarioMaterial
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&inv, "material_id = ?", materialID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			inv = model.InventarioMaterial{MaterialID: materialID, Cantidad: delta}
			return tx.Create(&inv).Error
		}
		if err != nil {
			return err
		}
		inv.Cantidad = inv.Cantidad.Add(delta)
		return tx.Save(&inv).Error
	})
	return &inv, err
}

func (r *inventarioRepo) BajoStock(ctx context.Context, umbral decimal.Decimal) ([]model.InventarioMaterial, error) {
	var invs []model.InventarioMaterial
	err := r.db.WithContext(ctx).Preload("Material").
		Where("cantidad <= ?", umbral).
		Order("cantidad asc").
		Find(&invs).Error
	return invs, err
}
