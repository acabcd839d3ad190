package repository

import (
	"context"

	"github.com/VexyyCat/ChromaBags/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ColorUso is one row of the most-used-colors statistic.
type ColorUso struct {
	ColorID   uuid.UUID `json:"color_id"`
	Nombre    string    `json:"nombre"`
	CodigoHex string    `json:"codigo_hex"`
	Usos      int64     `json:"usos"`
}

type CombinacionRepository interface {
	Crear(ctx context.Context, c *model.Combinacion) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Combinacion, error)
	Listar(ctx context.Context, modeloID *uuid.UUID, esquema *model.EsquemaColor) ([]model.Combinacion, error)
	Actualizar(ctx context.Context, c *model.Combinacion) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	// ColoresMasUsados counts appearances of each color across all four role
	// slots of every saved combination, descending.
	ColoresMasUsados(ctx context.Context, limite int) ([]ColorUso, error)
}

type combinacionRepo struct{ db *gorm.DB }

func NewCombinacionRepository(db *gorm.DB) CombinacionRepository { return &combinacionRepo{db: db} }

func (r *combinacionRepo) Crear(ctx context.Context, c *model.Combinacion) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *combinacionRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Combinacion, error) {
	var c model.Combinacion
	err := r.db.WithContext(ctx).
		Preload("Modelo").
		Preload("ColorPrincipal").
		Preload("ColorSecundario").
		Preload("ColorHilo").
		Preload("ColorAsa").
		First(&c, id).Error
	return &c, err
}

func (r *combinacionRepo) Listar(ctx context.Context, modeloID *uuid.UUID, esquema *model.EsquemaColor) ([]model.Combinacion, error) {
	var combos []model.Combinacion
	q := r.db.WithContext(ctx).
		Preload("ColorPrincipal").
		Preload("ColorSecundario").
		Preload("ColorHilo").
		Preload("ColorAsa")
	if modeloID != nil {
		q = q.Where("modelo_id = ?", *modeloID)
	}
	if esquema != nil {
		q = q.Where("esquema = ?", *esquema)
	}
	err := q.Order("created_at desc").Find(&combos).Error
	return combos, err
}

func (r *combinacionRepo) Actualizar(ctx context.Context, c *model.Combinacion) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *combinacionRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Combinacion{}, "id = ?", id).Error
}

func (r *combinacionRepo) ColoresMasUsados(ctx context.Context, limite int) ([]ColorUso, error) {
	if limite <= 0 {
		limite = 5
	}
	var usos []ColorUso
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id AS color_id, c.nombre, c.codigo_hex, COUNT(*) AS usos
		FROM colores c
		JOIN combinaciones k ON c.id IN (
			k.color_principal_id, k.color_secundario_id, k.color_hilo_id, k.color_asa_id
		)
		GROUP BY c.id, c.nombre, c.codigo_hex
		ORDER BY usos DESC, c.nombre ASC
		LIMIT ?`, limite).Scan(&usos).Error
	return usos, err
}
