package repository

import (
	"context"

	"github.com/VexyyCat/ChromaBags/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ModeloUso aggregates how much a bag model is referenced by combinations and
// finished products.
type ModeloUso struct {
	ModeloID           uuid.UUID        `json:"modelo_id"`
	Nombre             string           `json:"nombre"`
	Tipo               model.TipoModelo `json:"tipo"`
	Ancho              decimal.Decimal  `json:"ancho"`
	Alto               decimal.Decimal  `json:"alto"`
	TotalCombinaciones int64            `json:"total_combinaciones"`
	TotalProductos     int64            `json:"total_productos"`
}

type ModeloRepository interface {
	Crear(ctx context.Context, m *model.ModeloBolsa) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.ModeloBolsa, error)
	Listar(ctx context.Context, tipo *model.TipoModelo) ([]model.ModeloBolsa, error)
	Actualizar(ctx context.Context, m *model.ModeloBolsa) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	// Estadisticas returns one row per model with its combination and product
	// reference counts, most combined first.
	Estadisticas(ctx context.Context) ([]ModeloUso, error)
}

type modeloRepo struct{ db *gorm.DB }

func NewModeloRepository(db *gorm.DB) ModeloRepository { return &modeloRepo{db: db} }

func (r *modeloRepo) Crear(ctx context.Context, m *model.ModeloBolsa) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *modeloRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.ModeloBolsa, error) {
	var m model.ModeloBolsa
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *modeloRepo) Listar(ctx context.Context, tipo *model.TipoModelo) ([]model.ModeloBolsa, error) {
	var modelos []model.ModeloBolsa
	q := r.db.WithContext(ctx)
	if tipo != nil {
		q = q.Where("tipo = ?", *tipo)
	}
	err := q.Order("nombre asc").Find(&modelos).Error
	return modelos, err
}

func (r *modeloRepo) Actualizar(ctx context.Context, m *model.ModeloBolsa) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *modeloRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ModeloBolsa{}, "id = ?", id).Error
}

func (r *modeloRepo) Estadisticas(ctx context.Context) ([]ModeloUso, error) {
	var usos []ModeloUso
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.id    AS modelo_id,
		       m.nombre,
		       m.tipo,
		       m.ancho,
		       m.alto,
		       (SELECT COUNT(*) FROM combinaciones c
		         WHERE c.modelo_id = m.id)        AS total_combinaciones,
		       (SELECT COUNT(*) FROM productos_terminados p
		         WHERE p.modelo_id = m.id)        AS total_productos
		  FROM modelos_bolsas m
		 ORDER BY total_combinaciones DESC, m.nombre ASC
	`).Scan(&usos).Error
	return usos, err
}
