package repository

import (
	"context"

	"github.com/VexyyCat/ChromaBags/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FilaCatalogo is one row of the catalog report. Color names are nil when the
// product has no combination or the role slot is empty.
type FilaCatalogo struct {
	ProductoID      uuid.UUID        `json:"producto_id"`
	Producto        string           `json:"producto"`
	Modelo          string           `json:"modelo"`
	TipoModelo      model.TipoModelo `json:"tipo_modelo"`
	ColorPrincipal  *string          `json:"color_principal"`
	ColorSecundario *string          `json:"color_secundario"`
	ColorHilo       *string          `json:"color_hilo"`
	ColorAsa        *string          `json:"color_asa"`
	PrecioSugerido  decimal.Decimal  `json:"precio_sugerido"`
	Stock           int              `json:"stock"`
}

type ProductoRepository interface {
	Crear(ctx context.Context, p *model.ProductoTerminado) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.ProductoTerminado, error)
	Listar(ctx context.Context, modeloID *uuid.UUID, tipo *model.TipoModelo) ([]model.ProductoTerminado, error)
	Actualizar(ctx context.Context, p *model.ProductoTerminado) error
	AjustarStock(ctx context.Context, id uuid.UUID, delta int) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	// ReporteCatalogo recomputes the product→model→combination→colors
	// projection from current table state on every call. Ordered by product
	// name ascending only; ties on the name keep arbitrary storage order.
	ReporteCatalogo(ctx context.Context) ([]FilaCatalogo, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Crear(ctx context.Context, p *model.ProductoTerminado) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.ProductoTerminado, error) {
	var p model.ProductoTerminado
	err := r.db.WithContext(ctx).
		Preload("Modelo").
		Preload("Combinacion").
		Preload("Combinacion.ColorPrincipal").
		Preload("Combinacion.ColorSecundario").
		Preload("Combinacion.ColorHilo").
		Preload("Combinacion.ColorAsa").
		First(&p, id).Error
	return &p, err
}

func (r *productoRepo) Listar(ctx context.Context, modeloID *uuid.UUID, tipo *model.TipoModelo) ([]model.ProductoTerminado, error) {
	var productos []model.ProductoTerminado
	q := r.db.WithContext(ctx).Preload("Modelo")
	if modeloID != nil {
		q = q.Where("modelo_id = ?", *modeloID)
	}
	if tipo != nil {
		q = q.Joins("JOIN modelos_bolsas m ON m.id = productos_terminados.modelo_id").
			Where("m.tipo = ?", *tipo)
	}
	err := q.Order("nombre asc").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Actualizar(ctx context.Context, p *model.ProductoTerminado) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) AjustarStock(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.ProductoTerminado{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *productoRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProductoTerminado{}, "id = ?", id).Error
}

func (r *productoRepo) ReporteCatalogo(ctx context.Context) ([]FilaCatalogo, error) {
	var filas []FilaCatalogo
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id               AS producto_id,
		       p.nombre           AS producto,
		       m.nombre           AS modelo,
		       m.tipo             AS tipo_modelo,
		       cp.nombre          AS color_principal,
		       cs.nombre          AS color_secundario,
		       ch.nombre          AS color_hilo,
		       ca.nombre          AS color_asa,
		       p.precio_sugerido,
		       p.stock
		FROM productos_terminados p
		JOIN modelos_bolsas m ON m.id = p.modelo_id
		LEFT JOIN combinaciones k ON k.id = p.combinacion_id
		LEFT JOIN colores cp ON cp.id = k.color_principal_id
		LEFT JOIN colores cs ON cs.id = k.color_secundario_id
		LEFT JOIN colores ch ON ch.id = k.color_hilo_id
		LEFT JOIN colores ca ON ca.id = k.color_asa_id
		ORDER BY p.nombre ASC`).Scan(&filas).Error
	return filas, err
}
