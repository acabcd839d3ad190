package repository

import (
	"context"

	"github.com/VexyyCat/ChromaBags/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Listar(ctx context.Context, tipo *model.TipoCliente) ([]model.Cliente, error)
	Buscar(ctx context.Context, termino string) ([]model.Cliente, error)
	Actualizar(ctx context.Context, c *model.Cliente) error
	// Eliminar is a hard delete; it fails while quotations or orders still
	// reference the client (restrict-by-default FK).
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) Listar(ctx context.Context, tipo *model.TipoCliente) ([]model.Cliente, error) {
	var clientes []model.Cliente
	q := r.db.WithContext(ctx)
	if tipo != nil {
		q = q.Where("tipo = ?", *tipo)
	}
	err := q.Order("nombre asc").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Buscar(ctx context.Context, termino string) ([]model.Cliente, error) {
	var clientes []model.Cliente
	like := "%" + termino + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(nombre) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR telefono LIKE ?", like, like, like).
		Order("nombre asc").
		Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Actualizar(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, "id = ?", id).Error
}
