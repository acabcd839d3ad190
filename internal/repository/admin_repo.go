package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/VexyyCat/ChromaBags/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrCupoAdministradores signals the max-active-admins business rule.
// Distinct from generic constraint violations so handlers can map it to 409.
var ErrCupoAdministradores = errors.New("cupo de administradores activos alcanzado")

type AdminRepository interface {
	// Crear inserts a new administrator. The count-then-insert check runs in
	// one serializable transaction: if 2 active rows already exist the insert
	// is rejected with ErrCupoAdministradores and nothing is written.
	Crear(ctx context.Context, a *model.Administrador) error
	FindByEmail(ctx context.Context, email string) (*model.Administrador, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Administrador, error)
	Listar(ctx context.Context) ([]model.Administrador, error)
	ListarTodos(ctx context.Context) ([]model.Administrador, error)
	Actualizar(ctx context.Context, a *model.Administrador) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	// Reactivar flips Activo back to true. The quota rule gates INSERT only,
	// so reactivation is deliberately unchecked.
	Reactivar(ctx context.Context, id uuid.UUID) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type adminRepo struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) AdminRepository { return &adminRepo{db: db} }

func (r *adminRepo) Crear(ctx context.Context, a *model.Administrador) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activos int64
		if err := tx.Model(&model.Administrador{}).
			Where("activo = true").
			Count(&activos).Error; err != nil {
			return err
		}
		if activos >= model.MaxAdministradoresActivos {
			return ErrCupoAdministradores
		}
		return tx.Create(a).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *adminRepo) FindByEmail(ctx context.Context, email string) (*model.Administrador, error) {
	var a model.Administrador
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND activo = true", email).
		First(&a).Error
	return &a, err
}

func (r *adminRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Administrador, error) {
	var a model.Administrador
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *adminRepo) Listar(ctx context.Context) ([]model.Administrador, error) {
	var admins []model.Administrador
	err := r.db.WithContext(ctx).Where("activo = true").Find(&admins).Error
	return admins, err
}

func (r *adminRepo) ListarTodos(ctx context.Context) ([]model.Administrador, error) {
	var admins []model.Administrador
	err := r.db.WithContext(ctx).Find(&admins).Error
	return admins, err
}

func (r *adminRepo) Actualizar(ctx context.Context, a *model.Administrador) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *adminRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Administrador{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *adminRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Administrador{}).Where("id = ?", id).Update("activo", true).Error
}

func (r *adminRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Administrador{}, "id = ?", id).Error
}
