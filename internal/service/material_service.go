package service

import (
	"context"
	"errors"

	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MaterialService interface {
	Crear(ctx context.Context, req dto.CrearMaterialRequest) (dto.MaterialResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (dto.MaterialResponse, error)
	Listar(ctx context.Context, tipo string) ([]dto.MaterialResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaterialRequest) (dto.MaterialResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	Inventario(ctx context.Context) ([]dto.InventarioResponse, error)
	AjustarInventario(ctx context.Context, materialID uuid.UUID, req dto.AjusteInventarioRequest) (dto.InventarioResponse, error)
	BajoStock(ctx context.Context, umbral decimal.Decimal) ([]dto.InventarioResponse, error)
}

type materialService struct {
	materiales repository.MaterialRepository
	inventario repository.InventarioRepository
}

func NewMaterialService(materiales repository.MaterialRepository, inventario repository.InventarioRepository) MaterialService {
	return &materialService{materiales: materiales, inventario: inventario}
}

func mapMaterial(m model.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:            m.ID.String(),
		Nombre:        m.Nombre,
		Tipo:          m.Tipo,
		UnidadMedida:  m.UnidadMedida,
		CostoUnitario: m.CostoUnitario,
		Descripcion:   m.Descripcion,
	}
}

func mapInventario(inv model.InventarioMaterial) dto.InventarioResponse {
	resp := dto.InventarioResponse{
		MaterialID:      inv.MaterialID.String(),
		Cantidad:        inv.Cantidad,
		FechaInventario: inv.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if inv.Material != nil {
		resp.Material = inv.Material.Nombre
		resp.UnidadMedida = inv.Material.UnidadMedida
	}
	return resp
}

func (s *materialService) Crear(ctx context.Context, req dto.CrearMaterialRequest) (dto.MaterialResponse, error) {
	if req.CostoUnitario.IsNegative() {
		return dto.MaterialResponse{}, errors.New("el costo unitario no puede ser negativo")
	}
	m := &model.Material{
		Nombre:        req.Nombre,
		Tipo:          req.Tipo,
		CostoUnitario: req.CostoUnitario,
		Descripcion:   req.Descripcion,
	}
	if req.UnidadMedida != "" {
		m.UnidadMedida = req.UnidadMedida
	}
	if err := s.materiales.Crear(ctx, m); err != nil {
		return dto.MaterialResponse{}, err
	}
	return mapMaterial(*m), nil
}

func (s *materialService) Obtener(ctx context.Context, id uuid.UUID) (dto.MaterialResponse, error) {
	m, err := s.materiales.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MaterialResponse{}, errors.New("material no encontrado")
		}
		return dto.MaterialResponse{}, err
	}
	return mapMaterial(*m), nil
}

func (s *materialService) Listar(ctx context.Context, tipo string) ([]dto.MaterialResponse, error) {
	list, err := s.materiales.Listar(ctx, tipo)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapMaterial(m))
	}
	return result, nil
}

func (s *materialService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaterialRequest) (dto.MaterialResponse, error) {
	m, err := s.materiales.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MaterialResponse{}, errors.New("material no encontrado")
		}
		return dto.MaterialResponse{}, err
	}
	if req.Nombre != nil {
		m.Nombre = *req.Nombre
	}
	if req.Tipo != nil {
		m.Tipo = *req.Tipo
	}
	if req.UnidadMedida != nil {
		m.UnidadMedida = *req.UnidadMedida
	}
	if req.CostoUnitario != nil {
		if req.CostoUnitario.IsNegative() {
			return dto.MaterialResponse{}, errors.New("el costo unitario no puede ser negativo")
		}
		m.CostoUnitario = *req.CostoUnitario
	}
	if req.Descripcion != nil {
		m.Descripcion = req.Descripcion
	}
	if err := s.materiales.Actualizar(ctx, m); err != nil {
		return dto.MaterialResponse{}, err
	}
	return mapMaterial(*m), nil
}

func (s *materialService) Eliminar(ctx context.Context, id uuid.UUID) error {
	_, err := s.materiales.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("material no encontrado")
		}
		return err
	}
	return s.materiales.Eliminar(ctx, id)
}

func (s *materialService) Inventario(ctx context.Context) ([]dto.InventarioResponse, error) {
	list, err := s.inventario.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InventarioResponse, 0, len(list))
	for _, inv := range list {
		result = append(result, mapInventario(inv))
	}
	return result, nil
}

func (s *materialService) AjustarInventario(ctx context.Context, materialID uuid.UUID, req dto.AjusteInventarioRequest) (dto.InventarioResponse, error) {
	m, err := s.materiales.ObtenerPorID(ctx, materialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.InventarioResponse{}, errors.New("material no encontrado")
		}
		return dto.InventarioResponse{}, err
	}
	inv, err := s.inventario.Ajustar(ctx, materialID, req.Cantidad)
	if err != nil {
		return dto.InventarioResponse{}, err
	}
	if inv.Material == nil {
		inv.Material = m
	}
	return mapInventario(*inv), nil
}

func (s *materialService) BajoStock(ctx context.Context, umbral decimal.Decimal) ([]dto.InventarioResponse, error) {
	list, err := s.inventario.BajoStock(ctx, umbral)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InventarioResponse, 0, len(list))
	for _, inv := range list {
		result = append(result, mapInventario(inv))
	}
	return result, nil
}
