package service

import (
	"context"
	"errors"

	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (dto.ProductoResponse, error)
	Listar(ctx context.Context, modeloID *uuid.UUID, tipo *model.TipoModelo) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (dto.ProductoResponse, error)
	AjustarStock(ctx context.Context, id uuid.UUID, delta int) (dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	// ReporteCatalogo is the product→model→combination→colors projection,
	// recomputed from current table state on every call.
	ReporteCatalogo(ctx context.Context) ([]dto.CatalogoFilaResponse, error)
}

type productoService struct {
	productos     repository.ProductoRepository
	modelos       repository.ModeloRepository
	combinaciones repository.CombinacionRepository
}

func NewProductoService(
	productos repository.ProductoRepository,
	modelos repository.ModeloRepository,
	combinaciones repository.CombinacionRepository,
) ProductoService {
	return &productoService{productos: productos, modelos: modelos, combinaciones: combinaciones}
}

func mapProducto(p model.ProductoTerminado) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:              p.ID.String(),
		Nombre:          p.Nombre,
		ModeloID:        p.ModeloID.String(),
		CostoProduccion: p.CostoProduccion,
		PrecioSugerido:  p.PrecioSugerido,
		Stock:           p.Stock,
		FechaRegistro:   p.FechaRegistro.Format("2006-01-02T15:04:05Z"),
	}
	if p.CombinacionID != nil {
		s := p.CombinacionID.String()
		resp.CombinacionID = &s
	}
	return resp
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoResponse, error) {
	mid, err := uuid.Parse(req.ModeloID)
	if err != nil {
		return dto.ProductoResponse{}, errors.New("modelo_id invalido")
	}
	if _, err := s.modelos.ObtenerPorID(ctx, mid); err != nil {
		return dto.ProductoResponse{}, errors.New("modelo no encontrado")
	}
	p := &model.ProductoTerminado{
		Nombre:          req.Nombre,
		ModeloID:        mid,
		CostoProduccion: req.CostoProduccion,
		PrecioSugerido:  req.PrecioSugerido,
	}
	if req.CombinacionID != nil {
		kid, err := uuid.Parse(*req.CombinacionID)
		if err != nil {
			return dto.ProductoResponse{}, errors.New("combinacion_id invalido")
		}
		if _, err := s.combinaciones.ObtenerPorID(ctx, kid); err != nil {
			return dto.ProductoResponse{}, errors.New("combinacion no encontrada")
		}
		p.CombinacionID = &kid
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return dto.ProductoResponse{}, errors.New("el stock no puede ser negativo")
		}
		p.Stock = *req.Stock
	}
	if err := s.productos.Crear(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}
	return mapProducto(*p), nil
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (dto.ProductoResponse, error) {
	p, err := s.productos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, errors.New("producto no encontrado")
		}
		return dto.ProductoResponse{}, err
	}
	return mapProducto(*p), nil
}

func (s *productoService) Listar(ctx context.Context, modeloID *uuid.UUID, tipo *model.TipoModelo) ([]dto.ProductoResponse, error) {
	list, err := s.productos.Listar(ctx, modeloID, tipo)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProducto(p))
	}
	return result, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (dto.ProductoResponse, error) {
	p, err := s.productos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, errors.New("producto no encontrado")
		}
		return dto.ProductoResponse{}, err
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.ModeloID != nil {
		mid, err := uuid.Parse(*req.ModeloID)
		if err != nil {
			return dto.ProductoResponse{}, errors.New("modelo_id invalido")
		}
		if _, err := s.modelos.ObtenerPorID(ctx, mid); err != nil {
			return dto.ProductoResponse{}, errors.New("modelo no encontrado")
		}
		p.ModeloID = mid
	}
	if req.CombinacionID != nil {
		kid, err := uuid.Parse(*req.CombinacionID)
		if err != nil {
			return dto.ProductoResponse{}, errors.New("combinacion_id invalido")
		}
		if _, err := s.combinaciones.ObtenerPorID(ctx, kid); err != nil {
			return dto.ProductoResponse{}, errors.New("combinacion no encontrada")
		}
		p.CombinacionID = &kid
	}
	if req.CostoProduccion != nil {
		p.CostoProduccion = *req.CostoProduccion
	}
	if req.PrecioSugerido != nil {
		p.PrecioSugerido = *req.PrecioSugerido
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return dto.ProductoResponse{}, errors.New("el stock no puede ser negativo")
		}
		p.Stock = *req.Stock
	}
	if err := s.productos.Actualizar(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}
	return mapProducto(*p), nil
}

func (s *productoService) AjustarStock(ctx context.Context, id uuid.UUID, delta int) (dto.ProductoResponse, error) {
	p, err := s.productos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, errors.New("producto no encontrado")
		}
		return dto.ProductoResponse{}, err
	}
	if p.Stock+delta < 0 {
		return dto.ProductoResponse{}, errors.New("stock insuficiente")
	}
	if err := s.productos.AjustarStock(ctx, id, delta); err != nil {
		return dto.ProductoResponse{}, err
	}
	return s.Obtener(ctx, id)
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	_, err := s.productos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("producto no encontrado")
		}
		return err
	}
	return s.productos.Eliminar(ctx, id)
}

func (s *productoService) ReporteCatalogo(ctx context.Context) ([]dto.CatalogoFilaResponse, error) {
	filas, err := s.productos.ReporteCatalogo(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CatalogoFilaResponse, 0, len(filas))
	for _, f := range filas {
		result = append(result, dto.CatalogoFilaResponse{
			Producto:        f.Producto,
			Modelo:          f.Modelo,
			TipoModelo:      string(f.TipoModelo),
			PrecioSugerido:  f.PrecioSugerido,
			Stock:           f.Stock,
			ColorPrincipal:  f.ColorPrincipal,
			ColorSecundario: f.ColorSecundario,
			ColorHilo:       f.ColorHilo,
			ColorAsa:        f.ColorAsa,
		})
	}
	return result, nil
}
