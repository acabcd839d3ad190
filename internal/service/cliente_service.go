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

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (dto.ClienteResponse, error)
	Listar(ctx context.Context, tipo *model.TipoCliente) ([]dto.ClienteResponse, error)
	Buscar(ctx context.Context, termino string) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func mapCliente(c model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:            c.ID.String(),
		Nombre:        c.Nombre,
		Email:         c.Email,
		Telefono:      c.Telefono,
		Direccion:     c.Direccion,
		Tipo:          string(c.Tipo),
		FechaRegistro: c.FechaRegistro.Format("2006-01-02T15:04:05Z"),
	}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error) {
	c := &model.Cliente{
		Nombre:    req.Nombre,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	}
	if req.Tipo != "" {
		tipo := model.TipoCliente(req.Tipo)
		if !tipo.Valida() {
			return dto.ClienteResponse{}, errors.New("tipo de cliente invalido")
		}
		c.Tipo = tipo
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.ClienteResponse{}, err
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClienteResponse{}, errors.New("cliente no encontrado")
		}
		return dto.ClienteResponse{}, err
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Listar(ctx context.Context, tipo *model.TipoCliente) ([]dto.ClienteResponse, error) {
	list, err := s.repo.Listar(ctx, tipo)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCliente(c))
	}
	return result, nil
}

func (s *clienteService) Buscar(ctx context.Context, termino string) ([]dto.ClienteResponse, error) {
	if termino == "" {
		return []dto.ClienteResponse{}, nil
	}
	list, err := s.repo.Buscar(ctx, termino)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCliente(c))
	}
	return result, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClienteResponse{}, errors.New("cliente no encontrado")
		}
		return dto.ClienteResponse{}, err
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Telefono != nil {
		c.Telefono = *req.Telefono
	}
	if req.Direccion != nil {
		c.Direccion = *req.Direccion
	}
	if req.Tipo != nil {
		tipo := model.TipoCliente(*req.Tipo)
		if !tipo.Valida() {
			return dto.ClienteResponse{}, errors.New("tipo de cliente invalido")
		}
		c.Tipo = tipo
	}
	if err := s.repo.Actualizar(ctx, c); err != nil {
		return dto.ClienteResponse{}, err
	}
	return mapCliente(*c), nil
}

// Eliminar falla con error de FK si el cliente tiene cotizaciones o pedidos.
func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("cliente no encontrado")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}
