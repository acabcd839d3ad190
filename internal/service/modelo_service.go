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

type ModeloService interface {
	Crear(ctx context.Context, req dto.CrearModeloRequest) (dto.ModeloResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (dto.ModeloResponse, error)
	Listar(ctx context.Context, tipo *model.TipoModelo) ([]dto.ModeloResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarModeloRequest) (dto.ModeloResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Estadisticas(ctx context.Context) ([]dto.ModeloUsoResponse, error)
}

type modeloService struct {
	repo repository.ModeloRepository
}

func NewModeloService(repo repository.ModeloRepository) ModeloService {
	return &modeloService{repo: repo}
}

func mapModelo(m model.ModeloBolsa) dto.ModeloResponse {
	return dto.ModeloResponse{
		ID:          m.ID.String(),
		Nombre:      m.Nombre,
		Tipo:        string(m.Tipo),
		Descripcion: m.Descripcion,
		Ancho:       m.Ancho,
		Alto:        m.Alto,
	}
}

func (s *modeloService) Crear(ctx context.Context, req dto.CrearModeloRequest) (dto.ModeloResponse, error) {
	tipo := model.TipoModelo(req.Tipo)
	if !tipo.Valida() {
		return dto.ModeloResponse{}, errors.New("tipo de modelo invalido")
	}
	m := &model.ModeloBolsa{
		Nombre:      req.Nombre,
		Tipo:        tipo,
		Descripcion: req.Descripcion,
	}
	// Dimensiones omitidas caen en los defaults de columna (30.00 × 40.00).
	if req.Ancho != nil {
		m.Ancho = *req.Ancho
	}
	if req.Alto != nil {
		m.Alto = *req.Alto
	}
	if err := s.repo.Crear(ctx, m); err != nil {
		return dto.ModeloResponse{}, err
	}
	return mapModelo(*m), nil
}

func (s *modeloService) Obtener(ctx context.Context, id uuid.UUID) (dto.ModeloResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ModeloResponse{}, errors.New("modelo no encontrado")
		}
		return dto.ModeloResponse{}, err
	}
	return mapModelo(*m), nil
}

func (s *modeloService) Listar(ctx context.Context, tipo *model.TipoModelo) ([]dto.ModeloResponse, error) {
	list, err := s.repo.Listar(ctx, tipo)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ModeloResponse, 0, len(list))
	for _, m := range list {
		result = append(result, mapModelo(m))
	}
	return result, nil
}

func (s *modeloService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarModeloRequest) (dto.ModeloResponse, error) {
	m, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ModeloResponse{}, errors.New("modelo no encontrado")
		}
		return dto.ModeloResponse{}, err
	}
	if req.Nombre != nil {
		m.Nombre = *req.Nombre
	}
	if req.Tipo != nil {
		tipo := model.TipoModelo(*req.Tipo)
		if !tipo.Valida() {
			return dto.ModeloResponse{}, errors.New("tipo de modelo invalido")
		}
		m.Tipo = tipo
	}
	if req.Descripcion != nil {
		m.Descripcion = req.Descripcion
	}
	if req.Ancho != nil {
		m.Ancho = *req.Ancho
	}
	if req.Alto != nil {
		m.Alto = *req.Alto
	}
	if err := s.repo.Actualizar(ctx, m); err != nil {
		return dto.ModeloResponse{}, err
	}
	return mapModelo(*m), nil
}

// Estadisticas reporta, por modelo, el area de superficie y cuantas
// combinaciones y productos terminados lo referencian.
func (s *modeloService) Estadisticas(ctx context.Context) ([]dto.ModeloUsoResponse, error) {
	usos, err := s.repo.Estadisticas(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ModeloUsoResponse, 0, len(usos))
	for _, u := range usos {
		result = append(result, dto.ModeloUsoResponse{
			ModeloID:           u.ModeloID.String(),
			Nombre:             u.Nombre,
			Tipo:               string(u.Tipo),
			AreaSuperficie:     u.Ancho.Mul(u.Alto),
			TotalCombinaciones: u.TotalCombinaciones,
			TotalProductos:     u.TotalProductos,
		})
	}
	return result, nil
}

// Eliminar falla con error de FK si el modelo esta referenciado por
// combinaciones o productos terminados; no hay borrado en cascada.
func (s *modeloService) Eliminar(ctx context.Context, id uuid.UUID) error {
	_, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("modelo no encontrado")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}
