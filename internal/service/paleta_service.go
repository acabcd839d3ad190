package service

import (
	"context"
	"errors"

	"github.com/VexyyCat/ChromaBags/internal/colores"
	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaletaService covers palettes and their colors. Hex codes are validated
// here before they reach the CHECK constraint in the database.
type PaletaService interface {
	CrearPaleta(ctx context.Context, req dto.CrearPaletaRequest) (dto.PaletaResponse, error)
	ObtenerPaleta(ctx context.Context, id uuid.UUID) (dto.PaletaResponse, error)
	ListarPaletas(ctx context.Context, esquema *model.EsquemaColor) ([]dto.PaletaResponse, error)
	ActualizarPaleta(ctx context.Context, id uuid.UUID, req dto.ActualizarPaletaRequest) (dto.PaletaResponse, error)
	EliminarPaleta(ctx context.Context, id uuid.UUID) error

	CrearColor(ctx context.Context, req dto.CrearColorRequest) (dto.ColorResponse, error)
	ListarColores(ctx context.Context, paletaID *uuid.UUID) ([]dto.ColorResponse, error)
	ActualizarColor(ctx context.Context, id uuid.UUID, req dto.ActualizarColorRequest) (dto.ColorResponse, error)
	EliminarColor(ctx context.Context, id uuid.UUID) error
}

type paletaService struct {
	paletas repository.PaletaRepository
	colores repository.ColorRepository
}

func NewPaletaService(paletas repository.PaletaRepository, coloresRepo repository.ColorRepository) PaletaService {
	return &paletaService{paletas: paletas, colores: coloresRepo}
}

func mapColor(c model.Color) dto.ColorResponse {
	resp := dto.ColorResponse{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		CodigoHex: c.CodigoHex,
	}
	if c.PaletaID != nil {
		s := c.PaletaID.String()
		resp.PaletaID = &s
	}
	return resp
}

func mapPaleta(p model.PaletaColor) dto.PaletaResponse {
	cols := make([]dto.ColorResponse, 0, len(p.Colores))
	for _, c := range p.Colores {
		cols = append(cols, mapColor(c))
	}
	return dto.PaletaResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Esquema:     string(p.Esquema),
		Descripcion: p.Descripcion,
		Colores:     cols,
	}
}

func (s *paletaService) CrearPaleta(ctx context.Context, req dto.CrearPaletaRequest) (dto.PaletaResponse, error) {
	esquema := model.EsquemaColor(req.Esquema)
	if !esquema.Valida() {
		return dto.PaletaResponse{}, errors.New("esquema de color invalido")
	}
	p := &model.PaletaColor{
		Nombre:      req.Nombre,
		Esquema:     esquema,
		Descripcion: req.Descripcion,
	}
	if err := s.paletas.Crear(ctx, p); err != nil {
		return dto.PaletaResponse{}, err
	}
	return mapPaleta(*p), nil
}

func (s *paletaService) ObtenerPaleta(ctx context.Context, id uuid.UUID) (dto.PaletaResponse, error) {
	p, err := s.paletas.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PaletaResponse{}, errors.New("paleta no encontrada")
		}
		return dto.PaletaResponse{}, err
	}
	return mapPaleta(*p), nil
}

func (s *paletaService) ListarPaletas(ctx context.Context, esquema *model.EsquemaColor) ([]dto.PaletaResponse, error) {
	list, err := s.paletas.Listar(ctx, esquema)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PaletaResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPaleta(p))
	}
	return result, nil
}

func (s *paletaService) ActualizarPaleta(ctx context.Context, id uuid.UUID, req dto.ActualizarPaletaRequest) (dto.PaletaResponse, error) {
	p, err := s.paletas.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PaletaResponse{}, errors.New("paleta no encontrada")
		}
		return dto.PaletaResponse{}, err
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Esquema != nil {
		esquema := model.EsquemaColor(*req.Esquema)
		if !esquema.Valida() {
			return dto.PaletaResponse{}, errors.New("esquema de color invalido")
		}
		p.Esquema = esquema
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if err := s.paletas.Actualizar(ctx, p); err != nil {
		return dto.PaletaResponse{}, err
	}
	return mapPaleta(*p), nil
}

// EliminarPaleta borra la paleta; sus colores quedan huerfanos (paleta_id a
// NULL), nunca se eliminan en cascada.
func (s *paletaService) EliminarPaleta(ctx context.Context, id uuid.UUID) error {
	_, err := s.paletas.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("paleta no encontrada")
		}
		return err
	}
	return s.paletas.Eliminar(ctx, id)
}

func (s *paletaService) CrearColor(ctx context.Context, req dto.CrearColorRequest) (dto.ColorResponse, error) {
	if !colores.HexValido(req.CodigoHex) {
		return dto.ColorResponse{}, colores.ErrHexInvalido
	}
	c := &model.Color{
		Nombre:    req.Nombre,
		CodigoHex: req.CodigoHex,
	}
	if req.PaletaID != nil {
		pid, err := uuid.Parse(*req.PaletaID)
		if err != nil {
			return dto.ColorResponse{}, errors.New("paleta_id invalido")
		}
		if _, err := s.paletas.ObtenerPorID(ctx, pid); err != nil {
			return dto.ColorResponse{}, errors.New("paleta no encontrada")
		}
		c.PaletaID = &pid
	}
	if err := s.colores.Crear(ctx, c); err != nil {
		return dto.ColorResponse{}, err
	}
	return mapColor(*c), nil
}

func (s *paletaService) ListarColores(ctx context.Context, paletaID *uuid.UUID) ([]dto.ColorResponse, error) {
	list, err := s.colores.Listar(ctx, paletaID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ColorResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapColor(c))
	}
	return result, nil
}

func (s *paletaService) ActualizarColor(ctx context.Context, id uuid.UUID, req dto.ActualizarColorRequest) (dto.ColorResponse, error) {
	c, err := s.colores.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ColorResponse{}, errors.New("color no encontrado")
		}
		return dto.ColorResponse{}, err
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.CodigoHex != nil {
		if !colores.HexValido(*req.CodigoHex) {
			return dto.ColorResponse{}, colores.ErrHexInvalido
		}
		c.CodigoHex = *req.CodigoHex
	}
	if req.PaletaID != nil {
		pid, err := uuid.Parse(*req.PaletaID)
		if err != nil {
			return dto.ColorResponse{}, errors.New("paleta_id invalido")
		}
		if _, err := s.paletas.ObtenerPorID(ctx, pid); err != nil {
			return dto.ColorResponse{}, errors.New("paleta no encontrada")
		}
		c.PaletaID = &pid
	}
	if err := s.colores.Actualizar(ctx, c); err != nil {
		return dto.ColorResponse{}, err
	}
	return mapColor(*c), nil
}

func (s *paletaService) EliminarColor(ctx context.Context, id uuid.UUID) error {
	_, err := s.colores.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("color no encontrado")
		}
		return err
	}
	return s.colores.Eliminar(ctx, id)
}
