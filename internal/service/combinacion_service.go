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

// CombinacionService manages saved color combinations and the scheme
// suggestion endpoints backed by the colores package.
type CombinacionService interface {
	Crear(ctx context.Context, req dto.CrearCombinacionRequest) (dto.CombinacionResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (dto.CombinacionResponse, error)
	Listar(ctx context.Context, modeloID *uuid.UUID, esquema *model.EsquemaColor) ([]dto.CombinacionResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCombinacionRequest) (dto.CombinacionResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error

	ColoresMasUsados(ctx context.Context, limite int) ([]dto.ColorUsoResponse, error)
	GenerarEsquema(req dto.GenerarEsquemaRequest) (dto.EsquemaGeneradoResponse, error)
	Contraste(hex1, hex2 string) (dto.ContrasteResponse, error)
}

type combinacionService struct {
	combinaciones repository.CombinacionRepository
	coloresRepo   repository.ColorRepository
	modelos       repository.ModeloRepository
}

func NewCombinacionService(
	combinaciones repository.CombinacionRepository,
	coloresRepo repository.ColorRepository,
	modelos repository.ModeloRepository,
) CombinacionService {
	return &combinacionService{
		combinaciones: combinaciones,
		coloresRepo:   coloresRepo,
		modelos:       modelos,
	}
}

func mapColorPtr(c *model.Color) *dto.ColorResponse {
	if c == nil {
		return nil
	}
	r := mapColor(*c)
	return &r
}

func mapCombinacion(k model.Combinacion) dto.CombinacionResponse {
	resp := dto.CombinacionResponse{
		ID:              k.ID.String(),
		Esquema:         string(k.Esquema),
		Nombre:          k.Nombre,
		ColorPrincipal:  mapColorPtr(k.ColorPrincipal),
		ColorSecundario: mapColorPtr(k.ColorSecundario),
		ColorHilo:       mapColorPtr(k.ColorHilo),
		ColorAsa:        mapColorPtr(k.ColorAsa),
		CreatedAt:       k.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if k.ModeloID != nil {
		s := k.ModeloID.String()
		resp.ModeloID = &s
	}
	return resp
}

// parseColorRef parses an optional color reference and checks it exists.
func (s *combinacionService) parseColorRef(ctx context.Context, ref *string) (*uuid.UUID, *model.Color, error) {
	if ref == nil {
		return nil, nil, nil
	}
	id, err := uuid.Parse(*ref)
	if err != nil {
		return nil, nil, errors.New("id de color invalido")
	}
	c, err := s.coloresRepo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.New("color no encontrado")
		}
		return nil, nil, err
	}
	return &id, c, nil
}

func (s *combinacionService) Crear(ctx context.Context, req dto.CrearCombinacionRequest) (dto.CombinacionResponse, error) {
	k := &model.Combinacion{
		Nombre:  req.Nombre,
		Esquema: model.EsquemaArmonico,
	}
	if req.Esquema != "" {
		esquema := model.EsquemaColor(req.Esquema)
		if !esquema.Valida() {
			return dto.CombinacionResponse{}, errors.New("esquema de color invalido")
		}
		k.Esquema = esquema
	}
	if req.ModeloID != nil {
		mid, err := uuid.Parse(*req.ModeloID)
		if err != nil {
			return dto.CombinacionResponse{}, errors.New("modelo_id invalido")
		}
		if _, err := s.modelos.ObtenerPorID(ctx, mid); err != nil {
			return dto.CombinacionResponse{}, errors.New("modelo no encontrado")
		}
		k.ModeloID = &mid
	}

	var principal *model.Color
	var err error
	if k.ColorPrincipalID, principal, err = s.parseColorRef(ctx, req.ColorPrincipalID); err != nil {
		return dto.CombinacionResponse{}, err
	}
	if k.ColorSecundarioID, _, err = s.parseColorRef(ctx, req.ColorSecundarioID); err != nil {
		return dto.CombinacionResponse{}, err
	}
	if k.ColorHiloID, _, err = s.parseColorRef(ctx, req.ColorHiloID); err != nil {
		return dto.CombinacionResponse{}, err
	}
	if k.ColorAsaID, _, err = s.parseColorRef(ctx, req.ColorAsaID); err != nil {
		return dto.CombinacionResponse{}, err
	}

	// Asa automatica: negro sobre cuerpo claro, blanco sobre cuerpo oscuro.
	// Reutiliza un color de catalogo con ese hex si ya existe.
	if req.AsaAutomatica && k.ColorAsaID == nil && principal != nil {
		hexAsa, err := colores.ColorAsaAutomatico(principal.CodigoHex)
		if err != nil {
			return dto.CombinacionResponse{}, err
		}
		asa, err := s.buscarOCrearColor(ctx, hexAsa)
		if err != nil {
			return dto.CombinacionResponse{}, err
		}
		k.ColorAsaID = &asa.ID
	}

	if err := s.combinaciones.Crear(ctx, k); err != nil {
		return dto.CombinacionResponse{}, err
	}
	return s.Obtener(ctx, k.ID)
}

// buscarOCrearColor finds a catalog color by hex or inserts a loose one
// (no palette) named after the hex code.
func (s *combinacionService) buscarOCrearColor(ctx context.Context, hex string) (*model.Color, error) {
	list, err := s.coloresRepo.Listar(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].CodigoHex == hex {
			return &list[i], nil
		}
	}
	c := &model.Color{Nombre: hex, CodigoHex: hex}
	if err := s.coloresRepo.Crear(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *combinacionService) Obtener(ctx context.Context, id uuid.UUID) (dto.CombinacionResponse, error) {
	k, err := s.combinaciones.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CombinacionResponse{}, errors.New("combinacion no encontrada")
		}
		return dto.CombinacionResponse{}, err
	}
	return mapCombinacion(*k), nil
}

func (s *combinacionService) Listar(ctx context.Context, modeloID *uuid.UUID, esquema *model.EsquemaColor) ([]dto.CombinacionResponse, error) {
	list, err := s.combinaciones.Listar(ctx, modeloID, esquema)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CombinacionResponse, 0, len(list))
	for _, k := range list {
		result = append(result, mapCombinacion(k))
	}
	return result, nil
}

func (s *combinacionService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCombinacionRequest) (dto.CombinacionResponse, error) {
	k, err := s.combinaciones.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CombinacionResponse{}, errors.New("combinacion no encontrada")
		}
		return dto.CombinacionResponse{}, err
	}
	if req.Nombre != nil {
		k.Nombre = *req.Nombre
	}
	if req.Esquema != nil {
		esquema := model.EsquemaColor(*req.Esquema)
		if !esquema.Valida() {
			return dto.CombinacionResponse{}, errors.New("esquema de color invalido")
		}
		k.Esquema = esquema
	}
	if req.ColorPrincipalID != nil {
		if k.ColorPrincipalID, _, err = s.parseColorRef(ctx, req.ColorPrincipalID); err != nil {
			return dto.CombinacionResponse{}, err
		}
	}
	if req.ColorSecundarioID != nil {
		if k.ColorSecundarioID, _, err = s.parseColorRef(ctx, req.ColorSecundarioID); err != nil {
			return dto.CombinacionResponse{}, err
		}
	}
	if req.ColorHiloID != nil {
		if k.ColorHiloID, _, err = s.parseColorRef(ctx, req.ColorHiloID); err != nil {
			return dto.CombinacionResponse{}, err
		}
	}
	if req.ColorAsaID != nil {
		if k.ColorAsaID, _, err = s.parseColorRef(ctx, req.ColorAsaID); err != nil {
			return dto.CombinacionResponse{}, err
		}
	}
	if err := s.combinaciones.Actualizar(ctx, k); err != nil {
		return dto.CombinacionResponse{}, err
	}
	return s.Obtener(ctx, k.ID)
}

func (s *combinacionService) Eliminar(ctx context.Context, id uuid.UUID) error {
	_, err := s.combinaciones.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("combinacion no encontrada")
		}
		return err
	}
	return s.combinaciones.Eliminar(ctx, id)
}

func (s *combinacionService) ColoresMasUsados(ctx context.Context, limite int) ([]dto.ColorUsoResponse, error) {
	if limite <= 0 {
		limite = 10
	}
	usos, err := s.combinaciones.ColoresMasUsados(ctx, limite)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ColorUsoResponse, 0, len(usos))
	for _, u := range usos {
		result = append(result, dto.ColorUsoResponse{
			ColorID:   u.ColorID.String(),
			Nombre:    u.Nombre,
			CodigoHex: u.CodigoHex,
			Usos:      int(u.Usos),
		})
	}
	return result, nil
}

func (s *combinacionService) GenerarEsquema(req dto.GenerarEsquemaRequest) (dto.EsquemaGeneradoResponse, error) {
	n := req.NumColores
	if n == 0 {
		n = 4
	}
	generados, err := colores.GenerarEsquema(req.Tipo, req.ColorBase, n)
	if err != nil {
		return dto.EsquemaGeneradoResponse{}, err
	}
	return dto.EsquemaGeneradoResponse{Tipo: req.Tipo, Colores: generados}, nil
}

func (s *combinacionService) Contraste(hex1, hex2 string) (dto.ContrasteResponse, error) {
	ratio, err := colores.Contraste(hex1, hex2)
	if err != nil {
		return dto.ContrasteResponse{}, err
	}
	claro, err := colores.EsClaro(hex1)
	if err != nil {
		return dto.ContrasteResponse{}, err
	}
	texto, err := colores.ColorTextoSugerido(hex1)
	if err != nil {
		return dto.ContrasteResponse{}, err
	}
	return dto.ContrasteResponse{Contraste: ratio, EsClaro: claro, ColorTexto: texto}, nil
}
