package service

import (
	"context"
	"errors"

	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/repository"
	"github.com/VexyyCat/ChromaBags/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// transicionesCotizacion: desde pendiente se puede aceptar, rechazar o
// vencer; los estados finales no admiten transicion.
var transicionesCotizacion = map[model.EstadoCotizacion][]model.EstadoCotizacion{
	model.CotizacionPendiente: {model.CotizacionAceptada, model.CotizacionRechazada, model.CotizacionVencida},
}

type CotizacionService interface {
	Crear(ctx context.Context, req dto.CrearCotizacionRequest) (dto.CotizacionResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (dto.CotizacionResponse, error)
	Listar(ctx context.Context, clienteID *uuid.UUID, estado *model.EstadoCotizacion) ([]dto.CotizacionResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, estado model.EstadoCotizacion) (dto.CotizacionResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	// EnviarPorEmail encola la generacion del PDF y su envio al cliente.
	EnviarPorEmail(ctx context.Context, id uuid.UUID) error
}

type cotizacionService struct {
	cotizaciones repository.CotizacionRepository
	clientes     repository.ClienteRepository
	materiales   repository.MaterialRepository
	dispatcher   *worker.Dispatcher
}

func NewCotizacionService(
	cotizaciones repository.CotizacionRepository,
	clientes repository.ClienteRepository,
	materiales repository.MaterialRepository,
	dispatcher *worker.Dispatcher,
) CotizacionService {
	return &cotizacionService{
		cotizaciones: cotizaciones,
		clientes:     clientes,
		materiales:   materiales,
		dispatcher:   dispatcher,
	}
}

func mapCotizacion(c model.Cotizacion) dto.CotizacionResponse {
	items := make([]dto.CotizacionItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		item := dto.CotizacionItemResponse{
			ID:            it.ID.String(),
			MaterialID:    it.MaterialID.String(),
			Cantidad:      it.Cantidad,
			CostoUnitario: it.CostoUnitario,
			Subtotal:      it.Subtotal,
		}
		if it.Material != nil {
			item.Material = it.Material.Nombre
		}
		items = append(items, item)
	}
	resp := dto.CotizacionResponse{
		ID:            c.ID.String(),
		ClienteID:     c.ClienteID.String(),
		Estado:        string(c.Estado),
		TotalEstimado: c.TotalEstimado,
		FechaEmision:  c.FechaEmision.Format("2006-01-02T15:04:05Z"),
		Items:         items,
	}
	if c.Cliente != nil {
		resp.Cliente = c.Cliente.Nombre
	}
	return resp
}

func (s *cotizacionService) Crear(ctx context.Context, req dto.CrearCotizacionRequest) (dto.CotizacionResponse, error) {
	cid, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return dto.CotizacionResponse{}, errors.New("cliente_id invalido")
	}
	cliente, err := s.clientes.ObtenerPorID(ctx, cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CotizacionResponse{}, errors.New("cliente no encontrado")
		}
		return dto.CotizacionResponse{}, err
	}

	cot := &model.Cotizacion{
		ClienteID: cid,
		Estado:    model.CotizacionPendiente,
	}
	total := decimal.Zero
	for _, itemReq := range req.Items {
		mid, err := uuid.Parse(itemReq.MaterialID)
		if err != nil {
			return dto.CotizacionResponse{}, errors.New("material_id invalido")
		}
		mat, err := s.materiales.ObtenerPorID(ctx, mid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.CotizacionResponse{}, errors.New("material no encontrado")
			}
			return dto.CotizacionResponse{}, err
		}
		if !itemReq.Cantidad.IsPositive() {
			return dto.CotizacionResponse{}, errors.New("la cantidad debe ser mayor que cero")
		}
		costo := mat.CostoUnitario
		if itemReq.CostoUnitario != nil {
			costo = *itemReq.CostoUnitario
		}
		subtotal := itemReq.Cantidad.Mul(costo).Round(2)
		cot.Items = append(cot.Items, model.CotizacionItem{
			MaterialID:    mid,
			Cantidad:      itemReq.Cantidad,
			CostoUnitario: costo,
			Subtotal:      subtotal,
		})
		total = total.Add(subtotal)
	}
	cot.TotalEstimado = total.Round(2)

	if err := s.cotizaciones.Crear(ctx, cot); err != nil {
		return dto.CotizacionResponse{}, err
	}

	if req.EnviarEmail && s.dispatcher != nil && cliente.Email != "" {
		// Asincronico, mejor esfuerzo: un fallo de cola no anula la cotizacion.
		_ = s.dispatcher.EnqueueCotizacion(ctx, worker.CotizacionJobPayload{
			CotizacionID: cot.ID.String(),
			ClienteEmail: cliente.Email,
		})
	}
	return s.Obtener(ctx, cot.ID)
}

func (s *cotizacionService) Obtener(ctx context.Context, id uuid.UUID) (dto.CotizacionResponse, error) {
	c, err := s.cotizaciones.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CotizacionResponse{}, errors.New("cotizacion no encontrada")
		}
		return dto.CotizacionResponse{}, err
	}
	return mapCotizacion(*c), nil
}

func (s *cotizacionService) Listar(ctx context.Context, clienteID *uuid.UUID, estado *model.EstadoCotizacion) ([]dto.CotizacionResponse, error) {
	list, err := s.cotizaciones.Listar(ctx, clienteID, estado)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CotizacionResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCotizacion(c))
	}
	return result, nil
}

func (s *cotizacionService) CambiarEstado(ctx context.Context, id uuid.UUID, estado model.EstadoCotizacion) (dto.CotizacionResponse, error) {
	if !estado.Valida() {
		return dto.CotizacionResponse{}, errors.New("estado de cotizacion invalido")
	}
	c, err := s.cotizaciones.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CotizacionResponse{}, errors.New("cotizacion no encontrada")
		}
		return dto.CotizacionResponse{}, err
	}
	if !transicionValida(transicionesCotizacion[c.Estado], estado) {
		return dto.CotizacionResponse{}, errors.New("transicion de estado no permitida")
	}
	if err := s.cotizaciones.ActualizarEstado(ctx, id, estado); err != nil {
		return dto.CotizacionResponse{}, err
	}
	return s.Obtener(ctx, id)
}

// Eliminar borra la cotizacion y sus items en cascada.
func (s *cotizacionService) Eliminar(ctx context.Context, id uuid.UUID) error {
	_, err := s.cotizaciones.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("cotizacion no encontrada")
		}
		return err
	}
	return s.cotizaciones.Eliminar(ctx, id)
}

func (s *cotizacionService) EnviarPorEmail(ctx context.Context, id uuid.UUID) error {
	c, err := s.cotizaciones.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("cotizacion no encontrada")
		}
		return err
	}
	if c.Cliente == nil || c.Cliente.Email == "" {
		return errors.New("el cliente no tiene email registrado")
	}
	if s.dispatcher == nil {
		return errors.New("cola de trabajos no disponible")
	}
	return s.dispatcher.EnqueueCotizacion(ctx, worker.CotizacionJobPayload{
		CotizacionID: c.ID.String(),
		ClienteEmail: c.Cliente.Email,
	})
}

func transicionValida(permitidas []model.EstadoCotizacion, destino model.EstadoCotizacion) bool {
	for _, e := range permitidas {
		if e == destino {
			return true
		}
	}
	return false
}
