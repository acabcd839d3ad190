package service

import (
	"context"
	"errors"
	"time"

	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// transicionesPedido: pendiente → en_produccion o cancelado;
// en_produccion → entregado o cancelado. Entregado y cancelado son finales.
var transicionesPedido = map[model.EstadoPedido][]model.EstadoPedido{
	model.PedidoPendiente:    {model.PedidoEnProduccion, model.PedidoCancelado},
	model.PedidoEnProduccion: {model.PedidoEntregado, model.PedidoCancelado},
}

type PedidoService interface {
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (dto.PedidoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (dto.PedidoResponse, error)
	Listar(ctx context.Context, clienteID *uuid.UUID, estado *model.EstadoPedido) ([]dto.PedidoResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, estado model.EstadoPedido) (dto.PedidoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type pedidoService struct {
	pedidos   repository.PedidoRepository
	clientes  repository.ClienteRepository
	productos repository.ProductoRepository
}

func NewPedidoService(
	pedidos repository.PedidoRepository,
	clientes repository.ClienteRepository,
	productos repository.ProductoRepository,
) PedidoService {
	return &pedidoService{pedidos: pedidos, clientes: clientes, productos: productos}
}

func mapPedido(p model.Pedido) dto.PedidoResponse {
	items := make([]dto.PedidoItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		item := dto.PedidoItemResponse{
			ID:             it.ID.String(),
			ProductoID:     it.ProductoID.String(),
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal,
		}
		if it.Producto != nil {
			item.Producto = it.Producto.Nombre
		}
		items = append(items, item)
	}
	resp := dto.PedidoResponse{
		ID:          p.ID.String(),
		ClienteID:   p.ClienteID.String(),
		Estado:      string(p.Estado),
		Total:       p.Total,
		FechaPedido: p.FechaPedido.Format("2006-01-02T15:04:05Z"),
		Items:       items,
	}
	if p.Cliente != nil {
		resp.Cliente = p.Cliente.Nombre
	}
	if p.FechaEntrega != nil {
		s := p.FechaEntrega.Format("2006-01-02")
		resp.FechaEntrega = &s
	}
	return resp
}

func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (dto.PedidoResponse, error) {
	cid, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return dto.PedidoResponse{}, errors.New("cliente_id invalido")
	}
	if _, err := s.clientes.ObtenerPorID(ctx, cid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PedidoResponse{}, errors.New("cliente no encontrado")
		}
		return dto.PedidoResponse{}, err
	}

	p := &model.Pedido{
		ClienteID: cid,
		Estado:    model.PedidoPendiente,
	}
	if req.FechaEntrega != nil {
		fecha, err := time.Parse("2006-01-02", *req.FechaEntrega)
		if err != nil {
			return dto.PedidoResponse{}, errors.New("fecha_entrega invalida")
		}
		p.FechaEntrega = &fecha
	}

	total := decimal.Zero
	for _, itemReq := range req.Items {
		if itemReq.Cantidad <= 0 {
			return dto.PedidoResponse{}, errors.New("la cantidad debe ser mayor que cero")
		}
		pid, err := uuid.Parse(itemReq.ProductoID)
		if err != nil {
			return dto.PedidoResponse{}, errors.New("producto_id invalido")
		}
		prod, err := s.productos.ObtenerPorID(ctx, pid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.PedidoResponse{}, errors.New("producto no encontrado")
			}
			return dto.PedidoResponse{}, err
		}
		precio := prod.PrecioSugerido
		if itemReq.PrecioUnitario != nil {
			precio = *itemReq.PrecioUnitario
		}
		subtotal := precio.Mul(decimal.NewFromInt(int64(itemReq.Cantidad))).Round(2)
		p.Items = append(p.Items, model.PedidoItem{
			ProductoID:     pid,
			Cantidad:       itemReq.Cantidad,
			PrecioUnitario: precio,
			Subtotal:       subtotal,
		})
		total = total.Add(subtotal)
	}
	p.Total = total.Round(2)

	if err := s.pedidos.Crear(ctx, p); err != nil {
		return dto.PedidoResponse{}, err
	}
	return s.Obtener(ctx, p.ID)
}

func (s *pedidoService) Obtener(ctx context.Context, id uuid.UUID) (dto.PedidoResponse, error) {
	p, err := s.pedidos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PedidoResponse{}, errors.New("pedido no encontrado")
		}
		return dto.PedidoResponse{}, err
	}
	return mapPedido(*p), nil
}

func (s *pedidoService) Listar(ctx context.Context, clienteID *uuid.UUID, estado *model.EstadoPedido) ([]dto.PedidoResponse, error) {
	list, err := s.pedidos.Listar(ctx, clienteID, estado)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPedido(p))
	}
	return result, nil
}

func (s *pedidoService) CambiarEstado(ctx context.Context, id uuid.UUID, estado model.EstadoPedido) (dto.PedidoResponse, error) {
	if !estado.Valida() {
		return dto.PedidoResponse{}, errors.New("estado de pedido invalido")
	}
	p, err := s.pedidos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PedidoResponse{}, errors.New("pedido no encontrado")
		}
		return dto.PedidoResponse{}, err
	}
	permitidas := transicionesPedido[p.Estado]
	valida := false
	for _, e := range permitidas {
		if e == estado {
			valida = true
			break
		}
	}
	if !valida {
		return dto.PedidoResponse{}, errors.New("transicion de estado no permitida")
	}
	if err := s.pedidos.ActualizarEstado(ctx, id, estado); err != nil {
		return dto.PedidoResponse{}, err
	}
	return s.Obtener(ctx, id)
}

// Eliminar borra el pedido y sus items en cascada.
func (s *pedidoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	_, err := s.pedidos.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("pedido no encontrado")
		}
		return err
	}
	return s.pedidos.Eliminar(ctx, id)
}
