package dto

import "github.com/shopspring/decimal"

type PedidoItemRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,gt=0"`
	// PrecioUnitario pisa el precio sugerido del producto si se envia.
	PrecioUnitario *decimal.Decimal `json:"precio_unitario" validate:"omitempty,gte=0"`
}

type CrearPedidoRequest struct {
	ClienteID    string              `json:"cliente_id"    validate:"required,uuid"`
	FechaEntrega *string             `json:"fecha_entrega" validate:"omitempty,datetime=2006-01-02"`
	Items        []PedidoItemRequest `json:"items"         validate:"required,min=1,dive"`
}

type ActualizarEstadoPedidoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente en_produccion entregado cancelado"`
}

type PedidoItemResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type PedidoResponse struct {
	ID           string               `json:"id"`
	ClienteID    string               `json:"cliente_id"`
	Cliente      string               `json:"cliente"`
	Estado       string               `json:"estado"`
	Total        decimal.Decimal      `json:"total"`
	FechaPedido  string               `json:"fecha_pedido"`
	FechaEntrega *string              `json:"fecha_entrega"`
	Items        []PedidoItemResponse `json:"items"`
}
