package dto

import "github.com/shopspring/decimal"

type CotizacionItemRequest struct {
	MaterialID string          `json:"material_id" validate:"required,uuid"`
	Cantidad   decimal.Decimal `json:"cantidad"    validate:"required,gt=0"`
	// CostoUnitario pisa el costo vigente del material si se envia.
	CostoUnitario *decimal.Decimal `json:"costo_unitario" validate:"omitempty,gte=0"`
}

type CrearCotizacionRequest struct {
	ClienteID string                  `json:"cliente_id" validate:"required,uuid"`
	Items     []CotizacionItemRequest `json:"items"      validate:"required,min=1,dive"`
	// EnviarEmail encola el PDF de la cotizacion al email del cliente.
	EnviarEmail bool `json:"enviar_email"`
}

type ActualizarEstadoCotizacionRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente aceptada rechazada vencida"`
}

type CotizacionItemResponse struct {
	ID            string          `json:"id"`
	MaterialID    string          `json:"material_id"`
	Material      string          `json:"material"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type CotizacionResponse struct {
	ID            string                   `json:"id"`
	ClienteID     string                   `json:"cliente_id"`
	Cliente       string                   `json:"cliente"`
	Estado        string                   `json:"estado"`
	TotalEstimado decimal.Decimal          `json:"total_estimado"`
	FechaEmision  string                   `json:"fecha_emision"`
	Items         []CotizacionItemResponse `json:"items"`
}
