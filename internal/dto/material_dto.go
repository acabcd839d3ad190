package dto

import "github.com/shopspring/decimal"

type CrearMaterialRequest struct {
	Nombre        string          `json:"nombre"         validate:"required,min=2,max=100"`
	Tipo          string          `json:"tipo"           validate:"required,min=2,max=50"`
	UnidadMedida  string          `json:"unidad_medida"  validate:"omitempty,max=20"`
	CostoUnitario decimal.Decimal `json:"costo_unitario" validate:"required,gte=0"`
	Descripcion   *string         `json:"descripcion"    validate:"omitempty,max=300"`
}

type ActualizarMaterialRequest struct {
	Nombre        *string          `json:"nombre"         validate:"omitempty,min=2,max=100"`
	Tipo          *string          `json:"tipo"           validate:"omitempty,min=2,max=50"`
	UnidadMedida  *string          `json:"unidad_medida"  validate:"omitempty,max=20"`
	CostoUnitario *decimal.Decimal `json:"costo_unitario" validate:"omitempty,gte=0"`
	Descripcion   *string          `json:"descripcion"    validate:"omitempty,max=300"`
}

type MaterialResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	Tipo          string          `json:"tipo"`
	UnidadMedida  string          `json:"unidad_medida"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Descripcion   *string         `json:"descripcion"`
}

type AjusteInventarioRequest struct {
	Cantidad decimal.Decimal `json:"cantidad" validate:"required"`
	Motivo   string          `json:"motivo"   validate:"omitempty,max=200"`
}

type InventarioResponse struct {
	MaterialID      string          `json:"material_id"`
	Material        string          `json:"material"`
	Cantidad        decimal.Decimal `json:"cantidad"`
	UnidadMedida    string          `json:"unidad_medida"`
	FechaInventario string          `json:"fecha_inventario"`
}
