package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Nombre          string          `json:"nombre"          validate:"required,min=2,max=100"`
	ModeloID        string          `json:"modelo_id"       validate:"required,uuid"`
	CombinacionID   *string         `json:"combinacion_id"  validate:"omitempty,uuid"`
	CostoProduccion decimal.Decimal `json:"costo_produccion" validate:"required,gte=0"`
	PrecioSugerido  decimal.Decimal `json:"precio_sugerido"  validate:"required,gte=0"`
	Stock           *int            `json:"stock"           validate:"omitempty,gte=0"`
}

type ActualizarProductoRequest struct {
	Nombre          *string          `json:"nombre"          validate:"omitempty,min=2,max=100"`
	ModeloID        *string          `json:"modelo_id"       validate:"omitempty,uuid"`
	CombinacionID   *string          `json:"combinacion_id"  validate:"omitempty,uuid"`
	CostoProduccion *decimal.Decimal `json:"costo_produccion" validate:"omitempty,gte=0"`
	PrecioSugerido  *decimal.Decimal `json:"precio_sugerido"  validate:"omitempty,gte=0"`
	Stock           *int             `json:"stock"           validate:"omitempty,gte=0"`
}

type AjusteStockRequest struct {
	// Delta puede ser negativo; el stock resultante nunca baja de cero.
	Delta int `json:"delta" validate:"required"`
}

type ProductoResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	ModeloID        string          `json:"modelo_id"`
	CombinacionID   *string         `json:"combinacion_id"`
	CostoProduccion decimal.Decimal `json:"costo_produccion"`
	PrecioSugerido  decimal.Decimal `json:"precio_sugerido"`
	Stock           int             `json:"stock"`
	FechaRegistro   string          `json:"fecha_registro"`
}

// CatalogoFilaResponse es una fila del reporte de catalogo: producto con su
// modelo y, si la combinacion existe, los nombres de color por rol.
type CatalogoFilaResponse struct {
	Producto        string          `json:"producto"`
	Modelo          string          `json:"modelo"`
	TipoModelo      string          `json:"tipo_modelo"`
	PrecioSugerido  decimal.Decimal `json:"precio_sugerido"`
	Stock           int             `json:"stock"`
	ColorPrincipal  *string         `json:"color_principal"`
	ColorSecundario *string         `json:"color_secundario"`
	ColorHilo       *string         `json:"color_hilo"`
	ColorAsa        *string         `json:"color_asa"`
}

type ColorUsoResponse struct {
	ColorID   string `json:"color_id"`
	Nombre    string `json:"nombre"`
	CodigoHex string `json:"codigo_hex"`
	Usos      int    `json:"usos"`
}
