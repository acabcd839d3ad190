package dto

import "github.com/shopspring/decimal"

// ─── Paletas y colores ───────────────────────────────────────────────────────

type CrearPaletaRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=100"`
	Esquema     string  `json:"esquema"     validate:"required,oneof=armonico complementario analogo"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarPaletaRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=2,max=100"`
	Esquema     *string `json:"esquema"     validate:"omitempty,oneof=armonico complementario analogo"`
	Descripcion *string `json:"descripcion"`
}

type PaletaResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Esquema     string          `json:"esquema"`
	Descripcion *string         `json:"descripcion"`
	Colores     []ColorResponse `json:"colores"`
}

type CrearColorRequest struct {
	Nombre    string  `json:"nombre"     validate:"required,min=2,max=100"`
	CodigoHex string  `json:"codigo_hex" validate:"required,len=7"`
	PaletaID  *string `json:"paleta_id"  validate:"omitempty,uuid"`
}

type ActualizarColorRequest struct {
	Nombre    *string `json:"nombre"     validate:"omitempty,min=2,max=100"`
	CodigoHex *string `json:"codigo_hex" validate:"omitempty,len=7"`
	PaletaID  *string `json:"paleta_id"  validate:"omitempty,uuid"`
}

type ColorResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	CodigoHex string  `json:"codigo_hex"`
	PaletaID  *string `json:"paleta_id"`
}

// ─── Modelos de bolsa ────────────────────────────────────────────────────────

type CrearModeloRequest struct {
	Nombre      string           `json:"nombre" validate:"required,min=2,max=100"`
	Tipo        string           `json:"tipo"   validate:"required,oneof=simple combinado especial"`
	Descripcion *string          `json:"descripcion"`
	Ancho       *decimal.Decimal `json:"ancho"  validate:"omitempty,gt=0"`
	Alto        *decimal.Decimal `json:"alto"   validate:"omitempty,gt=0"`
}

type ActualizarModeloRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=2,max=100"`
	Tipo        *string          `json:"tipo"   validate:"omitempty,oneof=simple combinado especial"`
	Descripcion *string          `json:"descripcion"`
	Ancho       *decimal.Decimal `json:"ancho"  validate:"omitempty,gt=0"`
	Alto        *decimal.Decimal `json:"alto"   validate:"omitempty,gt=0"`
}

type ModeloResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Tipo        string          `json:"tipo"`
	Descripcion *string         `json:"descripcion"`
	Ancho       decimal.Decimal `json:"ancho"`
	Alto        decimal.Decimal `json:"alto"`
}

type ModeloUsoResponse struct {
	ModeloID           string          `json:"modelo_id"`
	Nombre             string          `json:"nombre"`
	Tipo               string          `json:"tipo"`
	AreaSuperficie     decimal.Decimal `json:"area_superficie"`
	TotalCombinaciones int64           `json:"total_combinaciones"`
	TotalProductos     int64           `json:"total_productos"`
}

// ─── Combinaciones ───────────────────────────────────────────────────────────

type CrearCombinacionRequest struct {
	ModeloID          *string `json:"modelo_id"           validate:"omitempty,uuid"`
	Esquema           string  `json:"esquema"             validate:"omitempty,oneof=armonico complementario analogo"`
	Nombre            string  `json:"nombre"              validate:"omitempty,max=140"`
	ColorPrincipalID  *string `json:"color_principal_id"  validate:"omitempty,uuid"`
	ColorSecundarioID *string `json:"color_secundario_id" validate:"omitempty,uuid"`
	ColorHiloID       *string `json:"color_hilo_id"       validate:"omitempty,uuid"`
	ColorAsaID        *string `json:"color_asa_id"        validate:"omitempty,uuid"`
	// AsaAutomatica picks a black/white handle color by contrast against the
	// principal color when no explicit handle color is given.
	AsaAutomatica bool `json:"asa_automatica"`
}

type ActualizarCombinacionRequest struct {
	Nombre            *string `json:"nombre"              validate:"omitempty,max=140"`
	Esquema           *string `json:"esquema"             validate:"omitempty,oneof=armonico complementario analogo"`
	ColorPrincipalID  *string `json:"color_principal_id"  validate:"omitempty,uuid"`
	ColorSecundarioID *string `json:"color_secundario_id" validate:"omitempty,uuid"`
	ColorHiloID       *string `json:"color_hilo_id"       validate:"omitempty,uuid"`
	ColorAsaID        *string `json:"color_asa_id"        validate:"omitempty,uuid"`
}

type CombinacionResponse struct {
	ID              string         `json:"id"`
	ModeloID        *string        `json:"modelo_id"`
	Esquema         string         `json:"esquema"`
	Nombre          string         `json:"nombre"`
	ColorPrincipal  *ColorResponse `json:"color_principal"`
	ColorSecundario *ColorResponse `json:"color_secundario"`
	ColorHilo       *ColorResponse `json:"color_hilo"`
	ColorAsa        *ColorResponse `json:"color_asa"`
	CreatedAt       string         `json:"created_at"`
}

// ─── Sugerencias de esquemas ─────────────────────────────────────────────────

type GenerarEsquemaRequest struct {
	Tipo       string `json:"tipo"        validate:"required,oneof=armonico complementario analogo triadico tetradico monocromatico"`
	ColorBase  string `json:"color_base"  validate:"required,len=7"`
	NumColores int    `json:"num_colores" validate:"omitempty,min=2,max=8"`
}

type EsquemaGeneradoResponse struct {
	Tipo    string   `json:"tipo"`
	Colores []string `json:"colores"`
}

type ContrasteResponse struct {
	Contraste  float64 `json:"contraste"`
	EsClaro    bool    `json:"es_claro"`
	ColorTexto string  `json:"color_texto_sugerido"`
}
