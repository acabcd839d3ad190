package model

// Closed enumerations of the ChromaBags schema. Each is stored as a varchar
// column guarded by a CHECK constraint (see infra.applySchemaPatches) and
// validated again at the service boundary.

// EsquemaColor is the color-pairing scheme of a palette or combination.
type EsquemaColor string

const (
	EsquemaArmonico       EsquemaColor = "armonico"
	EsquemaComplementario EsquemaColor = "complementario"
	EsquemaAnalogo        EsquemaColor = "analogo"
)

func (e EsquemaColor) Valida() bool {
	switch e {
	case EsquemaArmonico, EsquemaComplementario, EsquemaAnalogo:
		return true
	}
	return false
}

// TipoModelo is the bag model category.
type TipoModelo string

const (
	ModeloSimple    TipoModelo = "simple"
	ModeloCombinado TipoModelo = "combinado"
	ModeloEspecial  TipoModelo = "especial"
)

func (t TipoModelo) Valida() bool {
	switch t {
	case ModeloSimple, ModeloCombinado, ModeloEspecial:
		return true
	}
	return false
}

// EstadoPedido is the order lifecycle state.
type EstadoPedido string

const (
	PedidoPendiente    EstadoPedido = "pendiente"
	PedidoEnProduccion EstadoPedido = "en_produccion"
	PedidoEntregado    EstadoPedido = "entregado"
	PedidoCancelado    EstadoPedido = "cancelado"
)

func (e EstadoPedido) Valida() bool {
	switch e {
	case PedidoPendiente, PedidoEnProduccion, PedidoEntregado, PedidoCancelado:
		return true
	}
	return false
}

// EstadoCotizacion is the quotation lifecycle state, distinct from the order one.
type EstadoCotizacion string

const (
	CotizacionPendiente EstadoCotizacion = "pendiente"
	CotizacionAceptada  EstadoCotizacion = "aceptada"
	CotizacionRechazada EstadoCotizacion = "rechazada"
	CotizacionVencida   EstadoCotizacion = "vencida"
)

func (e EstadoCotizacion) Valida() bool {
	switch e {
	case CotizacionPendiente, CotizacionAceptada, CotizacionRechazada, CotizacionVencida:
		return true
	}
	return false
}

// TipoCliente is the client segment.
type TipoCliente string

const (
	ClienteFrecuente  TipoCliente = "FRECUENTE"
	ClientePrimeraVez TipoCliente = "PRIMERA_VEZ"
	ClienteOcasional  TipoCliente = "OCASIONAL"
)

func (t TipoCliente) Valida() bool {
	switch t {
	case ClienteFrecuente, ClientePrimeraVez, ClienteOcasional:
		return true
	}
	return false
}
