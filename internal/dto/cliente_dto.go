package dto

type CrearClienteRequest struct {
	Nombre    string `json:"nombre"    validate:"required,min=2,max=100"`
	Email     string `json:"email"     validate:"omitempty,email"`
	Telefono  string `json:"telefono"  validate:"omitempty,max=30"`
	Direccion string `json:"direccion" validate:"omitempty,max=200"`
	Tipo      string `json:"tipo"      validate:"omitempty,oneof=FRECUENTE PRIMERA_VEZ OCASIONAL"`
}

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=2,max=100"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Telefono  *string `json:"telefono"  validate:"omitempty,max=30"`
	Direccion *string `json:"direccion" validate:"omitempty,max=200"`
	Tipo      *string `json:"tipo"      validate:"omitempty,oneof=FRECUENTE PRIMERA_VEZ OCASIONAL"`
}

type ClienteResponse struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	Email         string `json:"email"`
	Telefono      string `json:"telefono"`
	Direccion     string `json:"direccion"`
	Tipo          string `json:"tipo"`
	FechaRegistro string `json:"fecha_registro"`
}
