package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CrearAdminRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol"      validate:"omitempty,max=30"`
}

type ActualizarAdminRequest struct {
	Nombre   string `json:"nombre"   validate:"omitempty,min=2,max=100"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Rol      string `json:"rol"      validate:"omitempty,max=30"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AdminResponse struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	Email         string `json:"email"`
	Rol           string `json:"rol"`
	Activo        bool   `json:"activo"`
	FechaRegistro string `json:"fecha_registro"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int           `json:"expires_in"` // seconds
	Admin        AdminResponse `json:"admin"`
}
