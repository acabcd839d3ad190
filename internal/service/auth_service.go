package service

import (
	"context"
	"errors"
	"time"

	"github.com/VexyyCat/ChromaBags/internal/config"
	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	CrearAdmin(ctx context.Context, req dto.CrearAdminRequest) (*dto.AdminResponse, error)
	ListarAdmins(ctx context.Context, incluirInactivos bool) ([]dto.AdminResponse, error)
	ActualizarAdmin(ctx context.Context, id uuid.UUID, req dto.ActualizarAdminRequest) (*dto.AdminResponse, error)
	DesactivarAdmin(ctx context.Context, id uuid.UUID) error
	ReactivarAdmin(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo repository.AdminRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.AdminRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func mapAdmin(a model.Administrador) dto.AdminResponse {
	return dto.AdminResponse{
		ID:            a.ID.String(),
		Nombre:        a.Nombre,
		Email:         a.Email,
		Rol:           a.Rol,
		Activo:        a.Activo,
		FechaRegistro: a.FechaRegistro.Format("2006-01-02T15:04:05Z"),
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("credenciales invalidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciales invalidas")
	}

	accessToken, err := s.generateToken(admin, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(admin, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		Admin:        mapAdmin(*admin),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token invalido o expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("claims invalidos")
	}
	adminIDStr, ok := claims["admin_id"].(string)
	if !ok {
		return nil, errors.New("token mal formado")
	}
	aid, err := uuid.Parse(adminIDStr)
	if err != nil {
		return nil, errors.New("token mal formado")
	}

	admin, err := s.repo.FindByID(ctx, aid)
	if err != nil || !admin.Activo {
		return nil, errors.New("administrador no encontrado o inactivo")
	}

	accessToken, err := s.generateToken(admin, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.generateToken(admin, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		Admin:        mapAdmin(*admin),
	}, nil
}

func (s *authService) CrearAdmin(ctx context.Context, req dto.CrearAdminRequest) (*dto.AdminResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	rol := req.Rol
	if rol == "" {
		rol = "administrador"
	}
	admin := &model.Administrador{
		Nombre:       req.Nombre,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       true,
	}
	// El repo aplica el cupo de administradores activos dentro de la
	// transaccion; ErrCupoAdministradores sube tal cual hasta el handler.
	if err := s.repo.Crear(ctx, admin); err != nil {
		return nil, err
	}
	resp := mapAdmin(*admin)
	return &resp, nil
}

func (s *authService) ListarAdmins(ctx context.Context, incluirInactivos bool) ([]dto.AdminResponse, error) {
	var admins []model.Administrador
	var err error
	if incluirInactivos {
		admins, err = s.repo.ListarTodos(ctx)
	} else {
		admins, err = s.repo.Listar(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AdminResponse, len(admins))
	for i, a := range admins {
		resp[i] = mapAdmin(a)
	}
	return resp, nil
}

func (s *authService) ActualizarAdmin(ctx context.Context, id uuid.UUID, req dto.ActualizarAdminRequest) (*dto.AdminResponse, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("administrador no encontrado")
	}
	if req.Nombre != "" {
		admin.Nombre = req.Nombre
	}
	if req.Email != "" {
		admin.Email = req.Email
	}
	if req.Rol != "" {
		admin.Rol = req.Rol
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = string(hash)
	}
	if err := s.repo.Actualizar(ctx, admin); err != nil {
		return nil, err
	}
	resp := mapAdmin(*admin)
	return &resp, nil
}

func (s *authService) DesactivarAdmin(ctx context.Context, id uuid.UUID) error {
	return s.repo.Desactivar(ctx, id)
}

func (s *authService) ReactivarAdmin(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivar(ctx, id)
}

func (s *authService) generateToken(a *model.Administrador, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": a.ID.String(),
		"email":    a.Email,
		"rol":      a.Rol,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
