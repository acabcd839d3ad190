package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/VexyyCat/ChromaBags/internal/config"
	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/repository"
	"github.com/VexyyCat/ChromaBags/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory AdminRepository stub ───────────────────────────────────────────

type stubAdminRepo struct {
	admins map[uuid.UUID]*model.Administrador
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[uuid.UUID]*model.Administrador)}
}

// Crear mirrors the production rule: at most two active rows, checked in the
// same critical section as the insert.
func (r *stubAdminRepo) Crear(_ context.Context, a *model.Administrador) error {
	activos := 0
	for _, x := range r.admins {
		if x.Activo {
			activos++
		}
	}
	if activos >= model.MaxAdministradoresActivos {
		return repository.ErrCupoAdministradores
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.admins[a.ID] = a
	return nil
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*model.Administrador, error) {
	for _, a := range r.admins {
		if strings.EqualFold(a.Email, email) && a.Activo {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Administrador, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubAdminRepo) Listar(_ context.Context) ([]model.Administrador, error) {
	var out []model.Administrador
	for _, a := range r.admins {
		if a.Activo {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAdminRepo) ListarTodos(_ context.Context) ([]model.Administrador, error) {
	var out []model.Administrador
	for _, a := range r.admins {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAdminRepo) Actualizar(_ context.Context, a *model.Administrador) error {
	r.admins[a.ID] = a
	return nil
}

func (r *stubAdminRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	a, ok := r.admins[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Activo = false
	return nil
}

func (r *stubAdminRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	a, ok := r.admins[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Activo = true
	return nil
}

func (r *stubAdminRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.admins, id)
	return nil
}

var _ repository.AdminRepository = (*stubAdminRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
}

func crearAdmin(t *testing.T, svc service.AuthService, nombre, email string) *dto.AdminResponse {
	t.Helper()
	resp, err := svc.CrearAdmin(context.Background(), dto.CrearAdminRequest{
		Nombre:   nombre,
		Email:    email,
		Password: "supersegura1",
	})
	require.NoError(t, err)
	return resp
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCrearAdminOK(t *testing.T) {
	svc := service.NewAuthService(newStubAdminRepo(), testConfig())

	resp := crearAdmin(t, svc, "Valentina", "valen@chromabags.com")
	assert.Equal(t, "Valentina", resp.Nombre)
	assert.Equal(t, "administrador", resp.Rol) // default role
	assert.True(t, resp.Activo)
}

func TestCupoDosAdministradoresActivos(t *testing.T) {
	svc := service.NewAuthService(newStubAdminRepo(), testConfig())

	crearAdmin(t, svc, "Admin Uno", "uno@chromabags.com")
	crearAdmin(t, svc, "Admin Dos", "dos@chromabags.com")

	_, err := svc.CrearAdmin(context.Background(), dto.CrearAdminRequest{
		Nombre:   "Admin Tres",
		Email:    "tres@chromabags.com",
		Password: "supersegura1",
	})
	assert.ErrorIs(t, err, repository.ErrCupoAdministradores)
}

func TestCupoLiberadoAlDesactivar(t *testing.T) {
	svc := service.NewAuthService(newStubAdminRepo(), testConfig())

	a := crearAdmin(t, svc, "Admin Uno", "uno@chromabags.com")
	crearAdmin(t, svc, "Admin Dos", "dos@chromabags.com")

	require.NoError(t, svc.DesactivarAdmin(context.Background(), uuid.MustParse(a.ID)))

	// the freed slot admits a new insert
	crearAdmin(t, svc, "Admin Tres", "tres@chromabags.com")
}

func TestReactivarNoPasaPorElCupo(t *testing.T) {
	repo := newStubAdminRepo()
	svc := service.NewAuthService(repo, testConfig())

	a := crearAdmin(t, svc, "Admin Uno", "uno@chromabags.com")
	crearAdmin(t, svc, "Admin Dos", "dos@chromabags.com")
	require.NoError(t, svc.DesactivarAdmin(context.Background(), uuid.MustParse(a.ID)))
	crearAdmin(t, svc, "Admin Tres", "tres@chromabags.com")

	// two actives again; reactivation still goes through: the cap gates
	// inserts only, so a third active row can appear this way
	require.NoError(t, svc.ReactivarAdmin(context.Background(), uuid.MustParse(a.ID)))

	activos, err := svc.ListarAdmins(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, activos, 3)
}

func TestLoginYRefresh(t *testing.T) {
	svc := service.NewAuthService(newStubAdminRepo(), testConfig())
	crearAdmin(t, svc, "Valentina", "valen@chromabags.com")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "valen@chromabags.com",
		Password: "supersegura1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)

	refreshed, err := svc.Refresh(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.Admin.ID, refreshed.Admin.ID)
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	svc := service.NewAuthService(newStubAdminRepo(), testConfig())
	crearAdmin(t, svc, "Valentina", "valen@chromabags.com")

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "valen@chromabags.com",
		Password: "otra-cosa",
	})
	assert.ErrorContains(t, err, "credenciales invalidas")
}

func TestLoginAdminDesactivado(t *testing.T) {
	svc := service.NewAuthService(newStubAdminRepo(), testConfig())
	a := crearAdmin(t, svc, "Valentina", "valen@chromabags.com")
	require.NoError(t, svc.DesactivarAdmin(context.Background(), uuid.MustParse(a.ID)))

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "valen@chromabags.com",
		Password: "supersegura1",
	})
	assert.ErrorContains(t, err, "credenciales invalidas")
}

func TestListarAdminsIncluyeInactivos(t *testing.T) {
	svc := service.NewAuthService(newStubAdminRepo(), testConfig())
	a := crearAdmin(t, svc, "Admin Uno", "uno@chromabags.com")
	crearAdmin(t, svc, "Admin Dos", "dos@chromabags.com")
	require.NoError(t, svc.DesactivarAdmin(context.Background(), uuid.MustParse(a.ID)))

	activos, err := svc.ListarAdmins(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, activos, 1)

	todos, err := svc.ListarAdmins(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
