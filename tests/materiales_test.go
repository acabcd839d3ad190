package tests

import (
	"context"
	"testing"
	"time"

	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/repository"
	"github.com/VexyyCat/ChromaBags/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory Material/Inventario repository stubs ───────────────────────────

type stubMaterialRepo struct {
	materiales map[uuid.UUID]*model.Material
}

func newStubMaterialRepo() *stubMaterialRepo {
	return &stubMaterialRepo{materiales: make(map[uuid.UUID]*model.Material)}
}

func (r *stubMaterialRepo) Crear(_ context.Context, m *model.Material) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.UnidadMedida == "" {
		m.UnidadMedida = "m"
	}
	r.materiales[m.ID] = m
	return nil
}

func (r *stubMaterialRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Material, error) {
	m, ok := r.materiales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMaterialRepo) Listar(_ context.Context, tipo string) ([]model.Material, error) {
	var out []model.Material
	for _, m := range r.materiales {
		if tipo != "" && m.Tipo != tipo {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMaterialRepo) Actualizar(_ context.Context, m *model.Material) error {
	r.materiales[m.ID] = m
	return nil
}

func (r *stubMaterialRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.materiales, id)
	return nil
}

var _ repository.MaterialRepository = (*stubMaterialRepo)(nil)

type stubInventarioRepo struct {
	porMaterial map[uuid.UUID]*model.InventarioMaterial
	materiales  *stubMaterialRepo
}

func newStubInventarioRepo(materiales *stubMaterialRepo) *stubInventarioRepo {
	return &stubInventarioRepo{
		porMaterial: make(map[uuid.UUID]*model.InventarioMaterial),
		materiales:  materiales,
	}
}

func (r *stubInventarioRepo) ObtenerPorMaterial(_ context.Context, materialID uuid.UUID) (*model.InventarioMaterial, error) {
	inv, ok := r.porMaterial[materialID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *inv
	out.Material = r.materiales.materiales[materialID]
	return &out, nil
}

func (r *stubInventarioRepo) Listar(_ context.Context) ([]model.InventarioMaterial, error) {
	var out []model.InventarioMaterial
	for id, inv := range r.porMaterial {
		copia := *inv
		copia.Material = r.materiales.materiales[id]
		out = append(out, copia)
	}
	return out, nil
}

func (r *stubInventarioRepo) Ajustar(_ context.Context, materialID uuid.UUID, delta decimal.Decimal) (*model.InventarioMaterial, error) {
	inv, ok := r.porMaterial[materialID]
	if !ok {
		inv = &model.InventarioMaterial{
			ID:         uuid.New(),
			MaterialID: materialID,
			Cantidad:   decimal.Zero,
		}
		r.porMaterial[materialID] = inv
	}
	inv.Cantidad = inv.Cantidad.Add(delta)
	inv.UpdatedAt = time.Now()
	out := *inv
	out.Material = r.materiales.materiales[materialID]
	return &out, nil
}

func (r *stubInventarioRepo) BajoStock(_ context.Context, umbral decimal.Decimal) ([]model.InventarioMaterial, error) {
	var out []model.InventarioMaterial
	for id, inv := range r.porMaterial {
		if inv.Cantidad.LessThanOrEqual(umbral) {
			copia := *inv
			copia.Material = r.materiales.materiales[id]
			out = append(out, copia)
		}
	}
	return out, nil
}

var _ repository.InventarioRepository = (*stubInventarioRepo)(nil)

func newMaterialService() (service.MaterialService, *stubMaterialRepo, *stubInventarioRepo) {
	mr := newStubMaterialRepo()
	ir := newStubInventarioRepo(mr)
	return service.NewMaterialService(mr, ir), mr, ir
}

func seedMaterial(repo *stubMaterialRepo, nombre, tipo string, costo float64) *model.Material {
	m := &model.Material{
		ID:            uuid.New(),
		Nombre:        nombre,
		Tipo:          tipo,
		UnidadMedida:  "m",
		CostoUnitario: decimal.NewFromFloat(costo),
	}
	repo.materiales[m.ID] = m
	return m
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCrearMaterial(t *testing.T) {
	svc, _, _ := newMaterialService()

	resp, err := svc.Crear(context.Background(), dto.CrearMaterialRequest{
		Nombre:        "Lona Cruda",
		Tipo:          "tela",
		CostoUnitario: decimal.NewFromFloat(1250.50),
	})
	require.NoError(t, err)
	assert.Equal(t, "Lona Cruda", resp.Nombre)
	assert.Equal(t, "m", resp.UnidadMedida) // default unit
	assert.Equal(t, "1250.5", resp.CostoUnitario.String())
}

func TestListarMaterialesPorTipo(t *testing.T) {
	svc, mr, _ := newMaterialService()
	seedMaterial(mr, "Lona", "tela", 1000)
	seedMaterial(mr, "Gabardina", "tela", 1400)
	seedMaterial(mr, "Hilo Poliester", "hilo", 300)

	telas, err := svc.Listar(context.Background(), "tela")
	require.NoError(t, err)
	assert.Len(t, telas, 2)

	todos, err := svc.Listar(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, todos, 3)
}

func TestAjustarInventarioCreaSnapshot(t *testing.T) {
	svc, mr, _ := newMaterialService()
	m := seedMaterial(mr, "Lona", "tela", 1000)

	resp, err := svc.AjustarInventario(context.Background(), m.ID, dto.AjusteInventarioRequest{
		Cantidad: decimal.NewFromFloat(25.5),
		Motivo:   "compra inicial",
	})
	require.NoError(t, err)
	assert.Equal(t, "25.5", resp.Cantidad.String())
	assert.Equal(t, "Lona", resp.Material)
}

func TestAjustarInventarioAcumula(t *testing.T) {
	svc, mr, _ := newMaterialService()
	m := seedMaterial(mr, "Cierre 20cm", "herraje", 120)

	_, err := svc.AjustarInventario(context.Background(), m.ID, dto.AjusteInventarioRequest{
		Cantidad: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	resp, err := svc.AjustarInventario(context.Background(), m.ID, dto.AjusteInventarioRequest{
		Cantidad: decimal.NewFromInt(-15),
		Motivo:   "corte de produccion",
	})
	require.NoError(t, err)
	assert.Equal(t, "25", resp.Cantidad.String())
}

func TestAjustarInventarioMaterialInexistente(t *testing.T) {
	svc, _, _ := newMaterialService()

	_, err := svc.AjustarInventario(context.Background(), uuid.New(), dto.AjusteInventarioRequest{
		Cantidad: decimal.NewFromInt(5),
	})
	assert.ErrorContains(t, err, "material no encontrado")
}

func TestBajoStock(t *testing.T) {
	svc, mr, _ := newMaterialService()
	lona := seedMaterial(mr, "Lona", "tela", 1000)
	hilo := seedMaterial(mr, "Hilo", "hilo", 300)
	cuero := seedMaterial(mr, "Cuero", "cuero", 5000)

	for _, ajuste := range []struct {
		id       uuid.UUID
		cantidad int64
	}{
		{lona.ID, 50},
		{hilo.ID, 8},
		{cuero.ID, 2},
	} {
		_, err := svc.AjustarInventario(context.Background(), ajuste.id, dto.AjusteInventarioRequest{
			Cantidad: decimal.NewFromInt(ajuste.cantidad),
		})
		require.NoError(t, err)
	}

	alertas, err := svc.BajoStock(context.Background(), decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Len(t, alertas, 2)
}

func TestCostoUnitarioNegativo(t *testing.T) {
	svc, mr, _ := newMaterialService()

	_, err := svc.Crear(context.Background(), dto.CrearMaterialRequest{
		Nombre:        "Raro",
		Tipo:          "tela",
		CostoUnitario: decimal.NewFromFloat(-1),
	})
	assert.ErrorContains(t, err, "no puede ser negativo")

	m := seedMaterial(mr, "Lona", "tela", 1000)
	negativo := decimal.NewFromInt(-5)
	_, err = svc.Actualizar(context.Background(), m.ID, dto.ActualizarMaterialRequest{
		CostoUnitario: &negativo,
	})
	assert.ErrorContains(t, err, "no puede ser negativo")
}
