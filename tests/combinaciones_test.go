package tests

import (
	"context"
	"sort"
	"testing"

	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/repository"
	"github.com/VexyyCat/ChromaBags/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory Modelo/Combinacion repository stubs ────────────────────────────

type stubModeloRepo struct {
	modelos map[uuid.UUID]*model.ModeloBolsa
	// optional back-references so Estadisticas can count usage
	combinaciones *stubCombinacionRepo
	productos     *stubProductoRepo
}

func newStubModeloRepo() *stubModeloRepo {
	return &stubModeloRepo{modelos: make(map[uuid.UUID]*model.ModeloBolsa)}
}

func (r *stubModeloRepo) Crear(_ context.Context, m *model.ModeloBolsa) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.modelos[m.ID] = m
	return nil
}

func (r *stubModeloRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.ModeloBolsa, error) {
	m, ok := r.modelos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubModeloRepo) Listar(_ context.Context, tipo *model.TipoModelo) ([]model.ModeloBolsa, error) {
	var out []model.ModeloBolsa
	for _, m := range r.modelos {
		if tipo != nil && m.Tipo != *tipo {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubModeloRepo) Actualizar(_ context.Context, m *model.ModeloBolsa) error {
	r.modelos[m.ID] = m
	return nil
}

func (r *stubModeloRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.modelos, id)
	return nil
}

func (r *stubModeloRepo) Estadisticas(_ context.Context) ([]repository.ModeloUso, error) {
	var usos []repository.ModeloUso
	for id, m := range r.modelos {
		uso := repository.ModeloUso{
			ModeloID: id,
			Nombre:   m.Nombre,
			Tipo:     m.Tipo,
			Ancho:    m.Ancho,
			Alto:     m.Alto,
		}
		if r.combinaciones != nil {
			for _, c := range r.combinaciones.combinaciones {
				if c.ModeloID != nil && *c.ModeloID == id {
					uso.TotalCombinaciones++
				}
			}
		}
		if r.productos != nil {
			for _, p := range r.productos.productos {
				if p.ModeloID == id {
					uso.TotalProductos++
				}
			}
		}
		usos = append(usos, uso)
	}
	sort.Slice(usos, func(i, j int) bool {
		if usos[i].TotalCombinaciones != usos[j].TotalCombinaciones {
			return usos[i].TotalCombinaciones > usos[j].TotalCombinaciones
		}
		return usos[i].Nombre < usos[j].Nombre
	})
	return usos, nil
}

var _ repository.ModeloRepository = (*stubModeloRepo)(nil)

type stubCombinacionRepo struct {
	combinaciones map[uuid.UUID]*model.Combinacion
	colores       *stubColorRepo
}

func newStubCombinacionRepo(colores *stubColorRepo) *stubCombinacionRepo {
	return &stubCombinacionRepo{
		combinaciones: make(map[uuid.UUID]*model.Combinacion),
		colores:       colores,
	}
}

func (r *stubCombinacionRepo) Crear(_ context.Context, c *model.Combinacion) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.combinaciones[c.ID] = c
	return nil
}

func (r *stubCombinacionRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Combinacion, error) {
	c, ok := r.combinaciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *c
	resolver := func(ref *uuid.UUID) *model.Color {
		if ref == nil {
			return nil
		}
		return r.colores.colores[*ref]
	}
	out.ColorPrincipal = resolver(c.ColorPrincipalID)
	out.ColorSecundario = resolver(c.ColorSecundarioID)
	out.ColorHilo = resolver(c.ColorHiloID)
	out.ColorAsa = resolver(c.ColorAsaID)
	return &out, nil
}

func (r *stubCombinacionRepo) Listar(_ context.Context, modeloID *uuid.UUID, esquema *model.EsquemaColor) ([]model.Combinacion, error) {
	var out []model.Combinacion
	for _, c := range r.combinaciones {
		if modeloID != nil && (c.ModeloID == nil || *c.ModeloID != *modeloID) {
			continue
		}
		if esquema != nil && c.Esquema != *esquema {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCombinacionRepo) Actualizar(_ context.Context, c *model.Combinacion) error {
	r.combinaciones[c.ID] = c
	return nil
}

func (r *stubCombinacionRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	delete(r.combinaciones, id)
	return nil
}

func (r *stubCombinacionRepo) ColoresMasUsados(_ context.Context, limite int) ([]repository.ColorUso, error) {
	conteo := make(map[uuid.UUID]int64)
	for _, c := range r.combinaciones {
		for _, ref := range []*uuid.UUID{c.ColorPrincipalID, c.ColorSecundarioID, c.ColorHiloID, c.ColorAsaID} {
			if ref != nil {
				conteo[*ref]++
			}
		}
	}
	var out []repository.ColorUso
	for id, usos := range conteo {
		uso := repository.ColorUso{ColorID: id, Usos: usos}
		if col, ok := r.colores.colores[id]; ok {
			uso.Nombre = col.Nombre
			uso.CodigoHex = col.CodigoHex
		}
		out = append(out, uso)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Usos > out[j].Usos })
	if len(out) > limite {
		out = out[:limite]
	}
	return out, nil
}

var _ repository.CombinacionRepository = (*stubCombinacionRepo)(nil)

func newCombinacionService() (service.CombinacionService, *stubCombinacionRepo, *stubColorRepo, *stubModeloRepo) {
	cr := newStubColorRepo()
	kr := newStubCombinacionRepo(cr)
	mr := newStubModeloRepo()
	return service.NewCombinacionService(kr, cr, mr), kr, cr, mr
}

func seedColor(repo *stubColorRepo, nombre, hex string) *model.Color {
	c := &model.Color{ID: uuid.New(), Nombre: nombre, CodigoHex: hex}
	repo.colores[c.ID] = c
	return c
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCrearCombinacionConRoles(t *testing.T) {
	svc, _, cr, mr := newCombinacionService()

	modelo := &model.ModeloBolsa{ID: uuid.New(), Nombre: "Tote Classic", Tipo: model.ModeloSimple}
	mr.modelos[modelo.ID] = modelo

	principal := seedColor(cr, "Terracota", "#E2725B")
	hilo := seedColor(cr, "Crudo", "#F5F0E1")

	mid := modelo.ID.String()
	pid := principal.ID.String()
	hid := hilo.ID.String()
	resp, err := svc.Crear(context.Background(), dto.CrearCombinacionRequest{
		Nombre:           "Verano Tote",
		ModeloID:         &mid,
		Esquema:          "analogo",
		ColorPrincipalID: &pid,
		ColorHiloID:      &hid,
	})
	require.NoError(t, err)
	assert.Equal(t, "Verano Tote", resp.Nombre)
	assert.Equal(t, "analogo", resp.Esquema)
	require.NotNil(t, resp.ColorPrincipal)
	assert.Equal(t, "#E2725B", resp.ColorPrincipal.CodigoHex)
	assert.Nil(t, resp.ColorSecundario)
	require.NotNil(t, resp.ColorHilo)
	assert.Equal(t, "Crudo", resp.ColorHilo.Nombre)
}

func TestCombinacionColorInexistente(t *testing.T) {
	svc, _, _, _ := newCombinacionService()

	fantasma := uuid.NewString()
	_, err := svc.Crear(context.Background(), dto.CrearCombinacionRequest{
		ColorPrincipalID: &fantasma,
	})
	assert.ErrorContains(t, err, "color no encontrado")
}

func TestAsaAutomaticaCuerpoClaro(t *testing.T) {
	svc, _, cr, _ := newCombinacionService()

	principal := seedColor(cr, "Beige", "#F5F5DC")
	pid := principal.ID.String()

	resp, err := svc.Crear(context.Background(), dto.CrearCombinacionRequest{
		ColorPrincipalID: &pid,
		AsaAutomatica:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ColorAsa)
	assert.Equal(t, "#000000", resp.ColorAsa.CodigoHex) // negro sobre cuerpo claro
}

func TestAsaAutomaticaCuerpoOscuroReutilizaColor(t *testing.T) {
	svc, _, cr, _ := newCombinacionService()

	blanco := seedColor(cr, "Blanco Nieve", "#FFFFFF")
	principal := seedColor(cr, "Marron Cafe", "#3B2412")
	pid := principal.ID.String()

	resp, err := svc.Crear(context.Background(), dto.CrearCombinacionRequest{
		ColorPrincipalID: &pid,
		AsaAutomatica:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ColorAsa)
	// the existing catalog white is reused instead of inserting a duplicate
	assert.Equal(t, blanco.ID.String(), resp.ColorAsa.ID)
	assert.Len(t, cr.colores, 2)
}

func TestAsaExplicitaGanaALaAutomatica(t *testing.T) {
	svc, _, cr, _ := newCombinacionService()

	principal := seedColor(cr, "Beige", "#F5F5DC")
	asa := seedColor(cr, "Cuero", "#8B4513")
	pid := principal.ID.String()
	aid := asa.ID.String()

	resp, err := svc.Crear(context.Background(), dto.CrearCombinacionRequest{
		ColorPrincipalID: &pid,
		ColorAsaID:       &aid,
		AsaAutomatica:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ColorAsa)
	assert.Equal(t, "Cuero", resp.ColorAsa.Nombre)
}

func TestColoresMasUsados(t *testing.T) {
	svc, kr, cr, _ := newCombinacionService()

	rojo := seedColor(cr, "Rojo", "#FF0000")
	azul := seedColor(cr, "Azul", "#0000FF")

	// rojo appears three times across role slots, azul once
	kr.combinaciones[uuid.New()] = &model.Combinacion{
		ID: uuid.New(), ColorPrincipalID: &rojo.ID, ColorHiloID: &rojo.ID,
	}
	kr.combinaciones[uuid.New()] = &model.Combinacion{
		ID: uuid.New(), ColorPrincipalID: &azul.ID, ColorAsaID: &rojo.ID,
	}

	usos, err := svc.ColoresMasUsados(context.Background(), 0) // default limit
	require.NoError(t, err)
	require.Len(t, usos, 2)
	assert.Equal(t, "Rojo", usos[0].Nombre)
	assert.Equal(t, 3, usos[0].Usos)
	assert.Equal(t, 1, usos[1].Usos)
}

func TestGenerarEsquemaDesdeServicio(t *testing.T) {
	svc, _, _, _ := newCombinacionService()

	resp, err := svc.GenerarEsquema(dto.GenerarEsquemaRequest{
		Tipo:      "triadico",
		ColorBase: "#FF0000",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"#FF0000", "#00FF00", "#0000FF"}, resp.Colores)
}

func TestContrasteDesdeServicio(t *testing.T) {
	svc, _, _, _ := newCombinacionService()

	resp, err := svc.Contraste("#FFFFFF", "#000000")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, resp.Contraste, 0.01)
	assert.True(t, resp.EsClaro)
	assert.Equal(t, "#000000", resp.ColorTexto)
}
