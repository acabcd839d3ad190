//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests for ChromaBags using real Postgres + Redis via
// testcontainers. Run with: go test -tags integration ./tests/e2e/... -v
//
// Scenarios:
//   - Admin quota: a third active administrator is rejected with 409
//   - Palette deletion detaches colors instead of deleting them
//   - Catalog flow: colors -> model -> combination -> products -> report
//   - Quotation lifecycle: totals, state machine, cascade delete of lines
//   - Order lifecycle: creation, totals and state transitions
//   - Inventory adjustments and low-stock alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/VexyyCat/ChromaBags/internal/config"
	"github.com/VexyyCat/ChromaBags/internal/infra"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	server *httptest.Server
	token  string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	// Start Postgres container
	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("chromabags_test"),
		tcPostgres.WithUsername("chromabags"),
		tcPostgres.WithPassword("chromabags"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Start Redis container
	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	// Build config
	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		PDFStoragePath:     t.TempDir(),
	}

	// NewDatabase migrates the schema on connect
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed the bootstrap admin
	hash, err := bcrypt.GenerateFromPassword([]byte("chromabags2026"), 12)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Administrador{
		Nombre:       "Admin E2E",
		Email:        "admin@e2e.test",
		PasswordHash: string(hash),
		Rol:          "administrador",
		Activo:       true,
	}).Error)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)

	env := &testEnv{server: srv}
	env.token = login(t, env, "admin@e2e.test", "chromabags2026")
	return env
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, env *testEnv, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, env.server.URL+path, body)
	} else {
		req, err = http.NewRequest(method, env.server.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if env.token != "" {
		req.Header.Set("Authorization", "Bearer "+env.token)
	}
	resp, err := env.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func login(t *testing.T, env *testEnv, email, password string) string {
	t.Helper()
	resp := do(t, env, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"email": email, "password": password}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}

type idResp struct {
	ID string `json:"id"`
}

func crear(t *testing.T, env *testEnv, path string, body map[string]any) idResp {
	t.Helper()
	resp := do(t, env, "POST", path, jsonBody(t, body))
	require.Equal(t, http.StatusCreated, resp.StatusCode, "POST %s", path)
	var out idResp
	decodeJSON(t, resp, &out)
	require.NotEmpty(t, out.ID)
	return out
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_CupoAdministradores(t *testing.T) {
	env := setupTestEnv(t)

	// the seeded admin occupies slot 1; this one takes slot 2
	segundo := crear(t, env, "/v1/administradores", map[string]any{
		"nombre":   "Segunda Admin",
		"email":    "segunda@e2e.test",
		"password": "supersegura1",
	})

	// slot 3 does not exist
	resp := do(t, env, "POST", "/v1/administradores", jsonBody(t, map[string]any{
		"nombre":   "Tercer Admin",
		"email":    "tercero@e2e.test",
		"password": "supersegura1",
	}))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// deactivating frees the slot for a fresh insert
	resp = do(t, env, "DELETE", "/v1/administradores/"+segundo.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	crear(t, env, "/v1/administradores", map[string]any{
		"nombre":   "Tercer Admin",
		"email":    "tercero@e2e.test",
		"password": "supersegura1",
	})

	// reactivation is not gated by the cap, it only applies to inserts
	resp = do(t, env, "PATCH", "/v1/administradores/"+segundo.ID+"/reactivar", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env, "GET", "/v1/administradores", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var admins []struct {
		Activo bool `json:"activo"`
	}
	decodeJSON(t, resp, &admins)
	activos := 0
	for _, a := range admins {
		if a.Activo {
			activos++
		}
	}
	assert.Equal(t, 3, activos)
}

func TestE2E_CupoAdministradoresConcurrente(t *testing.T) {
	env := setupTestEnv(t)

	// One slot left after the seeded admin. Racing inserts must serialize:
	// at most one commits, never both.
	const rivales = 2
	var wg sync.WaitGroup
	codes := make([]int, rivales)
	for i := 0; i < rivales; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := do(t, env, "POST", "/v1/administradores", jsonBody(t, map[string]any{
				"nombre":   fmt.Sprintf("Rival %d", i),
				"email":    fmt.Sprintf("rival%d@e2e.test", i),
				"password": "supersegura1",
			}))
			codes[i] = resp.StatusCode
			resp.Body.Close()
		}(i)
	}
	wg.Wait()

	creados := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			creados++
		}
	}
	assert.LessOrEqual(t, creados, 1)

	resp := do(t, env, "GET", "/v1/administradores", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var admins []struct {
		Activo bool `json:"activo"`
	}
	decodeJSON(t, resp, &admins)
	activos := 0
	for _, a := range admins {
		if a.Activo {
			activos++
		}
	}
	assert.LessOrEqual(t, activos, 2)
}

func TestE2E_EliminarPaletaDesvinculaColores(t *testing.T) {
	env := setupTestEnv(t)

	paleta := crear(t, env, "/v1/paletas", map[string]any{
		"nombre":  "Otono",
		"esquema": "analogo",
	})
	color := crear(t, env, "/v1/colores", map[string]any{
		"nombre":     "Mostaza",
		"codigo_hex": "#E1AD01",
		"paleta_id":  paleta.ID,
	})

	resp := do(t, env, "DELETE", "/v1/paletas/"+paleta.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// the color survives with its palette reference cleared
	resp = do(t, env, "GET", "/v1/colores", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var colores []struct {
		ID       string  `json:"id"`
		PaletaID *string `json:"paleta_id"`
	}
	decodeJSON(t, resp, &colores)
	require.Len(t, colores, 1)
	assert.Equal(t, color.ID, colores[0].ID)
	assert.Nil(t, colores[0].PaletaID)
}

func TestE2E_ReporteCatalogo(t *testing.T) {
	env := setupTestEnv(t)

	terracota := crear(t, env, "/v1/colores", map[string]any{
		"nombre": "Terracota", "codigo_hex": "#E2725B",
	})
	crudo := crear(t, env, "/v1/colores", map[string]any{
		"nombre": "Crudo", "codigo_hex": "#F5F0E1",
	})
	modelo := crear(t, env, "/v1/modelos", map[string]any{
		"nombre": "Tote Classic", "tipo": "simple",
	})
	combinacion := crear(t, env, "/v1/combinaciones", map[string]any{
		"nombre":             "Verano",
		"modelo_id":          modelo.ID,
		"color_principal_id": terracota.ID,
		"color_hilo_id":      crudo.ID,
		"asa_automatica":     true,
	})
	crear(t, env, "/v1/productos", map[string]any{
		"nombre":           "Tote Classic Terracota",
		"modelo_id":        modelo.ID,
		"combinacion_id":   combinacion.ID,
		"costo_produccion": 3200.0,
		"precio_sugerido":  5900.0,
		"stock":            8,
	})
	crear(t, env, "/v1/productos", map[string]any{
		"nombre":           "Tote Classic Liso",
		"modelo_id":        modelo.ID,
		"costo_produccion": 2800.0,
		"precio_sugerido":  5200.0,
	})

	resp := do(t, env, "GET", "/v1/reportes/catalogo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var filas []struct {
		Producto        string  `json:"producto"`
		Modelo          string  `json:"modelo"`
		TipoModelo      string  `json:"tipo_modelo"`
		Stock           int     `json:"stock"`
		ColorPrincipal  *string `json:"color_principal"`
		ColorSecundario *string `json:"color_secundario"`
		ColorHilo       *string `json:"color_hilo"`
		ColorAsa        *string `json:"color_asa"`
	}
	decodeJSON(t, resp, &filas)
	require.Len(t, filas, 2)

	// rows ordered by product name: "Liso" before "Terracota"
	assert.Equal(t, "Tote Classic Liso", filas[0].Producto)
	assert.Nil(t, filas[0].ColorPrincipal)
	assert.Equal(t, 0, filas[0].Stock)

	assert.Equal(t, "Tote Classic Terracota", filas[1].Producto)
	assert.Equal(t, "Tote Classic", filas[1].Modelo)
	assert.Equal(t, "simple", filas[1].TipoModelo)
	assert.Equal(t, 8, filas[1].Stock)
	require.NotNil(t, filas[1].ColorPrincipal)
	assert.Equal(t, "Terracota", *filas[1].ColorPrincipal)
	assert.Nil(t, filas[1].ColorSecundario)
	require.NotNil(t, filas[1].ColorHilo)
	assert.Equal(t, "Crudo", *filas[1].ColorHilo)
	// terracotta reads as light, so the automatic handle resolves to black
	require.NotNil(t, filas[1].ColorAsa)
}

func TestE2E_CotizacionCicloCompleto(t *testing.T) {
	env := setupTestEnv(t)

	cliente := crear(t, env, "/v1/clientes", map[string]any{
		"nombre": "Marta Diaz", "email": "marta@e2e.test",
	})
	lona := crear(t, env, "/v1/materiales", map[string]any{
		"nombre": "Lona Cruda", "tipo": "tela", "costo_unitario": 1250.50,
	})
	hilo := crear(t, env, "/v1/materiales", map[string]any{
		"nombre": "Hilo Poliester", "tipo": "hilo", "unidad_medida": "un", "costo_unitario": 300.0,
	})

	resp := do(t, env, "POST", "/v1/cotizaciones", jsonBody(t, map[string]any{
		"cliente_id": cliente.ID,
		"items": []map[string]any{
			{"material_id": lona.ID, "cantidad": 2.5},
			{"material_id": hilo.ID, "cantidad": 3},
		},
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cot struct {
		ID            string `json:"id"`
		Estado        string `json:"estado"`
		TotalEstimado string `json:"total_estimado"`
		Items         []struct {
			Material string `json:"material"`
			Subtotal string `json:"subtotal"`
		} `json:"items"`
	}
	decodeJSON(t, resp, &cot)
	assert.Equal(t, "pendiente", cot.Estado)
	// 2.5 x 1250.50 + 3 x 300
	assert.Equal(t, "4026.25", cot.TotalEstimado)
	require.Len(t, cot.Items, 2)

	// pendiente -> aceptada
	resp = do(t, env, "PATCH", "/v1/cotizaciones/"+cot.ID+"/estado",
		jsonBody(t, map[string]any{"estado": "aceptada"}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// aceptada is terminal
	resp = do(t, env, "PATCH", "/v1/cotizaciones/"+cot.ID+"/estado",
		jsonBody(t, map[string]any{"estado": "pendiente"}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// the delete cascades to the lines
	resp = do(t, env, "DELETE", "/v1/cotizaciones/"+cot.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env, "GET", "/v1/cotizaciones/"+cot.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_PedidoCicloCompleto(t *testing.T) {
	env := setupTestEnv(t)

	cliente := crear(t, env, "/v1/clientes", map[string]any{
		"nombre": "Marta Diaz",
	})
	modelo := crear(t, env, "/v1/modelos", map[string]any{
		"nombre": "Tote Classic", "tipo": "simple",
	})
	producto := crear(t, env, "/v1/productos", map[string]any{
		"nombre":           "Tote Terracota",
		"modelo_id":        modelo.ID,
		"costo_produccion": 3200.0,
		"precio_sugerido":  5900.0,
		"stock":            10,
	})

	resp := do(t, env, "POST", "/v1/pedidos", jsonBody(t, map[string]any{
		"cliente_id":    cliente.ID,
		"fecha_entrega": "2026-09-15",
		"items": []map[string]any{
			{"producto_id": producto.ID, "cantidad": 2},
		},
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var pedido struct {
		ID           string  `json:"id"`
		Estado       string  `json:"estado"`
		Total        string  `json:"total"`
		FechaEntrega *string `json:"fecha_entrega"`
	}
	decodeJSON(t, resp, &pedido)
	assert.Equal(t, "pendiente", pedido.Estado)
	assert.Equal(t, "11800", pedido.Total)
	require.NotNil(t, pedido.FechaEntrega)
	assert.Equal(t, "2026-09-15", *pedido.FechaEntrega)

	// pendiente cannot jump straight to entregado
	resp = do(t, env, "PATCH", "/v1/pedidos/"+pedido.ID+"/estado",
		jsonBody(t, map[string]any{"estado": "entregado"}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	for _, estado := range []string{"en_produccion", "entregado"} {
		resp = do(t, env, "PATCH", "/v1/pedidos/"+pedido.ID+"/estado",
			jsonBody(t, map[string]any{"estado": estado}))
		require.Equal(t, http.StatusOK, resp.StatusCode, "estado %s", estado)
		resp.Body.Close()
	}

	// entregado is terminal
	resp = do(t, env, "PATCH", "/v1/pedidos/"+pedido.ID+"/estado",
		jsonBody(t, map[string]any{"estado": "cancelado"}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_InventarioYAlertas(t *testing.T) {
	env := setupTestEnv(t)

	lona := crear(t, env, "/v1/materiales", map[string]any{
		"nombre": "Lona", "tipo": "tela", "costo_unitario": 1000.0,
	})
	cierre := crear(t, env, "/v1/materiales", map[string]any{
		"nombre": "Cierre 20cm", "tipo": "herraje", "unidad_medida": "un", "costo_unitario": 120.0,
	})

	ajustar := func(materialID string, cantidad float64) {
		resp := do(t, env, "PATCH", "/v1/inventario/"+materialID,
			jsonBody(t, map[string]any{"cantidad": cantidad}))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	ajustar(lona.ID, 50)
	ajustar(cierre.ID, 12)
	ajustar(cierre.ID, -8)

	resp := do(t, env, "GET", "/v1/inventario/alertas?umbral=10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var alertas []struct {
		Material string `json:"material"`
		Cantidad string `json:"cantidad"`
	}
	decodeJSON(t, resp, &alertas)
	require.Len(t, alertas, 1)
	assert.Equal(t, "Cierre 20cm", alertas[0].Material)
	assert.Equal(t, "4", alertas[0].Cantidad)
}
