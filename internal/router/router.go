package router

import (
	"time"

	"github.com/VexyyCat/ChromaBags/internal/config"
	"github.com/VexyyCat/ChromaBags/internal/handler"
	"github.com/VexyyCat/ChromaBags/internal/middleware"
	"github.com/VexyyCat/ChromaBags/internal/repository"
	"github.com/VexyyCat/ChromaBags/internal/service"
	"github.com/VexyyCat/ChromaBags/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	adminRepo := repository.NewAdminRepository(db)
	paletaRepo := repository.NewPaletaRepository(db)
	colorRepo := repository.NewColorRepository(db)
	modeloRepo := repository.NewModeloRepository(db)
	combinacionRepo := repository.NewCombinacionRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	cotizacionRepo := repository.NewCotizacionRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(adminRepo, cfg)
	paletaSvc := service.NewPaletaService(paletaRepo, colorRepo)
	modeloSvc := service.NewModeloService(modeloRepo)
	combinacionSvc := service.NewCombinacionService(combinacionRepo, colorRepo, modeloRepo)
	materialSvc := service.NewMaterialService(materialRepo, inventarioRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	productoSvc := service.NewProductoService(productoRepo, modeloRepo, combinacionRepo)
	cotizacionSvc := service.NewCotizacionService(cotizacionRepo, clienteRepo, materialRepo, dispatcher)
	pedidoSvc := service.NewPedidoService(pedidoRepo, clienteRepo, productoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	administradoresH := handler.NewAdministradoresHandler(authSvc)
	paletasH := handler.NewPaletasHandler(paletaSvc)
	coloresH := handler.NewColoresHandler(paletaSvc)
	modelosH := handler.NewModelosHandler(modeloSvc)
	combinacionesH := handler.NewCombinacionesHandler(combinacionSvc)
	materialesH := handler.NewMaterialesHandler(materialSvc)
	inventarioH := handler.NewInventarioHandler(materialSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	cotizacionesH := handler.NewCotizacionesHandler(cotizacionSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — every admin shares the same role; RequireRole keeps
	// the door open for finer roles later.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		administradores := v1.Group("/administradores", middleware.RequireRole("administrador"))
		{
			administradores.POST("", administradoresH.Crear)
			administradores.GET("", administradoresH.Listar)
			administradores.PUT("/:id", administradoresH.Actualizar)
			administradores.DELETE("/:id", administradoresH.Desactivar)
			administradores.PATCH("/:id/reactivar", administradoresH.Reactivar)
		}

		paletas := v1.Group("/paletas")
		{
			paletas.POST("", paletasH.Crear)
			paletas.GET("", paletasH.Listar)
			paletas.GET("/:id", paletasH.Obtener)
			paletas.PUT("/:id", paletasH.Actualizar)
			paletas.DELETE("/:id", paletasH.Eliminar)
		}

		colores := v1.Group("/colores")
		{
			colores.POST("", coloresH.Crear)
			colores.GET("", coloresH.Listar)
			colores.PUT("/:id", coloresH.Actualizar)
			colores.DELETE("/:id", coloresH.Eliminar)
		}

		modelos := v1.Group("/modelos")
		{
			modelos.POST("", modelosH.Crear)
			modelos.GET("", modelosH.Listar)
			modelos.GET("/estadisticas", modelosH.Estadisticas)
			modelos.GET("/:id", modelosH.Obtener)
			modelos.PUT("/:id", modelosH.Actualizar)
			modelos.DELETE("/:id", modelosH.Eliminar)
		}

		combinaciones := v1.Group("/combinaciones")
		{
			combinaciones.POST("", combinacionesH.Crear)
			combinaciones.GET("", combinacionesH.Listar)
			combinaciones.GET("/estadisticas/colores", combinacionesH.ColoresMasUsados)
			combinaciones.GET("/:id", combinacionesH.Obtener)
			combinaciones.PUT("/:id", combinacionesH.Actualizar)
			combinaciones.DELETE("/:id", combinacionesH.Eliminar)
		}

		esquemas := v1.Group("/esquemas")
		{
			esquemas.POST("/generar", combinacionesH.GenerarEsquema)
			esquemas.GET("/contraste", combinacionesH.Contraste)
		}

		materiales := v1.Group("/materiales")
		{
			materiales.POST("", materialesH.Crear)
			materiales.GET("", materialesH.Listar)
			materiales.GET("/:id", materialesH.Obtener)
			materiales.PUT("/:id", materialesH.Actualizar)
			materiales.DELETE("/:id", materialesH.Eliminar)
		}

		inventario := v1.Group("/inventario")
		{
			inventario.GET("", inventarioH.Listar)
			inventario.GET("/alertas", inventarioH.BajoStock)
			inventario.PATCH("/:material_id", inventarioH.Ajustar)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		productos := v1.Group("/productos")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.Obtener)
			productos.PUT("/:id", productosH.Actualizar)
			productos.PATCH("/:id/stock", productosH.AjustarStock)
			productos.DELETE("/:id", productosH.Eliminar)
		}

		cotizaciones := v1.Group("/cotizaciones")
		{
			cotizaciones.POST("", cotizacionesH.Crear)
			cotizaciones.GET("", cotizacionesH.Listar)
			cotizaciones.GET("/:id", cotizacionesH.Obtener)
			cotizaciones.PATCH("/:id/estado", cotizacionesH.CambiarEstado)
			cotizaciones.POST("/:id/enviar", cotizacionesH.EnviarEmail)
			cotizaciones.DELETE("/:id", cotizacionesH.Eliminar)
		}

		pedidos := v1.Group("/pedidos")
		{
			pedidos.POST("", pedidosH.Crear)
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.Obtener)
			pedidos.PATCH("/:id/estado", pedidosH.CambiarEstado)
			pedidos.DELETE("/:id", pedidosH.Eliminar)
		}

		v1.GET("/reportes/catalogo", productosH.ReporteCatalogo)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
