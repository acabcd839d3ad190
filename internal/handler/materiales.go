package handler

import (
	"net/http"

	"github.com/VexyyCat/ChromaBags/internal/apierror"
	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MaterialesHandler struct{ svc service.MaterialService }

func NewMaterialesHandler(svc service.MaterialService) *MaterialesHandler {
	return &MaterialesHandler{svc: svc}
}

// Crear POST /v1/materiales
func (h *MaterialesHandler) Crear(c *gin.Context) {
	var req dto.CrearMaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/materiales?tipo=
func (h *MaterialesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("tipo"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar materiales"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/materiales/:id
func (h *MaterialesHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, svcErr := h.svc.Obtener(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/materiales/:id
func (h *MaterialesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarMaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Actualizar(c.Request.Context(), id, req)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/materiales/:id
func (h *MaterialesHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if svcErr := h.svc.Eliminar(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ── Inventario Handler ───────────────────────────────────────────────────────

type InventarioHandler struct{ svc service.MaterialService }

func NewInventarioHandler(svc service.MaterialService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// Listar GET /v1/inventario
func (h *InventarioHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Inventario(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar inventario"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ajustar PATCH /v1/inventario/:material_id
func (h *InventarioHandler) Ajustar(c *gin.Context) {
	materialID, err := uuid.Parse(c.Param("material_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.AjusteInventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.AjustarInventario(c.Request.Context(), materialID, req)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BajoStock GET /v1/inventario/alertas?umbral=
func (h *InventarioHandler) BajoStock(c *gin.Context) {
	umbral := decimal.NewFromInt(10)
	if q := c.Query("umbral"); q != "" {
		u, err := decimal.NewFromString(q)
		if err != nil || u.IsNegative() {
			c.JSON(http.StatusBadRequest, apierror.New("umbral invalido"))
			return
		}
		umbral = u
	}
	resp, err := h.svc.BajoStock(c.Request.Context(), umbral)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar alertas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
