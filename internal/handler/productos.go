package handler

import (
	"net/http"

	"github.com/VexyyCat/ChromaBags/internal/apierror"
	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Crear POST /v1/productos
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
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

// Listar GET /v1/productos?modelo_id=&tipo=
func (h *ProductosHandler) Listar(c *gin.Context) {
	var modeloID *uuid.UUID
	if q := c.Query("modelo_id"); q != "" {
		mid, err := uuid.Parse(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("modelo_id invalido"))
			return
		}
		modeloID = &mid
	}
	var tipo *model.TipoModelo
	if q := c.Query("tipo"); q != "" {
		t := model.TipoModelo(q)
		if !t.Valida() {
			c.JSON(http.StatusBadRequest, apierror.New("tipo de modelo invalido"))
			return
		}
		tipo = &t
	}
	resp, err := h.svc.Listar(c.Request.Context(), modeloID, tipo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/productos/:id
func (h *ProductosHandler) Obtener(c *gin.Context) {
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

// Actualizar PUT /v1/productos/:id
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarProductoRequest
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

// AjustarStock PATCH /v1/productos/:id/stock
func (h *ProductosHandler) AjustarStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.AjusteStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.AjustarStock(c.Request.Context(), id, req.Delta)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/productos/:id
func (h *ProductosHandler) Eliminar(c *gin.Context) {
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

// ReporteCatalogo GET /v1/reportes/catalogo
// Always recomputed; ordered by product name ascending.
func (h *ProductosHandler) ReporteCatalogo(c *gin.Context) {
	resp, err := h.svc.ReporteCatalogo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte de catalogo"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
