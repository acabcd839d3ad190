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

type CotizacionesHandler struct{ svc service.CotizacionService }

func NewCotizacionesHandler(svc service.CotizacionService) *CotizacionesHandler {
	return &CotizacionesHandler{svc: svc}
}

// Crear POST /v1/cotizaciones
func (h *CotizacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearCotizacionRequest
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

// Listar GET /v1/cotizaciones?cliente_id=&estado=
func (h *CotizacionesHandler) Listar(c *gin.Context) {
	var clienteID *uuid.UUID
	if q := c.Query("cliente_id"); q != "" {
		cid, err := uuid.Parse(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("cliente_id invalido"))
			return
		}
		clienteID = &cid
	}
	var estado *model.EstadoCotizacion
	if q := c.Query("estado"); q != "" {
		e := model.EstadoCotizacion(q)
		if !e.Valida() {
			c.JSON(http.StatusBadRequest, apierror.New("estado de cotizacion invalido"))
			return
		}
		estado = &e
	}
	resp, err := h.svc.Listar(c.Request.Context(), clienteID, estado)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar cotizaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/cotizaciones/:id
func (h *CotizacionesHandler) Obtener(c *gin.Context) {
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

// CambiarEstado PATCH /v1/cotizaciones/:id/estado
func (h *CotizacionesHandler) CambiarEstado(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarEstadoCotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.CambiarEstado(c.Request.Context(), id, model.EstadoCotizacion(req.Estado))
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/cotizaciones/:id — items go with it (cascade).
func (h *CotizacionesHandler) Eliminar(c *gin.Context) {
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

// EnviarEmail POST /v1/cotizaciones/:id/enviar
// Queues PDF generation and delivery; returns 202 immediately.
func (h *CotizacionesHandler) EnviarEmail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if svcErr := h.svc.EnviarPorEmail(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"detail": "Cotizacion encolada para envio"})
}
