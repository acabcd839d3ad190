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

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Crear POST /v1/pedidos
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
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

// Listar GET /v1/pedidos?cliente_id=&estado=
func (h *PedidosHandler) Listar(c *gin.Context) {
	var clienteID *uuid.UUID
	if q := c.Query("cliente_id"); q != "" {
		cid, err := uuid.Parse(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("cliente_id invalido"))
			return
		}
		clienteID = &cid
	}
	var estado *model.EstadoPedido
	if q := c.Query("estado"); q != "" {
		e := model.EstadoPedido(q)
		if !e.Valida() {
			c.JSON(http.StatusBadRequest, apierror.New("estado de pedido invalido"))
			return
		}
		estado = &e
	}
	resp, err := h.svc.Listar(c.Request.Context(), clienteID, estado)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/pedidos/:id
func (h *PedidosHandler) Obtener(c *gin.Context) {
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

// CambiarEstado PATCH /v1/pedidos/:id/estado
func (h *PedidosHandler) CambiarEstado(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarEstadoPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.CambiarEstado(c.Request.Context(), id, model.EstadoPedido(req.Estado))
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/pedidos/:id — items go with it (cascade).
func (h *PedidosHandler) Eliminar(c *gin.Context) {
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
