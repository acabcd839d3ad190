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

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Crear POST /v1/clientes
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
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

// Listar GET /v1/clientes?tipo=&q=
// Con q busca por nombre, email o telefono; tipo filtra por segmento.
func (h *ClientesHandler) Listar(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		resp, err := h.svc.Buscar(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar clientes"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}
	var tipo *model.TipoCliente
	if q := c.Query("tipo"); q != "" {
		t := model.TipoCliente(q)
		if !t.Valida() {
			c.JSON(http.StatusBadRequest, apierror.New("tipo de cliente invalido"))
			return
		}
		tipo = &t
	}
	resp, err := h.svc.Listar(c.Request.Context(), tipo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/clientes/:id
func (h *ClientesHandler) Obtener(c *gin.Context) {
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

// Actualizar PUT /v1/clientes/:id
func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarClienteRequest
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

// Eliminar DELETE /v1/clientes/:id
func (h *ClientesHandler) Eliminar(c *gin.Context) {
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
