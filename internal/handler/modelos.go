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

type ModelosHandler struct{ svc service.ModeloService }

func NewModelosHandler(svc service.ModeloService) *ModelosHandler {
	return &ModelosHandler{svc: svc}
}

// Crear POST /v1/modelos
func (h *ModelosHandler) Crear(c *gin.Context) {
	var req dto.CrearModeloRequest
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

// Listar GET /v1/modelos?tipo=
func (h *ModelosHandler) Listar(c *gin.Context) {
	var tipo *model.TipoModelo
	if q := c.Query("tipo"); q != "" {
		t := model.TipoModelo(q)
		if !t.Valida() {
			c.JSON(http.StatusBadRequest, apierror.New("tipo de modelo invalido"))
			return
		}
		tipo = &t
	}
	resp, err := h.svc.Listar(c.Request.Context(), tipo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar modelos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Estadisticas GET /v1/modelos/estadisticas
func (h *ModelosHandler) Estadisticas(c *gin.Context) {
	resp, err := h.svc.Estadisticas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadisticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/modelos/:id
func (h *ModelosHandler) Obtener(c *gin.Context) {
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

// Actualizar PUT /v1/modelos/:id
func (h *ModelosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarModeloRequest
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

// Eliminar DELETE /v1/modelos/:id
func (h *ModelosHandler) Eliminar(c *gin.Context) {
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
