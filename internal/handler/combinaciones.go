package handler

import (
	"net/http"
	"strconv"

	"github.com/VexyyCat/ChromaBags/internal/apierror"
	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CombinacionesHandler struct{ svc service.CombinacionService }

func NewCombinacionesHandler(svc service.CombinacionService) *CombinacionesHandler {
	return &CombinacionesHandler{svc: svc}
}

// Crear POST /v1/combinaciones
func (h *CombinacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearCombinacionRequest
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

// Listar GET /v1/combinaciones?modelo_id=&esquema=
func (h *CombinacionesHandler) Listar(c *gin.Context) {
	var modeloID *uuid.UUID
	if q := c.Query("modelo_id"); q != "" {
		mid, err := uuid.Parse(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("modelo_id invalido"))
			return
		}
		modeloID = &mid
	}
	var esquema *model.EsquemaColor
	if q := c.Query("esquema"); q != "" {
		e := model.EsquemaColor(q)
		if !e.Valida() {
			c.JSON(http.StatusBadRequest, apierror.New("esquema de color invalido"))
			return
		}
		esquema = &e
	}
	resp, err := h.svc.Listar(c.Request.Context(), modeloID, esquema)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar combinaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/combinaciones/:id
func (h *CombinacionesHandler) Obtener(c *gin.Context) {
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

// Actualizar PUT /v1/combinaciones/:id
func (h *CombinacionesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarCombinacionRequest
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

// Eliminar DELETE /v1/combinaciones/:id
func (h *CombinacionesHandler) Eliminar(c *gin.Context) {
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

// ColoresMasUsados GET /v1/combinaciones/estadisticas/colores?limite=
func (h *CombinacionesHandler) ColoresMasUsados(c *gin.Context) {
	limite := 10
	if q := c.Query("limite"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, apierror.New("limite invalido"))
			return
		}
		limite = n
	}
	resp, err := h.svc.ColoresMasUsados(c.Request.Context(), limite)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadisticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerarEsquema POST /v1/esquemas/generar
func (h *CombinacionesHandler) GenerarEsquema(c *gin.Context) {
	var req dto.GenerarEsquemaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GenerarEsquema(req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Contraste GET /v1/esquemas/contraste?color1=&color2=
func (h *CombinacionesHandler) Contraste(c *gin.Context) {
	color1 := c.Query("color1")
	color2 := c.Query("color2")
	if color1 == "" || color2 == "" {
		c.JSON(http.StatusBadRequest, apierror.New("color1 y color2 son requeridos"))
		return
	}
	resp, err := h.svc.Contraste(color1, color2)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
