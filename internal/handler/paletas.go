package handler

import (
	"errors"
	"net/http"

	"github.com/VexyyCat/ChromaBags/internal/apierror"
	"github.com/VexyyCat/ChromaBags/internal/colores"
	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/model"
	"github.com/VexyyCat/ChromaBags/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaletasHandler struct{ svc service.PaletaService }

func NewPaletasHandler(svc service.PaletaService) *PaletasHandler {
	return &PaletasHandler{svc: svc}
}

// Crear POST /v1/paletas
func (h *PaletasHandler) Crear(c *gin.Context) {
	var req dto.CrearPaletaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearPaleta(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/paletas?esquema=
func (h *PaletasHandler) Listar(c *gin.Context) {
	var esquema *model.EsquemaColor
	if q := c.Query("esquema"); q != "" {
		e := model.EsquemaColor(q)
		if !e.Valida() {
			c.JSON(http.StatusBadRequest, apierror.New("esquema de color invalido"))
			return
		}
		esquema = &e
	}
	resp, err := h.svc.ListarPaletas(c.Request.Context(), esquema)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar paletas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/paletas/:id
func (h *PaletasHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, svcErr := h.svc.ObtenerPaleta(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/paletas/:id
func (h *PaletasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarPaletaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.ActualizarPaleta(c.Request.Context(), id, req)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/paletas/:id — colors are detached, not deleted.
func (h *PaletasHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if svcErr := h.svc.EliminarPaleta(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ── Colores Handler ──────────────────────────────────────────────────────────

type ColoresHandler struct{ svc service.PaletaService }

func NewColoresHandler(svc service.PaletaService) *ColoresHandler {
	return &ColoresHandler{svc: svc}
}

// Crear POST /v1/colores
func (h *ColoresHandler) Crear(c *gin.Context) {
	var req dto.CrearColorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearColor(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, colores.ErrHexInvalido) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/colores?paleta_id=
func (h *ColoresHandler) Listar(c *gin.Context) {
	var paletaID *uuid.UUID
	if q := c.Query("paleta_id"); q != "" {
		pid, err := uuid.Parse(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("paleta_id invalido"))
			return
		}
		paletaID = &pid
	}
	resp, err := h.svc.ListarColores(c.Request.Context(), paletaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar colores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/colores/:id
func (h *ColoresHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarColorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.ActualizarColor(c.Request.Context(), id, req)
	if svcErr != nil {
		if errors.Is(svcErr, colores.ErrHexInvalido) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(svcErr.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/colores/:id
func (h *ColoresHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if svcErr := h.svc.EliminarColor(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
