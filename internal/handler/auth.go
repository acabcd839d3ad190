package handler

import (
	"errors"
	"net/http"

	"github.com/VexyyCat/ChromaBags/internal/apierror"
	"github.com/VexyyCat/ChromaBags/internal/dto"
	"github.com/VexyyCat/ChromaBags/internal/repository"
	"github.com/VexyyCat/ChromaBags/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de administrador
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Administradores Handler ──────────────────────────────────────────────────

type AdministradoresHandler struct{ svc service.AuthService }

func NewAdministradoresHandler(svc service.AuthService) *AdministradoresHandler {
	return &AdministradoresHandler{svc: svc}
}

// Crear godoc
// @Summary Alta de administrador
// @Tags administradores
// @Accept json
// @Produce json
// @Param body body dto.CrearAdminRequest true "Datos"
// @Success 201 {object} dto.AdminResponse
// @Failure 409 {object} apierror.APIError "Cupo de administradores activos alcanzado"
// @Router /v1/administradores [post]
func (h *AdministradoresHandler) Crear(c *gin.Context) {
	var req dto.CrearAdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearAdmin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrCupoAdministradores) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AdministradoresHandler) Listar(c *gin.Context) {
	incluirInactivos := c.Query("incluir_inactivos") == "true"
	resp, err := h.svc.ListarAdmins(c.Request.Context(), incluirInactivos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar administradores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdministradoresHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarAdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.ActualizarAdmin(c.Request.Context(), id, req)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdministradoresHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if svcErr := h.svc.DesactivarAdmin(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// Reactivar flips an admin back to active. The two-active cap gates inserts
// only, so reactivation always succeeds if the row exists.
func (h *AdministradoresHandler) Reactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if svcErr := h.svc.ReactivarAdmin(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
