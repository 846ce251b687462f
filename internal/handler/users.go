package handler

import (
	"net/http"

	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/service"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct{ svc service.AuthService }

func NewUsersHandler(svc service.AuthService) *UsersHandler { return &UsersHandler{svc: svc} }

// Create godoc
// @Summary      Criar usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateUserRequest true "Usuário"
// @Success      201  {object} dto.UserResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/users [post]
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateUser(c.Request.Context(), actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Listar usuários
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.UserResponse
// @Router       /v1/users [get]
func (h *UsersHandler) List(c *gin.Context) {
	resp, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Atualizar usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                true "UUID do usuário"
// @Param        body body dto.UpdateUserRequest true "Usuário"
// @Success      200  {object} dto.UserResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/users/{id} [put]
func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateUser(c.Request.Context(), actor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deactivate godoc
// @Summary      Desativar usuário
// @Description  Desativação lógica; o usuário deixa de autenticar mas permanece nos registros de auditoria.
// @Tags         users
// @Security     BearerAuth
// @Param        id path string true "UUID do usuário"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/users/{id} [delete]
func (h *UsersHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeactivateUser(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reactivate godoc
// @Summary      Reativar usuário
// @Tags         users
// @Security     BearerAuth
// @Param        id path string true "UUID do usuário"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/users/{id}/reactivate [post]
func (h *UsersHandler) Reactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ReactivateUser(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
