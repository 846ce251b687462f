package handler

import (
	"net/http"

	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct{ svc service.SettingsService }

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get godoc
// @Summary      Configurações do estabelecimento
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.SettingsResponse
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Atualizar configurações
// @Description  Taxa de serviço, campos de cliente e política de edição em BILLING. Vale para comandas abertas depois da mudança.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.UpdateSettingsRequest true "Configurações"
// @Success      200  {object} dto.SettingsResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
