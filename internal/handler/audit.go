package handler

import (
	"net/http"

	"github.com/raweer420/CRMBUTECO/internal/apierror"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/service"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct{ svc service.AuditService }

func NewAuditHandler(svc service.AuditService) *AuditHandler { return &AuditHandler{svc: svc} }

// List godoc
// @Summary      Consultar trilha de auditoria
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        entity query string false "Filtrar por entidade (TAB, PRODUCT, ...)"
// @Param        action query string false "Filtrar por ação (TAB_SETTLED, ...)"
// @Param        page   query int    false "Página (default 1)"
// @Param        limit  query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.AuditListResponse
// @Router       /v1/audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	var filter dto.AuditFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), actor(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
