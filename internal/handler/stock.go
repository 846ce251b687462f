package handler

import (
	"net/http"

	"github.com/raweer420/CRMBUTECO/internal/apierror"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/service"

	"github.com/gin-gonic/gin"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler { return &StockHandler{svc: svc} }

// CreateMovement godoc
// @Summary      Registrar movimento de estoque
// @Description  Movimento manual (IN, OUT ou ADJUST). Baixas por venda são geradas na liquidação da comanda.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateStockMovementRequest true "Movimento"
// @Success      201  {object} dto.StockMovementResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/stock/movements [post]
func (h *StockHandler) CreateMovement(c *gin.Context) {
	var req dto.CreateStockMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateMovement(c.Request.Context(), actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMovements godoc
// @Summary      Listar movimentos de estoque
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        product_id query string false "Filtrar por produto"
// @Param        page       query int    false "Página (default 1)"
// @Param        limit      query int    false "Registros por página (default 50)"
// @Success      200 {array} dto.StockMovementResponse
// @Router       /v1/stock/movements [get]
func (h *StockHandler) ListMovements(c *gin.Context) {
	var filter dto.StockMovementFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	movements, total, err := h.svc.ListMovements(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movements": movements, "total": total})
}
