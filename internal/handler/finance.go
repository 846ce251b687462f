package handler

import (
	"net/http"

	"github.com/raweer420/CRMBUTECO/internal/apierror"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct{ svc service.FinanceService }

func NewFinanceHandler(svc service.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

// CreateCategory godoc
// @Summary      Criar categoria financeira
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateCategoryRequest true "Categoria"
// @Success      201  {object} dto.CategoryResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/finance/categories [post]
func (h *FinanceHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateCategory(c.Request.Context(), actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListCategories godoc
// @Summary      Listar categorias financeiras
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CategoryResponse
// @Router       /v1/finance/categories [get]
func (h *FinanceHandler) ListCategories(c *gin.Context) {
	resp, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateEntry godoc
// @Summary      Lançar movimento manual
// @Description  Lançamento manual de receita ou despesa. Receitas de comanda são geradas automaticamente na liquidação.
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateLedgerEntryRequest true "Lançamento"
// @Success      201  {object} dto.LedgerEntryResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/finance/entries [post]
func (h *FinanceHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateLedgerEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateEntry(c.Request.Context(), actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListEntries godoc
// @Summary      Listar lançamentos do mês
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        month query string false "Mês no formato YYYY-MM (default: mês corrente)"
// @Success      200 {array} dto.LedgerEntryResponse
// @Router       /v1/finance/entries [get]
func (h *FinanceHandler) ListEntries(c *gin.Context) {
	var filter dto.LedgerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListEntries(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateCashClose godoc
// @Summary      Fechar caixa
// @Description  Concilia valores contados contra o esperado do razão do dia. Uma conferência por data e turno.
// @Tags         finance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateCashCloseRequest true "Conferência"
// @Success      201  {object} dto.CashCloseResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/finance/cash-closes [post]
func (h *FinanceHandler) CreateCashClose(c *gin.Context) {
	var req dto.CreateCashCloseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateCashClose(c.Request.Context(), actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetCashClose godoc
// @Summary      Detalhar fechamento de caixa
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do fechamento"
// @Success      200 {object} dto.CashCloseResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/finance/cash-closes/{id} [get]
func (h *FinanceHandler) GetCashClose(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetCashClose(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CashClosePDF godoc
// @Summary      Relatório do fechamento em PDF
// @Tags         finance
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "UUID do fechamento"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /v1/finance/cash-closes/{id}/pdf [get]
func (h *FinanceHandler) CashClosePDF(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pdf, err := h.svc.CashClosePDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "inline; filename=fechamento-"+id.String()+".pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ListCashCloses godoc
// @Summary      Listar fechamentos do mês
// @Tags         finance
// @Produce      json
// @Security     BearerAuth
// @Param        month query string false "Mês no formato YYYY-MM (default: mês corrente)"
// @Success      200 {array} dto.CashCloseResponse
// @Router       /v1/finance/cash-closes [get]
func (h *FinanceHandler) ListCashCloses(c *gin.Context) {
	var filter dto.LedgerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListCashCloses(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
