package handler

import (
	"net/http"

	"github.com/raweer420/CRMBUTECO/internal/apierror"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/service"

	"github.com/gin-gonic/gin"
)

type TabsHandler struct{ svc service.TabService }

func NewTabsHandler(svc service.TabService) *TabsHandler { return &TabsHandler{svc: svc} }

// CreateTab godoc
// @Summary      Abrir comanda
// @Description  Abre uma comanda em OPEN com código CMDyymmdd-nnn e taxa de serviço copiada das configurações.
// @Tags         tabs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateTabRequest true "Dados da comanda"
// @Success      201  {object} dto.TabResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/tabs [post]
func (h *TabsHandler) CreateTab(c *gin.Context) {
	var req dto.CreateTabRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateTab(c.Request.Context(), actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetTab godoc
// @Summary      Detalhar comanda
// @Description  Retorna itens, pagamentos e totais derivados (subtotal, desconto, taxa, total, pago, restante).
// @Tags         tabs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da comanda"
// @Success      200 {object} dto.TabResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/tabs/{id} [get]
func (h *TabsHandler) GetTab(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetTab(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListTabs godoc
// @Summary      Listar comandas
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "OPEN | BILLING | PAID | CANCELED | all"
// @Param        kind   query string false "TABLE | BAR | DELIVERY"
// @Param        page   query int    false "Página (default 1)"
// @Param        limit  query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.TabListResponse
// @Router       /v1/tabs [get]
func (h *TabsHandler) ListTabs(c *gin.Context) {
	var filter dto.TabFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListTabs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddItem godoc
// @Summary      Adicionar item
// @Description  Congela nome e preço do produto no item. Em BILLING depende da configuração; PAID exige override de admin (reabre para BILLING).
// @Tags         tabs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string             true "UUID da comanda"
// @Param        body body dto.AddItemRequest true "Item"
// @Success      200  {object} dto.TabResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/tabs/{id}/items [post]
func (h *TabsHandler) AddItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AddItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddItem(c.Request.Context(), actor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelItem godoc
// @Summary      Cancelar item
// @Description  Cancelamento lógico com motivo; o item permanece para auditoria e sai de todos os totais.
// @Tags         tabs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        itemId path string                true "UUID do item"
// @Param        body   body dto.CancelItemRequest true "Motivo"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/tab-items/{itemId}/cancel [post]
func (h *TabsHandler) CancelItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}
	var req dto.CancelItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.CancelItem(c.Request.Context(), actor(c), itemID, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyDiscount godoc
// @Summary      Aplicar desconto
// @Tags         tabs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string              true "UUID da comanda"
// @Param        body body dto.DiscountRequest true "Desconto em valor"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/tabs/{id}/discount [put]
func (h *TabsHandler) ApplyDiscount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.DiscountRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ApplyDiscount(c.Request.Context(), actor(c), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterPayment godoc
// @Summary      Registrar pagamento
// @Description  Acumula pagamento; o primeiro pagamento move a comanda de OPEN para BILLING.
// @Tags         tabs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string             true "UUID da comanda"
// @Param        body body dto.PaymentRequest true "Pagamento"
// @Success      200  {object} dto.TabResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/tabs/{id}/payments [post]
func (h *TabsHandler) RegisterPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegisterPayment(c.Request.Context(), actor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus godoc
// @Summary      Transicionar comanda
// @Description  PAID liquida a comanda: exige pagamento suficiente (tolerância 0,01), baixa estoque e lança receita — tudo em uma transação.
// @Tags         tabs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                     true "UUID da comanda"
// @Param        body body dto.UpdateTabStatusRequest true "Próximo status"
// @Success      200  {object} dto.TabResponse
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.APIError
// @Router       /v1/tabs/{id}/status [put]
func (h *TabsHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTabStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), actor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReopenTab godoc
// @Summary      Reabrir comanda paga
// @Description  Somente admin. Volta PAID para BILLING, limpa metadados de fechamento e desfaz lançamentos automáticos.
// @Tags         tabs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da comanda"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/tabs/{id}/reopen [post]
func (h *TabsHandler) ReopenTab(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ReopenPaidTab(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
