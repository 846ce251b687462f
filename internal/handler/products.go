package handler

import (
	"net/http"

	"github.com/raweer420/CRMBUTECO/internal/apierror"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Create godoc
// @Summary      Cadastrar produto
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ProductRequest true "Produto"
// @Success      201  {object} dto.ProductResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary      Detalhar produto
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      200 {object} dto.ProductResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/products/{id} [get]
func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      Listar produtos
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        category query string false "Filtrar por categoria"
// @Param        search   query string false "Busca por nome (case-insensitive)"
// @Param        include_inactive query bool false "Incluir produtos desativados"
// @Success      200 {array} dto.ProductResponse
// @Router       /v1/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	products, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
}

// Update godoc
// @Summary      Atualizar produto
// @Description  Preço e nome valem para itens futuros; itens já lançados mantêm o valor congelado.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string             true "UUID do produto"
// @Param        body body dto.ProductRequest true "Produto"
// @Success      200  {object} dto.ProductResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/products/{id} [put]
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), actor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Deactivate godoc
// @Summary      Desativar produto
// @Tags         products
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/products/{id} [delete]
func (h *ProductsHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reactivate godoc
// @Summary      Reativar produto
// @Tags         products
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/products/{id}/reactivate [post]
func (h *ProductsHandler) Reactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Reactivate(c.Request.Context(), actor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
