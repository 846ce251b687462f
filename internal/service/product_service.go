package service

import (
	"context"
	"errors"

	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/model"
	"github.com/raweer420/CRMBUTECO/internal/repository"
	"github.com/raweer420/CRMBUTECO/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, actor Actor, req dto.ProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, int64, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error)
	Deactivate(ctx context.Context, actor Actor, id uuid.UUID) error
	Reactivate(ctx context.Context, actor Actor, id uuid.UUID) error
}

type productService struct {
	repo       repository.ProductRepository
	dispatcher *worker.Dispatcher
}

func NewProductService(repo repository.ProductRepository, dispatcher *worker.Dispatcher) ProductService {
	return &productService{repo: repo, dispatcher: dispatcher}
}

func (s *productService) Create(ctx context.Context, actor Actor, req dto.ProductRequest) (*dto.ProductResponse, error) {
	if !actor.Caps.CanManageProducts {
		return nil, domain.NewValidationError("sem permissão para gerenciar produtos")
	}
	if !req.Price.IsPositive() {
		return nil, domain.NewValidationError("preço deve ser positivo")
	}

	product := model.Product{
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		Cost:          req.Cost,
		ControlsStock: req.ControlsStock,
		MinStock:      req.MinStock,
		Active:        true,
	}
	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, err
	}

	auditViaDispatcher(ctx, s.dispatcher, actor, "PRODUCT_CREATED", "Product", product.ID.String(), nil, map[string]interface{}{
		"name":     product.Name,
		"category": product.Category,
		"price":    product.Price.String(),
	})

	return productToResponse(&product), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "Produto"}
		}
		return nil, err
	}
	return productToResponse(product), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, int64, error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return out, total, nil
}

// Update never touches posted tab items — they hold their own name and price
// snapshots taken at add time.
func (s *productService) Update(ctx context.Context, actor Actor, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error) {
	if !actor.Caps.CanManageProducts {
		return nil, domain.NewValidationError("sem permissão para gerenciar produtos")
	}
	if !req.Price.IsPositive() {
		return nil, domain.NewValidationError("preço deve ser positivo")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "Produto"}
		}
		return nil, err
	}

	before := map[string]interface{}{
		"name":     product.Name,
		"category": product.Category,
		"price":    product.Price.String(),
	}

	product.Name = req.Name
	product.Category = req.Category
	product.Price = req.Price
	product.Cost = req.Cost
	product.ControlsStock = req.ControlsStock
	product.MinStock = req.MinStock

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	auditViaDispatcher(ctx, s.dispatcher, actor, "PRODUCT_UPDATED", "Product", product.ID.String(), before, map[string]interface{}{
		"name":     product.Name,
		"category": product.Category,
		"price":    product.Price.String(),
	})

	return productToResponse(product), nil
}

func (s *productService) Deactivate(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.Caps.CanManageProducts {
		return domain.NewValidationError("sem permissão para gerenciar produtos")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	auditViaDispatcher(ctx, s.dispatcher, actor, "PRODUCT_DEACTIVATED", "Product", id.String(),
		map[string]interface{}{"active": true}, map[string]interface{}{"active": false})
	return nil
}

func (s *productService) Reactivate(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.Caps.CanManageProducts {
		return domain.NewValidationError("sem permissão para gerenciar produtos")
	}
	if err := s.repo.Reactivate(ctx, id); err != nil {
		return err
	}
	auditViaDispatcher(ctx, s.dispatcher, actor, "PRODUCT_REACTIVATED", "Product", id.String(),
		map[string]interface{}{"active": false}, map[string]interface{}{"active": true})
	return nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		Cost:          p.Cost,
		ControlsStock: p.ControlsStock,
		MinStock:      p.MinStock,
		Active:        p.Active,
	}
}
