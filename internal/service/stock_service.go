package service

import (
	"context"
	"errors"
	"time"

	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/model"
	"github.com/raweer420/CRMBUTECO/internal/repository"
	"github.com/raweer420/CRMBUTECO/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockService interface {
	CreateMovement(ctx context.Context, actor Actor, req dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error)
	ListMovements(ctx context.Context, filter dto.StockMovementFilter) ([]dto.StockMovementResponse, int64, error)
}

type stockService struct {
	repo        repository.StockRepository
	productRepo repository.ProductRepository
	dispatcher  *worker.Dispatcher
}

func NewStockService(repo repository.StockRepository, productRepo repository.ProductRepository, dispatcher *worker.Dispatcher) StockService {
	return &stockService{repo: repo, productRepo: productRepo, dispatcher: dispatcher}
}

func (s *stockService) CreateMovement(ctx context.Context, actor Actor, req dto.CreateStockMovementRequest) (*dto.StockMovementResponse, error) {
	if !actor.Caps.CanManageStock {
		return nil, domain.NewValidationError("sem permissão para movimentar estoque")
	}
	typ := domain.StockMovementType(req.Type)
	if !typ.Valid() {
		return nil, domain.NewValidationError("tipo de movimento inválido: %s", req.Type)
	}
	if !req.Quantity.IsPositive() {
		return nil, domain.NewValidationError("quantidade deve ser positiva")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, domain.NewValidationError("product_id inválido")
	}
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "Produto"}
		}
		return nil, err
	}

	movement := model.StockMovement{
		ProductID:   product.ID,
		Type:        typ,
		Quantity:    req.Quantity,
		UnitCost:    req.UnitCost,
		Note:        req.Note,
		CreatedByID: actor.UserID,
	}
	if err := s.repo.Create(ctx, &movement); err != nil {
		return nil, err
	}
	movement.Product = product

	auditViaDispatcher(ctx, s.dispatcher, actor, "STOCK_ADJUSTED", "StockMovement", movement.ID.String(), nil, map[string]interface{}{
		"product_id": movement.ProductID,
		"type":       movement.Type,
		"quantity":   movement.Quantity.String(),
		"unit_cost":  movement.UnitCost,
	})

	return movementToResponse(&movement), nil
}

func (s *stockService) ListMovements(ctx context.Context, filter dto.StockMovementFilter) ([]dto.StockMovementResponse, int64, error) {
	movements, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for i := range movements {
		out = append(out, *movementToResponse(&movements[i]))
	}
	return out, total, nil
}

func movementToResponse(m *model.StockMovement) *dto.StockMovementResponse {
	resp := &dto.StockMovementResponse{
		ID:        m.ID.String(),
		ProductID: m.ProductID.String(),
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		UnitCost:  m.UnitCost,
		Note:      m.Note,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.Product != nil {
		resp.ProductName = m.Product.Name
	}
	if m.RelatedTabID != nil {
		id := m.RelatedTabID.String()
		resp.RelatedTabID = &id
	}
	return resp
}
