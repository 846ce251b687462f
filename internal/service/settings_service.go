package service

import (
	"context"

	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/repository"
	"github.com/raweer420/CRMBUTECO/internal/worker"

	"github.com/shopspring/decimal"
)

type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, actor Actor, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsService struct {
	repo       repository.SettingsRepository
	dispatcher *worker.Dispatcher
}

func NewSettingsService(repo repository.SettingsRepository, dispatcher *worker.Dispatcher) SettingsService {
	return &settingsService{repo: repo, dispatcher: dispatcher}
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		AllowAddItemsWhenBilling: settings.AllowAddItemsWhenBilling,
		DefaultServiceFeePercent: settings.DefaultServiceFeePercent,
		EnableStockModule:        settings.EnableStockModule,
		EnableCustomerFields:     settings.EnableCustomerFields,
	}, nil
}

func (s *settingsService) Update(ctx context.Context, actor Actor, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if !actor.Caps.CanManageSettings {
		return nil, domain.NewValidationError("sem permissão para alterar configurações")
	}
	if req.DefaultServiceFeePercent.IsNegative() || req.DefaultServiceFeePercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.NewValidationError("taxa de serviço deve estar entre 0 e 100")
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	before := map[string]interface{}{
		"allow_add_items_when_billing": settings.AllowAddItemsWhenBilling,
		"default_service_fee_percent":  settings.DefaultServiceFeePercent.String(),
		"enable_stock_module":          settings.EnableStockModule,
		"enable_customer_fields":       settings.EnableCustomerFields,
	}

	settings.AllowAddItemsWhenBilling = req.AllowAddItemsWhenBilling
	settings.DefaultServiceFeePercent = req.DefaultServiceFeePercent
	settings.EnableStockModule = req.EnableStockModule
	settings.EnableCustomerFields = req.EnableCustomerFields
	actorID := actor.UserID
	settings.UpdatedByID = &actorID

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, err
	}

	auditViaDispatcher(ctx, s.dispatcher, actor, "SETTINGS_UPDATED", "Settings", "1", before, map[string]interface{}{
		"allow_add_items_when_billing": settings.AllowAddItemsWhenBilling,
		"default_service_fee_percent":  settings.DefaultServiceFeePercent.String(),
		"enable_stock_module":          settings.EnableStockModule,
		"enable_customer_fields":       settings.EnableCustomerFields,
	})

	return &dto.SettingsResponse{
		AllowAddItemsWhenBilling: settings.AllowAddItemsWhenBilling,
		DefaultServiceFeePercent: settings.DefaultServiceFeePercent,
		EnableStockModule:        settings.EnableStockModule,
		EnableCustomerFields:     settings.EnableCustomerFields,
	}, nil
}
