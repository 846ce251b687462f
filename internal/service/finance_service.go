package service

import (
	"context"
	"errors"
	"time"

	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/infra"
	"github.com/raweer420/CRMBUTECO/internal/model"
	"github.com/raweer420/CRMBUTECO/internal/repository"
	"github.com/raweer420/CRMBUTECO/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FinanceService interface {
	CreateCategory(ctx context.Context, actor Actor, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)

	CreateEntry(ctx context.Context, actor Actor, req dto.CreateLedgerEntryRequest) (*dto.LedgerEntryResponse, error)
	ListEntries(ctx context.Context, filter dto.LedgerFilter) ([]dto.LedgerEntryResponse, error)

	CreateCashClose(ctx context.Context, actor Actor, req dto.CreateCashCloseRequest) (*dto.CashCloseResponse, error)
	GetCashClose(ctx context.Context, id uuid.UUID) (*dto.CashCloseResponse, error)
	// CashClosePDF renders the printable reconciliation report.
	CashClosePDF(ctx context.Context, id uuid.UUID) ([]byte, error)
	ListCashCloses(ctx context.Context, filter dto.LedgerFilter) ([]dto.CashCloseResponse, error)
}

type financeService struct {
	repo          repository.FinanceRepository
	cashCloseRepo repository.CashCloseRepository
	dispatcher    *worker.Dispatcher
}

func NewFinanceService(
	repo repository.FinanceRepository,
	cashCloseRepo repository.CashCloseRepository,
	dispatcher *worker.Dispatcher,
) FinanceService {
	return &financeService{repo: repo, cashCloseRepo: cashCloseRepo, dispatcher: dispatcher}
}

// ── Categories ───────────────────────────────────────────────────────────────

func (s *financeService) CreateCategory(ctx context.Context, actor Actor, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	typ := domain.AccountType(req.Type)
	if typ != domain.AccountRevenue && typ != domain.AccountExpense {
		return nil, domain.NewValidationError("tipo de categoria inválido: %s", req.Type)
	}

	category := model.AccountCategory{Name: req.Name, Type: typ}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, domain.NewValidationError("parent_id inválido")
		}
		if _, err := s.repo.FindCategoryByID(ctx, parentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &domain.NotFoundError{Resource: "Categoria pai"}
			}
			return nil, err
		}
		category.ParentID = &parentID
	}

	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "ACCOUNT_CATEGORY_CREATED", "AccountCategory", category.ID.String(), nil, map[string]interface{}{
		"name":      category.Name,
		"type":      category.Type,
		"parent_id": category.ParentID,
	})

	return categoryToResponse(&category), nil
}

func (s *financeService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *categoryToResponse(&categories[i]))
	}
	return out, nil
}

// ── Ledger entries ───────────────────────────────────────────────────────────

func (s *financeService) CreateEntry(ctx context.Context, actor Actor, req dto.CreateLedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	if !actor.Caps.CanOperateCashier {
		return nil, domain.NewValidationError("sem permissão para lançar no balancete")
	}
	if !req.Amount.IsPositive() {
		return nil, domain.NewValidationError("valor do lançamento deve ser positivo")
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, domain.NewValidationError("data inválida: %s", req.Date)
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, domain.NewValidationError("category_id inválido")
	}
	category, err := s.repo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "Categoria"}
		}
		return nil, err
	}

	entry := model.LedgerEntry{
		Date:        date,
		CategoryID:  category.ID,
		Description: req.Description,
		Amount:      req.Amount.Round(2),
		CreatedByID: actor.UserID,
	}
	if req.PaymentMethod != nil {
		method := domain.PaymentMethod(*req.PaymentMethod)
		if !method.Valid() {
			return nil, domain.NewValidationError("método de pagamento inválido: %s", *req.PaymentMethod)
		}
		entry.PaymentMethod = &method
	}

	if err := s.repo.CreateEntry(ctx, &entry); err != nil {
		return nil, err
	}
	entry.Category = category

	s.audit(ctx, actor, "LEDGER_MANUAL_CREATED", "LedgerEntry", entry.ID.String(), nil, map[string]interface{}{
		"category_id":    entry.CategoryID,
		"amount":         entry.Amount.String(),
		"payment_method": entry.PaymentMethod,
		"description":    entry.Description,
	})

	return entryToResponse(&entry), nil
}

func (s *financeService) ListEntries(ctx context.Context, filter dto.LedgerFilter) ([]dto.LedgerEntryResponse, error) {
	from, to, err := monthRange(filter.Month)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ListEntries(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *entryToResponse(&entries[i]))
	}
	return out, nil
}

// ── Cash close ───────────────────────────────────────────────────────────────

func (s *financeService) CreateCashClose(ctx context.Context, actor Actor, req dto.CreateCashCloseRequest) (*dto.CashCloseResponse, error) {
	if !actor.Caps.CanOperateCashier {
		return nil, domain.NewValidationError("sem permissão para fechamento de caixa")
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, domain.NewValidationError("data inválida: %s", req.Date)
	}
	from, to := domain.DayRange(date)

	if _, err := s.cashCloseRepo.FindByDateShift(ctx, from, req.Shift); err == nil {
		return nil, domain.NewValidationError("fechamento de caixa já registrado para esta data e turno")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	counted := make(map[domain.PaymentMethod]decimal.Decimal, len(req.Counted))
	for raw, amount := range req.Counted {
		method := domain.PaymentMethod(raw)
		if !method.Valid() {
			return nil, domain.NewValidationError("método de pagamento inválido: %s", raw)
		}
		counted[method] = amount
	}

	dayEntries, err := s.repo.ListDayEntries(ctx, from, to)
	if err != nil {
		return nil, err
	}

	result := domain.ReconcileCashClose(dayEntries, counted)

	cc := model.CashClose{
		Date:        from,
		Shift:       req.Shift,
		Difference:  result.Difference,
		Observation: req.Observation,
		ClosedByID:  actor.UserID,
	}
	for _, method := range domain.AllPaymentMethods {
		cc.Amounts = append(cc.Amounts, model.CashCloseAmount{
			Method:   method,
			Expected: result.ExpectedByMethod[method],
			Counted:  result.CountedByMethod[method],
		})
	}

	if err := s.cashCloseRepo.Create(ctx, &cc); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "CASH_CLOSE_CREATED", "CashClose", cc.ID.String(), nil, map[string]interface{}{
		"date":       from.Format("2006-01-02"),
		"expected":   result.ExpectedTotal.String(),
		"counted":    result.CountedTotal.String(),
		"difference": result.Difference.String(),
	})

	return cashCloseToResponse(&cc), nil
}

func (s *financeService) GetCashClose(ctx context.Context, id uuid.UUID) (*dto.CashCloseResponse, error) {
	cc, err := s.cashCloseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "Fechamento de caixa"}
		}
		return nil, err
	}
	return cashCloseToResponse(cc), nil
}

func (s *financeService) CashClosePDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	cc, err := s.cashCloseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "Fechamento de caixa"}
		}
		return nil, err
	}
	return infra.GenerateCashClosePDF(cc)
}

func (s *financeService) ListCashCloses(ctx context.Context, filter dto.LedgerFilter) ([]dto.CashCloseResponse, error) {
	from, to, err := monthRange(filter.Month)
	if err != nil {
		return nil, err
	}
	closes, err := s.cashCloseRepo.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CashCloseResponse, 0, len(closes))
	for i := range closes {
		out = append(out, *cashCloseToResponse(&closes[i]))
	}
	return out, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (s *financeService) audit(ctx context.Context, actor Actor, action, entity, entityID string, before, after map[string]interface{}) {
	auditViaDispatcher(ctx, s.dispatcher, actor, action, entity, entityID, before, after)
}

func monthRange(month string) (time.Time, time.Time, error) {
	var from time.Time
	if month == "" {
		now := time.Now()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	} else {
		parsed, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, domain.NewValidationError("mês inválido: %s", month)
		}
		from = parsed
	}
	return from, from.AddDate(0, 1, 0), nil
}

func categoryToResponse(c *model.AccountCategory) *dto.CategoryResponse {
	resp := &dto.CategoryResponse{
		ID:   c.ID.String(),
		Name: c.Name,
		Type: string(c.Type),
	}
	if c.ParentID != nil {
		id := c.ParentID.String()
		resp.ParentID = &id
	}
	return resp
}

func entryToResponse(e *model.LedgerEntry) *dto.LedgerEntryResponse {
	resp := &dto.LedgerEntryResponse{
		ID:          e.ID.String(),
		Date:        e.Date.Format("2006-01-02"),
		CategoryID:  e.CategoryID.String(),
		Description: e.Description,
		Amount:      e.Amount,
	}
	if e.Category != nil {
		resp.CategoryName = e.Category.Name
		resp.CategoryType = string(e.Category.Type)
	}
	if e.PaymentMethod != nil {
		method := string(*e.PaymentMethod)
		resp.PaymentMethod = &method
	}
	if e.RelatedTabID != nil {
		id := e.RelatedTabID.String()
		resp.RelatedTabID = &id
	}
	return resp
}

func cashCloseToResponse(c *model.CashClose) *dto.CashCloseResponse {
	expected := make(map[string]decimal.Decimal, len(c.Amounts))
	counted := make(map[string]decimal.Decimal, len(c.Amounts))
	expectedTotal := decimal.Zero
	countedTotal := decimal.Zero
	for _, a := range c.Amounts {
		expected[string(a.Method)] = a.Expected
		counted[string(a.Method)] = a.Counted
		expectedTotal = expectedTotal.Add(a.Expected)
		countedTotal = countedTotal.Add(a.Counted)
	}

	return &dto.CashCloseResponse{
		ID:            c.ID.String(),
		Date:          c.Date.Format("2006-01-02"),
		Shift:         c.Shift,
		Expected:      expected,
		Counted:       counted,
		ExpectedTotal: expectedTotal.Round(2),
		CountedTotal:  countedTotal.Round(2),
		Difference:    c.Difference,
		Observation:   c.Observation,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
}
