package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/dto"
	"github.com/raweer420/CRMBUTECO/internal/model"
	"github.com/raweer420/CRMBUTECO/internal/repository"
	"github.com/raweer420/CRMBUTECO/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// revenueCategoryName is the category settlement revenue lands in. Created on
// first settlement if the chart of accounts does not have it yet.
const revenueCategoryName = "Vendas"

type TabService interface {
	CreateTab(ctx context.Context, actor Actor, req dto.CreateTabRequest) (*dto.TabResponse, error)
	GetTab(ctx context.Context, id uuid.UUID) (*dto.TabResponse, error)
	ListTabs(ctx context.Context, filter dto.TabFilter) (*dto.TabListResponse, error)
	AddItem(ctx context.Context, actor Actor, tabID uuid.UUID, req dto.AddItemRequest) (*dto.TabResponse, error)
	CancelItem(ctx context.Context, actor Actor, itemID uuid.UUID, req dto.CancelItemRequest) error
	ApplyDiscount(ctx context.Context, actor Actor, tabID uuid.UUID, req dto.DiscountRequest) error
	RegisterPayment(ctx context.Context, actor Actor, tabID uuid.UUID, req dto.PaymentRequest) (*dto.TabResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, tabID uuid.UUID, req dto.UpdateTabStatusRequest) (*dto.TabResponse, error)
	ReopenPaidTab(ctx context.Context, actor Actor, tabID uuid.UUID) error
}

// Actor is the authenticated caller with its resolved capability set.
type Actor struct {
	UserID uuid.UUID
	Caps   domain.Capabilities
}

type tabService struct {
	repo         repository.TabRepository
	productRepo  repository.ProductRepository
	financeRepo  repository.FinanceRepository
	stockRepo    repository.StockRepository
	settingsRepo repository.SettingsRepository
	dispatcher   *worker.Dispatcher
}

func NewTabService(
	repo repository.TabRepository,
	productRepo repository.ProductRepository,
	financeRepo repository.FinanceRepository,
	stockRepo repository.StockRepository,
	settingsRepo repository.SettingsRepository,
	dispatcher *worker.Dispatcher,
) TabService {
	return &tabService{
		repo:         repo,
		productRepo:  productRepo,
		financeRepo:  financeRepo,
		stockRepo:    stockRepo,
		settingsRepo: settingsRepo,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── CreateTab ────────────────────────────────────────────────────────────────

func (s *tabService) CreateTab(ctx context.Context, actor Actor, req dto.CreateTabRequest) (*dto.TabResponse, error) {
	kind := domain.TabKind(req.Kind)
	if !kind.Valid() {
		return nil, domain.NewValidationError("tipo de comanda inválido: %s", req.Kind)
	}
	if kind == domain.KindTable && req.TableNumber == nil {
		return nil, domain.NewValidationError("comanda de mesa exige número da mesa")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	code, err := s.generateTabCode(ctx)
	if err != nil {
		return nil, err
	}

	var customerName *string
	if settings.EnableCustomerFields {
		customerName = req.CustomerName
	}

	tab := model.Tab{
		Code:              code,
		Kind:              kind,
		Status:            domain.StatusOpen,
		TableNumber:       req.TableNumber,
		CustomerName:      customerName,
		Discount:          decimal.Zero,
		ServiceFeePercent: settings.DefaultServiceFeePercent,
		OpenedByID:        actor.UserID,
		OpenedAt:          time.Now(),
	}
	if err := s.repo.Create(ctx, &tab); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "TAB_CREATED", "Tab", tab.ID.String(), nil, map[string]interface{}{
		"code":          tab.Code,
		"kind":          tab.Kind,
		"table_number":  tab.TableNumber,
		"customer_name": tab.CustomerName,
	})

	return tabToResponse(&tab), nil
}

// generateTabCode builds CMDyymmdd-nnn with a random 3-digit suffix, probing
// for collisions. After 10 misses it falls back to a timestamp code, which
// cannot collide at millisecond resolution.
func (s *tabService) generateTabCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		code := fmt.Sprintf("CMD%s-%03d", time.Now().Format("060102"), rand.Intn(1000))
		exists, err := s.repo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return fmt.Sprintf("CMD-%d", time.Now().UnixMilli()), nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

func (s *tabService) GetTab(ctx context.Context, id uuid.UUID) (*dto.TabResponse, error) {
	tab, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "Comanda"}
		}
		return nil, err
	}
	return tabToResponse(tab), nil
}

func (s *tabService) ListTabs(ctx context.Context, filter dto.TabFilter) (*dto.TabListResponse, error) {
	tabs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TabListItem, 0, len(tabs))
	for i := range tabs {
		t := &tabs[i]
		totals := tabTotals(t)
		items = append(items, dto.TabListItem{
			ID:          t.ID.String(),
			Code:        t.Code,
			Kind:        string(t.Kind),
			Status:      string(t.Status),
			TableNumber: t.TableNumber,
			Total:       totals.Total,
			OpenedAt:    t.OpenedAt.Format(time.RFC3339),
		})
	}

	return &dto.TabListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// ── AddItem ──────────────────────────────────────────────────────────────────

func (s *tabService) AddItem(ctx context.Context, actor Actor, tabID uuid.UUID, req dto.AddItemRequest) (*dto.TabResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, domain.NewValidationError("product_id inválido")
	}
	if !req.Quantity.IsPositive() {
		return nil, domain.NewValidationError("quantidade deve ser positiva")
	}

	tab, err := s.repo.FindByID(ctx, tabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "Comanda"}
		}
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "Produto"}
		}
		return nil, err
	}
	if !product.Active {
		return nil, &domain.InactiveResourceError{Resource: "Produto"}
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	// A PAID tab under override is reopened first — an explicit, audited
	// transition, never an implicit side effect of the insert.
	if tab.Status == domain.StatusPaid && actor.Caps.AdminOverride {
		if err := s.ReopenPaidTab(ctx, actor, tab.ID); err != nil {
			return nil, err
		}
		tab.Status = domain.StatusBilling
	}

	if !domain.CanAddItemsToTab(tab.Status, settings.AllowAddItemsWhenBilling, actor.Caps.AdminOverride) {
		return nil, domain.NewValidationError("a comanda não permite novos itens neste status")
	}

	item := model.TabItem{
		TabID:             tab.ID,
		ProductID:         &product.ID,
		NameSnapshot:      product.Name,
		UnitPriceSnapshot: product.Price,
		Quantity:          req.Quantity,
		Note:              req.Note,
		AddedByID:         actor.UserID,
	}
	if err := s.repo.CreateItem(ctx, &item); err != nil {
		return nil, err
	}

	s.audit(ctx, actor, "TAB_ITEM_ADDED", "TabItem", item.ID.String(), nil, map[string]interface{}{
		"tab_id":     item.TabID,
		"name":       item.NameSnapshot,
		"quantity":   item.Quantity.String(),
		"unit_price": item.UnitPriceSnapshot.String(),
	})

	return s.GetTab(ctx, tab.ID)
}

// ── CancelItem ───────────────────────────────────────────────────────────────

func (s *tabService) CancelItem(ctx context.Context, actor Actor, itemID uuid.UUID, req dto.CancelItemRequest) error {
	if !actor.Caps.CanCancelItems {
		return domain.NewValidationError("sem permissão para cancelar itens")
	}

	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.NotFoundError{Resource: "Item"}
		}
		return err
	}
	if item.CanceledAt != nil {
		return &domain.AlreadyCanceledError{Resource: "Item"}
	}

	tab, err := s.repo.FindByID(ctx, item.TabID)
	if err != nil {
		return err
	}

	if tab.Status == domain.StatusPaid && actor.Caps.AdminOverride {
		if err := s.ReopenPaidTab(ctx, actor, tab.ID); err != nil {
			return err
		}
		tab.Status = domain.StatusBilling
	}
	if !domain.CanMutateTab(tab.Status, actor.Caps.AdminOverride) {
		return domain.NewValidationError("não é possível cancelar item de comanda %s", tab.Status)
	}

	if err := s.repo.CancelItem(ctx, itemID, actor.UserID, req.Reason, time.Now()); err != nil {
		return err
	}

	s.audit(ctx, actor, "TAB_ITEM_CANCELED", "TabItem", itemID.String(),
		map[string]interface{}{"canceled_at": nil},
		map[string]interface{}{"canceled_at": time.Now(), "cancel_reason": req.Reason},
	)
	return nil
}

// ── ApplyDiscount ────────────────────────────────────────────────────────────

func (s *tabService) ApplyDiscount(ctx context.Context, actor Actor, tabID uuid.UUID, req dto.DiscountRequest) error {
	if !actor.Caps.CanApplyDiscount {
		return domain.NewValidationError("sem permissão para aplicar desconto")
	}
	if req.Discount.IsNegative() {
		return domain.NewValidationError("desconto não pode ser negativo")
	}

	tab, err := s.repo.FindByID(ctx, tabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.NotFoundError{Resource: "Comanda"}
		}
		return err
	}

	if tab.Status == domain.StatusPaid && actor.Caps.AdminOverride {
		if err := s.ReopenPaidTab(ctx, actor, tab.ID); err != nil {
			return err
		}
		tab.Status = domain.StatusBilling
	}
	if !domain.CanMutateTab(tab.Status, actor.Caps.AdminOverride) {
		return domain.NewValidationError("não é possível alterar comanda %s", tab.Status)
	}

	before := tab.Discount
	if err := s.repo.UpdateDiscount(ctx, tab.ID, req.Discount); err != nil {
		return err
	}

	s.audit(ctx, actor, "TAB_DISCOUNT_APPLIED", "Tab", tab.ID.String(),
		map[string]interface{}{"discount": before.String()},
		map[string]interface{}{"discount": req.Discount.String()},
	)
	return nil
}

// ── RegisterPayment ──────────────────────────────────────────────────────────

func (s *tabService) RegisterPayment(ctx context.Context, actor Actor, tabID uuid.UUID, req dto.PaymentRequest) (*dto.TabResponse, error) {
	if !actor.Caps.CanOperateCashier {
		return nil, domain.NewValidationError("sem permissão para registrar pagamentos")
	}
	method := domain.PaymentMethod(req.Method)
	if !method.Valid() {
		return nil, domain.NewValidationError("método de pagamento inválido: %s", req.Method)
	}
	if !req.Amount.IsPositive() {
		return nil, domain.NewValidationError("valor do pagamento deve ser positivo")
	}

	tab, err := s.repo.FindByID(ctx, tabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "Comanda"}
		}
		return nil, err
	}

	if !domain.CanRegisterPayment(tab.Status, actor.Caps.AdminOverride) {
		return nil, domain.NewValidationError("a comanda não aceita pagamento neste status")
	}

	payment := model.Payment{
		TabID:        tab.ID,
		Method:       method,
		Amount:       req.Amount,
		ReceivedByID: actor.UserID,
	}
	// First payment moves an OPEN tab to BILLING in the same tx.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if tab.Status == domain.StatusOpen {
			if err := s.repo.UpdateStatusTx(tx, tab.ID, domain.StatusBilling); err != nil {
				return err
			}
		}
		return s.repo.CreatePaymentTx(tx, &payment)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.audit(ctx, actor, "TAB_PAYMENT_REGISTERED", "Payment", payment.ID.String(), nil, map[string]interface{}{
		"tab_id": payment.TabID,
		"method": payment.Method,
		"amount": payment.Amount.String(),
	})

	return s.GetTab(ctx, tab.ID)
}

// ── UpdateStatus ─────────────────────────────────────────────────────────────

func (s *tabService) UpdateStatus(ctx context.Context, actor Actor, tabID uuid.UUID, req dto.UpdateTabStatusRequest) (*dto.TabResponse, error) {
	next := domain.TabStatus(req.NextStatus)
	if !next.Valid() {
		return nil, domain.NewValidationError("status inválido: %s", req.NextStatus)
	}

	if next == domain.StatusPaid && !actor.Caps.CanOperateCashier {
		return nil, domain.NewValidationError("sem permissão para fechar cobrança")
	}
	if next == domain.StatusCanceled && !actor.Caps.CanCancelItems {
		return nil, domain.NewValidationError("sem permissão para cancelar comanda")
	}

	tab, err := s.repo.FindByID(ctx, tabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "Comanda"}
		}
		return nil, err
	}

	if tab.Status == next {
		// Self-transition is a legal no-op.
		return tabToResponse(tab), nil
	}

	if !domain.CanTransitionTabStatus(tab.Status, next, actor.Caps.AdminOverride) {
		return nil, &domain.IllegalTransitionError{From: tab.Status, To: next}
	}

	if next != domain.StatusPaid {
		return s.applyNonSettlingTransition(ctx, actor, tab, next)
	}
	return s.settle(ctx, actor, tab.ID)
}

func (s *tabService) applyNonSettlingTransition(ctx context.Context, actor Actor, tab *model.Tab, next domain.TabStatus) (*dto.TabResponse, error) {
	var closedAt *time.Time
	var closedBy *uuid.UUID
	if next == domain.StatusCanceled {
		now := time.Now()
		closedAt = &now
		actorID := actor.UserID
		closedBy = &actorID
	}

	if err := s.repo.ApplyTransition(ctx, tab.ID, next, closedAt, closedBy); err != nil {
		return nil, err
	}

	action := "TAB_STATUS_UPDATED"
	if next == domain.StatusCanceled {
		action = "TAB_CANCELED"
	}
	s.audit(ctx, actor, action, "Tab", tab.ID.String(),
		map[string]interface{}{"status": tab.Status},
		map[string]interface{}{"status": next},
	)

	return s.GetTab(ctx, tab.ID)
}

// settle is the single money-moving transaction: it locks the tab, verifies
// payment sufficiency, flips it to PAID via a guarded update, posts stock
// deductions and revenue ledger rows. Either everything lands or nothing does.
func (s *tabService) settle(ctx context.Context, actor Actor, tabID uuid.UUID) (*dto.TabResponse, error) {
	var settled *model.Tab
	var totalPaid decimal.Decimal
	var prevStatus domain.TabStatus

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		tab, err := s.repo.FindByIDForUpdate(tx, tabID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Resource: "Comanda"}
			}
			return err
		}
		if tab.Status != domain.StatusOpen && tab.Status != domain.StatusBilling {
			return &domain.IllegalTransitionError{From: tab.Status, To: domain.StatusPaid}
		}
		prevStatus = tab.Status

		totals := tabTotals(tab)
		payments := paymentInputs(tab.Payments)
		if err := domain.CheckPaymentSufficiency(totals, payments); err != nil {
			return err
		}
		totalPaid = decimal.Zero
		for _, p := range payments {
			totalPaid = totalPaid.Add(p.Amount)
		}

		now := time.Now()
		rows, err := s.repo.SettleTx(tx, tab.ID, actor.UserID, now)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Lost the race: another request settled or canceled first.
			// Re-read so the error carries the status that beat us.
			from := prevStatus
			if current, err := s.repo.FindByIDForUpdate(tx, tab.ID); err == nil {
				from = current.Status
			}
			return &domain.IllegalTransitionError{From: from, To: domain.StatusPaid}
		}

		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return err
		}

		deductions := domain.PlanStockDeductions(stockItems(tab.Items), tab.Code, settings.EnableStockModule)
		if len(deductions) > 0 {
			movements := make([]model.StockMovement, 0, len(deductions))
			for _, d := range deductions {
				note := d.Note
				tabRef := tab.ID
				movements = append(movements, model.StockMovement{
					ProductID:    d.ProductID,
					Type:         domain.StockOut,
					Quantity:     d.Quantity,
					Note:         note,
					RelatedTabID: &tabRef,
					CreatedByID:  actor.UserID,
				})
			}
			if err := s.stockRepo.CreateBatchTx(tx, movements); err != nil {
				return err
			}
		}

		category, err := s.financeRepo.FindOrCreateCategoryTx(tx, revenueCategoryName, domain.AccountRevenue)
		if err != nil {
			return err
		}

		revenueEntries := domain.BuildRevenueLedgerEntries(payments, domain.RevenueEntryMeta{
			CategoryID:  category.ID,
			TabID:       tab.ID,
			CreatedByID: actor.UserID,
			Date:        now,
		})
		if len(revenueEntries) > 0 {
			ledgerRows := make([]model.LedgerEntry, 0, len(revenueEntries))
			for _, e := range revenueEntries {
				method := e.Method
				tabRef := e.TabID
				ledgerRows = append(ledgerRows, model.LedgerEntry{
					Date:          e.Date,
					CategoryID:    e.CategoryID,
					Description:   e.Description,
					Amount:        e.Amount,
					PaymentMethod: &method,
					RelatedTabID:  &tabRef,
					CreatedByID:   e.CreatedByID,
				})
			}
			if err := s.financeRepo.CreateEntriesTx(tx, ledgerRows); err != nil {
				return err
			}
		}

		tab.Status = domain.StatusPaid
		tab.ClosedAt = &now
		closedBy := actor.UserID
		tab.ClosedByID = &closedBy
		settled = tab
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.audit(ctx, actor, "TAB_STATUS_UPDATED", "Tab", settled.ID.String(),
		map[string]interface{}{"status": prevStatus},
		map[string]interface{}{"status": domain.StatusPaid, "total_paid": totalPaid.StringFixed(2)},
	)

	return tabToResponse(settled), nil
}

// ── ReopenPaidTab ────────────────────────────────────────────────────────────

func (s *tabService) ReopenPaidTab(ctx context.Context, actor Actor, tabID uuid.UUID) error {
	if !actor.Caps.AdminOverride {
		return domain.NewValidationError("sem permissão para reabrir comanda paga")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		rows, err := s.repo.ReopenTx(tx, tabID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.NewValidationError("somente comanda paga pode ser reaberta")
		}
		// Settlement artifacts are rolled back so a later re-settlement does
		// not double-post revenue or stock output.
		if err := s.financeRepo.DeleteEntriesByTabTx(tx, tabID); err != nil {
			return err
		}
		return s.stockRepo.DeleteByTabTx(tx, tabID)
	})
	if txErr != nil {
		return txErr
	}

	s.audit(ctx, actor, "TAB_REOPENED", "Tab", tabID.String(),
		map[string]interface{}{"status": domain.StatusPaid},
		map[string]interface{}{"status": domain.StatusBilling},
	)
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (s *tabService) audit(ctx context.Context, actor Actor, action, entity, entityID string, before, after map[string]interface{}) {
	auditViaDispatcher(ctx, s.dispatcher, actor, action, entity, entityID, before, after)
}

func stockItems(items []model.TabItem) []domain.StockItem {
	out := make([]domain.StockItem, 0, len(items))
	for i := range items {
		item := &items[i]
		si := domain.StockItem{
			Quantity: item.Quantity,
			Canceled: item.CanceledAt != nil,
		}
		if item.ProductID != nil {
			si.ProductID = *item.ProductID
		}
		if item.Product != nil {
			si.ControlsStock = item.Product.ControlsStock
		}
		out = append(out, si)
	}
	return out
}

func paymentInputs(payments []model.Payment) []domain.PaymentInput {
	out := make([]domain.PaymentInput, 0, len(payments))
	for _, p := range payments {
		out = append(out, domain.PaymentInput{Method: p.Method, Amount: p.Amount})
	}
	return out
}

func tabTotals(tab *model.Tab) domain.TabTotals {
	items := make([]domain.TabTotalItem, 0, len(tab.Items))
	for i := range tab.Items {
		item := &tab.Items[i]
		items = append(items, domain.TabTotalItem{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPriceSnapshot,
			Canceled:  item.CanceledAt != nil,
		})
	}
	return domain.CalculateTabTotals(items, tab.Discount, tab.ServiceFeePercent)
}

func tabToResponse(tab *model.Tab) *dto.TabResponse {
	totals := tabTotals(tab)

	paid := decimal.Zero
	payments := make([]dto.TabPaymentResponse, 0, len(tab.Payments))
	for _, p := range tab.Payments {
		paid = paid.Add(p.Amount)
		payments = append(payments, dto.TabPaymentResponse{
			ID:     p.ID.String(),
			Method: string(p.Method),
			Amount: p.Amount,
		})
	}

	items := make([]dto.TabItemResponse, 0, len(tab.Items))
	for i := range tab.Items {
		item := &tab.Items[i]
		var productID *string
		if item.ProductID != nil {
			id := item.ProductID.String()
			productID = &id
		}
		items = append(items, dto.TabItemResponse{
			ID:           item.ID.String(),
			ProductID:    productID,
			Name:         item.NameSnapshot,
			UnitPrice:    item.UnitPriceSnapshot,
			Quantity:     item.Quantity,
			Note:         item.Note,
			Canceled:     item.CanceledAt != nil,
			CancelReason: item.CancelReason,
		})
	}

	resp := &dto.TabResponse{
		ID:           tab.ID.String(),
		Code:         tab.Code,
		Kind:         string(tab.Kind),
		Status:       string(tab.Status),
		TableNumber:  tab.TableNumber,
		CustomerName: tab.CustomerName,
		Items:        items,
		Payments:     payments,
		Totals: dto.TabTotalsResponse{
			Subtotal:   totals.Subtotal,
			Discount:   totals.Discount,
			ServiceFee: totals.ServiceFee,
			Total:      totals.Total,
			Paid:       paid,
			Remaining:  domain.RemainingAmount(totals, paymentInputs(tab.Payments)),
		},
		OpenedAt: tab.OpenedAt.Format(time.RFC3339),
	}
	if tab.ClosedAt != nil {
		closed := tab.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &closed
	}
	return resp
}
