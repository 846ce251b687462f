package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockMovementType classifies a stock movement.
type StockMovementType string

const (
	StockIn     StockMovementType = "IN"
	StockOut    StockMovementType = "OUT"
	StockAdjust StockMovementType = "ADJUST"
)

func (t StockMovementType) Valid() bool {
	switch t {
	case StockIn, StockOut, StockAdjust:
		return true
	}
	return false
}

// StockItem is the projection of a TabItem that the deduction planner needs.
type StockItem struct {
	ProductID     uuid.UUID
	ControlsStock bool
	Quantity      decimal.Decimal
	Canceled      bool
}

// StockDeduction is one planned outbound movement.
type StockDeduction struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Note      string
}

// PlanStockDeductions aggregates a settled tab's non-canceled, stock-controlled
// items into one OUT movement per product. Several orders of the same product
// on one tab produce a single consolidated deduction, never one row per line
// item. With the stock module disabled it yields nothing.
func PlanStockDeductions(items []StockItem, tabCode string, stockModuleEnabled bool) []StockDeduction {
	if !stockModuleEnabled {
		return nil
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	var order []uuid.UUID

	for _, item := range items {
		if item.Canceled || !item.ControlsStock || item.ProductID == uuid.Nil {
			continue
		}
		if _, ok := sums[item.ProductID]; !ok {
			order = append(order, item.ProductID)
		}
		sums[item.ProductID] = sums[item.ProductID].Add(item.Quantity)
	}

	note := fmt.Sprintf("Saída automática da comanda %s", tabCode)
	deductions := make([]StockDeduction, 0, len(order))
	for _, pid := range order {
		deductions = append(deductions, StockDeduction{
			ProductID: pid,
			Quantity:  sums[pid],
			Note:      note,
		})
	}
	return deductions
}
