package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanStockDeductions_AggregatesByProduct(t *testing.T) {
	beer := uuid.New()
	snack := uuid.New()

	deductions := PlanStockDeductions([]StockItem{
		{ProductID: beer, ControlsStock: true, Quantity: d("2")},
		{ProductID: snack, ControlsStock: true, Quantity: d("1")},
		{ProductID: beer, ControlsStock: true, Quantity: d("3")},
	}, "CMD260314-042", true)

	require.Len(t, deductions, 2)
	assert.Equal(t, beer, deductions[0].ProductID)
	assert.True(t, deductions[0].Quantity.Equal(d("5")), "same product consolidates into one movement")
	assert.Equal(t, "Saída automática da comanda CMD260314-042", deductions[0].Note)
	assert.Equal(t, snack, deductions[1].ProductID)
}

func TestPlanStockDeductions_SkipsCanceledAndUncontrolled(t *testing.T) {
	tracked := uuid.New()

	deductions := PlanStockDeductions([]StockItem{
		{ProductID: tracked, ControlsStock: true, Quantity: d("1"), Canceled: true},
		{ProductID: uuid.New(), ControlsStock: false, Quantity: d("4")},
		{ProductID: tracked, ControlsStock: true, Quantity: d("2")},
	}, "CMD260314-001", true)

	require.Len(t, deductions, 1)
	assert.True(t, deductions[0].Quantity.Equal(d("2")))
}

func TestPlanStockDeductions_ModuleDisabled(t *testing.T) {
	deductions := PlanStockDeductions([]StockItem{
		{ProductID: uuid.New(), ControlsStock: true, Quantity: d("2")},
	}, "CMD260314-001", false)

	assert.Empty(t, deductions)
}
