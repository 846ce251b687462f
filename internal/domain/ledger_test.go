package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatePaymentsByMethod(t *testing.T) {
	grouped := AggregatePaymentsByMethod([]PaymentInput{
		{Method: MethodPix, Amount: d("10")},
		{Method: MethodPix, Amount: d("5.5")},
		{Method: MethodCash, Amount: d("20")},
	})

	require.Len(t, grouped, 2)
	assert.Equal(t, MethodPix, grouped[0].Method)
	assert.True(t, grouped[0].Amount.Equal(d("15.5")))
	assert.Equal(t, MethodCash, grouped[1].Method)
	assert.True(t, grouped[1].Amount.Equal(d("20")))
}

func TestBuildRevenueLedgerEntries(t *testing.T) {
	meta := RevenueEntryMeta{
		CategoryID:  uuid.New(),
		TabID:       uuid.New(),
		CreatedByID: uuid.New(),
		Date:        time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC),
	}

	entries := BuildRevenueLedgerEntries([]PaymentInput{
		{Method: MethodPix, Amount: d("10")},
		{Method: MethodPix, Amount: d("5.5")},
		{Method: MethodCash, Amount: d("20")},
	}, meta)

	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, meta.TabID, e.TabID)
		assert.Equal(t, meta.CategoryID, e.CategoryID)
		assert.Equal(t, meta.CreatedByID, e.CreatedByID)
		assert.Equal(t, meta.Date, e.Date)
	}
	assert.Equal(t, "Receita de comanda (PIX)", entries[0].Description)
	assert.True(t, entries[0].Amount.Equal(d("15.5")))
	assert.Equal(t, "Receita de comanda (CASH)", entries[1].Description)
	assert.True(t, entries[1].Amount.Equal(d("20")))
}

func TestBuildRevenueLedgerEntries_CustomPrefix(t *testing.T) {
	entries := BuildRevenueLedgerEntries(
		[]PaymentInput{{Method: MethodDebit, Amount: d("12")}},
		RevenueEntryMeta{DescriptionPrefix: "Venda balcão"},
	)

	require.Len(t, entries, 1)
	assert.Equal(t, "Venda balcão (DEBIT)", entries[0].Description)
}

func TestBuildRevenueLedgerEntries_Empty(t *testing.T) {
	assert.Empty(t, BuildRevenueLedgerEntries(nil, RevenueEntryMeta{}))
}

func TestAggregatePaymentsByMethod_RoundsEachGroup(t *testing.T) {
	grouped := AggregatePaymentsByMethod([]PaymentInput{
		{Method: MethodCash, Amount: d("0.333")},
		{Method: MethodCash, Amount: d("0.333")},
	})

	require.Len(t, grouped, 1)
	assert.True(t, grouped[0].Amount.Equal(d("0.67")), "0.666 rounds half away from zero")
}
