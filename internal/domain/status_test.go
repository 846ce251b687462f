package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTabStatus(t *testing.T) {
	cases := []struct {
		name     string
		from, to TabStatus
		override bool
		want     bool
	}{
		{"open to billing", StatusOpen, StatusBilling, false, true},
		{"open to canceled", StatusOpen, StatusCanceled, false, true},
		{"open to paid skips billing", StatusOpen, StatusPaid, false, false},
		{"billing to paid", StatusBilling, StatusPaid, false, true},
		{"billing back to open", StatusBilling, StatusOpen, false, true},
		{"billing to canceled", StatusBilling, StatusCanceled, false, true},
		{"paid is terminal", StatusPaid, StatusOpen, false, false},
		{"paid to billing needs override", StatusPaid, StatusBilling, false, false},
		{"canceled is terminal", StatusCanceled, StatusOpen, false, false},
		{"self transition is a no-op", StatusPaid, StatusPaid, false, true},
		{"override reopens paid", StatusPaid, StatusBilling, true, true},
		{"override paid to open", StatusPaid, StatusOpen, true, true},
		{"override cannot cancel a paid tab", StatusPaid, StatusCanceled, true, false},
		{"override cancels billing", StatusBilling, StatusCanceled, true, true},
		{"override resurrects canceled", StatusCanceled, StatusOpen, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransitionTabStatus(tc.from, tc.to, tc.override))
		})
	}
}

func TestCanAddItemsToTab(t *testing.T) {
	assert.True(t, CanAddItemsToTab(StatusOpen, false, false))
	assert.False(t, CanAddItemsToTab(StatusBilling, false, false))
	assert.True(t, CanAddItemsToTab(StatusBilling, true, false))
	assert.False(t, CanAddItemsToTab(StatusPaid, true, false))
	assert.False(t, CanAddItemsToTab(StatusCanceled, true, false))

	// Override allows any non-canceled status.
	assert.True(t, CanAddItemsToTab(StatusPaid, false, true))
	assert.True(t, CanAddItemsToTab(StatusBilling, false, true))
	assert.False(t, CanAddItemsToTab(StatusCanceled, false, true))
}

func TestCanRegisterPayment(t *testing.T) {
	assert.True(t, CanRegisterPayment(StatusOpen, false))
	assert.True(t, CanRegisterPayment(StatusBilling, false))
	assert.False(t, CanRegisterPayment(StatusPaid, false))
	assert.False(t, CanRegisterPayment(StatusCanceled, false))

	assert.True(t, CanRegisterPayment(StatusPaid, true))
	assert.False(t, CanRegisterPayment(StatusCanceled, true))
}

func TestCanMutateTab(t *testing.T) {
	assert.True(t, CanMutateTab(StatusOpen, false))
	assert.True(t, CanMutateTab(StatusBilling, false))
	assert.False(t, CanMutateTab(StatusPaid, false))

	assert.True(t, CanMutateTab(StatusPaid, true))
	assert.False(t, CanMutateTab(StatusCanceled, true))
}
