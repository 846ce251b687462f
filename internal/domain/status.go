package domain

// TabStatus is the lifecycle state of a comanda.
type TabStatus string

const (
	StatusOpen     TabStatus = "OPEN"
	StatusBilling  TabStatus = "BILLING"
	StatusPaid     TabStatus = "PAID"
	StatusCanceled TabStatus = "CANCELED"
)

// TabKind distinguishes how the tab was opened.
type TabKind string

const (
	KindTable    TabKind = "TABLE"
	KindBar      TabKind = "BAR"
	KindDelivery TabKind = "DELIVERY"
)

func (s TabStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusBilling, StatusPaid, StatusCanceled:
		return true
	}
	return false
}

func (k TabKind) Valid() bool {
	switch k {
	case KindTable, KindBar, KindDelivery:
		return true
	}
	return false
}

// CanTransitionTabStatus validates a lifecycle move.
//
// Without override: OPEN → {BILLING, CANCELED}; BILLING → {OPEN, PAID,
// CANCELED}; PAID and CANCELED have no forward transitions. A self-transition
// is always legal (no-op). With override any move is legal EXCEPT
// PAID → CANCELED: a paid tab can only be reopened to BILLING, never canceled
// directly, even by an admin.
func CanTransitionTabStatus(current, next TabStatus, adminOverride bool) bool {
	if current == next {
		return true
	}

	if adminOverride {
		return next != StatusCanceled || current != StatusPaid
	}

	switch current {
	case StatusOpen:
		return next == StatusBilling || next == StatusCanceled
	case StatusBilling:
		return next == StatusPaid || next == StatusCanceled || next == StatusOpen
	}
	return false
}

// CanAddItemsToTab gates item insertion. BILLING only allows new items when
// the allowAddItemsWhenBilling setting is on. Under override any non-CANCELED
// status allows (a PAID tab is reopened to BILLING first, as its own audited
// transition — see TabService.ReopenPaidTab).
func CanAddItemsToTab(status TabStatus, allowAddItemsWhenBilling, adminOverride bool) bool {
	if adminOverride {
		return status != StatusCanceled
	}
	if status == StatusOpen {
		return true
	}
	if status == StatusBilling {
		return allowAddItemsWhenBilling
	}
	return false
}

// CanRegisterPayment gates payment registration.
func CanRegisterPayment(status TabStatus, adminOverride bool) bool {
	if adminOverride {
		return status != StatusCanceled
	}
	return status == StatusOpen || status == StatusBilling
}

// CanMutateTab gates discount changes and item cancellation. CANCELED never
// allows, override or not.
func CanMutateTab(status TabStatus, adminOverride bool) bool {
	if adminOverride {
		return status != StatusCanceled
	}
	return status == StatusOpen || status == StatusBilling
}
