package kernel

// Identifiers are assigned by persistence. The zero value means "not persisted yet".
type (
	ProductID       int64
	OrderID         int64
	ClosingPeriodID int64
)
