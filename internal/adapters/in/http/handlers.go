package http

import (
	"context"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/user"
)

// AdminHandler is a use case that returns a result and checks the caller itself.
type AdminHandler[C, R any] interface {
	Handle(ctx context.Context, caller *user.User, cmd C) (R, error)
}

// AdminExecHandler is a use case without result that checks the caller itself.
type AdminExecHandler[C any] interface {
	Handle(ctx context.Context, caller *user.User, cmd C) error
}

// PublicHandler is a use case open to anonymous callers.
type PublicHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateClosingPeriod        AdminHandler[commands.CreateClosingPeriodCommand, kernel.ClosingPeriodID]
	DeleteClosingPeriod        AdminExecHandler[commands.DeleteClosingPeriodCommand]
	PurgeExpiredClosingPeriods AdminHandler[commands.PurgeExpiredClosingPeriodsCommand, int]
	CreateProduct              AdminHandler[commands.CreateProductCommand, kernel.ProductID]
	UpdateProduct              AdminExecHandler[commands.UpdateProductCommand]
	ArchiveProduct             AdminExecHandler[commands.ArchiveProductCommand]
	EnableProductOrdering      AdminExecHandler[commands.EnableProductOrderingCommand]
	DisableProductOrdering     AdminExecHandler[commands.DisableProductOrderingCommand]
	CreateOrder                PublicHandler[commands.CreateOrderCommand, kernel.OrderID]
	UpdateOrder                AdminExecHandler[commands.UpdateOrderCommand]

	GetClosingPeriods        PublicHandler[queries.GetClosingPeriodsQuery, []queries.GetClosingPeriodsQueryResponse]
	GetProductOrderingStatus PublicHandler[queries.GetProductOrderingStatusQuery, queries.GetProductOrderingStatusQueryResponse]
	GetActiveProducts        AdminHandler[queries.GetActiveProductsQuery, []queries.GetActiveProductsQueryResponse]
	GetOrders                AdminHandler[queries.GetOrdersQuery, []queries.GetOrdersQueryResponse]
}
