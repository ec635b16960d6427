// Package http exposes the use cases as a JSON API served by echo.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	metrics  *Metrics
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, metrics *Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  metrics,
		logger:   logger.With("component", "http"),
	}
}

// GetClosingPeriods handles GET /api/closing-periods.
func (s *Server) GetClosingPeriods(ctx echo.Context) error {
	periods, err := s.handlers.GetClosingPeriods.Handle(ctx.Request().Context(), queries.NewGetClosingPeriodsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ClosingPeriod, len(periods))
	for i, cp := range periods {
		response[i] = servers.ClosingPeriod{
			Id:        int64(cp.ID),
			StartDate: kernel.FormatCalendarDate(cp.StartDate),
			EndDate:   kernel.FormatCalendarDate(cp.EndDate),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateClosingPeriod handles POST /api/closing-periods.
func (s *Server) CreateClosingPeriod(ctx echo.Context) error {
	var body servers.CreateClosingPeriodJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	startDate, err := kernel.ParseCalendarDate(body.StartDate)
	if err != nil {
		return s.fail(ctx, err)
	}
	endDate, err := kernel.ParseCalendarDate(body.EndDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateClosingPeriod.Handle(
		ctx.Request().Context(),
		callerFrom(ctx),
		commands.NewCreateClosingPeriodCommand(startDate, endDate),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	return created(ctx, int64(id))
}

// PurgeExpiredClosingPeriods handles POST /api/closing-periods/purge.
func (s *Server) PurgeExpiredClosingPeriods(ctx echo.Context) error {
	purged, err := s.handlers.PurgeExpiredClosingPeriods.Handle(
		ctx.Request().Context(),
		callerFrom(ctx),
		commands.NewPurgeExpiredClosingPeriodsCommand(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PurgeResult{Purged: purged})
}

// DeleteClosingPeriod handles DELETE /api/closing-periods/{id}.
func (s *Server) DeleteClosingPeriod(ctx echo.Context, id int64) error {
	cmd, err := commands.NewDeleteClosingPeriodCommand(kernel.ClosingPeriodID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteClosingPeriod.Handle(ctx.Request().Context(), callerFrom(ctx), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveProducts handles GET /api/products.
func (s *Server) GetActiveProducts(ctx echo.Context) error {
	products, err := s.handlers.GetActiveProducts.Handle(
		ctx.Request().Context(),
		callerFrom(ctx),
		queries.NewGetActiveProductsQuery(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd := commands.NewCreateProductCommand(body.Name, deref(body.Description), body.Price, derefSlice(body.Allergens))
	id, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), callerFrom(ctx), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return created(ctx, int64(id))
}

// UpdateProduct handles PUT /api/products/{id}.
func (s *Server) UpdateProduct(ctx echo.Context, id int64) error {
	var body servers.UpdateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateProductCommand(
		kernel.ProductID(id),
		body.Name,
		deref(body.Description),
		body.Price,
		derefSlice(body.Allergens),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateProduct.Handle(ctx.Request().Context(), callerFrom(ctx), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ArchiveProduct handles POST /api/products/{id}/archive.
func (s *Server) ArchiveProduct(ctx echo.Context, id int64) error {
	cmd, err := commands.NewArchiveProductCommand(kernel.ProductID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ArchiveProduct.Handle(ctx.Request().Context(), callerFrom(ctx), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), callerFrom(ctx), queries.NewGetOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders. Anonymous customers may call it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	details, err := toOrderDetails(body.OrderDetails)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.handlers.CreateOrder.Handle(
		ctx.Request().Context(),
		commands.NewCreateOrderCommand(toClient(body), details),
	)
	s.metrics.ObserveOrderValidation(operationCreate, err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return created(ctx, int64(id))
}

// UpdateOrder handles PUT /api/orders/{id}.
func (s *Server) UpdateOrder(ctx echo.Context, id int64) error {
	var body servers.UpdateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	details, err := toOrderDetails(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(kernel.OrderID(id), details)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), callerFrom(ctx), cmd)
	s.metrics.ObserveOrderValidation(operationUpdate, err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProductOrderingStatus handles GET /api/features/product-ordering.
func (s *Server) GetProductOrderingStatus(ctx echo.Context) error {
	status, err := s.handlers.GetProductOrderingStatus.Handle(
		ctx.Request().Context(),
		queries.NewGetProductOrderingStatusQuery(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ProductOrderingStatus{Enabled: status.Enabled})
}

// EnableProductOrdering handles POST /api/features/product-ordering/enable.
func (s *Server) EnableProductOrdering(ctx echo.Context) error {
	err := s.handlers.EnableProductOrdering.Handle(
		ctx.Request().Context(),
		callerFrom(ctx),
		commands.NewEnableProductOrderingCommand(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DisableProductOrdering handles POST /api/features/product-ordering/disable.
func (s *Server) DisableProductOrdering(ctx echo.Context) error {
	err := s.handlers.DisableProductOrdering.Handle(
		ctx.Request().Context(),
		callerFrom(ctx),
		commands.NewDisableProductOrderingCommand(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func created(ctx echo.Context, id int64) error {
	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("%s/%d", ctx.Request().URL.Path, id))
	return ctx.JSON(http.StatusCreated, servers.Created{Id: id})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
