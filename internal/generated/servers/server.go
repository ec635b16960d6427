package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/closing-periods)
	GetClosingPeriods(ctx echo.Context) error
	// (POST /api/closing-periods)
	CreateClosingPeriod(ctx echo.Context) error
	// (POST /api/closing-periods/purge)
	PurgeExpiredClosingPeriods(ctx echo.Context) error
	// (DELETE /api/closing-periods/{id})
	DeleteClosingPeriod(ctx echo.Context, id int64) error
	// (GET /api/products)
	GetActiveProducts(ctx echo.Context) error
	// (POST /api/products)
	CreateProduct(ctx echo.Context) error
	// (PUT /api/products/{id})
	UpdateProduct(ctx echo.Context, id int64) error
	// (POST /api/products/{id}/archive)
	ArchiveProduct(ctx echo.Context, id int64) error
	// (GET /api/orders)
	GetOrders(ctx echo.Context) error
	// (POST /api/orders)
	CreateOrder(ctx echo.Context) error
	// (PUT /api/orders/{id})
	UpdateOrder(ctx echo.Context, id int64) error
	// (GET /api/features/product-ordering)
	GetProductOrderingStatus(ctx echo.Context) error
	// (POST /api/features/product-ordering/enable)
	EnableProductOrdering(ctx echo.Context) error
	// (POST /api/features/product-ordering/disable)
	DisableProductOrdering(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetClosingPeriods(ctx echo.Context) error {
	return w.Handler.GetClosingPeriods(ctx)
}

func (w *ServerInterfaceWrapper) CreateClosingPeriod(ctx echo.Context) error {
	return w.Handler.CreateClosingPeriod(ctx)
}

func (w *ServerInterfaceWrapper) PurgeExpiredClosingPeriods(ctx echo.Context) error {
	return w.Handler.PurgeExpiredClosingPeriods(ctx)
}

func (w *ServerInterfaceWrapper) DeleteClosingPeriod(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteClosingPeriod(ctx, id)
}

func (w *ServerInterfaceWrapper) GetActiveProducts(ctx echo.Context) error {
	return w.Handler.GetActiveProducts(ctx)
}

func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

func (w *ServerInterfaceWrapper) UpdateProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateProduct(ctx, id)
}

func (w *ServerInterfaceWrapper) ArchiveProduct(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ArchiveProduct(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) GetProductOrderingStatus(ctx echo.Context) error {
	return w.Handler.GetProductOrderingStatus(ctx)
}

func (w *ServerInterfaceWrapper) EnableProductOrdering(ctx echo.Context) error {
	return w.Handler.EnableProductOrdering(ctx)
}

func (w *ServerInterfaceWrapper) DisableProductOrdering(ctx echo.Context) error {
	return w.Handler.DisableProductOrdering(ctx)
}

// bindID reads the "id" path parameter.
func bindID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/closing-periods", wrapper.GetClosingPeriods)
	router.POST(baseURL+"/api/closing-periods", wrapper.CreateClosingPeriod)
	router.POST(baseURL+"/api/closing-periods/purge", wrapper.PurgeExpiredClosingPeriods)
	router.DELETE(baseURL+"/api/closing-periods/:id", wrapper.DeleteClosingPeriod)
	router.GET(baseURL+"/api/products", wrapper.GetActiveProducts)
	router.POST(baseURL+"/api/products", wrapper.CreateProduct)
	router.PUT(baseURL+"/api/products/:id", wrapper.UpdateProduct)
	router.POST(baseURL+"/api/products/:id/archive", wrapper.ArchiveProduct)
	router.GET(baseURL+"/api/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/orders", wrapper.CreateOrder)
	router.PUT(baseURL+"/api/orders/:id", wrapper.UpdateOrder)
	router.GET(baseURL+"/api/features/product-ordering", wrapper.GetProductOrderingStatus)
	router.POST(baseURL+"/api/features/product-ordering/enable", wrapper.EnableProductOrdering)
	router.POST(baseURL+"/api/features/product-ordering/disable", wrapper.DisableProductOrdering)
}
