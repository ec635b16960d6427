package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/user"
	"bakery/internal/generated/servers"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminName     = "boulanger"
	adminPassword = "croissant"
)

type RouterTestSuite struct {
	suite.Suite

	createClosingPeriod *MockAdminHandler[commands.CreateClosingPeriodCommand, kernel.ClosingPeriodID]
	deleteClosingPeriod *MockAdminExecHandler[commands.DeleteClosingPeriodCommand]
	purgeClosingPeriods *MockAdminHandler[commands.PurgeExpiredClosingPeriodsCommand, int]
	createProduct       *MockAdminHandler[commands.CreateProductCommand, kernel.ProductID]
	updateProduct       *MockAdminExecHandler[commands.UpdateProductCommand]
	archiveProduct      *MockAdminExecHandler[commands.ArchiveProductCommand]
	enableOrdering      *MockAdminExecHandler[commands.EnableProductOrderingCommand]
	disableOrdering     *MockAdminExecHandler[commands.DisableProductOrderingCommand]
	createOrder         *MockPublicHandler[commands.CreateOrderCommand, kernel.OrderID]
	updateOrder         *MockAdminExecHandler[commands.UpdateOrderCommand]
	getClosingPeriods   *MockPublicHandler[queries.GetClosingPeriodsQuery, []queries.GetClosingPeriodsQueryResponse]
	getOrderingStatus   *MockPublicHandler[queries.GetProductOrderingStatusQuery, queries.GetProductOrderingStatusQueryResponse]
	getActiveProducts   *MockAdminHandler[queries.GetActiveProductsQuery, []queries.GetActiveProductsQueryResponse]
	getOrders           *MockAdminHandler[queries.GetOrdersQuery, []queries.GetOrdersQueryResponse]

	registry *prometheus.Registry
	router   *echo.Echo
}

func (s *RouterTestSuite) SetupTest() {
	s.createClosingPeriod = new(MockAdminHandler[commands.CreateClosingPeriodCommand, kernel.ClosingPeriodID])
	s.deleteClosingPeriod = new(MockAdminExecHandler[commands.DeleteClosingPeriodCommand])
	s.purgeClosingPeriods = new(MockAdminHandler[commands.PurgeExpiredClosingPeriodsCommand, int])
	s.createProduct = new(MockAdminHandler[commands.CreateProductCommand, kernel.ProductID])
	s.updateProduct = new(MockAdminExecHandler[commands.UpdateProductCommand])
	s.archiveProduct = new(MockAdminExecHandler[commands.ArchiveProductCommand])
	s.enableOrdering = new(MockAdminExecHandler[commands.EnableProductOrderingCommand])
	s.disableOrdering = new(MockAdminExecHandler[commands.DisableProductOrderingCommand])
	s.createOrder = new(MockPublicHandler[commands.CreateOrderCommand, kernel.OrderID])
	s.updateOrder = new(MockAdminExecHandler[commands.UpdateOrderCommand])
	s.getClosingPeriods = new(MockPublicHandler[queries.GetClosingPeriodsQuery, []queries.GetClosingPeriodsQueryResponse])
	s.getOrderingStatus = new(MockPublicHandler[queries.GetProductOrderingStatusQuery, queries.GetProductOrderingStatusQueryResponse])
	s.getActiveProducts = new(MockAdminHandler[queries.GetActiveProductsQuery, []queries.GetActiveProductsQueryResponse])
	s.getOrders = new(MockAdminHandler[queries.GetOrdersQuery, []queries.GetOrdersQueryResponse])

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.registry = prometheus.NewRegistry()
	metrics := NewMetrics(s.registry)

	server := NewServer(Handlers{
		CreateClosingPeriod:        s.createClosingPeriod,
		DeleteClosingPeriod:        s.deleteClosingPeriod,
		PurgeExpiredClosingPeriods: s.purgeClosingPeriods,
		CreateProduct:              s.createProduct,
		UpdateProduct:              s.updateProduct,
		ArchiveProduct:             s.archiveProduct,
		EnableProductOrdering:      s.enableOrdering,
		DisableProductOrdering:     s.disableOrdering,
		CreateOrder:                s.createOrder,
		UpdateOrder:                s.updateOrder,
		GetClosingPeriods:          s.getClosingPeriods,
		GetProductOrderingStatus:   s.getOrderingStatus,
		GetActiveProducts:          s.getActiveProducts,
		GetOrders:                  s.getOrders,
	}, metrics, logger)

	s.router, err = NewRouter(RouterConfig{
		Credentials: Credentials{Username: adminName, PasswordHash: hash},
		Gatherer:    s.registry,
	}, server, metrics, logger)
	s.Require().NoError(err)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) do(method, target, body string, asAdmin bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if asAdmin {
		req.SetBasicAuth(adminName, adminPassword)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decodeError(rec *httptest.ResponseRecorder) servers.Error {
	var body servers.Error
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func isAdmin(caller *user.User) bool { return caller.IsAdmin() }

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", false)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *RouterTestSuite) TestGetClosingPeriods_IsPublic() {
	s.getClosingPeriods.On("Handle", mock.Anything, queries.NewGetClosingPeriodsQuery()).
		Return([]queries.GetClosingPeriodsQueryResponse{{
			ID:        1,
			StartDate: time.Date(2099, time.January, 5, 12, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2099, time.January, 10, 12, 0, 0, 0, time.UTC),
		}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/closing-periods", "", false)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"id":1,"startDate":"2099-01-05","endDate":"2099-01-10"}]`, rec.Body.String())
}

func (s *RouterTestSuite) TestCreateClosingPeriod_Created() {
	s.createClosingPeriod.On("Handle", mock.Anything, mock.MatchedBy(isAdmin), mock.MatchedBy(
		func(cmd commands.CreateClosingPeriodCommand) bool {
			return kernel.FormatCalendarDate(cmd.StartDate()) == "2099-01-05" &&
				kernel.FormatCalendarDate(cmd.EndDate()) == "2099-01-10"
		})).Return(kernel.ClosingPeriodID(3), nil).Once()

	rec := s.do(http.MethodPost, "/api/closing-periods", `{"startDate":"2099-01-05","endDate":"2099-01-10T08:00:00Z"}`, true)

	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Equal("/api/closing-periods/3", rec.Header().Get(echo.HeaderLocation))
	s.JSONEq(`{"id":3}`, rec.Body.String())
	s.createClosingPeriod.AssertExpectations(s.T())
}

func (s *RouterTestSuite) TestCreateClosingPeriod_AnonymousIsForbidden() {
	s.createClosingPeriod.On("Handle", mock.Anything, (*user.User)(nil), mock.Anything).
		Return(kernel.ClosingPeriodID(0), user.NewNotAdminError()).Once()

	rec := s.do(http.MethodPost, "/api/closing-periods", `{"startDate":"2099-01-05","endDate":"2099-01-10"}`, false)

	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("User has to be ADMIN to execute this action", s.decodeError(rec).Message)
}

func (s *RouterTestSuite) TestCreateClosingPeriod_WrongPassword() {
	req := httptest.NewRequest(http.MethodPost, "/api/closing-periods",
		strings.NewReader(`{"startDate":"2099-01-05","endDate":"2099-01-10"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.SetBasicAuth(adminName, "baguette")
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.NotEmpty(rec.Header().Get(echo.HeaderWWWAuthenticate))
	s.createClosingPeriod.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestCreateClosingPeriod_MissingDateIsRejectedBeforeHandler() {
	rec := s.do(http.MethodPost, "/api/closing-periods", `{"startDate":"2099-01-05"}`, true)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decodeError(rec).Message, "request body is invalid")
	s.createClosingPeriod.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestDeleteClosingPeriod() {
	s.Run("no content", func() {
		cmd, err := commands.NewDeleteClosingPeriodCommand(7)
		s.Require().NoError(err)
		s.deleteClosingPeriod.On("Handle", mock.Anything, mock.MatchedBy(isAdmin), cmd).Return(nil).Once()

		rec := s.do(http.MethodDelete, "/api/closing-periods/7", "", true)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("not found", func() {
		cmd, err := commands.NewDeleteClosingPeriodCommand(8)
		s.Require().NoError(err)
		s.deleteClosingPeriod.On("Handle", mock.Anything, mock.Anything, cmd).
			Return(errs.NewObjectNotFoundError("closingPeriodId", kernel.ClosingPeriodID(8))).Once()

		rec := s.do(http.MethodDelete, "/api/closing-periods/8", "", true)

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed id", func() {
		rec := s.do(http.MethodDelete, "/api/closing-periods/abc", "", true)

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *RouterTestSuite) TestPurgeExpiredClosingPeriods() {
	s.purgeClosingPeriods.On("Handle", mock.Anything, mock.MatchedBy(isAdmin), mock.Anything).Return(2, nil).Once()

	rec := s.do(http.MethodPost, "/api/closing-periods/purge", "", true)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"purged":2}`, rec.Body.String())
}

func (s *RouterTestSuite) TestGetActiveProducts_RendersPriceAsString() {
	s.getActiveProducts.On("Handle", mock.Anything, mock.MatchedBy(isAdmin), mock.Anything).
		Return([]queries.GetActiveProductsQueryResponse{{
			ID:    42,
			Name:  "Croissant",
			Price: decimal.RequireFromString("2.1"),
		}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/products", "", true)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"id":42,"name":"Croissant","description":"","price":"2.10","allergens":[]}]`, rec.Body.String())
}

func (s *RouterTestSuite) TestCreateProduct() {
	s.createProduct.On("Handle", mock.Anything, mock.MatchedBy(isAdmin), mock.MatchedBy(
		func(cmd commands.CreateProductCommand) bool {
			return cmd.Name() == "Croissant" && cmd.Price().Equal(decimal.RequireFromString("2.10"))
		})).Return(kernel.ProductID(42), nil).Once()

	rec := s.do(http.MethodPost, "/api/products", `{"name":"Croissant","price":"2.10","allergens":["gluten"]}`, true)

	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Equal("/api/products/42", rec.Header().Get(echo.HeaderLocation))
}

func (s *RouterTestSuite) TestArchiveProduct_NotFound() {
	s.archiveProduct.On("Handle", mock.Anything, mock.Anything, mock.Anything).
		Return(errs.NewObjectNotFoundError("productId", kernel.ProductID(9))).Once()

	rec := s.do(http.MethodPost, "/api/products/9/archive", "", true)

	s.Equal(http.StatusNotFound, rec.Code)
}

const lavalOrder = `{
	"clientName": "Jane",
	"clientPhoneNumber": "514-555-0100",
	"clientEmailAddress": "jane@example.com",
	"products": [{"productId": 42, "quantity": 1}],
	"type": "DELIVERY",
	"deliveryDate": "2099-01-07",
	"deliveryAddress": "Laval"
}`

func (s *RouterTestSuite) TestCreateOrder_Accepted() {
	s.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		details := cmd.Details()
		return cmd.Client().Name == "Jane" && details.Type == order.Delivery &&
			kernel.FormatCalendarDate(details.DeliveryDate) == "2099-01-07" && details.DeliveryAddress == "Laval"
	})).Return(kernel.OrderID(5), nil).Once()

	rec := s.do(http.MethodPost, "/api/orders", lavalOrder, false)

	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Equal("/api/orders/5", rec.Header().Get(echo.HeaderLocation))
	s.Equal(1.0, s.counterValue("bakery_order_validations_total", "create", "accepted"))
}

func (s *RouterTestSuite) TestCreateOrder_TimestampKeepsTheWrittenDay() {
	s.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return kernel.FormatCalendarDate(cmd.Details().DeliveryDate) == "2099-01-10"
	})).Return(kernel.OrderID(6), nil).Once()

	body := strings.Replace(lavalOrder, `"2099-01-07"`, `"2099-01-10T20:00:00-05:00"`, 1)
	rec := s.do(http.MethodPost, "/api/orders", body, false)

	s.Equal(http.StatusCreated, rec.Code)
	s.createOrder.AssertExpectations(s.T())
}

func (s *RouterTestSuite) TestCreateOrder_RejectedByValidation() {
	s.createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.OrderID(0), &order.InvalidOrderError{Message: "delivery date is inside a closing period"}).Once()

	rec := s.do(http.MethodPost, "/api/orders", lavalOrder, false)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("delivery date is inside a closing period", s.decodeError(rec).Message)
	s.Equal(1.0, s.counterValue("bakery_order_validations_total", "create", "rejected"))
}

func (s *RouterTestSuite) TestCreateOrder_OrderingDisabled() {
	s.createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.OrderID(0), commands.ErrProductOrderingDisabled).Once()

	rec := s.do(http.MethodPost, "/api/orders", lavalOrder, false)

	s.Equal(http.StatusConflict, rec.Code)
}

func (s *RouterTestSuite) TestCreateOrder_UnknownTypeIsRejectedBeforeHandler() {
	body := strings.Replace(lavalOrder, `"DELIVERY"`, `"SHIPPING"`, 1)

	rec := s.do(http.MethodPost, "/api/orders", body, false)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.createOrder.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestCreateOrder_UnparsableDate() {
	body := strings.Replace(lavalOrder, `"2099-01-07"`, `"07/01/2099"`, 1)

	rec := s.do(http.MethodPost, "/api/orders", body, false)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.createOrder.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *RouterTestSuite) TestUpdateOrder() {
	s.updateOrder.On("Handle", mock.Anything, mock.MatchedBy(isAdmin), mock.MatchedBy(
		func(cmd commands.UpdateOrderCommand) bool {
			return cmd.OrderID() == 5 && cmd.Details().Type == order.Pickup
		})).Return(nil).Once()

	body := `{"products":[{"productId":42,"quantity":2}],"type":"PICKUP","pickUpDate":"2099-01-15"}`
	rec := s.do(http.MethodPut, "/api/orders/5", body, true)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(1.0, s.counterValue("bakery_order_validations_total", "update", "accepted"))
}

func (s *RouterTestSuite) TestGetOrders() {
	s.getOrders.On("Handle", mock.Anything, mock.MatchedBy(isAdmin), mock.Anything).
		Return([]queries.GetOrdersQueryResponse{{
			ID:                 5,
			ClientName:         "Jane",
			ClientPhoneNumber:  "514-555-0100",
			ClientEmailAddress: "jane@example.com",
			Products:           []order.ProductLine{{ProductID: 42, Quantity: 1}},
			Type:               order.Pickup,
			PickUpDate:         time.Date(2099, time.January, 15, 12, 0, 0, 0, time.UTC),
			CreatedAt:          time.Date(2098, time.December, 1, 8, 30, 0, 0, time.UTC),
		}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/orders", "", true)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{
		"id": 5,
		"clientName": "Jane",
		"clientPhoneNumber": "514-555-0100",
		"clientEmailAddress": "jane@example.com",
		"products": [{"productId": 42, "quantity": 1}],
		"type": "PICKUP",
		"pickUpDate": "2099-01-15",
		"createdAt": "2098-12-01T08:30:00Z"
	}]`, rec.Body.String())
}

func (s *RouterTestSuite) TestProductOrderingToggle() {
	s.getOrderingStatus.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetProductOrderingStatusQueryResponse{Enabled: false}, nil).Once()
	s.enableOrdering.On("Handle", mock.Anything, mock.MatchedBy(isAdmin), mock.Anything).Return(nil).Once()
	s.disableOrdering.On("Handle", mock.Anything, (*user.User)(nil), mock.Anything).
		Return(user.NewNotAdminError()).Once()

	status := s.do(http.MethodGet, "/api/features/product-ordering", "", false)
	s.Require().Equal(http.StatusOK, status.Code)
	s.JSONEq(`{"enabled":false}`, status.Body.String())

	s.Equal(http.StatusNoContent, s.do(http.MethodPost, "/api/features/product-ordering/enable", "", true).Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodPost, "/api/features/product-ordering/disable", "", false).Code)
}

func (s *RouterTestSuite) TestUnexpectedErrorIsHidden() {
	s.getClosingPeriods.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused")).Once()

	rec := s.do(http.MethodGet, "/api/closing-periods", "", false)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Internal Server Error", s.decodeError(rec).Message)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/loaves", "", false)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestMetricsEndpoint() {
	s.do(http.MethodGet, "/health", "", false)

	rec := s.do(http.MethodGet, "/metrics", "", false)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `bakery_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func (s *RouterTestSuite) counterValue(name string, labels ...string) float64 {
	families, err := s.registry.Gather()
	s.Require().NoError(err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			values := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				values = append(values, label.GetValue())
			}
			if assert.ObjectsAreEqual(labels, values) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestStatusOf(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"invalid order":     {&order.InvalidOrderError{Message: "x"}, http.StatusBadRequest},
		"required value":    {errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		"not admin":         {user.NewNotAdminError(), http.StatusForbidden},
		"not found":         {errs.NewObjectNotFoundError("orderId", 1), http.StatusNotFound},
		"ordering disabled": {commands.ErrProductOrderingDisabled, http.StatusConflict},
		"anything else":     {errors.New("boom"), http.StatusInternalServerError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}
