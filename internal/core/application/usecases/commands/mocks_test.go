package commands_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/closingperiod"
	"bakery/internal/core/domain/model/feature"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/domain/model/user"
	"bakery/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	admin   = user.NewAdmin("boulanger")
	visitor = &user.User{Username: "client"}
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Save(ctx context.Context, p *product.Product) (kernel.ProductID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(kernel.ProductID), args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ProductID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetAllByStatus(ctx context.Context, status product.Status) ([]*product.Product, error) {
	args := m.Called(ctx, status)
	products, _ := args.Get(0).([]*product.Product)
	return products, args.Error(1)
}

type MockClosingPeriodRepository struct{ mock.Mock }

func (m *MockClosingPeriodRepository) Save(
	ctx context.Context,
	cp *closingperiod.ClosingPeriod,
) (kernel.ClosingPeriodID, error) {
	args := m.Called(ctx, cp)
	return args.Get(0).(kernel.ClosingPeriodID), args.Error(1)
}

func (m *MockClosingPeriodRepository) Get(
	ctx context.Context,
	id kernel.ClosingPeriodID,
) (*closingperiod.ClosingPeriod, error) {
	args := m.Called(ctx, id)
	cp, _ := args.Get(0).(*closingperiod.ClosingPeriod)
	return cp, args.Error(1)
}

func (m *MockClosingPeriodRepository) GetAll(ctx context.Context) ([]*closingperiod.ClosingPeriod, error) {
	args := m.Called(ctx)
	periods, _ := args.Get(0).([]*closingperiod.ClosingPeriod)
	return periods, args.Error(1)
}

func (m *MockClosingPeriodRepository) Delete(ctx context.Context, id kernel.ClosingPeriodID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) (kernel.OrderID, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(kernel.OrderID), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockFeatureRepository struct{ mock.Mock }

func (m *MockFeatureRepository) GetByName(ctx context.Context, name string) (*feature.Feature, error) {
	args := m.Called(ctx, name)
	f, _ := args.Get(0).(*feature.Feature)
	return f, args.Error(1)
}

func (m *MockFeatureRepository) Save(ctx context.Context, f *feature.Feature) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

// MockUoW satisfies every narrowed unit of work of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) ClosingPeriodRepository() ports.ClosingPeriodRepository {
	args := m.Called()
	return args.Get(0).(ports.ClosingPeriodRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) FeatureRepository() ports.FeatureRepository {
	args := m.Called()
	return args.Get(0).(ports.FeatureRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockClosingPeriodUoWFactory struct{ mock.Mock }

func (m *MockClosingPeriodUoWFactory) Create() commands.ClosingPeriodUoW {
	args := m.Called()
	return args.Get(0).(commands.ClosingPeriodUoW)
}

type MockFeatureUoWFactory struct{ mock.Mock }

func (m *MockFeatureUoWFactory) Create() commands.FeatureUoW {
	args := m.Called()
	return args.Get(0).(commands.FeatureUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func fixedClock(t *testing.T) kernel.FixedClock {
	t.Helper()
	eastern, err := time.LoadLocation("Canada/Eastern")
	require.NoError(t, err)
	return kernel.FixedClock{At: time.Date(2099, time.January, 3, 9, 0, 0, 0, eastern)}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func mustProduct(t *testing.T, id kernel.ProductID, status product.Status) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(id, "Croissant", "", decimal.NewFromInt(2), nil, status)
	require.NoError(t, err)
	return p
}

func mustClosingPeriod(t *testing.T, id kernel.ClosingPeriodID, start, end time.Time) *closingperiod.ClosingPeriod {
	t.Helper()
	cp, err := closingperiod.RestoreClosingPeriod(id, start, end)
	require.NoError(t, err)
	return cp
}

func laval(date time.Time) order.Details {
	return order.Details{
		Products:        []order.ProductLine{{ProductID: 42, Quantity: 1}},
		Type:            order.Delivery,
		DeliveryDate:    date,
		DeliveryAddress: "Laval",
	}
}

func jane() order.Client {
	return order.Client{Name: "Jane", PhoneNumber: "514-555-0100", EmailAddress: "jane@example.com"}
}

type orderFixture struct {
	products       *MockProductRepository
	closingPeriods *MockClosingPeriodRepository
	orders         *MockOrderRepository
	features       *MockFeatureRepository
	uow            *MockUoW
	factory        *MockOrderUoWFactory

	activeProducts []*product.Product
	periods        []*closingperiod.ClosingPeriod
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		products:       new(MockProductRepository),
		closingPeriods: new(MockClosingPeriodRepository),
		orders:         new(MockOrderRepository),
		features:       new(MockFeatureRepository),
		uow:            new(MockUoW),
		factory:        new(MockOrderUoWFactory),
		activeProducts: []*product.Product{mustProduct(t, 42, product.Active), mustProduct(t, 1337, product.Active)},
		periods: []*closingperiod.ClosingPeriod{
			mustClosingPeriod(t, 1, day(2099, time.January, 5), day(2099, time.January, 10)),
		},
	}

	f.factory.On("Create").Return(f.uow).Maybe()
	f.uow.On("ProductRepository").Return(f.products).Maybe()
	f.uow.On("ClosingPeriodRepository").Return(f.closingPeriods).Maybe()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("FeatureRepository").Return(f.features).Maybe()
	return f
}

func (f *orderFixture) expectSnapshot(t *testing.T) {
	ctx := t.Context()
	f.products.On("GetAllByStatus", ctx, product.Active).Return(f.activeProducts, nil).Once()
	f.closingPeriods.On("GetAll", ctx).Return(f.periods, nil).Once()
}
