package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deliverylink/internal/core/application/usecases/commands"
	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/domain/model/stats"
	"deliverylink/internal/core/ports"
	"deliverylink/internal/pkg/errs"
)

func notFoundErr() error {
	return errs.NewObjectNotFoundError("row", 0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAlive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAvailable(ctx context.Context, limit, offset int) ([]*order.Order, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) AddStatusHistory(ctx context.Context, entry order.StatusHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTrackingRepository) AddEvent(ctx context.Context, event order.TrackingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackingRepository) GetStatusHistory(ctx context.Context, orderID int64) ([]order.StatusHistoryEntry, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]order.StatusHistoryEntry), args.Error(1)
}

func (m *MockTrackingRepository) GetEvents(ctx context.Context, orderID int64) ([]order.TrackingEvent, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]order.TrackingEvent), args.Error(1)
}

type MockDeliveryCodeRepository struct{ mock.Mock }

func (m *MockDeliveryCodeRepository) Add(ctx context.Context, code order.DeliveryCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockDeliveryCodeRepository) GetLatestMatch(ctx context.Context, orderID int64, code string) (order.DeliveryCode, error) {
	args := m.Called(ctx, orderID, code)
	return args.Get(0).(order.DeliveryCode), args.Error(1)
}

func (m *MockDeliveryCodeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDeliveryCodeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockStatsRepository struct{ mock.Mock }

func (m *MockStatsRepository) GetDailyForUpdate(ctx context.Context, date time.Time) (*stats.DailyStatistics, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.DailyStatistics), args.Error(1)
}

func (m *MockStatsRepository) SaveDaily(ctx context.Context, row *stats.DailyStatistics) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockStatsRepository) GetBusinessForUpdate(ctx context.Context, business kernel.UUID, date time.Time) (*stats.BusinessStatistics, error) {
	args := m.Called(ctx, business, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.BusinessStatistics), args.Error(1)
}

func (m *MockStatsRepository) SaveBusiness(ctx context.Context, row *stats.BusinessStatistics) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockStatsRepository) SaveSnapshot(ctx context.Context, snapshot *stats.DashboardSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockStatsRepository) GetSnapshot(ctx context.Context) (*stats.DashboardSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.DashboardSnapshot), args.Error(1)
}

func (m *MockStatsRepository) GetDailyRange(ctx context.Context, from, to time.Time) ([]*stats.DailyStatistics, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]*stats.DailyStatistics), args.Error(1)
}

func (m *MockStatsRepository) GetBusinessRange(ctx context.Context, business kernel.UUID, from, to time.Time) ([]*stats.BusinessStatistics, error) {
	args := m.Called(ctx, business, from, to)
	return args.Get(0).([]*stats.BusinessStatistics), args.Error(1)
}

type MockLifecycleUoW struct{ mock.Mock }

func (m *MockLifecycleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockLifecycleUoW) TrackingRepository() ports.TrackingRepository {
	return m.Called().Get(0).(ports.TrackingRepository)
}

func (m *MockLifecycleUoW) DeliveryCodeRepository() ports.DeliveryCodeRepository {
	return m.Called().Get(0).(ports.DeliveryCodeRepository)
}

func (m *MockLifecycleUoW) StatsRepository() ports.StatsRepository {
	return m.Called().Get(0).(ports.StatsRepository)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return m.Called().Get(0).(commands.LifecycleUoW)
}

type MockTrackingUoW struct{ mock.Mock }

func (m *MockTrackingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackingUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockTrackingUoW) TrackingRepository() ports.TrackingRepository {
	return m.Called().Get(0).(ports.TrackingRepository)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	return m.Called().Get(0).(commands.TrackingUoW)
}

// RecordingNotifier captures dispatched notifications for assertions.
type RecordingNotifier struct {
	statusUpdates []ports.StatusNotification
	codes         []ports.CodeNotification
}

func (n *RecordingNotifier) NotifyStatusUpdate(_ context.Context, notification ports.StatusNotification) {
	n.statusUpdates = append(n.statusUpdates, notification)
}

func (n *RecordingNotifier) NotifyDeliveryCode(_ context.Context, notification ports.CodeNotification) {
	n.codes = append(n.codes, notification)
}

// StubGeoService returns a fixed estimate.
type StubGeoService struct {
	estimate ports.RouteEstimate
	err      error
}

func (s *StubGeoService) EstimateRoute(_ context.Context, _, _ order.Waypoint) (ports.RouteEstimate, error) {
	return s.estimate, s.err
}

func testRoute(t *testing.T) order.Route {
	t.Helper()

	sender, err := order.NewContact("Wanjiku Stores", "0712345678")
	require.NoError(t, err)
	recipient, err := order.NewContact("John Otieno", "0798765432")
	require.NoError(t, err)
	pickup, err := order.NewWaypoint(sender, "Moi Avenue 12, Nairobi", nil, "")
	require.NoError(t, err)
	dropoff, err := order.NewWaypoint(recipient, "Ngong Road 301, Nairobi", nil, "")
	require.NoError(t, err)
	route, err := order.NewRoute(pickup, dropoff)
	require.NoError(t, err)
	return route
}

func testPackage(t *testing.T) order.PackageInfo {
	t.Helper()

	declared, err := kernel.MoneyFromString("500.00")
	require.NoError(t, err)
	pkg, err := order.NewPackageInfo("spare parts", order.SizeSmall, 1, 2, declared, false)
	require.NoError(t, err)
	return pkg
}

// confirmedOrder builds a persisted-looking confirmed order with the given id.
func confirmedOrder(t *testing.T, id int64) *order.Order {
	t.Helper()

	number, err := kernel.GenerateOrderNumber(2026)
	require.NoError(t, err)
	customer := kernel.NewUUID()

	deliveryFee, _ := kernel.MoneyFromString("300.00")
	platformFee, _ := kernel.MoneyFromString("45.00")
	totalCost, _ := kernel.MoneyFromString("345.00")

	o, err := order.NewOrder(
		number, customer, customer,
		testRoute(t), testPackage(t), order.Normal,
		deliveryFee, platformFee, totalCost, "KES",
		10.0, 25, time.Now().UTC(),
	)
	require.NoError(t, err)
	o.AttachID(id)
	return o
}

// expectStatistics wires the statistics accumulation and snapshot recompute
// expectations every lifecycle transition performs.
func expectStatistics(statsRepo *MockStatsRepository, orderRepo *MockOrderRepository, alive []*order.Order) {
	statsRepo.On("GetDailyForUpdate", mock.Anything, mock.Anything).Return(nil, notFoundErr())
	statsRepo.On("SaveDaily", mock.Anything, mock.Anything).Return(nil)
	statsRepo.On("GetBusinessForUpdate", mock.Anything, mock.Anything, mock.Anything).Return(nil, notFoundErr())
	statsRepo.On("SaveBusiness", mock.Anything, mock.Anything).Return(nil)
	orderRepo.On("GetAllAlive", mock.Anything).Return(alive, nil)
	statsRepo.On("SaveSnapshot", mock.Anything, mock.Anything).Return(nil)
}
