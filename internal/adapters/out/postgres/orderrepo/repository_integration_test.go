package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"deliverylink/internal/adapters/out/postgres/orderrepo"
	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/pkg/errs"
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(priority order.Priority, placedAt time.Time) *order.Order {
	pickupContact, err := order.NewContact("Wanjiku Stores", "254722000001")
	suite.Require().NoError(err)
	pickup, err := order.NewWaypoint(pickupContact, "Biashara Street 12, Nairobi", nil, "ask for the manager")
	suite.Require().NoError(err)

	dropoffContact, err := order.NewContact("Otieno Ouma", "254733000002")
	suite.Require().NoError(err)
	coords, err := kernel.NewCoordinates(-1.2921, 36.8219)
	suite.Require().NoError(err)
	dropoff, err := order.NewWaypoint(dropoffContact, "Kenyatta Avenue 45, Nairobi", &coords, "")
	suite.Require().NoError(err)

	route, err := order.NewRoute(pickup, dropoff)
	suite.Require().NoError(err)

	pkg, err := order.NewPackageInfo("spare parts", order.SizeMedium, 2, 3.5, kernel.NewMoneyFromCents(150000), false)
	suite.Require().NoError(err)

	number, err := kernel.GenerateOrderNumber(placedAt.Year())
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		number,
		kernel.NewUUID(),
		kernel.NewUUID(),
		route,
		pkg,
		priority,
		kernel.NewMoneyFromCents(30000),
		kernel.NewMoneyFromCents(4500),
		kernel.NewMoneyFromCents(34500),
		"KES",
		10,
		25,
		placedAt,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AttachesID() {
	ctx := context.Background()
	o := suite.newOrder(order.Normal, time.Now().UTC())

	err := suite.repo.Add(ctx, o)

	suite.Require().NoError(err)
	suite.NotZero(o.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	placedAt := time.Now().UTC().Truncate(time.Microsecond)
	o := suite.newOrder(order.Urgent, placedAt)
	suite.Require().NoError(suite.repo.Add(ctx, o))

	restored, err := suite.repo.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Equal(o.Number().String(), restored.Number().String())
	suite.Equal(order.Confirmed, restored.Status())
	suite.Equal(order.Urgent, restored.Priority())
	suite.True(o.Customer().IsEqual(restored.Customer()))
	suite.Nil(restored.Driver())
	suite.Equal("300.00", restored.DeliveryFee().String())
	suite.Equal("45.00", restored.PlatformFee().String())
	suite.Equal("345.00", restored.TotalCost().String())
	suite.Equal("Kenyatta Avenue 45, Nairobi", restored.Route().Dropoff().Address())
	suite.Require().NotNil(restored.Route().Dropoff().Coordinates())
	suite.InDelta(-1.2921, restored.Route().Dropoff().Coordinates().Latitude(), 1e-9)
	suite.Require().NotNil(restored.Milestones().ConfirmedAt)
	suite.Nil(restored.Milestones().DeliveredAt)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), 999)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransition() {
	ctx := context.Background()
	o := suite.newOrder(order.Normal, time.Now().UTC())
	suite.Require().NoError(suite.repo.Add(ctx, o))

	driverID := kernel.NewUUID()
	suite.Require().NoError(o.Accept(driverID, time.Now().UTC()))
	suite.Require().NoError(suite.repo.Update(ctx, o))

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, restored.Status())
	suite.Require().NotNil(restored.Driver())
	suite.True(driverID.IsEqual(*restored.Driver()))
	suite.NotNil(restored.Milestones().AssignedAt)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveredProofRoundTrip() {
	ctx := context.Background()
	now := time.Now().UTC()
	o := suite.newOrder(order.Normal, now)
	suite.Require().NoError(suite.repo.Add(ctx, o))

	driverID := kernel.NewUUID()
	suite.Require().NoError(o.Accept(driverID, now))
	suite.Require().NoError(o.MarkPickedUp(driverID, now))
	suite.Require().NoError(o.MarkInTransit(driverID, now))
	suite.Require().NoError(o.Deliver(driverID, order.DeliveryProof{
		ProofType:     order.ProofTypeOTP,
		ProofData:     "482913",
		RecipientName: "Otieno Ouma",
		Notes:         "left at reception",
	}, now))
	suite.Require().NoError(suite.repo.Update(ctx, o))

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, restored.Status())
	suite.Require().NotNil(restored.Proof())
	suite.Equal(order.ProofTypeOTP, restored.Proof().ProofType)
	suite.Equal("left at reception", restored.Proof().Notes)
	suite.NotNil(restored.Milestones().DeliveredAt)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAvailable_UrgentFirstThenOldest() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	older := suite.newOrder(order.Normal, base)
	newer := suite.newOrder(order.Normal, base.Add(10*time.Minute))
	urgent := suite.newOrder(order.Urgent, base.Add(20*time.Minute))
	for _, o := range []*order.Order{older, newer, urgent} {
		suite.Require().NoError(suite.repo.Add(ctx, o))
	}

	available, err := suite.repo.GetAvailable(ctx, 10, 0)

	suite.Require().NoError(err)
	suite.Require().Len(available, 3)
	suite.Equal(urgent.ID(), available[0].ID())
	suite.Equal(older.ID(), available[1].ID())
	suite.Equal(newer.ID(), available[2].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAvailable_ExcludesAssigned() {
	ctx := context.Background()
	now := time.Now().UTC()

	free := suite.newOrder(order.Normal, now)
	taken := suite.newOrder(order.Normal, now)
	suite.Require().NoError(suite.repo.Add(ctx, free))
	suite.Require().NoError(suite.repo.Add(ctx, taken))
	suite.Require().NoError(taken.Accept(kernel.NewUUID(), now))
	suite.Require().NoError(suite.repo.Update(ctx, taken))

	available, err := suite.repo.GetAvailable(ctx, 10, 0)

	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.Equal(free.ID(), available[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveByDriver() {
	ctx := context.Background()
	now := time.Now().UTC()
	driverID := kernel.NewUUID()

	active := suite.newOrder(order.Normal, now)
	suite.Require().NoError(suite.repo.Add(ctx, active))
	suite.Require().NoError(active.Accept(driverID, now))
	suite.Require().NoError(suite.repo.Update(ctx, active))

	idle := suite.newOrder(order.Normal, now)
	suite.Require().NoError(suite.repo.Add(ctx, idle))

	orders, err := suite.repo.GetActiveByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(active.ID(), orders[0].ID())

	orders, err = suite.repo.GetActiveByDriver(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber() {
	ctx := context.Background()
	o := suite.newOrder(order.Normal, time.Now().UTC())
	suite.Require().NoError(suite.repo.Add(ctx, o))

	restored, err := suite.repo.GetByNumber(ctx, o.Number())

	suite.Require().NoError(err)
	suite.Equal(o.ID(), restored.ID())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
