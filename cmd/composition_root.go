package cmd

import (
	"fmt"
	"log/slog"

	adapterhttp "deliverylink/internal/adapters/in/http"
	"deliverylink/internal/adapters/out/geo"
	"deliverylink/internal/adapters/out/notification"
	"deliverylink/internal/adapters/out/postgres"
	"deliverylink/internal/adapters/out/postgres/otprepo"
	"deliverylink/internal/adapters/out/postgres/statsrepo"
	adapterredis "deliverylink/internal/adapters/out/redis"
	"deliverylink/internal/core/application/usecases/commands"
	"deliverylink/internal/core/application/usecases/queries"
	"deliverylink/internal/core/ports"
	"deliverylink/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Handlers are created on
// demand; shared collaborators (DB, cache, notifier, geo) are built once.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	geoService ports.GeoService
	notifier   ports.Notifier
	cache      ports.SnapshotCache
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from configuration.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	geoService, err := geo.NewGoogleMapsService(cfg.GoogleMapsAPIKey)
	if err != nil {
		return nil, fmt.Errorf("create geo service: %w", err)
	}

	notifier := notification.NewWhatsAppNotifier(notification.WhatsAppConfig{
		APIVersion:      cfg.WhatsAppAPIVersion,
		PhoneID:         cfg.WhatsAppPhoneID,
		Token:           cfg.WhatsAppToken,
		TrackingBaseURL: cfg.TrackingBaseURL,
	}, logger)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		geoService: geoService,
		notifier:   notifier,
		cache:      adapterredis.NewSnapshotCache(rdb),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) trackingUoWFactory() commands.TrackingUoWFactory {
	return FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.lifecycleUoWFactory(), c.geoService, c.notifier)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.lifecycleUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDeclineOrderCommandHandler() commands.DeclineOrderCommandHandler {
	return commands.NewDeclineOrderCommandHandler(c.trackingUoWFactory())
}

func (c *CompositionRoot) CreateMarkPickedUpCommandHandler() commands.MarkPickedUpCommandHandler {
	return commands.NewMarkPickedUpCommandHandler(c.lifecycleUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateMarkInTransitCommandHandler() commands.MarkInTransitCommandHandler {
	return commands.NewMarkInTransitCommandHandler(c.lifecycleUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSendDeliveryCodeCommandHandler() commands.SendDeliveryCodeCommandHandler {
	return commands.NewSendDeliveryCodeCommandHandler(c.lifecycleUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.lifecycleUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.lifecycleUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateReportIssueCommandHandler() commands.ReportIssueCommandHandler {
	return commands.NewReportIssueCommandHandler(c.trackingUoWFactory())
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	return commands.NewUpdateLocationCommandHandler(c.trackingUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverOrdersQueryHandler() queries.GetDriverOrdersQueryHandler {
	return queries.NewGetDriverOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(statsrepo.NewGormStatsRepository(c.gormDB), c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() (*queries.GetStatisticsQueryHandler, error) {
	return queries.NewGetStatisticsQueryHandler(statsrepo.NewGormStatsRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetDeliveryHistoryQueryHandler() queries.GetDeliveryHistoryQueryHandler {
	return queries.NewGetDeliveryHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEarningsSummaryQueryHandler() queries.GetEarningsSummaryQueryHandler {
	return queries.NewGetEarningsSummaryQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server over all handlers.
func (c *CompositionRoot) CreateServer() (*adapterhttp.Server, error) {
	statisticsHandler, err := c.CreateGetStatisticsQueryHandler()
	if err != nil {
		return nil, err
	}

	return adapterhttp.NewServer(adapterhttp.ServerDeps{
		PlaceOrder:       c.CreatePlaceOrderCommandHandler(),
		AcceptOrder:      c.CreateAcceptOrderCommandHandler(),
		DeclineOrder:     c.CreateDeclineOrderCommandHandler(),
		MarkPickedUp:     c.CreateMarkPickedUpCommandHandler(),
		MarkInTransit:    c.CreateMarkInTransitCommandHandler(),
		SendDeliveryCode: c.CreateSendDeliveryCodeCommandHandler(),
		MarkDelivered:    c.CreateMarkDeliveredCommandHandler(),
		CancelOrder:      c.CreateCancelOrderCommandHandler(),
		ReportIssue:      c.CreateReportIssueCommandHandler(),
		UpdateLocation:   c.CreateUpdateLocationCommandHandler(),

		OrderDetails:    c.CreateGetOrderDetailsQueryHandler(),
		AvailableOrders: c.CreateGetAvailableOrdersQueryHandler(),
		DriverOrders:    c.CreateGetDriverOrdersQueryHandler(),
		CustomerOrders:  c.CreateGetCustomerOrdersQueryHandler(),
		Dashboard:       c.CreateGetDashboardQueryHandler(),
		Statistics:      statisticsHandler,
		DeliveryHistory: c.CreateGetDeliveryHistoryQueryHandler(),
		Earnings:        c.CreateGetEarningsSummaryQueryHandler(),
	}), nil
}

// CreateJobManager assembles the background jobs. The code repository runs
// outside any unit of work since the sweep is a single statement.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(otprepo.NewGormDeliveryCodeRepository(c.gormDB), c.logger)
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}
