package http

import (
	"net/http"
	"strconv"
	"time"

	"deliverylink/internal/core/application/usecases/commands"
	"deliverylink/internal/core/application/usecases/queries"
	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server exposes the delivery lifecycle and read models over HTTP.
// It coordinates between JSON handlers and application use cases; every
// route except nothing is behind the actor auth middleware, and driver
// identity always comes from the token, never from the request body.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	acceptOrderHandler      commands.AcceptOrderCommandHandler
	declineOrderHandler     commands.DeclineOrderCommandHandler
	markPickedUpHandler     commands.MarkPickedUpCommandHandler
	markInTransitHandler    commands.MarkInTransitCommandHandler
	sendDeliveryCodeHandler commands.SendDeliveryCodeCommandHandler
	markDeliveredHandler    commands.MarkDeliveredCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	reportIssueHandler      commands.ReportIssueCommandHandler
	updateLocationHandler   commands.UpdateLocationCommandHandler

	// Query handlers
	orderDetailsHandler    queries.GetOrderDetailsQueryHandler
	availableOrdersHandler queries.GetAvailableOrdersQueryHandler
	driverOrdersHandler    queries.GetDriverOrdersQueryHandler
	customerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	dashboardHandler       queries.GetDashboardQueryHandler
	statisticsHandler      *queries.GetStatisticsQueryHandler
	deliveryHistoryHandler queries.GetDeliveryHistoryQueryHandler
	earningsHandler        queries.GetEarningsSummaryQueryHandler
}

// ServerDeps bundles the handlers the server routes to.
type ServerDeps struct {
	PlaceOrder       commands.PlaceOrderCommandHandler
	AcceptOrder      commands.AcceptOrderCommandHandler
	DeclineOrder     commands.DeclineOrderCommandHandler
	MarkPickedUp     commands.MarkPickedUpCommandHandler
	MarkInTransit    commands.MarkInTransitCommandHandler
	SendDeliveryCode commands.SendDeliveryCodeCommandHandler
	MarkDelivered    commands.MarkDeliveredCommandHandler
	CancelOrder      commands.CancelOrderCommandHandler
	ReportIssue      commands.ReportIssueCommandHandler
	UpdateLocation   commands.UpdateLocationCommandHandler

	OrderDetails    queries.GetOrderDetailsQueryHandler
	AvailableOrders queries.GetAvailableOrdersQueryHandler
	DriverOrders    queries.GetDriverOrdersQueryHandler
	CustomerOrders  queries.GetCustomerOrdersQueryHandler
	Dashboard       queries.GetDashboardQueryHandler
	Statistics      *queries.GetStatisticsQueryHandler
	DeliveryHistory queries.GetDeliveryHistoryQueryHandler
	Earnings        queries.GetEarningsSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		placeOrderHandler:       deps.PlaceOrder,
		acceptOrderHandler:      deps.AcceptOrder,
		declineOrderHandler:     deps.DeclineOrder,
		markPickedUpHandler:     deps.MarkPickedUp,
		markInTransitHandler:    deps.MarkInTransit,
		sendDeliveryCodeHandler: deps.SendDeliveryCode,
		markDeliveredHandler:    deps.MarkDelivered,
		cancelOrderHandler:      deps.CancelOrder,
		reportIssueHandler:      deps.ReportIssue,
		updateLocationHandler:   deps.UpdateLocation,
		orderDetailsHandler:     deps.OrderDetails,
		availableOrdersHandler:  deps.AvailableOrders,
		driverOrdersHandler:     deps.DriverOrders,
		customerOrdersHandler:   deps.CustomerOrders,
		dashboardHandler:        deps.Dashboard,
		statisticsHandler:       deps.Statistics,
		deliveryHistoryHandler:  deps.DeliveryHistory,
		earningsHandler:         deps.Earnings,
	}
}

// RegisterRoutes mounts the API under /api/v1 with auth and request logging.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))

	api := e.Group("/api/v1", ActorAuth(jwtSecret))

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.GET("/orders/mine", s.GetDriverOrders)
	api.GET("/orders/placed", s.GetCustomerOrders)
	api.GET("/orders/:id", s.GetOrderDetails)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/decline", s.DeclineOrder)
	api.POST("/orders/:id/pickup", s.MarkPickedUp)
	api.POST("/orders/:id/transit", s.MarkInTransit)
	api.POST("/orders/:id/send-code", s.SendDeliveryCode)
	api.POST("/orders/:id/deliver", s.MarkDelivered)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/issues", s.ReportIssue)
	api.POST("/orders/:id/location", s.UpdateLocation)

	api.GET("/dashboard", s.GetDashboard)
	api.GET("/statistics/today", s.GetTodayStatistics)
	api.GET("/statistics/daily", s.GetDailyStatistics)
	api.GET("/statistics/business/:businessID", s.GetBusinessStatistics)
	api.GET("/drivers/me/deliveries", s.GetDeliveryHistory)
	api.GET("/drivers/me/earnings", s.GetEarningsSummary)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	pickup, err := req.Pickup.toWaypoint()
	if err != nil {
		return writeError(c, err)
	}
	dropoff, err := req.Dropoff.toWaypoint()
	if err != nil {
		return writeError(c, err)
	}
	route, err := order.NewRoute(pickup, dropoff)
	if err != nil {
		return writeError(c, err)
	}
	pkg, err := req.Package.toPackageInfo()
	if err != nil {
		return writeError(c, err)
	}

	priority := order.Priority(req.Priority)
	if req.Priority == "" {
		priority = order.Normal
	}

	cmd, err := commands.NewPlaceOrderCommand(actor.ID, route, pkg, priority, req.Currency)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.placeOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, placeOrderResponse{
		OrderID:     result.OrderID,
		OrderNumber: result.OrderNumber.String(),
		DeliveryFee: result.Fees.DeliveryFee.String(),
		PlatformFee: result.Fees.PlatformFee.String(),
		TotalCost:   result.Fees.TotalCost.String(),
	})
}

// AcceptOrder handles POST /api/v1/orders/:id/accept. The accepting driver
// is the authenticated actor.
func (s *Server) AcceptOrder(c echo.Context) error {
	actor, orderID, ok := s.driverAndOrder(c)
	if !ok {
		return nil
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actor.ID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.acceptOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeclineOrder handles POST /api/v1/orders/:id/decline.
func (s *Server) DeclineOrder(c echo.Context) error {
	actor, orderID, ok := s.driverAndOrder(c)
	if !ok {
		return nil
	}

	var req reasonRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewDeclineOrderCommand(orderID, actor.ID, req.Reason)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.declineOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkPickedUp handles POST /api/v1/orders/:id/pickup.
func (s *Server) MarkPickedUp(c echo.Context) error {
	actor, orderID, ok := s.driverAndOrder(c)
	if !ok {
		return nil
	}

	cmd, err := commands.NewMarkPickedUpCommand(orderID, actor.ID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.markPickedUpHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkInTransit handles POST /api/v1/orders/:id/transit. A current position
// may accompany the transition.
func (s *Server) MarkInTransit(c echo.Context) error {
	actor, orderID, ok := s.driverAndOrder(c)
	if !ok {
		return nil
	}

	var req transitRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	var coords *kernel.Coordinates
	if req.Latitude != nil && req.Longitude != nil {
		parsed, err := kernel.NewCoordinates(*req.Latitude, *req.Longitude)
		if err != nil {
			return writeError(c, err)
		}
		coords = &parsed
	}

	cmd, err := commands.NewMarkInTransitCommand(orderID, actor.ID, coords)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.markInTransitHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SendDeliveryCode handles POST /api/v1/orders/:id/send-code.
func (s *Server) SendDeliveryCode(c echo.Context) error {
	actor, orderID, ok := s.driverAndOrder(c)
	if !ok {
		return nil
	}

	cmd, err := commands.NewSendDeliveryCodeCommand(orderID, actor.ID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.sendDeliveryCodeHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/orders/:id/deliver. The confirmation
// code must match the one sent to the recipient.
func (s *Server) MarkDelivered(c echo.Context) error {
	actor, orderID, ok := s.driverAndOrder(c)
	if !ok {
		return nil
	}

	var req deliverRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, actor.ID, req.Code, req.RecipientName, req.Notes)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.markDeliveredHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. Any authenticated
// actor may cancel; the state machine decides whether the order still can be.
func (s *Server) CancelOrder(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		return writeBadRequest(c, "invalid order id")
	}

	var req reasonRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor.ID, req.Reason)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ReportIssue handles POST /api/v1/orders/:id/issues.
func (s *Server) ReportIssue(c echo.Context) error {
	actor, orderID, ok := s.driverAndOrder(c)
	if !ok {
		return nil
	}

	var req issueRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	cmd, err := commands.NewReportIssueCommand(orderID, actor.ID, req.Description)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.reportIssueHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateLocation handles POST /api/v1/orders/:id/location.
func (s *Server) UpdateLocation(c echo.Context) error {
	actor, orderID, ok := s.driverAndOrder(c)
	if !ok {
		return nil
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return writeBadRequest(c, "invalid request body")
	}

	coords, err := kernel.NewCoordinates(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateLocationCommand(orderID, actor.ID, coords)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateLocationHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOrderDetails handles GET /api/v1/orders/:id.
func (s *Server) GetOrderDetails(c echo.Context) error {
	orderID, err := orderIDParam(c)
	if err != nil {
		return writeBadRequest(c, "invalid order id")
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return writeError(c, err)
	}

	details, err := s.orderDetailsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// GetAvailableOrders handles GET /api/v1/orders/available. The feed is
// empty while the calling driver holds an active delivery.
func (s *Server) GetAvailableOrders(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	limit := intQueryParam(c, "limit", 0)
	offset := intQueryParam(c, "offset", 0)

	query, err := queries.NewGetAvailableOrdersQuery(&actor.ID, limit, offset)
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.availableOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderSummaryResponses(orders))
}

// GetDriverOrders handles GET /api/v1/orders/mine.
func (s *Server) GetDriverOrders(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	query, err := queries.NewGetDriverOrdersQuery(actor.ID)
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.driverOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderSummaryResponses(orders))
}

// GetCustomerOrders handles GET /api/v1/orders/placed, the caller's own
// order list, newest first.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	limit := intQueryParam(c, "limit", 0)
	offset := intQueryParam(c, "offset", 0)

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID, limit, offset)
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.customerOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderSummaryResponses(orders))
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	dashboard, err := s.dashboardHandler.Handle(c.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toDashboardResponse(dashboard))
}

// GetTodayStatistics handles GET /api/v1/statistics/today.
func (s *Server) GetTodayStatistics(c echo.Context) error {
	query, err := queries.NewGetTodayStatisticsQuery(time.Now().UTC())
	if err != nil {
		return writeError(c, err)
	}

	row, err := s.statisticsHandler.HandleToday(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toStatisticsRowResponse(row))
}

// GetDailyStatistics handles GET /api/v1/statistics/daily?from=&to=.
func (s *Server) GetDailyStatistics(c echo.Context) error {
	from, to, err := dateRangeParams(c)
	if err != nil {
		return writeBadRequest(c, "from and to must be YYYY-MM-DD dates")
	}

	query, err := queries.NewGetDailyStatisticsQuery(from, to)
	if err != nil {
		return writeError(c, err)
	}

	rows, err := s.statisticsHandler.HandleDaily(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toStatisticsRowResponses(rows))
}

// GetBusinessStatistics handles GET /api/v1/statistics/business/:businessID?from=&to=.
func (s *Server) GetBusinessStatistics(c echo.Context) error {
	businessID, err := kernel.UUIDFromString(c.Param("businessID"))
	if err != nil {
		return writeBadRequest(c, "invalid business id")
	}

	from, to, err := dateRangeParams(c)
	if err != nil {
		return writeBadRequest(c, "from and to must be YYYY-MM-DD dates")
	}

	query, err := queries.NewGetBusinessStatisticsQuery(businessID, from, to)
	if err != nil {
		return writeError(c, err)
	}

	rows, err := s.statisticsHandler.HandleBusiness(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toStatisticsRowResponses(rows))
}

// GetDeliveryHistory handles GET /api/v1/drivers/me/deliveries.
func (s *Server) GetDeliveryHistory(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	limit := intQueryParam(c, "limit", 0)

	query, err := queries.NewGetDeliveryHistoryQuery(actor.ID, limit)
	if err != nil {
		return writeError(c, err)
	}

	history, err := s.deliveryHistoryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toDeliveryHistoryResponse(history))
}

// GetEarningsSummary handles GET /api/v1/drivers/me/earnings?period=.
func (s *Server) GetEarningsSummary(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	period := queries.EarningsPeriod(c.QueryParam("period"))

	query, err := queries.NewGetEarningsSummaryQuery(actor.ID, period, time.Now().UTC())
	if err != nil {
		return writeError(c, err)
	}

	summary, err := s.earningsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toEarningsSummaryResponse(summary))
}

// driverAndOrder extracts the authenticated actor and the :id path param.
// When either is missing the response has already been written and ok is
// false.
func (s *Server) driverAndOrder(c echo.Context) (Actor, int64, bool) {
	actor, found := actorFrom(c)
	if !found {
		_ = c.NoContent(http.StatusUnauthorized)
		return Actor{}, 0, false
	}

	orderID, err := orderIDParam(c)
	if err != nil {
		_ = writeBadRequest(c, "invalid order id")
		return Actor{}, 0, false
	}

	return actor, orderID, true
}

func orderIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func dateRangeParams(c echo.Context) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", c.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse("2006-01-02", c.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
