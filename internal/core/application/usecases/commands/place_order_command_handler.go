package commands

import (
	"context"
	"fmt"
	"time"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/domain/services"
	"deliverylink/internal/core/ports"
)

// PlaceOrderResult reports the identifiers and pricing fixed at placement.
type PlaceOrderResult struct {
	OrderID     int64
	OrderNumber kernel.OrderNumber
	Fees        services.Fees
}

// PlaceOrderCommandHandler handles the business logic for order placement.
//
// Placement estimates the route first (a network call, kept outside the
// transaction), prices the order, then creates it directly in confirmed
// status with its initial ledger rows and the new-order statistics
// accumulation, all in one transaction. The recipient is notified after
// commit.
type PlaceOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	geo        ports.GeoService
	notifier   ports.Notifier
	feeCalc    services.FeeCalculator
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory LifecycleUoWFactory,
	geo ports.GeoService,
	notifier ports.Notifier,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		geo:        geo,
		notifier:   notifier,
		feeCalc:    services.NewFeeCalculator(),
	}
}

// Handle processes the order placement command.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	estimate, err := h.geo.EstimateRoute(ctx, cmd.Route().Pickup(), cmd.Route().Dropoff())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	fees, err := h.feeCalc.Calculate(estimate.DistanceKm, cmd.Priority())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	now := time.Now().UTC()
	number, err := kernel.GenerateOrderNumber(now.Year())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		number, cmd.CustomerID(), cmd.CustomerID(),
		cmd.Route(), cmd.Package(), cmd.Priority(),
		fees.DeliveryFee, fees.PlatformFee, fees.TotalCost, cmd.Currency(),
		estimate.DistanceKm, estimate.Minutes,
		now,
	)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return PlaceOrderResult{}, err
	}

	customerID := cmd.CustomerID()
	entry, err := order.NewStatusHistoryEntry(newOrder.ID(), nil, newOrder.Status(), &customerID, "order placed", now)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	if err = uow.TrackingRepository().AddStatusHistory(ctx, entry); err != nil {
		return PlaceOrderResult{}, err
	}

	event, err := order.NewTrackingEvent(
		newOrder.ID(), order.EventOrderCreated,
		fmt.Sprintf("order %s placed, %s", number, cmd.Route().Summary()),
		nil, &customerID, now,
	)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = accumulateStatistics(ctx, uow, newOrder, true, now); err != nil {
		return PlaceOrderResult{}, err
	}
	if err = recomputeSnapshot(ctx, uow, now); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	notifyStatus(ctx, h.notifier, newOrder, "order confirmed")

	return PlaceOrderResult{
		OrderID:     newOrder.ID(),
		OrderNumber: number,
		Fees:        fees,
	}, nil
}
