package commands

import (
	"context"
	"errors"
	"time"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/domain/model/stats"
	"deliverylink/internal/pkg/errs"
)

// accumulateStatistics folds one lifecycle event into the daily and business
// rollups. Rows are locked before the read-modify-write so concurrent
// transitions on the same day serialize; an absent row is seeded fresh.
//
// Runs inside the caller's transaction. Any failure here aborts the whole
// transition, the rollups must never drift from the order table.
func accumulateStatistics(ctx context.Context, uow LifecycleUoW, o *order.Order, isNewOrder bool, now time.Time) error {
	statsRepo := uow.StatsRepository()

	var delta stats.Delta
	if isNewOrder {
		delta = stats.NewOrderDelta(o, now)
	} else {
		delta = stats.TransitionDelta(o, now)
	}

	daily, err := statsRepo.GetDailyForUpdate(ctx, delta.Date)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		daily = stats.NewDailyStatistics(delta.Date)
	}
	daily.Apply(delta, now)
	if err := statsRepo.SaveDaily(ctx, daily); err != nil {
		return err
	}

	business, err := statsRepo.GetBusinessForUpdate(ctx, delta.Business, delta.Date)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		business = stats.NewBusinessStatistics(delta.Business, delta.Date)
	}
	business.Apply(delta, now)
	return statsRepo.SaveBusiness(ctx, business)
}

// recomputeSnapshot rebuilds the dashboard row from every live order and
// upserts it under its well-known key. Runs inside the caller's transaction,
// after the order write, so the scan sees the transition it accompanies.
func recomputeSnapshot(ctx context.Context, uow LifecycleUoW, now time.Time) error {
	alive, err := uow.OrderRepository().GetAllAlive(ctx)
	if err != nil {
		return err
	}
	return uow.StatsRepository().SaveSnapshot(ctx, stats.ComputeSnapshot(alive, now))
}

// recordTransition appends the audit pair every status change writes: a
// status history row and a timeline event.
func recordTransition(
	ctx context.Context,
	uow LifecycleUoW,
	o *order.Order,
	previous order.Status,
	changedBy *kernel.UUID,
	reason string,
	eventType order.EventType,
	description string,
	coordinates *kernel.Coordinates,
	now time.Time,
) error {
	trackingRepo := uow.TrackingRepository()

	entry, err := order.NewStatusHistoryEntry(o.ID(), &previous, o.Status(), changedBy, reason, now)
	if err != nil {
		return err
	}
	if err := trackingRepo.AddStatusHistory(ctx, entry); err != nil {
		return err
	}

	event, err := order.NewTrackingEvent(o.ID(), eventType, description, coordinates, changedBy, now)
	if err != nil {
		return err
	}
	return trackingRepo.AddEvent(ctx, event)
}
