package http

import (
	"time"

	"deliverylink/internal/core/application/usecases/queries"
	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
)

// Wire types for the JSON API. Monetary amounts travel as two-decimal
// strings in the requested currency.

type waypointRequest struct {
	ContactName  string   `json:"contact_name"`
	ContactPhone string   `json:"contact_phone"`
	Address      string   `json:"address"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

type packageRequest struct {
	Description   string  `json:"description"`
	Size          string  `json:"size,omitempty"`
	Quantity      int     `json:"quantity"`
	WeightKg      float64 `json:"weight_kg,omitempty"`
	DeclaredValue string  `json:"declared_value,omitempty"`
	Fragile       bool    `json:"fragile,omitempty"`
}

type placeOrderRequest struct {
	Pickup   waypointRequest `json:"pickup"`
	Dropoff  waypointRequest `json:"dropoff"`
	Package  packageRequest  `json:"package"`
	Priority string          `json:"priority,omitempty"`
	Currency string          `json:"currency,omitempty"`
}

type placeOrderResponse struct {
	OrderID     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
	DeliveryFee string `json:"delivery_fee"`
	PlatformFee string `json:"platform_fee"`
	TotalCost   string `json:"total_cost"`
}

type reasonRequest struct {
	Reason string `json:"reason,omitempty"`
}

type issueRequest struct {
	Description string `json:"description"`
}

type locationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type transitRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type deliverRequest struct {
	Code          string `json:"code"`
	RecipientName string `json:"recipient_name,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// toWaypoint builds the domain waypoint from the wire form. Coordinates are
// taken only when both halves are present.
func (r waypointRequest) toWaypoint() (order.Waypoint, error) {
	contact, err := order.NewContact(r.ContactName, r.ContactPhone)
	if err != nil {
		return order.Waypoint{}, err
	}

	var coords *kernel.Coordinates
	if r.Latitude != nil && r.Longitude != nil {
		c, err := kernel.NewCoordinates(*r.Latitude, *r.Longitude)
		if err != nil {
			return order.Waypoint{}, err
		}
		coords = &c
	}

	return order.NewWaypoint(contact, r.Address, coords, r.Instructions)
}

func (r packageRequest) toPackageInfo() (order.PackageInfo, error) {
	declaredValue := kernel.NewMoneyFromCents(0)
	if r.DeclaredValue != "" {
		var err error
		declaredValue, err = kernel.MoneyFromString(r.DeclaredValue)
		if err != nil {
			return order.PackageInfo{}, err
		}
	}

	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}

	return order.NewPackageInfo(
		r.Description,
		order.PackageSize(r.Size),
		quantity,
		r.WeightKg,
		declaredValue,
		r.Fragile,
	)
}

type orderSummaryResponse struct {
	OrderID             int64      `json:"order_id"`
	OrderNumber         string     `json:"order_number"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	PickupAddress       string     `json:"pickup_address"`
	DropoffAddress      string     `json:"dropoff_address"`
	DropoffContactName  string     `json:"dropoff_contact_name"`
	DropoffContactPhone string     `json:"dropoff_contact_phone"`
	PackageDescription  string     `json:"package_description"`
	PackageSize         string     `json:"package_size,omitempty"`
	DeliveryFee         string     `json:"delivery_fee"`
	PlatformFee         string     `json:"platform_fee"`
	TotalCost           string     `json:"total_cost"`
	Currency            string     `json:"currency"`
	EstimatedDistanceKm float64    `json:"estimated_distance_km"`
	CreatedAt           time.Time  `json:"created_at"`
	DeliveredAt         *time.Time `json:"delivered_at,omitempty"`
}

func toOrderSummaryResponse(s queries.OrderSummary) orderSummaryResponse {
	return orderSummaryResponse{
		OrderID:             s.OrderID,
		OrderNumber:         s.OrderNumber,
		Status:              s.Status,
		Priority:            s.Priority,
		PickupAddress:       s.PickupAddress,
		DropoffAddress:      s.DropoffAddress,
		DropoffContactName:  s.DropoffContactName,
		DropoffContactPhone: s.DropoffContactPhone,
		PackageDescription:  s.PackageDescription,
		PackageSize:         s.PackageSize,
		DeliveryFee:         s.DeliveryFee,
		PlatformFee:         s.PlatformFee,
		TotalCost:           s.TotalCost,
		Currency:            s.Currency,
		EstimatedDistanceKm: s.EstimatedDistanceKm,
		CreatedAt:           s.CreatedAt,
		DeliveredAt:         s.DeliveredAt,
	}
}

func toOrderSummaryResponses(summaries []queries.OrderSummary) []orderSummaryResponse {
	out := make([]orderSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = toOrderSummaryResponse(s)
	}
	return out
}

type statusChangeResponse struct {
	PreviousStatus *string   `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status"`
	Reason         string    `json:"reason,omitempty"`
	ChangedAt      time.Time `json:"changed_at"`
}

type timelineEventResponse struct {
	EventType   string    `json:"event_type"`
	Description string    `json:"description,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type orderDetailsResponse struct {
	orderSummaryResponse
	PickupInstructions  string                  `json:"pickup_instructions,omitempty"`
	DropoffInstructions string                  `json:"dropoff_instructions,omitempty"`
	PackageQuantity     int                     `json:"package_quantity"`
	PackageWeightKg     float64                 `json:"package_weight_kg,omitempty"`
	PackageValue        string                  `json:"package_value"`
	IsFragile           bool                    `json:"is_fragile"`
	EstimatedMinutes    int                     `json:"estimated_minutes"`
	ProofType           string                  `json:"proof_type,omitempty"`
	RecipientName       string                  `json:"recipient_name,omitempty"`
	DeliveryNotes       string                  `json:"delivery_notes,omitempty"`
	History             []statusChangeResponse  `json:"history"`
	Events              []timelineEventResponse `json:"events"`
}

func toOrderDetailsResponse(d queries.OrderDetailsResponse) orderDetailsResponse {
	history := make([]statusChangeResponse, len(d.History))
	for i, h := range d.History {
		history[i] = statusChangeResponse{
			PreviousStatus: h.PreviousStatus,
			NewStatus:      h.NewStatus,
			Reason:         h.Reason,
			ChangedAt:      h.ChangedAt,
		}
	}

	events := make([]timelineEventResponse, len(d.Events))
	for i, e := range d.Events {
		events[i] = timelineEventResponse{
			EventType:   e.EventType,
			Description: e.Description,
			Latitude:    e.Latitude,
			Longitude:   e.Longitude,
			CreatedAt:   e.CreatedAt,
		}
	}

	return orderDetailsResponse{
		orderSummaryResponse: toOrderSummaryResponse(d.OrderSummary),
		PickupInstructions:   d.PickupInstructions,
		DropoffInstructions:  d.DropoffInstructions,
		PackageQuantity:      d.PackageQuantity,
		PackageWeightKg:      d.PackageWeightKg,
		PackageValue:         d.PackageValue,
		IsFragile:            d.IsFragile,
		EstimatedMinutes:     d.EstimatedMinutes,
		ProofType:            d.ProofType,
		RecipientName:        d.RecipientName,
		DeliveryNotes:        d.DeliveryNotes,
		History:              history,
		Events:               events,
	}
}

type dashboardResponse struct {
	ActiveOrders    int `json:"active_orders"`
	PendingOrders   int `json:"pending_orders"`
	ConfirmedOrders int `json:"confirmed_orders"`
	AssignedOrders  int `json:"assigned_orders"`
	PickedUpOrders  int `json:"picked_up_orders"`
	InTransitOrders int `json:"in_transit_orders"`

	TodayOrders       int    `json:"today_orders"`
	TodayRevenue      string `json:"today_revenue"`
	TodayPlatformFees string `json:"today_platform_fees"`
	TodayDeliveryFees string `json:"today_delivery_fees"`
	TodayDelivered    int    `json:"today_delivered"`
	TodayCancelled    int    `json:"today_cancelled"`

	WeekOrders    int    `json:"week_orders"`
	WeekRevenue   string `json:"week_revenue"`
	WeekDelivered int    `json:"week_delivered"`

	MonthOrders    int    `json:"month_orders"`
	MonthRevenue   string `json:"month_revenue"`
	MonthDelivered int    `json:"month_delivered"`

	LastUpdated time.Time `json:"last_updated"`
}

func toDashboardResponse(d queries.DashboardResponse) dashboardResponse {
	return dashboardResponse{
		ActiveOrders:      d.ActiveOrders,
		PendingOrders:     d.PendingOrders,
		ConfirmedOrders:   d.ConfirmedOrders,
		AssignedOrders:    d.AssignedOrders,
		PickedUpOrders:    d.PickedUpOrders,
		InTransitOrders:   d.InTransitOrders,
		TodayOrders:       d.TodayOrders,
		TodayRevenue:      d.TodayRevenue,
		TodayPlatformFees: d.TodayPlatformFees,
		TodayDeliveryFees: d.TodayDeliveryFees,
		TodayDelivered:    d.TodayDelivered,
		TodayCancelled:    d.TodayCancelled,
		WeekOrders:        d.WeekOrders,
		WeekRevenue:       d.WeekRevenue,
		WeekDelivered:     d.WeekDelivered,
		MonthOrders:       d.MonthOrders,
		MonthRevenue:      d.MonthRevenue,
		MonthDelivered:    d.MonthDelivered,
		LastUpdated:       d.LastUpdated,
	}
}

type statisticsRowResponse struct {
	Date string `json:"date"`

	TotalOrders     int `json:"total_orders"`
	ConfirmedOrders int `json:"confirmed_orders"`
	AssignedOrders  int `json:"assigned_orders"`
	PickedUpOrders  int `json:"picked_up_orders"`
	InTransitOrders int `json:"in_transit_orders"`
	DeliveredOrders int `json:"delivered_orders"`
	CancelledOrders int `json:"cancelled_orders"`

	TotalRevenue      string `json:"total_revenue"`
	PlatformFees      string `json:"platform_fees"`
	DeliveryFees      string `json:"delivery_fees"`
	TotalPackageValue string `json:"total_package_value"`

	UrgentOrders    int `json:"urgent_orders"`
	NormalOrders    int `json:"normal_orders"`
	ScheduledOrders int `json:"scheduled_orders"`

	FragilePackages int `json:"fragile_packages"`
	SmallPackages   int `json:"small_packages"`
	MediumPackages  int `json:"medium_packages"`
	LargePackages   int `json:"large_packages"`
}

func toStatisticsRowResponse(r queries.StatisticsRowResponse) statisticsRowResponse {
	return statisticsRowResponse{
		Date:              r.Date.Format("2006-01-02"),
		TotalOrders:       r.TotalOrders,
		ConfirmedOrders:   r.ConfirmedOrders,
		AssignedOrders:    r.AssignedOrders,
		PickedUpOrders:    r.PickedUpOrders,
		InTransitOrders:   r.InTransitOrders,
		DeliveredOrders:   r.DeliveredOrders,
		CancelledOrders:   r.CancelledOrders,
		TotalRevenue:      r.TotalRevenue,
		PlatformFees:      r.PlatformFees,
		DeliveryFees:      r.DeliveryFees,
		TotalPackageValue: r.TotalPackageValue,
		UrgentOrders:      r.UrgentOrders,
		NormalOrders:      r.NormalOrders,
		ScheduledOrders:   r.ScheduledOrders,
		FragilePackages:   r.FragilePackages,
		SmallPackages:     r.SmallPackages,
		MediumPackages:    r.MediumPackages,
		LargePackages:     r.LargePackages,
	}
}

func toStatisticsRowResponses(rows []queries.StatisticsRowResponse) []statisticsRowResponse {
	out := make([]statisticsRowResponse, len(rows))
	for i, r := range rows {
		out[i] = toStatisticsRowResponse(r)
	}
	return out
}

type deliveredOrderResponse struct {
	OrderID        int64     `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	Priority       string    `json:"priority"`
	PickupAddress  string    `json:"pickup_address"`
	DropoffAddress string    `json:"dropoff_address"`
	DeliveryFee    string    `json:"delivery_fee"`
	Currency       string    `json:"currency"`
	DistanceKm     float64   `json:"distance_km"`
	DeliveredAt    time.Time `json:"delivered_at"`
}

type deliveryHistoryResponse struct {
	Deliveries    []deliveredOrderResponse `json:"deliveries"`
	TotalEarnings string                   `json:"total_earnings"`
}

func toDeliveryHistoryResponse(h queries.DeliveryHistoryResponse) deliveryHistoryResponse {
	deliveries := make([]deliveredOrderResponse, len(h.Deliveries))
	for i, d := range h.Deliveries {
		deliveries[i] = deliveredOrderResponse{
			OrderID:        d.OrderID,
			OrderNumber:    d.OrderNumber,
			Priority:       d.Priority,
			PickupAddress:  d.PickupAddress,
			DropoffAddress: d.DropoffAddress,
			DeliveryFee:    d.DeliveryFee,
			Currency:       d.Currency,
			DistanceKm:     d.DistanceKm,
			DeliveredAt:    d.DeliveredAt,
		}
	}

	return deliveryHistoryResponse{
		Deliveries:    deliveries,
		TotalEarnings: h.TotalEarnings,
	}
}

type earningsSummaryResponse struct {
	Period                     string `json:"period"`
	TotalDeliveries            int    `json:"total_deliveries"`
	TotalEarnings              string `json:"total_earnings"`
	UrgentDeliveries           int    `json:"urgent_deliveries"`
	UrgentEarnings             string `json:"urgent_earnings"`
	AverageEarningsPerDelivery string `json:"average_earnings_per_delivery"`
	Currency                   string `json:"currency"`
}

func toEarningsSummaryResponse(s queries.EarningsSummaryResponse) earningsSummaryResponse {
	return earningsSummaryResponse{
		Period:                     s.Period,
		TotalDeliveries:            s.TotalDeliveries,
		TotalEarnings:              s.TotalEarnings,
		UrgentDeliveries:           s.UrgentDeliveries,
		UrgentEarnings:             s.UrgentEarnings,
		AverageEarningsPerDelivery: s.AverageEarningsPerDelivery,
		Currency:                   s.Currency,
	}
}
