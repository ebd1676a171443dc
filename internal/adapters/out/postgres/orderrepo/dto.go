// Package orderrepo persists the order aggregate. The DTO flattens the
// aggregate's value objects into one row; monetary values are stored as
// numeric(12,2) so drivers and dashboards read the same two-decimal form
// the API emits.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
)

// OrderDTO is the database row for one order.
type OrderDTO struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	OrderNumber string     `gorm:"column:order_number;uniqueIndex;size:14"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;column:customer_id;index"`
	BusinessID  uuid.UUID  `gorm:"type:uuid;column:business_id;index"`
	DriverID    *uuid.UUID `gorm:"type:uuid;column:driver_id;index"`

	Status   string `gorm:"index;size:20"`
	Priority string `gorm:"size:20"`

	Pickup  WaypointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff WaypointDTO `gorm:"embedded;embeddedPrefix:dropoff_"`

	PackageDescription string  `gorm:"column:package_description"`
	PackageSize        string  `gorm:"column:package_size;size:20"`
	PackageQuantity    int     `gorm:"column:package_quantity"`
	PackageWeightKg    float64 `gorm:"column:package_weight_kg"`
	PackageValue       string  `gorm:"column:package_value;type:numeric(12,2)"`
	IsFragile          bool    `gorm:"column:is_fragile"`

	DeliveryFee string `gorm:"column:delivery_fee;type:numeric(12,2)"`
	PlatformFee string `gorm:"column:platform_fee;type:numeric(12,2)"`
	TotalCost   string `gorm:"column:total_cost;type:numeric(12,2)"`
	Currency    string `gorm:"size:3"`

	EstimatedDistanceKm float64  `gorm:"column:estimated_distance_km"`
	EstimatedMinutes    int      `gorm:"column:estimated_minutes"`
	ActualDistanceKm    *float64 `gorm:"column:actual_distance_km"`
	ActualMinutes       *int     `gorm:"column:actual_minutes"`

	ProofType     *string `gorm:"column:proof_type;size:20"`
	ProofData     *string `gorm:"column:proof_data"`
	RecipientName *string `gorm:"column:recipient_name"`
	DeliveryNotes *string `gorm:"column:delivery_notes"`

	CreatedAt   time.Time  `gorm:"column:created_at"`
	ConfirmedAt *time.Time `gorm:"column:confirmed_at"`
	AssignedAt  *time.Time `gorm:"column:assigned_at"`
	PickedUpAt  *time.Time `gorm:"column:picked_up_at"`
	InTransitAt *time.Time `gorm:"column:in_transit_at"`
	DeliveredAt *time.Time `gorm:"column:delivered_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`

	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// WaypointDTO is one embedded end of the route.
type WaypointDTO struct {
	ContactName  string   `gorm:"column:contact_name"`
	ContactPhone string   `gorm:"column:contact_phone"`
	Address      string   `gorm:"column:address"`
	Latitude     *float64 `gorm:"column:latitude"`
	Longitude    *float64 `gorm:"column:longitude"`
	Instructions string   `gorm:"column:instructions"`
}

func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	dto := OrderDTO{
		ID:          o.ID(),
		OrderNumber: o.Number().String(),
		CustomerID:  o.Customer().Bytes(),
		BusinessID:  o.Business().Bytes(),
		DriverID:    driverID,

		Status:   string(o.Status()),
		Priority: string(o.Priority()),

		Pickup:  waypointFromDomain(o.Route().Pickup()),
		Dropoff: waypointFromDomain(o.Route().Dropoff()),

		PackageDescription: o.Package().Description(),
		PackageSize:        string(o.Package().Size()),
		PackageQuantity:    o.Package().Quantity(),
		PackageWeightKg:    o.Package().WeightKg(),
		PackageValue:       o.Package().DeclaredValue().String(),
		IsFragile:          o.Package().IsFragile(),

		DeliveryFee: o.DeliveryFee().String(),
		PlatformFee: o.PlatformFee().String(),
		TotalCost:   o.TotalCost().String(),
		Currency:    o.Currency(),

		EstimatedDistanceKm: o.EstimatedDistanceKm(),
		EstimatedMinutes:    o.EstimatedMinutes(),

		CreatedAt:   o.CreatedAt(),
		ConfirmedAt: o.Milestones().ConfirmedAt,
		AssignedAt:  o.Milestones().AssignedAt,
		PickedUpAt:  o.Milestones().PickedUpAt,
		InTransitAt: o.Milestones().InTransitAt,
		DeliveredAt: o.Milestones().DeliveredAt,
		CancelledAt: o.Milestones().CancelledAt,
	}

	if km := o.ActualDistanceKm(); km > 0 {
		dto.ActualDistanceKm = &km
	}
	if minutes := o.ActualMinutes(); minutes > 0 {
		dto.ActualMinutes = &minutes
	}

	if proof := o.Proof(); proof != nil {
		dto.ProofType = &proof.ProofType
		dto.ProofData = &proof.ProofData
		dto.RecipientName = &proof.RecipientName
		dto.DeliveryNotes = &proof.Notes
	}

	return dto
}

func waypointFromDomain(w order.Waypoint) WaypointDTO {
	dto := WaypointDTO{
		ContactName:  w.Contact().Name(),
		ContactPhone: w.Contact().Phone(),
		Address:      w.Address(),
		Instructions: w.Instructions(),
	}
	if coords := w.Coordinates(); coords != nil {
		lat, lon := coords.Latitude(), coords.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	businessID, err := kernel.UUIDFromBytes(dto.BusinessID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		id, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &id
	}

	pickup, err := waypointToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}
	dropoff, err := waypointToDomain(dto.Dropoff)
	if err != nil {
		return nil, err
	}
	route, err := order.NewRoute(pickup, dropoff)
	if err != nil {
		return nil, err
	}

	declaredValue, err := kernel.MoneyFromString(dto.PackageValue)
	if err != nil {
		return nil, err
	}
	pkg, err := order.NewPackageInfo(
		dto.PackageDescription,
		order.PackageSize(dto.PackageSize),
		dto.PackageQuantity,
		dto.PackageWeightKg,
		declaredValue,
		dto.IsFragile,
	)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.MoneyFromString(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	platformFee, err := kernel.MoneyFromString(dto.PlatformFee)
	if err != nil {
		return nil, err
	}
	totalCost, err := kernel.MoneyFromString(dto.TotalCost)
	if err != nil {
		return nil, err
	}

	var proof *order.DeliveryProof
	if dto.ProofType != nil {
		proof = &order.DeliveryProof{ProofType: *dto.ProofType}
		if dto.ProofData != nil {
			proof.ProofData = *dto.ProofData
		}
		if dto.RecipientName != nil {
			proof.RecipientName = *dto.RecipientName
		}
		if dto.DeliveryNotes != nil {
			proof.Notes = *dto.DeliveryNotes
		}
	}

	var actualDistanceKm float64
	if dto.ActualDistanceKm != nil {
		actualDistanceKm = *dto.ActualDistanceKm
	}
	var actualMinutes int
	if dto.ActualMinutes != nil {
		actualMinutes = *dto.ActualMinutes
	}

	return order.RestoreOrder(
		dto.ID,
		number,
		customerID,
		businessID,
		driverID,
		order.Status(dto.Status),
		order.Priority(dto.Priority),
		route,
		pkg,
		deliveryFee, platformFee, totalCost,
		dto.Currency,
		dto.EstimatedDistanceKm,
		dto.EstimatedMinutes,
		actualDistanceKm,
		actualMinutes,
		dto.CreatedAt,
		order.Milestones{
			ConfirmedAt: dto.ConfirmedAt,
			AssignedAt:  dto.AssignedAt,
			PickedUpAt:  dto.PickedUpAt,
			InTransitAt: dto.InTransitAt,
			DeliveredAt: dto.DeliveredAt,
			CancelledAt: dto.CancelledAt,
		},
		proof,
	)
}

func waypointToDomain(dto WaypointDTO) (order.Waypoint, error) {
	contact, err := order.NewContact(dto.ContactName, dto.ContactPhone)
	if err != nil {
		return order.Waypoint{}, err
	}

	var coords *kernel.Coordinates
	if dto.Latitude != nil && dto.Longitude != nil {
		c, coordErr := kernel.NewCoordinates(*dto.Latitude, *dto.Longitude)
		if coordErr != nil {
			return order.Waypoint{}, coordErr
		}
		coords = &c
	}

	return order.NewWaypoint(contact, dto.Address, coords, dto.Instructions)
}
