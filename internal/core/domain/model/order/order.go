package order

import (
	"errors"
	"time"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// ProofTypeOTP is the only delivery proof type in the current flow: a
// one-time code verified against the recipient's phone.
const ProofTypeOTP = "otp"

// DeliveryProof captures how a delivery was confirmed.
type DeliveryProof struct {
	ProofType     string
	ProofData     string
	RecipientName string
	Notes         string
}

// Milestones holds the nullable timestamp recorded at each lifecycle
// milestone. A nil entry means the order never reached that milestone.
type Milestones struct {
	ConfirmedAt *time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// Order is the aggregate root for a single delivery from pickup to dropoff.
// It owns the status state machine and every guard a transition must pass.
//
// Order maintains these invariants:
//   - Status transitions follow the strict lifecycle progression; terminal
//     exits (cancelled, failed) accept no further transitions
//   - A driver is attached exactly once, at acceptance, and only driver-side
//     transitions performed by that driver are allowed afterwards
//   - Monetary fields are fixed at placement by the fee calculator
//   - Each milestone timestamp is written exactly once, by its transition
//
// The numeric id is assigned by the store on first insert; the order number
// is generated at placement and is the only identifier shown externally.
type Order struct {
	id       int64
	number   kernel.OrderNumber
	customer kernel.UUID
	business kernel.UUID
	driver   *kernel.UUID

	status   Status
	priority Priority
	route    Route
	pkg      PackageInfo

	deliveryFee kernel.Money
	platformFee kernel.Money
	totalCost   kernel.Money
	currency    string

	estimatedDistanceKm float64
	estimatedMinutes    int
	actualDistanceKm    float64
	actualMinutes       int

	createdAt  time.Time
	milestones Milestones
	proof      *DeliveryProof

	isConstructed bool
}

// NewOrder creates a newly placed order. The current placement flow creates
// orders directly in Confirmed: payment and vetting happen before the engine
// sees the request, so the nominal pending stage is skipped.
//
// The caller supplies the fees already computed by the fee calculator and the
// distance/duration estimates from the geo collaborator; the aggregate treats
// both as trusted inputs.
func NewOrder(
	number kernel.OrderNumber,
	customerID kernel.UUID,
	businessID kernel.UUID,
	route Route,
	pkg PackageInfo,
	priority Priority,
	deliveryFee, platformFee, totalCost kernel.Money,
	currency string,
	estimatedDistanceKm float64,
	estimatedMinutes int,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Confirmed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setCustomer(customerID),
		o.setBusiness(businessID),
		o.setRoute(route),
		o.setPackage(pkg),
		o.setPriority(priority),
		o.setCurrency(currency),
		validateDistance(estimatedDistanceKm),
	); err != nil {
		return nil, err
	}

	o.deliveryFee = deliveryFee
	o.platformFee = platformFee
	o.totalCost = totalCost
	o.estimatedDistanceKm = estimatedDistanceKm
	o.estimatedMinutes = estimatedMinutes
	o.createdAt = placedAt
	confirmedAt := placedAt
	o.milestones.ConfirmedAt = &confirmedAt

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// placement validation. The repository is trusted to hand back what it stored.
func RestoreOrder(
	id int64,
	number kernel.OrderNumber,
	customerID kernel.UUID,
	businessID kernel.UUID,
	driverID *kernel.UUID,
	status Status,
	priority Priority,
	route Route,
	pkg PackageInfo,
	deliveryFee, platformFee, totalCost kernel.Money,
	currency string,
	estimatedDistanceKm float64,
	estimatedMinutes int,
	actualDistanceKm float64,
	actualMinutes int,
	createdAt time.Time,
	milestones Milestones,
	proof *DeliveryProof,
) (*Order, error) {
	if err := errors.Join(number.Validate(), status.Validate(), priority.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:                  id,
		number:              number,
		customer:            customerID,
		business:            businessID,
		driver:              driverID,
		status:              status,
		priority:            priority,
		route:               route,
		pkg:                 pkg,
		deliveryFee:         deliveryFee,
		platformFee:         platformFee,
		totalCost:           totalCost,
		currency:            currency,
		estimatedDistanceKm: estimatedDistanceKm,
		estimatedMinutes:    estimatedMinutes,
		actualDistanceKm:    actualDistanceKm,
		actualMinutes:       actualMinutes,
		createdAt:           createdAt,
		milestones:          milestones,
		proof:               proof,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AttachID records the store-assigned numeric id after the first insert.
// It is a no-op once an id is present.
func (o *Order) AttachID(id int64) {
	if o.id == 0 {
		o.id = id
	}
}

// Renumber replaces the order number. Only allowed before the first insert;
// the store calls this when a generated number collides with an existing row.
func (o *Order) Renumber(number kernel.OrderNumber) error {
	if o.id != 0 {
		return errs.NewInvalidStateError("renumber", string(o.status))
	}
	return o.setNumber(number)
}

// ID returns the numeric order id, 0 before the first insert.
func (o *Order) ID() int64 { return o.id }

// Number returns the externally visible order number.
func (o *Order) Number() kernel.OrderNumber { return o.number }

// Customer returns the id of the actor who placed the order.
func (o *Order) Customer() kernel.UUID { return o.customer }

// Business returns the business the order belongs to. In the current design
// this is the same identity as the customer.
func (o *Order) Business() kernel.UUID { return o.business }

// Driver returns the assigned driver's id, nil before acceptance.
func (o *Order) Driver() *kernel.UUID { return o.driver }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Priority returns the dispatch priority.
func (o *Order) Priority() Priority { return o.priority }

// Route returns the pickup/dropoff pair.
func (o *Order) Route() Route { return o.route }

// Package returns the package description.
func (o *Order) Package() PackageInfo { return o.pkg }

// DeliveryFee returns the driver-side fee.
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }

// PlatformFee returns the platform's cut.
func (o *Order) PlatformFee() kernel.Money { return o.platformFee }

// TotalCost returns what the customer pays.
func (o *Order) TotalCost() kernel.Money { return o.totalCost }

// Currency returns the ISO currency code the monetary fields are in.
func (o *Order) Currency() string { return o.currency }

// EstimatedDistanceKm returns the route distance estimated at placement.
func (o *Order) EstimatedDistanceKm() float64 { return o.estimatedDistanceKm }

// EstimatedMinutes returns the travel time estimated at placement.
func (o *Order) EstimatedMinutes() int { return o.estimatedMinutes }

// ActualDistanceKm returns the distance reported after delivery, 0 if unreported.
func (o *Order) ActualDistanceKm() float64 { return o.actualDistanceKm }

// ActualMinutes returns the duration reported after delivery, 0 if unreported.
func (o *Order) ActualMinutes() int { return o.actualMinutes }

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Milestones returns the lifecycle milestone timestamps.
func (o *Order) Milestones() Milestones { return o.milestones }

// Proof returns the delivery proof, nil before delivery.
func (o *Order) Proof() *DeliveryProof { return o.proof }

// Accept assigns the order to a driver.
//
// Requires the order to be confirmed and driverless. The caller must have
// already passed the driver exclusivity guard; this method is the order-side
// compare-and-swap backstop that makes concurrent accepts lose cleanly.
func (o *Order) Accept(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driver != nil {
		return errs.NewInvalidStateError("accept", string(o.status))
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driver = &driverID
	o.milestones.AssignedAt = &at
	return nil
}

// MarkPickedUp records package collection. Only the assigned driver may
// perform this transition.
func (o *Order) MarkPickedUp(driverID kernel.UUID, at time.Time) error {
	if err := o.requireAssignedDriver(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.milestones.PickedUpAt = &at
	return nil
}

// MarkInTransit records the start of the dropoff leg. Only the assigned
// driver may perform this transition.
func (o *Order) MarkInTransit(driverID kernel.UUID, at time.Time) error {
	if err := o.requireAssignedDriver(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.Transit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.milestones.InTransitAt = &at
	return nil
}

// Deliver closes the order with verified proof. The caller is responsible for
// verifying the delivery code first; this method records the outcome.
func (o *Order) Deliver(driverID kernel.UUID, proof DeliveryProof, at time.Time) error {
	if err := o.requireAssignedDriver(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.proof = &proof
	o.milestones.DeliveredAt = &at
	return nil
}

// Cancel exits the lifecycle before pickup. Allowed from pending, confirmed,
// and assigned only; the mandatory reason is recorded by the caller in the
// status history.
func (o *Order) Cancel(at time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.milestones.CancelledAt = &at
	return nil
}

// AuthorizeCancel checks that the actor may cancel this order. Cancellation
// is open to the placing customer, the owning business, and the assigned
// driver; anyone else sees not-found rather than forbidden.
func (o *Order) AuthorizeCancel(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if o.customer.IsEqual(actorID) || o.business.IsEqual(actorID) {
		return nil
	}
	if o.driver != nil && o.driver.IsEqual(actorID) {
		return nil
	}
	return errs.NewObjectNotFoundError("order", o.id)
}

// AuthorizeIssueReport checks that the driver may report an issue against
// this order: the order must be active with a responsible driver.
func (o *Order) AuthorizeIssueReport(driverID kernel.UUID) error {
	if err := o.requireAssignedDriver(driverID); err != nil {
		return err
	}
	if !o.status.CanReportIssue() {
		return errs.NewInvalidStateError("report issue", string(o.status))
	}
	return nil
}

// AuthorizeDeliveryCode checks that the driver may request a delivery
// confirmation code: only while the package is with the driver.
func (o *Order) AuthorizeDeliveryCode(driverID kernel.UUID) error {
	if err := o.requireAssignedDriver(driverID); err != nil {
		return err
	}
	if !o.status.CanIssueDeliveryCode() {
		return errs.NewInvalidStateError("send delivery code", string(o.status))
	}
	return nil
}

// AuthorizeDelivery checks the driver's claim on the order before the
// confirmation code is even looked up, so a stranger presenting guessed
// codes learns nothing about them.
func (o *Order) AuthorizeDelivery(driverID kernel.UUID) error {
	return o.requireAssignedDriver(driverID)
}

// requireAssignedDriver hides the order from any driver but the assigned one.
// A mismatch surfaces as not-found rather than forbidden so callers cannot
// probe order ownership.
func (o *Order) requireAssignedDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driver == nil || !o.driver.IsEqual(driverID) {
		return errs.NewObjectNotFoundError("order", o.id)
	}
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customer = id
	return nil
}

func (o *Order) setBusiness(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.business = id
	return nil
}

func (o *Order) setRoute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	o.route = route
	return nil
}

func (o *Order) setPackage(pkg PackageInfo) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	o.pkg = pkg
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	o.currency = currency
	return nil
}

func validateDistance(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidError("estimatedDistanceKm")
	}
	return nil
}
