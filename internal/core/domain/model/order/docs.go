// Package order provides domain entities and business logic for delivery
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Route and PackageInfo: Value objects describing what moves and where
//   - StatusHistoryEntry and TrackingEvent: Append-only audit and timeline records
//
// Key business rules:
//   - Orders are placed directly in the confirmed status with fees fixed at placement
//   - Status follows a defined workflow: confirmed -> assigned -> picked_up ->
//     in_transit -> delivered, with cancellation allowed up to assignment
//   - A driver is attached exactly once, at acceptance, and only the assigned
//     driver may advance the order afterwards
//   - Terminal statuses (delivered, cancelled, failed) accept no further transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
