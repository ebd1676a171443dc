package ports

import "context"

// StatusNotification is the payload for a recipient-facing status update.
type StatusNotification struct {
	RecipientName  string
	RecipientPhone string
	// StatusLabel is the machine status, Headline the human phrasing
	// ("driver assigned", "on the way", "arriving soon").
	StatusLabel  string
	Headline     string
	RouteSummary string
	OrderNumber  string
}

// CodeNotification carries a delivery confirmation code to the recipient.
type CodeNotification struct {
	RecipientName  string
	RecipientPhone string
	Code           string
	OrderNumber    string
}

// Notifier dispatches recipient notifications after a lifecycle transition
// commits. Dispatch is best-effort: implementations log failures and never
// return them into the lifecycle flow, and callers invoke these methods
// outside any transaction.
type Notifier interface {
	NotifyStatusUpdate(ctx context.Context, n StatusNotification)
	NotifyDeliveryCode(ctx context.Context, n CodeNotification)
}
