package errs

import (
	"fmt"
	"strings"
)

var (
	// ErrValueIsRequired is the sentinel error for missing required values.
	ErrValueIsRequired = fmt.Errorf("value is required")

	// ErrValueIsInvalid is the sentinel error for invalid values.
	ErrValueIsInvalid = fmt.Errorf("value is invalid")

	// ErrValueIsOutOfRange is the sentinel error for out-of-range values.
	ErrValueIsOutOfRange = fmt.Errorf("value is out of range")

	// ErrObjectNotFound is the sentinel error for missing objects.
	ErrObjectNotFound = fmt.Errorf("object not found")

	// ErrInvalidState is the sentinel error for lifecycle transitions that are
	// not legal from the order's current status.
	ErrInvalidState = fmt.Errorf("invalid state")

	// ErrExclusivityViolation is the sentinel error for a driver attempting to
	// accept an order while already holding an active delivery.
	ErrExclusivityViolation = fmt.Errorf("driver already has an active delivery")

	// ErrInvalidOTPCode is the sentinel error for a delivery code that does not
	// match any issued code for the order.
	ErrInvalidOTPCode = fmt.Errorf("invalid delivery code")

	// ErrOTPCodeExpired is the sentinel error for a delivery code past its expiry.
	ErrOTPCodeExpired = fmt.Errorf("delivery code expired")
)

// sanitize removes newlines from values interpolated into error messages so a
// single error always renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%s", v), "\r", " "), "\n", " ")
}

// ValueIsRequiredError indicates a required parameter was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a parameter carried a malformed or unacceptable value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric parameter fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending
// value and the allowed bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitizeAny(e.Value), sanitize(e.ParamName), e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

func sanitizeAny(v any) string {
	if s, ok := v.(string); ok {
		return sanitize(s)
	}
	return fmt.Sprintf("%v", v)
}

// ObjectNotFoundError indicates an entity was absent, soft-deleted, or not
// visible to the caller.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and ID.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidStateError indicates a lifecycle transition was requested from a
// status that does not allow it. It is a client error, not a retryable fault.
type InvalidStateError struct {
	Operation     string
	CurrentStatus string
	Cause         error
}

// NewInvalidStateError creates an InvalidStateError for the operation attempted
// against the order's current status.
func NewInvalidStateError(operation, currentStatus string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, CurrentStatus: currentStatus}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping a cause.
func NewInvalidStateErrorWithCause(operation, currentStatus string, cause error) *InvalidStateError {
	return &InvalidStateError{Operation: operation, CurrentStatus: currentStatus, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s while order is %s",
		ErrInvalidState, sanitize(e.Operation), sanitize(e.CurrentStatus))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ExclusivityViolationError indicates a driver tried to accept an order while
// holding another order in an active status.
type ExclusivityViolationError struct {
	DriverID string
}

// NewExclusivityViolationError creates an ExclusivityViolationError for the driver.
func NewExclusivityViolationError(driverID string) *ExclusivityViolationError {
	return &ExclusivityViolationError{DriverID: driverID}
}

func (e *ExclusivityViolationError) Error() string {
	return fmt.Sprintf("%s: complete current delivery first (driver: %s)",
		ErrExclusivityViolation, sanitize(e.DriverID))
}

func (e *ExclusivityViolationError) Unwrap() error {
	return ErrExclusivityViolation
}

// InvalidOTPCodeError indicates the supplied delivery code matched no issued code.
type InvalidOTPCodeError struct {
	OrderID int64
}

// NewInvalidOTPCodeError creates an InvalidOTPCodeError for the order.
func NewInvalidOTPCodeError(orderID int64) *InvalidOTPCodeError {
	return &InvalidOTPCodeError{OrderID: orderID}
}

func (e *InvalidOTPCodeError) Error() string {
	return fmt.Sprintf("%s: order ID is: %d", ErrInvalidOTPCode, e.OrderID)
}

func (e *InvalidOTPCodeError) Unwrap() error {
	return ErrInvalidOTPCode
}

// OTPCodeExpiredError indicates the supplied delivery code matched but its
// expiry timestamp has passed.
type OTPCodeExpiredError struct {
	OrderID int64
}

// NewOTPCodeExpiredError creates an OTPCodeExpiredError for the order.
func NewOTPCodeExpiredError(orderID int64) *OTPCodeExpiredError {
	return &OTPCodeExpiredError{OrderID: orderID}
}

func (e *OTPCodeExpiredError) Error() string {
	return fmt.Sprintf("%s: order ID is: %d, request a new one", ErrOTPCodeExpired, e.OrderID)
}

func (e *OTPCodeExpiredError) Unwrap() error {
	return ErrOTPCodeExpired
}
