package validation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/imrishuroy/go-serviceorder-api/internal/orders"
)

// Path and query parameter names.
const (
	ParamCustomerID = "customerId"
	ParamOrderID    = "id"
	ParamLocationID = "locationId"
)

// Body field names.
const (
	fieldUnitID          = "unit_id"
	fieldActionID        = "action_id"
	fieldEmployeeID      = "employee_id"
	fieldServiceDate     = "service_date"
	fieldServiceTime     = "service_time"
	fieldServiceDuration = "service_duration"
	fieldServiceStatus   = "service_status"
	fieldServiceNotes    = "service_notes"
)

// Error is a client-caused validation failure. Message is safe to return to the caller.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func fail(msg string) *Error { return &Error{Message: msg} }

func failf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Payload is one of CreatePayload, UpdatePayload, DeletePayload or GetPayload.
// Only this package produces payloads.
type Payload interface {
	isPayload()
}

// CreatePayload is a validated create request.
type CreatePayload struct {
	CustomerID string
	LocationID string
	Fields     orders.OrderFields
}

// UpdatePayload is a validated update request.
type UpdatePayload struct {
	OrderID    uuid.UUID
	CustomerID string
	Fields     orders.OrderFields
}

// DeletePayload is a validated delete request.
type DeletePayload struct {
	OrderID    uuid.UUID
	CustomerID string
}

// GetPayload is a validated read request. Without an OrderID it lists the customer's
// orders, filtered by LocationID when one is given.
type GetPayload struct {
	CustomerID string
	OrderID    orders.Optional[uuid.UUID]
	LocationID orders.Optional[string]
}

func (CreatePayload) isPayload() {}
func (UpdatePayload) isPayload() {}
func (DeletePayload) isPayload() {}
func (GetPayload) isPayload()    {}
