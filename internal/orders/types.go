package orders

import (
	"time"

	"github.com/google/uuid"
)

// Item attribute names in the service orders table. The table is keyed on
// PK (order id) + SK (customer id); the customer GSI is keyed on SK.
const (
	AttrOrderID         = "PK"
	AttrCustomerID      = "SK"
	AttrLocationID      = "location_id"
	AttrUnitID          = "unit_id"
	AttrActionID        = "action_id"
	AttrServiceDate     = "service_date"
	AttrServiceTime     = "service_time"
	AttrServiceDuration = "service_duration"
	AttrServiceStatus   = "service_status"
	AttrEmployeeID      = "employee_id"
	AttrServiceNotes    = "service_notes"
	AttrCreatedAt       = "created_at"
	AttrUpdatedAt       = "updated_at"
	AttrDeletedAt       = "deleted_at"
)

// TimestampLayout is used for created_at, updated_at and deleted_at.
const TimestampLayout = time.RFC3339

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// OrderFields is the validated body of a create or update request. A present but
// empty employee_id is Some(uuid.Nil).
type OrderFields struct {
	UnitID          uuid.UUID
	ActionID        uuid.UUID
	ServiceDate     Optional[string]
	ServiceTime     Optional[string]
	ServiceDuration Optional[int]
	ServiceStatus   Optional[string]
	EmployeeID      Optional[uuid.UUID]
	ServiceNotes    Optional[string]
}

// StoredOrder represents the item stored in the service orders DynamoDB table.
// Optional attributes are pointers so that absent values are left out of the item.
type StoredOrder struct {
	OrderID         string  `dynamodbav:"PK"`
	CustomerID      string  `dynamodbav:"SK"`
	LocationID      *string `dynamodbav:"location_id,omitempty"`
	UnitID          string  `dynamodbav:"unit_id"`
	ActionID        string  `dynamodbav:"action_id"`
	ServiceDate     *string `dynamodbav:"service_date,omitempty"`
	ServiceTime     *string `dynamodbav:"service_time,omitempty"`
	ServiceDuration *int    `dynamodbav:"service_duration,omitempty"`
	ServiceStatus   *string `dynamodbav:"service_status,omitempty"`
	EmployeeID      *string `dynamodbav:"employee_id,omitempty"`
	ServiceNotes    *string `dynamodbav:"service_notes,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       *string `dynamodbav:"updated_at,omitempty"`
	DeletedAt       *string `dynamodbav:"deleted_at,omitempty"`
}

// Response is the public JSON shape of a service order.
type Response struct {
	OrderID         uuid.UUID           `json:"order_id"`
	CustomerID      string              `json:"customer_id"`
	LocationID      Optional[string]    `json:"location_id,omitzero"`
	UnitID          uuid.UUID           `json:"unit_id"`
	ActionID        uuid.UUID           `json:"action_id"`
	ServiceDate     Optional[string]    `json:"service_date,omitzero"`
	ServiceTime     Optional[string]    `json:"service_time,omitzero"`
	ServiceDuration Optional[int]       `json:"service_duration,omitzero"`
	ServiceStatus   Optional[string]    `json:"service_status,omitzero"`
	EmployeeID      Optional[uuid.UUID] `json:"employee_id,omitzero"`
	ServiceNotes    Optional[string]    `json:"service_notes,omitzero"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       Optional[string]    `json:"updated_at,omitzero"`
	DeletedAt       Optional[string]    `json:"deleted_at,omitzero"`
}

// Attribute is a single attribute of a partial update.
type Attribute struct {
	Name  string
	Value any
}

// Patch is the ordered set of attributes an update writes. Attributes not in
// the patch are left untouched in the stored item.
type Patch []Attribute

// Has reports whether the patch writes the named attribute.
func (p Patch) Has(name string) bool {
	for _, a := range p {
		if a.Name == name {
			return true
		}
	}
	return false
}
