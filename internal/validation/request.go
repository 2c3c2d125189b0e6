package validation

import (
	"github.com/google/uuid"

	"github.com/imrishuroy/go-serviceorder-api/internal/orders"
)

const (
	msgMissingCustomerID = "Missing customerId in path parameters"
	msgMissingLocationID = "Missing locationId in query parameters"
	msgMissingOrderID    = "Missing service order id in path parameters"
	msgInvalidOrderID    = "Invalid UUID format for service order id"
)

// ValidateCreate checks a create request. The location comes from the locationId query
// parameter; a location_id in the body is ignored.
func ValidateCreate(ev Event) (CreatePayload, error) {
	customerID := ev.PathParam(ParamCustomerID)
	if customerID == "" {
		return CreatePayload{}, fail(msgMissingCustomerID)
	}

	b, verr := decodeBody(ev)
	if verr != nil {
		return CreatePayload{}, verr
	}

	locationID := ev.QueryParam(ParamLocationID)
	if locationID == "" {
		return CreatePayload{}, fail(msgMissingLocationID)
	}

	fields, verr := validateFields(b)
	if verr != nil {
		return CreatePayload{}, verr
	}

	return CreatePayload{
		CustomerID: customerID,
		LocationID: locationID,
		Fields:     fields,
	}, nil
}

// ValidateUpdate checks an update request.
func ValidateUpdate(ev Event) (UpdatePayload, error) {
	orderID, verr := requiredOrderID(ev)
	if verr != nil {
		return UpdatePayload{}, verr
	}

	customerID := ev.PathParam(ParamCustomerID)
	if customerID == "" {
		return UpdatePayload{}, fail(msgMissingCustomerID)
	}

	b, verr := decodeBody(ev)
	if verr != nil {
		return UpdatePayload{}, verr
	}

	fields, verr := validateFields(b)
	if verr != nil {
		return UpdatePayload{}, verr
	}

	return UpdatePayload{
		OrderID:    orderID,
		CustomerID: customerID,
		Fields:     fields,
	}, nil
}

// ValidateDelete checks a delete request. Missing parameters are reported before a
// malformed id.
func ValidateDelete(ev Event) (DeletePayload, error) {
	rawID := ev.PathParam(ParamOrderID)
	if rawID == "" {
		return DeletePayload{}, fail(msgMissingOrderID)
	}

	customerID := ev.PathParam(ParamCustomerID)
	if customerID == "" {
		return DeletePayload{}, fail(msgMissingCustomerID)
	}

	orderID, err := ParseIdentifier(ParamOrderID, rawID)
	if err != nil {
		return DeletePayload{}, fail(msgInvalidOrderID)
	}

	return DeletePayload{OrderID: orderID, CustomerID: customerID}, nil
}

// ValidateGet checks a read request. locationId only applies when no id is given.
func ValidateGet(ev Event) (GetPayload, error) {
	customerID := ev.PathParam(ParamCustomerID)
	if customerID == "" {
		return GetPayload{}, fail(msgMissingCustomerID)
	}

	p := GetPayload{CustomerID: customerID}

	if rawID := ev.PathParam(ParamOrderID); rawID != "" {
		orderID, err := ParseIdentifier(ParamOrderID, rawID)
		if err != nil {
			return GetPayload{}, fail(msgInvalidOrderID)
		}
		p.OrderID = orders.Some(orderID)
		return p, nil
	}

	if locationID := ev.QueryParam(ParamLocationID); locationID != "" {
		p.LocationID = orders.Some(locationID)
	}
	return p, nil
}

func requiredOrderID(ev Event) (uuid.UUID, *Error) {
	rawID := ev.PathParam(ParamOrderID)
	if rawID == "" {
		return uuid.Nil, fail(msgMissingOrderID)
	}
	orderID, err := ParseIdentifier(ParamOrderID, rawID)
	if err != nil {
		return uuid.Nil, fail(msgInvalidOrderID)
	}
	return orderID, nil
}

// validateFields runs the checks shared by create and update, stopping at the first
// violation: required keys, identifiers, date and time, duration, free text.
func validateFields(b body) (orders.OrderFields, *Error) {
	var f orders.OrderFields

	for _, name := range []string{fieldUnitID, fieldActionID} {
		if !b.has(name) {
			return f, failf("Missing required field: %s", name)
		}
	}

	var verr *Error
	if f.UnitID, verr = requiredIdentifier(b, fieldUnitID); verr != nil {
		return f, verr
	}
	if f.ActionID, verr = requiredIdentifier(b, fieldActionID); verr != nil {
		return f, verr
	}
	if f.EmployeeID, verr = optionalIdentifier(b, fieldEmployeeID); verr != nil {
		return f, verr
	}

	if f.ServiceDate, verr = optionalFormatted(b, fieldServiceDate, ValidateDate); verr != nil {
		return f, verr
	}
	if f.ServiceTime, verr = optionalFormatted(b, fieldServiceTime, ValidateTime); verr != nil {
		return f, verr
	}

	if b.has(fieldServiceDuration) {
		minutes, err := ParseDuration(fieldServiceDuration, b.value(fieldServiceDuration))
		if err != nil {
			return f, fail("service_duration must be an integer")
		}
		f.ServiceDuration = orders.Some(minutes)
	}

	if f.ServiceStatus, verr = optionalText(b, fieldServiceStatus); verr != nil {
		return f, verr
	}
	if f.ServiceNotes, verr = optionalText(b, fieldServiceNotes); verr != nil {
		return f, verr
	}

	return f, nil
}

func invalidIdentifier(field string) *Error {
	return failf("Invalid UUID format for %s", field)
}

// requiredIdentifier parses a key known to be present. Empty and null are invalid.
func requiredIdentifier(b body, field string) (uuid.UUID, *Error) {
	s, ok := b.str(field)
	if !ok {
		return uuid.Nil, invalidIdentifier(field)
	}
	id, err := ParseIdentifier(field, s)
	if err != nil {
		return uuid.Nil, invalidIdentifier(field)
	}
	return id, nil
}

// optionalIdentifier treats a missing or null value as absent and an empty one as
// Some(uuid.Nil), so an update can clear the stored id.
func optionalIdentifier(b body, field string) (orders.Optional[uuid.UUID], *Error) {
	if !b.present(field) {
		return orders.None[uuid.UUID](), nil
	}
	s, ok := b.str(field)
	if !ok {
		return orders.None[uuid.UUID](), invalidIdentifier(field)
	}
	if s == "" {
		return orders.Some(uuid.Nil), nil
	}
	id, err := ParseIdentifier(field, s)
	if err != nil {
		return orders.None[uuid.UUID](), invalidIdentifier(field)
	}
	return orders.Some(id), nil
}

// optionalFormatted runs check on a string field. Missing and null are absent.
func optionalFormatted(b body, field string, check func(string, *string) error) (orders.Optional[string], *Error) {
	if !b.present(field) {
		return orders.None[string](), nil
	}
	s, ok := b.str(field)
	if !ok || check(field, &s) != nil {
		return orders.None[string](), failf("Invalid ISO 8601 format for %s", field)
	}
	return orders.Some(s), nil
}

func optionalText(b body, field string) (orders.Optional[string], *Error) {
	if !b.present(field) {
		return orders.None[string](), nil
	}
	s, ok := b.str(field)
	if !ok {
		return orders.None[string](), failf("%s must be a string", field)
	}
	return orders.Some(s), nil
}
