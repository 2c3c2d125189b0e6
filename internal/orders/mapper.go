package orders

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrCorruptRecord is returned when a stored item cannot be rendered. Items are
// validated before they are written, so this always indicates an internal fault.
var ErrCorruptRecord = errors.New("corrupt service order record")

// Build assembles the item for a newly created service order. Optional fields are
// copied only when present and non-empty; locationID is only set for creates.
func Build(orderID uuid.UUID, customerID string, fields OrderFields, locationID Optional[string], createdAt string) StoredOrder {
	o := StoredOrder{
		OrderID:    orderID.String(),
		CustomerID: customerID,
		UnitID:     fields.UnitID.String(),
		ActionID:   fields.ActionID.String(),
		CreatedAt:  createdAt,
	}

	if presentString(locationID) {
		o.LocationID = locationID.Ptr()
	}
	if presentString(fields.ServiceDate) {
		o.ServiceDate = fields.ServiceDate.Ptr()
	}
	if presentString(fields.ServiceTime) {
		o.ServiceTime = fields.ServiceTime.Ptr()
	}
	if fields.ServiceDuration.IsSet() {
		o.ServiceDuration = fields.ServiceDuration.Ptr()
	}
	if presentString(fields.ServiceStatus) {
		o.ServiceStatus = fields.ServiceStatus.Ptr()
	}
	if id, ok := fields.EmployeeID.Get(); ok && id != uuid.Nil {
		s := id.String()
		o.EmployeeID = &s
	}
	if presentString(fields.ServiceNotes) {
		o.ServiceNotes = fields.ServiceNotes.Ptr()
	}
	return o
}

// NewPatch returns the attributes an update request writes. Every field present in
// the request is written, including empty ones, so an empty value clears what was
// stored; Render hides empty values. unit_id and action_id are always included.
func NewPatch(fields OrderFields) Patch {
	p := Patch{
		{Name: AttrUnitID, Value: fields.UnitID.String()},
		{Name: AttrActionID, Value: fields.ActionID.String()},
	}
	if v, ok := fields.ServiceDate.Get(); ok {
		p = append(p, Attribute{Name: AttrServiceDate, Value: v})
	}
	if v, ok := fields.ServiceTime.Get(); ok {
		p = append(p, Attribute{Name: AttrServiceTime, Value: v})
	}
	if v, ok := fields.ServiceDuration.Get(); ok {
		p = append(p, Attribute{Name: AttrServiceDuration, Value: v})
	}
	if v, ok := fields.ServiceStatus.Get(); ok {
		p = append(p, Attribute{Name: AttrServiceStatus, Value: v})
	}
	if v, ok := fields.EmployeeID.Get(); ok {
		p = append(p, Attribute{Name: AttrEmployeeID, Value: employeeIDValue(v)})
	}
	if v, ok := fields.ServiceNotes.Get(); ok {
		p = append(p, Attribute{Name: AttrServiceNotes, Value: v})
	}
	return p
}

// employeeIDValue maps the nil UUID, which stands for an empty employee_id, to "".
func employeeIDValue(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

// Render converts a stored item into its response shape.
func Render(o StoredOrder) (Response, error) {
	orderID, err := parseStoredID(AttrOrderID, o.OrderID)
	if err != nil {
		return Response{}, err
	}
	unitID, err := parseStoredID(AttrUnitID, o.UnitID)
	if err != nil {
		return Response{}, err
	}
	actionID, err := parseStoredID(AttrActionID, o.ActionID)
	if err != nil {
		return Response{}, err
	}

	r := Response{
		OrderID:    orderID,
		CustomerID: o.CustomerID,
		UnitID:     unitID,
		ActionID:   actionID,
		CreatedAt:  o.CreatedAt,
	}

	if o.EmployeeID != nil && *o.EmployeeID != "" {
		employeeID, err := parseStoredID(AttrEmployeeID, *o.EmployeeID)
		if err != nil {
			return Response{}, err
		}
		r.EmployeeID = Some(employeeID)
	}

	r.LocationID = nonEmpty(o.LocationID)
	r.ServiceDate = nonEmpty(o.ServiceDate)
	r.ServiceTime = nonEmpty(o.ServiceTime)
	r.ServiceDuration = FromPtr(o.ServiceDuration)
	r.ServiceStatus = nonEmpty(o.ServiceStatus)
	r.ServiceNotes = nonEmpty(o.ServiceNotes)
	r.UpdatedAt = nonEmpty(o.UpdatedAt)
	r.DeletedAt = nonEmpty(o.DeletedAt)

	return r, nil
}

// RenderAll renders every item, failing on the first corrupt one.
func RenderAll(items []StoredOrder) ([]Response, error) {
	out := make([]Response, 0, len(items))
	for _, it := range items {
		r, err := Render(it)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseStoredID(attr, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s=%q: %v", ErrCorruptRecord, attr, raw, err)
	}
	return id, nil
}

func nonEmpty(p *string) Optional[string] {
	if p == nil || *p == "" {
		return None[string]()
	}
	return Some(*p)
}
