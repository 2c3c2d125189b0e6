package changes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imrishuroy/go-serviceorder-api/internal/orders"
)

// Type names a service order change.
type Type string

const (
	TypeCreated Type = "service_order.created"
	TypeUpdated Type = "service_order.updated"
	TypeDeleted Type = "service_order.deleted"
)

// Valid reports whether t is one of the known change types.
func (t Type) Valid() bool {
	switch t {
	case TypeCreated, TypeUpdated, TypeDeleted:
		return true
	}
	return false
}

// ErrInvalidEvent is returned by Decode for messages that are not change events.
var ErrInvalidEvent = errors.New("invalid change event")

// Event is the message published after a successful write.
type Event struct {
	EventType  Type                    `json:"event_type"`
	OrderID    uuid.UUID               `json:"order_id"`
	CustomerID string                  `json:"customer_id"`
	LocationID orders.Optional[string] `json:"location_id,omitzero"`
	OccurredAt string                  `json:"occurred_at"`
}

// NewEvent stamps an event with the given time.
func NewEvent(t Type, orderID uuid.UUID, customerID string, locationID orders.Optional[string], at time.Time) Event {
	return Event{
		EventType:  t,
		OrderID:    orderID,
		CustomerID: customerID,
		LocationID: locationID,
		OccurredAt: orders.FormatTimestamp(at),
	}
}

// Decode parses a message body and checks the event type and keys.
func Decode(body string) (Event, error) {
	var ev Event
	if err := json.Unmarshal([]byte(body), &ev); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if !ev.EventType.Valid() {
		return Event{}, fmt.Errorf("%w: unknown event_type %q", ErrInvalidEvent, ev.EventType)
	}
	if ev.OrderID == uuid.Nil || ev.CustomerID == "" {
		return Event{}, fmt.Errorf("%w: missing order_id or customer_id", ErrInvalidEvent)
	}
	return ev, nil
}

// Sender puts one message on a queue. *aws.Publisher implements it.
type Sender interface {
	Send(ctx context.Context, messageBody string, attributes map[string]string) (string, error)
}

// Publisher serializes change events onto the events queue.
type Publisher struct {
	sender Sender
}

// NewPublisher returns a Publisher writing through sender.
func NewPublisher(sender Sender) *Publisher {
	return &Publisher{sender: sender}
}

// Publish sends ev with its type and ids copied into message attributes so
// subscribers can filter without parsing the body.
func (p *Publisher) Publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}

	attrs := map[string]string{
		"event_type":  string(ev.EventType),
		"order_id":    ev.OrderID.String(),
		"customer_id": ev.CustomerID,
	}
	if loc, ok := ev.LocationID.Get(); ok {
		attrs["location_id"] = loc
	}

	if _, err := p.sender.Send(ctx, string(body), attrs); err != nil {
		return fmt.Errorf("publish %s for %s: %w", ev.EventType, ev.OrderID, err)
	}
	return nil
}
