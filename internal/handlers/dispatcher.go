//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_store.go -package=mocks
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-serviceorder-api/internal/changes"
	"github.com/imrishuroy/go-serviceorder-api/internal/metrics"
	"github.com/imrishuroy/go-serviceorder-api/internal/orders"
	"github.com/imrishuroy/go-serviceorder-api/internal/validation"
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgNotFound         = "Service order not found"
	msgInternal         = "Internal server error"
)

// Operation labels for logs and the internal error counter.
const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
	opGet    = "get"
	opList   = "list"
)

// OrderStore persists service orders. *orders.Store implements it.
type OrderStore interface {
	Put(ctx context.Context, o orders.StoredOrder) (orders.StoredOrder, error)
	GetByKey(ctx context.Context, orderID, customerID string) (*orders.StoredOrder, error)
	Update(ctx context.Context, orderID, customerID string, patch orders.Patch) (*orders.StoredOrder, error)
	MarkDeleted(ctx context.Context, orderID, customerID string) (bool, error)
	QueryByCustomer(ctx context.Context, customerID, locationID string) ([]orders.StoredOrder, error)
}

// Notifier announces successful writes. *changes.Publisher implements it.
type Notifier interface {
	Publish(ctx context.Context, ev changes.Event) error
}

// Dispatcher routes one API request to the matching service order operation and
// turns the outcome into an API Gateway response. It keeps no state between requests.
type Dispatcher struct {
	store    OrderStore
	notifier Notifier
	log      *zap.Logger
	newID    func() uuid.UUID
	nowFunc  func() time.Time
}

// NewDispatcher returns a Dispatcher. notifier may be nil to disable change notifications.
func NewDispatcher(store OrderStore, notifier Notifier, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		store:    store,
		notifier: notifier,
		log:      log,
		newID:    uuid.New,
		nowFunc:  time.Now,
	}
}

// Handle is the Lambda entry point for API Gateway proxy integrations.
func (d *Dispatcher) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return d.Dispatch(ctx, FromProxyRequest(req)), nil
}

// Dispatch runs a single request. It never returns an error: every failure becomes a
// response, and a panic anywhere below becomes a 500.
func (d *Dispatcher) Dispatch(ctx context.Context, ev validation.Event) (resp events.APIGatewayProxyResponse) {
	log := d.log.With(
		zap.String("method", ev.Method),
		zap.String("resource", ev.Resource),
		zap.String("request_id", ev.RequestID),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic while handling request", zap.Any("panic", r), zap.Stack("stack"))
			resp = errorResponse(http.StatusInternalServerError, msgInternal)
		}
		metrics.RequestsTotal.WithLabelValues(methodLabel(ev.Method), strconv.Itoa(resp.StatusCode)).Inc()
		log.Debug("request handled", zap.Int("status", resp.StatusCode))
	}()

	switch ev.Method {
	case http.MethodOptions:
		return emptyResponse(http.StatusOK)
	case http.MethodPost:
		return d.create(ctx, log, ev)
	case http.MethodPut:
		return d.update(ctx, log, ev)
	case http.MethodDelete:
		return d.delete(ctx, log, ev)
	case http.MethodGet:
		return d.get(ctx, log, ev)
	default:
		log.Info("method not allowed")
		return errorResponse(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}
}

func (d *Dispatcher) create(ctx context.Context, log *zap.Logger, ev validation.Event) events.APIGatewayProxyResponse {
	p, err := validation.ValidateCreate(ev)
	if err != nil {
		return d.invalid(log, opCreate, err)
	}

	rec := orders.Build(d.newID(), p.CustomerID, p.Fields, orders.Some(p.LocationID), orders.FormatTimestamp(d.nowFunc()))
	saved, err := d.store.Put(ctx, rec)
	if err != nil {
		return d.internal(log, opCreate, err)
	}

	out, err := orders.Render(saved)
	if err != nil {
		return d.internal(log, opCreate, err)
	}

	d.notify(ctx, log, changes.TypeCreated, out)
	return jsonResponse(http.StatusCreated, out)
}

func (d *Dispatcher) update(ctx context.Context, log *zap.Logger, ev validation.Event) events.APIGatewayProxyResponse {
	p, err := validation.ValidateUpdate(ev)
	if err != nil {
		return d.invalid(log, opUpdate, err)
	}

	updated, err := d.store.Update(ctx, p.OrderID.String(), p.CustomerID, orders.NewPatch(p.Fields))
	if errors.Is(err, orders.ErrNotFound) || (err == nil && updated == nil) {
		return d.notFound(log, opUpdate)
	}
	if err != nil {
		return d.internal(log, opUpdate, err)
	}

	out, err := orders.Render(*updated)
	if err != nil {
		return d.internal(log, opUpdate, err)
	}

	d.notify(ctx, log, changes.TypeUpdated, out)
	return jsonResponse(http.StatusOK, out)
}

func (d *Dispatcher) delete(ctx context.Context, log *zap.Logger, ev validation.Event) events.APIGatewayProxyResponse {
	p, err := validation.ValidateDelete(ev)
	if err != nil {
		return d.invalid(log, opDelete, err)
	}

	deleted, err := d.store.MarkDeleted(ctx, p.OrderID.String(), p.CustomerID)
	if err != nil {
		return d.internal(log, opDelete, err)
	}
	if !deleted {
		return d.notFound(log, opDelete)
	}

	d.notify(ctx, log, changes.TypeDeleted, orders.Response{OrderID: p.OrderID, CustomerID: p.CustomerID})
	return emptyResponse(http.StatusNoContent)
}

func (d *Dispatcher) get(ctx context.Context, log *zap.Logger, ev validation.Event) events.APIGatewayProxyResponse {
	p, err := validation.ValidateGet(ev)
	if err != nil {
		return d.invalid(log, opGet, err)
	}

	if orderID, ok := p.OrderID.Get(); ok {
		rec, err := d.store.GetByKey(ctx, orderID.String(), p.CustomerID)
		if err != nil {
			return d.internal(log, opGet, err)
		}
		if rec == nil {
			return d.notFound(log, opGet)
		}
		out, err := orders.Render(*rec)
		if err != nil {
			return d.internal(log, opGet, err)
		}
		return jsonResponse(http.StatusOK, out)
	}

	locationID, _ := p.LocationID.Get()
	recs, err := d.store.QueryByCustomer(ctx, p.CustomerID, locationID)
	if err != nil {
		return d.internal(log, opList, err)
	}
	out, err := orders.RenderAll(recs)
	if err != nil {
		return d.internal(log, opList, err)
	}
	return jsonResponse(http.StatusOK, out)
}

func (d *Dispatcher) invalid(log *zap.Logger, op string, err error) events.APIGatewayProxyResponse {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		return d.internal(log, op, err)
	}
	log.Info("request rejected", zap.String("operation", op), zap.String("reason", verr.Message))
	return errorResponse(http.StatusBadRequest, verr.Message)
}

func (d *Dispatcher) notFound(log *zap.Logger, op string) events.APIGatewayProxyResponse {
	log.Info("service order not found", zap.String("operation", op))
	return errorResponse(http.StatusNotFound, msgNotFound)
}

func (d *Dispatcher) internal(log *zap.Logger, op string, err error) events.APIGatewayProxyResponse {
	metrics.InternalErrorsTotal.WithLabelValues(op).Inc()
	log.Error("service order operation failed", zap.String("operation", op), zap.Error(err))
	return errorResponse(http.StatusInternalServerError, msgInternal)
}

// notify publishes a change event. Failures are logged and counted only.
func (d *Dispatcher) notify(ctx context.Context, log *zap.Logger, t changes.Type, o orders.Response) {
	if d.notifier == nil {
		return
	}
	ev := changes.NewEvent(t, o.OrderID, o.CustomerID, o.LocationID, d.nowFunc())
	if err := d.notifier.Publish(ctx, ev); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		log.Warn("change notification failed", zap.String("event_type", string(t)), zap.Error(err))
	}
}

func methodLabel(m string) string {
	switch m {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return m
	}
	return "OTHER"
}
