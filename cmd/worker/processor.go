package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-serviceorder-api/internal/changes"
	"github.com/imrishuroy/go-serviceorder-api/internal/metrics"
)

// Recorder records one occurrence of a metric. *metrics.CloudWatchRecorder implements it.
type Recorder interface {
	Count(ctx context.Context, metric, customerID string, ts time.Time) error
}

var metricByType = map[changes.Type]string{
	changes.TypeCreated: metrics.MetricCreated,
	changes.TypeUpdated: metrics.MetricUpdated,
	changes.TypeDeleted: metrics.MetricDeleted,
}

// Processor turns service order change events into CloudWatch counts.
type Processor struct {
	recorder Recorder
	log      *zap.Logger
	nowFunc  func() time.Time
}

// NewProcessor creates a new worker processor.
func NewProcessor(recorder Recorder, log *zap.Logger) *Processor {
	return &Processor{
		recorder: recorder,
		log:      log,
		nowFunc:  time.Now,
	}
}

// Handle receives an SQS batch and reports the ids of records that failed so only
// those are redelivered. Requires ReportBatchItemFailures on the event source mapping.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			p.log.Error("worker error", zap.String("message_id", rec.MessageId), zap.Error(err))
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: rec.MessageId,
			})
		}
	}
	return resp, nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	ev, err := changes.Decode(rec.Body)
	if err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, ev.OccurredAt)
	if err != nil {
		ts = p.nowFunc()
	}

	p.log.Debug("received change event",
		zap.String("event_type", string(ev.EventType)),
		zap.String("order_id", ev.OrderID.String()),
		zap.String("customer_id", ev.CustomerID))

	if err := p.recorder.Count(ctx, metricByType[ev.EventType], ev.CustomerID, ts); err != nil {
		return fmt.Errorf("record %s: %w", ev.EventType, err)
	}
	return nil
}
