package metrics

import (
	"context"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/imrishuroy/go-serviceorder-api/internal/aws"
)

// CloudWatch metric names, one per change type.
const (
	MetricCreated = "ServiceOrderCreated"
	MetricUpdated = "ServiceOrderUpdated"
	MetricDeleted = "ServiceOrderDeleted"
)

const dimensionCustomer = "CustomerId"

// CloudWatchRecorder writes Count data points to a CloudWatch namespace.
type CloudWatchRecorder struct {
	client    aws.CloudWatchAPI
	namespace string
}

// NewCloudWatchRecorder returns a recorder bound to namespace.
func NewCloudWatchRecorder(client aws.CloudWatchAPI, namespace string) *CloudWatchRecorder {
	return &CloudWatchRecorder{client: client, namespace: namespace}
}

// Count records one occurrence of metric for a customer at ts.
func (r *CloudWatchRecorder) Count(ctx context.Context, metric, customerID string, ts time.Time) error {
	datum := cwtypes.MetricDatum{
		MetricName: sdkaws.String(metric),
		Timestamp:  sdkaws.Time(ts),
		Unit:       cwtypes.StandardUnitCount,
		Value:      sdkaws.Float64(1),
	}
	if customerID != "" {
		datum.Dimensions = []cwtypes.Dimension{{
			Name:  sdkaws.String(dimensionCustomer),
			Value: sdkaws.String(customerID),
		}}
	}

	_, err := r.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  sdkaws.String(r.namespace),
		MetricData: []cwtypes.MetricDatum{datum},
	})
	if err != nil {
		return fmt.Errorf("put metric %s: %w", metric, err)
	}
	return nil
}
