package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/imrishuroy/go-serviceorder-api/internal/aws"
)

// Condition expressions used by the store.
const (
	condNotExists     = "attribute_not_exists(PK)"
	condExists        = "attribute_exists(PK)"
	condExistsNotGone = "attribute_exists(PK) AND attribute_not_exists(deleted_at)"
)

var (
	// ErrNotFound is returned by Update when no item exists for the order/customer pair.
	ErrNotFound = errors.New("service order not found")
	// ErrAlreadyExists is returned by Put when the order id is already taken.
	ErrAlreadyExists = errors.New("service order already exists")
)

// Store encapsulates operations on the service orders table.
type Store struct {
	client        aws.DynamoDBAPI
	tableName     string
	customerIndex string
	nowFunc       func() time.Time
}

// NewStore creates a new service orders Store. customerIndex is the GSI keyed on SK
// used for per-customer queries.
func NewStore(client aws.DynamoDBAPI, tableName, customerIndex string) *Store {
	return &Store{
		client:        client,
		tableName:     tableName,
		customerIndex: customerIndex,
		nowFunc:       time.Now,
	}
}

// Put writes a new service order. It refuses to overwrite an existing order id.
func (s *Store) Put(ctx context.Context, o StoredOrder) (StoredOrder, error) {
	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		return StoredOrder{}, fmt.Errorf("marshal service order: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: sdkaws.String(condNotExists),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return StoredOrder{}, fmt.Errorf("%w: %s", ErrAlreadyExists, o.OrderID)
		}
		return StoredOrder{}, fmt.Errorf("put item: %w", err)
	}
	return o, nil
}

// GetByKey fetches a service order by order id and customer id. Returns (nil, nil) if not found.
func (s *Store) GetByKey(ctx context.Context, orderID, customerID string) (*StoredOrder, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key:       itemKey(orderID, customerID),
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var o StoredOrder
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal service order: %w", err)
	}
	return &o, nil
}

// Update applies patch to an existing service order and refreshes updated_at in a single
// conditional UpdateItem. Attributes not in the patch are left as they are.
// Returns ErrNotFound if the order does not exist for this customer.
func (s *Store) Update(ctx context.Context, orderID, customerID string, patch Patch) (*StoredOrder, error) {
	attrs := append(Patch{{Name: AttrUpdatedAt, Value: FormatTimestamp(s.nowFunc())}}, patch...)

	expr, names, values, err := setExpression(attrs)
	if err != nil {
		return nil, err
	}

	out, err := s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName:                 &s.tableName,
		Key:                       itemKey(orderID, customerID),
		UpdateExpression:          &expr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ConditionExpression:       sdkaws.String(condExists),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}

	var o StoredOrder
	if err := attributevalue.UnmarshalMap(out.Attributes, &o); err != nil {
		return nil, fmt.Errorf("unmarshal service order: %w", err)
	}
	return &o, nil
}

// MarkDeleted sets deleted_at on a service order. The item is kept.
// Returns false if the order does not exist for this customer or is already deleted.
func (s *Store) MarkDeleted(ctx context.Context, orderID, customerID string) (bool, error) {
	expr, names, values, err := setExpression(Patch{{Name: AttrDeletedAt, Value: FormatTimestamp(s.nowFunc())}})
	if err != nil {
		return false, err
	}

	_, err = s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName:                 &s.tableName,
		Key:                       itemKey(orderID, customerID),
		UpdateExpression:          &expr,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ConditionExpression:       sdkaws.String(condExistsNotGone),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, fmt.Errorf("mark deleted: %w", err)
	}
	return true, nil
}

// QueryByCustomer returns every service order of a customer, optionally restricted to a
// location. All result pages are read before returning.
func (s *Store) QueryByCustomer(ctx context.Context, customerID, locationID string) ([]StoredOrder, error) {
	input := &dyn.QueryInput{
		TableName:              &s.tableName,
		IndexName:              &s.customerIndex,
		KeyConditionExpression: sdkaws.String("SK = :customer_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	}
	if locationID != "" {
		input.FilterExpression = sdkaws.String("location_id = :location_id")
		input.ExpressionAttributeValues[":location_id"] = &types.AttributeValueMemberS{Value: locationID}
	}

	result := make([]StoredOrder, 0)
	paginator := dyn.NewQueryPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query by customer: %w", err)
		}
		var items []StoredOrder
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal service orders: %w", err)
		}
		result = append(result, items...)
	}
	return result, nil
}

func itemKey(orderID, customerID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrOrderID:    &types.AttributeValueMemberS{Value: orderID},
		AttrCustomerID: &types.AttributeValueMemberS{Value: customerID},
	}
}

// setExpression builds "SET #a = :a, #b = :b" with placeholders for every attribute,
// so reserved words never reach the expression.
func setExpression(attrs Patch) (string, map[string]string, map[string]types.AttributeValue, error) {
	names := make(map[string]string, len(attrs))
	values := make(map[string]types.AttributeValue, len(attrs))
	expr := "SET "
	for i, a := range attrs {
		av, err := attributevalue.Marshal(a.Value)
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal %s: %w", a.Name, err)
		}
		if i > 0 {
			expr += ", "
		}
		expr += "#" + a.Name + " = :" + a.Name
		names["#"+a.Name] = a.Name
		values[":"+a.Name] = av
	}
	return expr, names, values, nil
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException"
}
