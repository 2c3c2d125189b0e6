package orders

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// mockDynamo is a small in-memory table keyed on PK+SK. It understands exactly the
// expressions the Store emits: plain "SET #a = :a, ..." updates, the three condition
// expressions, and the customer query with an optional location filter.
// Queries return at most pageSize items per page so pagination is exercised.
type mockDynamo struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	pageSize int

	putCalls    int
	updateCalls int
	queryCalls  int

	// err, when set, is returned by every call.
	err error
}

func newMockDynamo() *mockDynamo {
	return &mockDynamo{
		items:    map[string]map[string]types.AttributeValue{},
		pageSize: 1,
	}
}

func strAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func mockKey(item map[string]types.AttributeValue) string {
	return strAttr(item, "PK") + "|" + strAttr(item, "SK")
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func conditionHolds(cond *string, existing map[string]types.AttributeValue) bool {
	if cond == nil {
		return true
	}
	switch *cond {
	case condNotExists:
		return existing == nil
	case condExists:
		return existing != nil
	case condExistsNotGone:
		if existing == nil {
			return false
		}
		_, gone := existing["deleted_at"]
		return !gone
	}
	return true
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCalls++
	if m.err != nil {
		return nil, m.err
	}
	k := mockKey(params.Item)
	if !conditionHolds(params.ConditionExpression, m.items[k]) {
		return nil, &types.ConditionalCheckFailedException{}
	}
	m.items[k] = copyItem(params.Item)
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	item, ok := m.items[mockKey(params.Key)]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: copyItem(item)}, nil
}

func (m *mockDynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	if m.err != nil {
		return nil, m.err
	}
	k := mockKey(params.Key)
	existing := m.items[k]
	if !conditionHolds(params.ConditionExpression, existing) {
		return nil, &types.ConditionalCheckFailedException{}
	}
	if existing == nil {
		return nil, errors.New("mock: upsert not supported")
	}

	item := copyItem(existing)
	clauses := strings.Split(strings.TrimPrefix(*params.UpdateExpression, "SET "), ", ")
	for _, c := range clauses {
		parts := strings.SplitN(c, " = ", 2)
		if len(parts) != 2 {
			return nil, errors.New("mock: unsupported update expression")
		}
		name := parts[0]
		if strings.HasPrefix(name, "#") {
			name = params.ExpressionAttributeNames[name]
		}
		item[name] = params.ExpressionAttributeValues[parts[1]]
	}
	m.items[k] = item

	out := &dyn.UpdateItemOutput{}
	if params.ReturnValues == types.ReturnValueAllNew {
		out.Attributes = copyItem(item)
	}
	return out, nil
}

func (m *mockDynamo) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryCalls++
	if m.err != nil {
		return nil, m.err
	}
	customer := params.ExpressionAttributeValues[":customer_id"].(*types.AttributeValueMemberS).Value

	var keys []string
	for k, item := range m.items {
		if strAttr(item, "SK") == customer {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	start := 0
	if params.ExclusiveStartKey != nil {
		after := mockKey(params.ExclusiveStartKey)
		for start < len(keys) && keys[start] <= after {
			start++
		}
	}
	end := start + m.pageSize
	if end > len(keys) {
		end = len(keys)
	}

	out := &dyn.QueryOutput{}
	for _, k := range keys[start:end] {
		item := m.items[k]
		if params.FilterExpression != nil {
			want := params.ExpressionAttributeValues[":location_id"].(*types.AttributeValueMemberS).Value
			if strAttr(item, "location_id") != want {
				continue
			}
		}
		out.Items = append(out.Items, copyItem(item))
	}
	if end < len(keys) {
		last := m.items[keys[end-1]]
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"PK": last["PK"],
			"SK": last["SK"],
		}
	}
	return out, nil
}
