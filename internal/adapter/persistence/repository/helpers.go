package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"bahia_gestao/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoAPI is the subset of *dynamodb.Client the repositories use.
type dynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, opts ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, opts ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchGetItem(ctx context.Context, in *dynamodb.BatchGetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, opts ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

type rawItem = map[string]types.AttributeValue

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func idKey(id string) rawItem {
	return rawItem{"id": &types.AttributeValueMemberS{Value: id}}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// conditionFailed reports whether err is a failed ConditionExpression and
// returns the stored item when the request asked for it.
func conditionFailed(err error) (rawItem, bool) {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return cfe.Item, true
	}
	return nil, false
}

// dynamoTable holds the single-table operations every repository shares.
// Every table has a string partition key named id.
type dynamoTable struct {
	ddb  dynamoAPI
	name string
}

func newDynamoTable(ddb dynamoAPI, envKey, def string) dynamoTable {
	return dynamoTable{ddb: ddb, name: getenvDefault(envKey, def)}
}

// insert puts item only when its id is unused.
func (t dynamoTable) insert(ctx context.Context, op string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return entities.NewPersistenceError(op, err)
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if _, ok := conditionFailed(err); ok {
		return fmt.Errorf("%w: %s id already exists", entities.ErrConflict, t.name)
	}
	return entities.NewPersistenceError(op, err)
}

// replace overwrites an existing item. found is false when the id is unknown.
func (t dynamoTable) replace(ctx context.Context, op string, item any) (found bool, err error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, entities.NewPersistenceError(op, err)
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(t.name),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return false, nil
		}
		return false, entities.NewPersistenceError(op, err)
	}
	return true, nil
}

// get loads the item with id into out. found is false when it does not exist.
func (t dynamoTable) get(ctx context.Context, op, id string, out any) (found bool, err error) {
	res, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, entities.NewPersistenceError(op, err)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, entities.NewPersistenceError(op, err)
	}
	return true, nil
}

func (t dynamoTable) delete(ctx context.Context, op, id string) error {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       idKey(id),
	})
	return entities.NewPersistenceError(op, err)
}

// scanAll reads the whole table, following pagination.
func (t dynamoTable) scanAll(ctx context.Context, op string, in *dynamodb.ScanInput) ([]rawItem, error) {
	if in == nil {
		in = &dynamodb.ScanInput{}
	}
	in.TableName = aws.String(t.name)
	var items []rawItem
	for {
		out, err := t.ddb.Scan(ctx, in)
		if err != nil {
			return nil, entities.NewPersistenceError(op, err)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// queryIndex reads every item of a GSI whose partition key attr equals value.
func (t dynamoTable) queryIndex(ctx context.Context, op, index, attr, value string) ([]rawItem, error) {
	in := &dynamodb.QueryInput{
		TableName:                aws.String(t.name),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	var items []rawItem
	for {
		out, err := t.ddb.Query(ctx, in)
		if err != nil {
			return nil, entities.NewPersistenceError(op, err)
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// decodeAll unmarshals raw items into T and maps them to domain values.
func decodeAll[T any, E any](op string, raws []rawItem, conv func(T) E) ([]E, error) {
	out := make([]E, 0, len(raws))
	for _, raw := range raws {
		var it T
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, entities.NewPersistenceError(op, err)
		}
		out = append(out, conv(it))
	}
	return out, nil
}
