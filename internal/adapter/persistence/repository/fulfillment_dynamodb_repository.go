package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const maxTransactActions = 100

// ErrCommitTooLarge is returned when an order would need more writes than a
// single DynamoDB transaction accepts.
var ErrCommitTooLarge = fmt.Errorf("%w: order touches more than %d items", entities.ErrValidation, maxTransactActions-3)

type actionKind int

const (
	actionDecrement actionKind = iota
	actionOrder
	actionCustomer
	actionBudget
)

type commitAction struct {
	kind      actionKind
	productID string
	name      string
	requested int
}

// FulfillmentDynamoRepository writes an order, its stock decrements, an
// optional new customer and an optional budget approval in one
// TransactWriteItems call.
type FulfillmentDynamoRepository struct {
	ddb       dynamoAPI
	products  string
	orders    string
	customers string
	budgets   string
	now       func() time.Time
}

var _ interfaces.IFulfillmentRepository = (*FulfillmentDynamoRepository)(nil)

func NewFulfillmentDynamoRepository(ddb dynamoAPI) *FulfillmentDynamoRepository {
	return &FulfillmentDynamoRepository{
		ddb:       ddb,
		products:  getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		orders:    getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		customers: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
		budgets:   getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
		now:       time.Now,
	}
}

func (r *FulfillmentDynamoRepository) Commit(ctx context.Context, c interfaces.OrderCommit) error {
	now := formatTime(r.now())
	var (
		writes  []types.TransactWriteItem
		actions []commitAction
	)

	for _, d := range c.Decrements {
		if d.Quantity <= 0 {
			continue
		}
		writes = append(writes, types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(r.products),
			Key:                 idKey(d.ProductID),
			ConditionExpression: aws.String("attribute_exists(#id) AND #stock >= :n"),
			UpdateExpression:    aws.String("SET #stock = #stock - :n, #last_updated = :now"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id", "#stock": "stock", "#last_updated": "last_updated",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":n":   &types.AttributeValueMemberN{Value: strconv.Itoa(d.Quantity)},
				":now": &types.AttributeValueMemberS{Value: now},
			},
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		}})
		actions = append(actions, commitAction{kind: actionDecrement, productID: d.ProductID, name: d.Name, requested: d.Quantity})
	}

	orderAV, err := attributevalue.MarshalMap(toOrderItem(c.Order))
	if err != nil {
		return entities.NewPersistenceError("commit order", err)
	}
	writes = append(writes, types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.orders),
		Item:                     orderAV,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}})
	actions = append(actions, commitAction{kind: actionOrder})

	if c.NewCustomer != nil {
		customerAV, err := attributevalue.MarshalMap(toCustomerItem(*c.NewCustomer))
		if err != nil {
			return entities.NewPersistenceError("commit order", err)
		}
		writes = append(writes, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.customers),
			Item:                     customerAV,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
		actions = append(actions, commitAction{kind: actionCustomer})
	}

	if c.ApproveBudgetID != "" {
		writes = append(writes, types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(r.budgets),
			Key:                 idKey(c.ApproveBudgetID),
			ConditionExpression: aws.String("attribute_exists(#id) AND NOT #status IN (:approved, :converted) AND #updated_at = :seen"),
			UpdateExpression:    aws.String("SET #status = :approved, #order_id = :order_id, #customer_id = :customer_id, #updated_at = :now"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id", "#status": "status", "#order_id": "order_id",
				"#customer_id": "customer_id", "#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":approved":    &types.AttributeValueMemberS{Value: string(entities.BudgetStatusApproved)},
				":converted":   &types.AttributeValueMemberS{Value: string(entities.BudgetStatusConverted)},
				":order_id":    &types.AttributeValueMemberS{Value: c.Order.ID},
				":customer_id": &types.AttributeValueMemberS{Value: c.Order.CustomerID},
				":now":         &types.AttributeValueMemberS{Value: now},
				":seen":        &types.AttributeValueMemberS{Value: formatTime(c.BudgetSeenAt)},
			},
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		}})
		actions = append(actions, commitAction{kind: actionBudget})
	}

	if len(writes) > maxTransactActions {
		return ErrCommitTooLarge
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err == nil {
		return nil
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		if mapped := cancellationError(tce.CancellationReasons, actions, c.ApproveBudgetID); mapped != nil {
			return mapped
		}
	}
	return entities.NewPersistenceError("commit order", err)
}

// cancellationError turns the first failed condition into a domain error.
// Reasons are positional and match actions one to one.
func cancellationError(reasons []types.CancellationReason, actions []commitAction, budgetID string) error {
	for i, reason := range reasons {
		if i >= len(actions) || aws.ToString(reason.Code) != "ConditionalCheckFailed" {
			continue
		}
		a := actions[i]
		switch a.kind {
		case actionDecrement:
			return &entities.InsufficientStockError{
				ItemID:    a.productID,
				Name:      a.name,
				Available: storedStock(reason.Item),
				Requested: a.requested,
			}
		case actionOrder:
			return fmt.Errorf("%w: order id already exists", entities.ErrConflict)
		case actionCustomer:
			return fmt.Errorf("%w: customer id already exists", entities.ErrConflict)
		case actionBudget:
			if len(reason.Item) == 0 {
				return fmt.Errorf("%w: budget %s", entities.ErrNotFound, budgetID)
			}
			if status, ok := reason.Item["status"].(*types.AttributeValueMemberS); ok && entities.BudgetStatus(status.Value).ReadOnly() {
				return fmt.Errorf("%w: budget %s is already approved", entities.ErrReadOnly, budgetID)
			}
			return fmt.Errorf("%w: budget %s changed since it was read", entities.ErrConflict, budgetID)
		}
	}
	return nil
}

// storedStock reads stock from the old image. A deleted product has none left.
func storedStock(item rawItem) int {
	if len(item) == 0 {
		return 0
	}
	n, ok := item["stock"].(*types.AttributeValueMemberN)
	if !ok {
		return -1
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		return -1
	}
	return v
}
