package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBudgetsTableName = "budgets"

type budgetItem struct {
	ID              string          `dynamodbav:"id"`
	CustomerID      string          `dynamodbav:"customer_id,omitempty"`
	CustomerName    string          `dynamodbav:"customer_name"`
	CustomerEmail   string          `dynamodbav:"customer_email,omitempty"`
	CustomerPhone   string          `dynamodbav:"customer_phone,omitempty"`
	CustomerAddress string          `dynamodbav:"customer_address,omitempty"`
	Date            string          `dynamodbav:"date"`
	ValidityDate    string          `dynamodbav:"validity_date"`
	Status          string          `dynamodbav:"status"`
	Items           []orderLineItem `dynamodbav:"items"`
	TotalValue      string          `dynamodbav:"total_value"`
	Discount        string          `dynamodbav:"discount"`
	Notes           string          `dynamodbav:"notes,omitempty"`
	WarrantyNotes   string          `dynamodbav:"warranty_notes,omitempty"`
	PaymentTerms    string          `dynamodbav:"payment_terms,omitempty"`
	PaymentMethod   string          `dynamodbav:"payment_method,omitempty"`
	Signature       string          `dynamodbav:"signature,omitempty"`
	OrderID         string          `dynamodbav:"order_id,omitempty"`
	CreatedAt       string          `dynamodbav:"created_at"`
	UpdatedAt       string          `dynamodbav:"updated_at"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The read-only rule and the status machine are enforced with condition
// expressions so a concurrent approval cannot be overwritten.
type BudgetDynamoRepository struct {
	table dynamoTable
	now   func() time.Time
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb dynamoAPI) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		table: newDynamoTable(ddb, "BUDGETS_TABLE", defaultBudgetsTableName),
		now:   time.Now,
	}
}

func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.Budget, error) {
	raws, err := r.table.scanAll(ctx, "list budgets", nil)
	if err != nil {
		return nil, err
	}
	return decodeAll("list budgets", raws, fromBudgetItem)
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	var it budgetItem
	found, err := r.table.get(ctx, "get budget", id, &it)
	if err != nil || !found {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	if err := r.table.insert(ctx, "create budget", toBudgetItem(b)); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

// Update replaces the stored budget unless it is approved or converted.
// An unknown id yields a zero Budget.
func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, entities.NewPersistenceError("update budget", err)
	}
	_, err = r.table.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table.name),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id) AND NOT #status IN (:approved, :converted)"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved":  &types.AttributeValueMemberS{Value: string(entities.BudgetStatusApproved)},
			":converted": &types.AttributeValueMemberS{Value: string(entities.BudgetStatusConverted)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if stored, ok := conditionFailed(err); ok {
			if len(stored) == 0 {
				return entities.Budget{}, nil
			}
			return entities.Budget{}, fmt.Errorf("%w: budget %s", entities.ErrReadOnly, b.ID)
		}
		return entities.Budget{}, entities.NewPersistenceError("update budget", err)
	}
	return b, nil
}

// UpdateStatus moves the budget to status when its stored status is one of
// from. A stored budget in another status yields entities.ErrInvalidTransition.
func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id string, to entities.BudgetStatus, from []entities.BudgetStatus) (entities.Budget, error) {
	if len(from) == 0 {
		return entities.Budget{}, fmt.Errorf("%w: no source status for %s", entities.ErrInvalidTransition, to)
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
	}
	placeholders := make([]string, 0, len(from))
	for i, s := range from {
		key := ":from" + strconv.Itoa(i)
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
		placeholders = append(placeholders, key)
	}

	out, err := r.table.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.table.name),
		Key:                                 idKey(id),
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status IN (" + strings.Join(placeholders, ", ") + ")"),
		UpdateExpression:                    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames:            map[string]string{"#id": "id", "#status": "status", "#updated_at": "updated_at"},
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if stored, ok := conditionFailed(err); ok {
			if len(stored) == 0 {
				return entities.Budget{}, nil
			}
			current, _ := stored["status"].(*types.AttributeValueMemberS)
			cur := ""
			if current != nil {
				cur = current.Value
			}
			return entities.Budget{}, fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, cur, to)
		}
		return entities.Budget{}, entities.NewPersistenceError("update budget status", err)
	}
	budgets, err := decodeAll("update budget status", []rawItem{out.Attributes}, fromBudgetItem)
	if err != nil {
		return entities.Budget{}, err
	}
	return budgets[0], nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, "delete budget", id)
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		CustomerAddress: b.CustomerAddress,
		Date:            b.Date,
		ValidityDate:    b.ValidityDate,
		Status:          string(b.Status),
		Items:           toOrderLines(b.Items),
		TotalValue:      floatToString(b.TotalValue),
		Discount:        floatToString(b.Discount),
		Notes:           b.Notes,
		WarrantyNotes:   b.WarrantyNotes,
		PaymentTerms:    b.PaymentTerms,
		PaymentMethod:   b.PaymentMethod,
		Signature:       b.Signature,
		OrderID:         b.OrderID,
		CreatedAt:       formatTime(b.CreatedAt),
		UpdatedAt:       formatTime(b.UpdatedAt),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	return entities.Budget{
		ID:              it.ID,
		CustomerID:      it.CustomerID,
		CustomerName:    it.CustomerName,
		CustomerEmail:   it.CustomerEmail,
		CustomerPhone:   it.CustomerPhone,
		CustomerAddress: it.CustomerAddress,
		Date:            it.Date,
		ValidityDate:    it.ValidityDate,
		Status:          entities.BudgetStatus(it.Status),
		Items:           fromOrderLines(it.Items),
		TotalValue:      stringToFloat(it.TotalValue),
		Discount:        stringToFloat(it.Discount),
		Notes:           it.Notes,
		WarrantyNotes:   it.WarrantyNotes,
		PaymentTerms:    it.PaymentTerms,
		PaymentMethod:   it.PaymentMethod,
		Signature:       it.Signature,
		OrderID:         it.OrderID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
