package repository

import (
	"context"
	"sort"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsBudgetIDIndex    = "budget_id-index"
)

type budgetPaymentItem struct {
	ID             string                 `dynamodbav:"id"`
	BudgetID       string                 `dynamodbav:"budget_id"`
	Amount         string                 `dynamodbav:"amount"`
	Date           string                 `dynamodbav:"date"`
	Status         string                 `dynamodbav:"status"`
	ProviderStatus string                 `dynamodbav:"provider_status,omitempty"`
	MPPayload      map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw   string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BudgetPaymentDynamoRepository persists BudgetPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id)
type BudgetPaymentDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IBudgetPaymentRepository = (*BudgetPaymentDynamoRepository)(nil)

func NewBudgetPaymentDynamoRepository(ddb dynamoAPI) *BudgetPaymentDynamoRepository {
	return &BudgetPaymentDynamoRepository{table: newDynamoTable(ddb, "PAYMENTS_TABLE", defaultPaymentsTableName)}
}

func (r *BudgetPaymentDynamoRepository) Create(ctx context.Context, p entities.BudgetPayment) (entities.BudgetPayment, error) {
	if err := r.table.insert(ctx, "create budget payment", toBudgetPaymentItem(p)); err != nil {
		return entities.BudgetPayment{}, err
	}
	return p, nil
}

func (r *BudgetPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BudgetPayment, error) {
	var it budgetPaymentItem
	found, err := r.table.get(ctx, "get budget payment", id, &it)
	if err != nil || !found {
		return entities.BudgetPayment{}, err
	}
	return fromBudgetPaymentItem(it), nil
}

// ListByBudgetID returns the payments of a budget, oldest first.
func (r *BudgetPaymentDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetPayment, error) {
	raws, err := r.table.queryIndex(ctx, "list budget payments", paymentsBudgetIDIndex, "budget_id", budgetID)
	if err != nil {
		return nil, err
	}
	payments, err := decodeAll("list budget payments", raws, fromBudgetPaymentItem)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].Date.Before(payments[j].Date) })
	return payments, nil
}

func toBudgetPaymentItem(p entities.BudgetPayment) budgetPaymentItem {
	return budgetPaymentItem{
		ID:             p.ID,
		BudgetID:       p.BudgetID,
		Amount:         floatToString(p.Amount),
		Date:           formatTime(p.Date),
		Status:         string(p.Status),
		ProviderStatus: p.ProviderStatus,
		MPPayload:      p.ProviderPayload,
		MPPayloadRaw:   string(p.ProviderPayloadRaw),
	}
}

func fromBudgetPaymentItem(it budgetPaymentItem) entities.BudgetPayment {
	p := entities.BudgetPayment{
		ID:              it.ID,
		BudgetID:        it.BudgetID,
		Amount:          stringToFloat(it.Amount),
		Date:            parseTime(it.Date),
		Status:          entities.PaymentStatus(it.Status),
		ProviderStatus:  it.ProviderStatus,
		ProviderPayload: it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.MPPayloadRaw)
	}
	return p
}
