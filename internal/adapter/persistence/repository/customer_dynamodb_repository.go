package repository

import (
	"context"
	"sort"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	defaultOrdersTableName    = "orders"
	customersNameIndex        = "name-index"
	ordersCustomerIDIndex     = "customer_id-index"
)

type customerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Company   string `dynamodbav:"company,omitempty"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone"`
	Document  string `dynamodbav:"document,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// CustomerDynamoRepository persists customers without their orders.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name)
type CustomerDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb dynamoAPI) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{table: newDynamoTable(ddb, "CUSTOMERS_TABLE", defaultCustomersTableName)}
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	raws, err := r.table.scanAll(ctx, "list customers", nil)
	if err != nil {
		return nil, err
	}
	return decodeAll("list customers", raws, fromCustomerItem)
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	var it customerItem
	found, err := r.table.get(ctx, "get customer", id, &it)
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

// FindByName returns the oldest customer with exactly this name.
func (r *CustomerDynamoRepository) FindByName(ctx context.Context, name string) (entities.Customer, error) {
	if name == "" {
		return entities.Customer{}, nil
	}
	raws, err := r.table.queryIndex(ctx, "find customer by name", customersNameIndex, "name", name)
	if err != nil {
		return entities.Customer{}, err
	}
	customers, err := decodeAll("find customer by name", raws, fromCustomerItem)
	if err != nil || len(customers) == 0 {
		return entities.Customer{}, err
	}
	sort.SliceStable(customers, func(i, j int) bool { return customers[i].CreatedAt.Before(customers[j].CreatedAt) })
	return customers[0], nil
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if err := r.table.insert(ctx, "create customer", toCustomerItem(c)); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	found, err := r.table.replace(ctx, "update customer", toCustomerItem(c))
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, "delete customer", id)
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Document:  c.Document,
		Address:   c.Address,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:        it.ID,
		Name:      it.Name,
		Company:   it.Company,
		Email:     it.Email,
		Phone:     it.Phone,
		Document:  it.Document,
		Address:   it.Address,
		Orders:    []entities.Order{},
		CreatedAt: parseTime(it.CreatedAt),
	}
}

type orderLineItem struct {
	ItemID    string `dynamodbav:"item_id"`
	Name      string `dynamodbav:"name"`
	Type      string `dynamodbav:"type"`
	Quantity  int    `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
	Total     string `dynamodbav:"total"`
}

type orderItem struct {
	ID         string          `dynamodbav:"id"`
	CustomerID string          `dynamodbav:"customer_id"`
	BudgetID   string          `dynamodbav:"budget_id,omitempty"`
	Date       string          `dynamodbav:"date"`
	Status     string          `dynamodbav:"status"`
	Items      []orderLineItem `dynamodbav:"items"`
	TotalValue string          `dynamodbav:"total_value"`
	Notes      string          `dynamodbav:"notes,omitempty"`
	CreatedAt  string          `dynamodbav:"created_at"`
}

// OrderDynamoRepository reads orders and moves their status. New orders are
// written by FulfillmentDynamoRepository.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
type OrderDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb dynamoAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{table: newDynamoTable(ddb, "ORDERS_TABLE", defaultOrdersTableName)}
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	raws, err := r.table.scanAll(ctx, "list orders", nil)
	if err != nil {
		return nil, err
	}
	return decodeAll("list orders", raws, fromOrderItem)
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var it orderItem
	found, err := r.table.get(ctx, "get order", id, &it)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error) {
	raws, err := r.table.queryIndex(ctx, "list customer orders", ordersCustomerIDIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	return decodeAll("list customer orders", raws, fromOrderItem)
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	out, err := r.table.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.table.name),
		Key:                      idKey(id),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		UpdateExpression:         aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Order{}, nil
		}
		return entities.Order{}, entities.NewPersistenceError("update order status", err)
	}
	orders, err := decodeAll("update order status", []rawItem{out.Attributes}, fromOrderItem)
	if err != nil {
		return entities.Order{}, err
	}
	return orders[0], nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, "delete order", id)
}

func toOrderLines(items []entities.OrderItem) []orderLineItem {
	out := make([]orderLineItem, 0, len(items))
	for _, i := range items {
		out = append(out, orderLineItem{
			ItemID:    i.ItemID,
			Name:      i.Name,
			Type:      string(i.Type),
			Quantity:  i.Quantity,
			UnitPrice: floatToString(i.UnitPrice),
			Total:     floatToString(i.Total),
		})
	}
	return out
}

func fromOrderLines(lines []orderLineItem) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(lines))
	for _, l := range lines {
		out = append(out, entities.OrderItem{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Type:      entities.ItemType(l.Type),
			Quantity:  l.Quantity,
			UnitPrice: stringToFloat(l.UnitPrice),
			Total:     stringToFloat(l.Total),
		})
	}
	return out
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		BudgetID:   o.BudgetID,
		Date:       o.Date,
		Status:     string(o.Status),
		Items:      toOrderLines(o.Items),
		TotalValue: floatToString(o.TotalValue),
		Notes:      o.Notes,
		CreatedAt:  formatTime(o.CreatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		BudgetID:   it.BudgetID,
		Date:       it.Date,
		Status:     entities.OrderStatus(it.Status),
		Items:      fromOrderLines(it.Items),
		TotalValue: stringToFloat(it.TotalValue),
		Notes:      it.Notes,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
