package repository

import (
	"context"
	"sort"
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName = "products"
	defaultServicesTableName = "services"

	batchGetLimit = 100
)

type productItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Category    string `dynamodbav:"category"`
	Stock       int    `dynamodbav:"stock"`
	MinStock    int    `dynamodbav:"min_stock"`
	Cost        string `dynamodbav:"cost"`
	Price       string `dynamodbav:"price"`
	Supplier    string `dynamodbav:"supplier"`
	Batch       string `dynamodbav:"batch,omitempty"`
	ExpiryDate  string `dynamodbav:"expiry_date,omitempty"`
	EntryDate   string `dynamodbav:"entry_date,omitempty"`
	Image       string `dynamodbav:"image,omitempty"`
	Observation string `dynamodbav:"observation,omitempty"`
	LastUpdated string `dynamodbav:"last_updated"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// stock is a number attribute so the fulfillment commit can decrement it
// with a condition.
type ProductDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb dynamoAPI) *ProductDynamoRepository {
	return &ProductDynamoRepository{table: newDynamoTable(ddb, "PRODUCTS_TABLE", defaultProductsTableName)}
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	raws, err := r.table.scanAll(ctx, "list products", nil)
	if err != nil {
		return nil, err
	}
	return decodeAll("list products", raws, fromProductItem)
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	var it productItem
	found, err := r.table.get(ctx, "get product", id, &it)
	if err != nil || !found {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

// GetByIDs reads the products in batches. Unknown ids are absent from the map.
func (r *ProductDynamoRepository) GetByIDs(ctx context.Context, ids []string) (map[string]entities.Product, error) {
	seen := make(map[string]bool, len(ids))
	keys := make([]rawItem, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		keys = append(keys, idKey(id))
	}

	out := make(map[string]entities.Product, len(keys))
	for start := 0; start < len(keys); start += batchGetLimit {
		end := min(start+batchGetLimit, len(keys))
		request := map[string]types.KeysAndAttributes{
			r.table.name: {Keys: keys[start:end], ConsistentRead: aws.Bool(true)},
		}
		for len(request) > 0 {
			res, err := r.table.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, entities.NewPersistenceError("batch get products", err)
			}
			products, err := decodeAll("batch get products", res.Responses[r.table.name], fromProductItem)
			if err != nil {
				return nil, err
			}
			for _, p := range products {
				out[p.ID] = p
			}
			request = res.UnprocessedKeys
		}
	}
	return out, nil
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := r.table.insert(ctx, "create product", toProductItem(p)); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

// Update rewrites every attribute except stock.
func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, entities.NewPersistenceError("update product", err)
	}
	expr, names, values := setExpression(av, "id", "stock")
	// omitempty fields that were cleared must be removed explicitly.
	var removes []string
	for _, attr := range []string{"batch", "expiry_date", "entry_date", "image", "observation"} {
		if _, ok := av[attr]; !ok {
			names["#"+attr] = attr
			removes = append(removes, "#"+attr)
		}
	}
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}

	out, err := r.table.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table.name),
		Key:                       idKey(p.ID),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Product{}, nil
		}
		return entities.Product{}, entities.NewPersistenceError("update product", err)
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, entities.NewPersistenceError("update product", err)
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, "delete product", id)
}

// setExpression builds "SET #a = :a, ..." over the attributes of av, in a
// stable order, leaving out skip.
func setExpression(av rawItem, skip ...string) (string, map[string]string, map[string]types.AttributeValue) {
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}
	attrs := make([]string, 0, len(av))
	for k := range av {
		if !skipped[k] {
			attrs = append(attrs, k)
		}
	}
	sort.Strings(attrs)

	names := make(map[string]string, len(attrs))
	values := make(map[string]types.AttributeValue, len(attrs))
	parts := make([]string, 0, len(attrs))
	for _, k := range attrs {
		names["#"+k] = k
		values[":"+k] = av[k]
		parts = append(parts, "#"+k+" = :"+k)
	}
	return "SET " + strings.Join(parts, ", "), names, values
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Cost:        floatToString(p.Cost),
		Price:       floatToString(p.Price),
		Supplier:    p.Supplier,
		Batch:       p.Batch,
		ExpiryDate:  p.ExpiryDate,
		EntryDate:   p.EntryDate,
		Image:       p.Image,
		Observation: p.Observation,
		LastUpdated: formatTime(p.LastUpdated),
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Stock:       it.Stock,
		MinStock:    it.MinStock,
		Cost:        stringToFloat(it.Cost),
		Price:       stringToFloat(it.Price),
		Supplier:    it.Supplier,
		Batch:       it.Batch,
		ExpiryDate:  it.ExpiryDate,
		EntryDate:   it.EntryDate,
		Image:       it.Image,
		Observation: it.Observation,
		LastUpdated: parseTime(it.LastUpdated),
	}
}

type priceHistoryItem struct {
	Date  string `dynamodbav:"date"`
	Price string `dynamodbav:"price"`
}

type serviceItem struct {
	ID             string             `dynamodbav:"id"`
	Name           string             `dynamodbav:"name"`
	Category       string             `dynamodbav:"category"`
	Price          string             `dynamodbav:"price"`
	Cost           string             `dynamodbav:"cost"`
	Description    string             `dynamodbav:"description,omitempty"`
	EstimatedHours string             `dynamodbav:"estimated_hours"`
	Active         bool               `dynamodbav:"active"`
	PriceHistory   []priceHistoryItem `dynamodbav:"price_history"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ServiceDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb dynamoAPI) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{table: newDynamoTable(ddb, "SERVICES_TABLE", defaultServicesTableName)}
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	raws, err := r.table.scanAll(ctx, "list services", nil)
	if err != nil {
		return nil, err
	}
	return decodeAll("list services", raws, fromServiceItem)
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	var it serviceItem
	found, err := r.table.get(ctx, "get service", id, &it)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := r.table.insert(ctx, "create service", toServiceItem(s)); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	found, err := r.table.replace(ctx, "update service", toServiceItem(s))
	if err != nil || !found {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, "delete service", id)
}

func toServiceItem(s entities.Service) serviceItem {
	history := make([]priceHistoryItem, 0, len(s.PriceHistory))
	for _, h := range s.PriceHistory {
		history = append(history, priceHistoryItem{Date: formatTime(h.Date), Price: floatToString(h.Price)})
	}
	return serviceItem{
		ID:             s.ID,
		Name:           s.Name,
		Category:       s.Category,
		Price:          floatToString(s.Price),
		Cost:           floatToString(s.Cost),
		Description:    s.Description,
		EstimatedHours: floatToString(s.EstimatedHours),
		Active:         s.Active,
		PriceHistory:   history,
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	history := make([]entities.PriceHistoryItem, 0, len(it.PriceHistory))
	for _, h := range it.PriceHistory {
		history = append(history, entities.PriceHistoryItem{Date: parseTime(h.Date), Price: stringToFloat(h.Price)})
	}
	return entities.Service{
		ID:             it.ID,
		Name:           it.Name,
		Category:       it.Category,
		Price:          stringToFloat(it.Price),
		Cost:           stringToFloat(it.Cost),
		Description:    it.Description,
		EstimatedHours: stringToFloat(it.EstimatedHours),
		Active:         it.Active,
		PriceHistory:   history,
	}
}
