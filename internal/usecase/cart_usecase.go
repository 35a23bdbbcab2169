package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/pricing"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrCartNotFound = fmt.Errorf("cart %w", entities.ErrNotFound)

// CheckoutInput carries the order-level fields chosen at checkout.
type CheckoutInput struct {
	CustomerID  string
	Date        string
	Notes       string
	Adjustments pricing.Adjustments
}

// ICartUseCase is the order engine: carts are built item by item and
// committed into an order.
type ICartUseCase interface {
	Create(ctx context.Context, customerID string) (*pricing.Cart, error)
	Get(ctx context.Context, id string) (*pricing.Cart, error)
	AddItem(ctx context.Context, id string, ref ItemRef) (*pricing.Cart, error)
	RemoveItem(ctx context.Context, id string, index int) (*pricing.Cart, error)
	Checkout(ctx context.Context, id string, in CheckoutInput) (entities.Order, error)
	Discard(ctx context.Context, id string) (*pricing.Cart, error)
}

type CartUseCase struct {
	carts       interfaces.ICartStore
	catalog     catalogLookup
	customers   interfaces.ICustomerRepository
	fulfillment interfaces.IFulfillmentRepository
	guard       interfaces.IOperationGuard
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(
	carts interfaces.ICartStore,
	products interfaces.IProductRepository,
	services interfaces.IServiceRepository,
	customers interfaces.ICustomerRepository,
	fulfillment interfaces.IFulfillmentRepository,
	guard interfaces.IOperationGuard,
) *CartUseCase {
	return &CartUseCase{
		carts:       carts,
		catalog:     catalogLookup{products: products, services: services},
		customers:   customers,
		fulfillment: fulfillment,
		guard:       guard,
	}
}

func (u *CartUseCase) Create(ctx context.Context, customerID string) (*pricing.Cart, error) {
	cart := pricing.NewCart(uuid.NewString(), strings.TrimSpace(customerID), clock())
	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, logPersistence("cart", "create", err)
	}
	log.Printf("[cart][usecase] created cart_id=%s customer_id=%s", cart.ID, cart.CustomerID)
	return cart, nil
}

func (u *CartUseCase) Get(ctx context.Context, id string) (*pricing.Cart, error) {
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	cart, err := u.carts.Get(ctx, id)
	if err != nil {
		return nil, logPersistence("cart", "get", err)
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// lockCart serializes every write on one cart, checkout included, so an
// edit can never land on a cart that was committed meanwhile.
func (u *CartUseCase) lockCart(ctx context.Context, id string) (func(), error) {
	key := "cart:write:" + id
	token, ok, err := u.guard.Acquire(ctx, key)
	if err != nil {
		return nil, logPersistence("cart", "guard", err)
	}
	if !ok {
		return nil, ErrOperationInProgress
	}
	return func() {
		if err := u.guard.Release(context.WithoutCancel(ctx), key, token); err != nil {
			log.Printf("[cart][usecase] guard release failed cart_id=%s err=%v", id, err)
		}
	}, nil
}

// AddItem snapshots the live catalog entry. Stock is checked against what
// the cart already holds but nothing is reserved.
func (u *CartUseCase) AddItem(ctx context.Context, id string, ref ItemRef) (*pricing.Cart, error) {
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	unlock, err := u.lockCart(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cart.Open() {
		return nil, pricing.ErrCartClosed
	}
	entry, err := u.catalog.entry(ctx, ref)
	if err != nil {
		return nil, err
	}
	if _, err := cart.AddItem(entry, ref.Quantity, clock()); err != nil {
		log.Printf("[cart][usecase] add-item rejected cart_id=%s item_id=%s err=%v", cart.ID, ref.ItemID, err)
		return nil, err
	}
	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, logPersistence("cart", "save", err)
	}
	return cart, nil
}

func (u *CartUseCase) RemoveItem(ctx context.Context, id string, index int) (*pricing.Cart, error) {
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	unlock, err := u.lockCart(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cart.RemoveItem(index, clock()); err != nil {
		return nil, err
	}
	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, logPersistence("cart", "save", err)
	}
	return cart, nil
}

// Checkout re-validates stock against the live catalog and commits the order
// with its stock decrements in one atomic write. The cart is closed only
// after the write succeeded.
func (u *CartUseCase) Checkout(ctx context.Context, id string, in CheckoutInput) (entities.Order, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.Order{}, err
	}
	unlock, err := u.lockCart(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	defer unlock()

	cart, err := u.Get(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !cart.Open() {
		return entities.Order{}, pricing.ErrCartClosed
	}
	if len(cart.Items) == 0 {
		return entities.Order{}, pricing.ErrCartEmpty
	}

	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		customerID = cart.CustomerID
	}
	if customerID == "" {
		return entities.Order{}, entities.ValidationError("customer_id", "is required")
	}
	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.Order{}, logPersistence("cart", "customer lookup", err)
	}
	if customer.ID == "" {
		return entities.Order{}, ErrCustomerNotFound
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = today()
	}
	if !validDate(date) {
		return entities.Order{}, entities.ValidationError("date", "must be YYYY-MM-DD")
	}

	_, decrements, err := u.catalog.liveStock(ctx, cart.Items)
	if err != nil {
		return entities.Order{}, err
	}

	totals := cart.Totals(in.Adjustments)
	now := clock()
	order := entities.Order{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Date:       date,
		Status:     entities.OrderStatusCompleted,
		Items:      append([]entities.OrderItem(nil), cart.Items...),
		TotalValue: totals.Total,
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  now,
	}

	log.Printf("[cart][usecase] checkout commit cart_id=%s order_id=%s items=%d total=%.2f", cart.ID, order.ID, len(order.Items), order.TotalValue)
	if err := u.fulfillment.Commit(ctx, interfaces.OrderCommit{Order: order, Decrements: decrements}); err != nil {
		if errors.Is(err, entities.ErrInsufficientStock) {
			log.Printf("[cart][usecase] checkout rejected cart_id=%s err=%v", cart.ID, err)
			return entities.Order{}, err
		}
		return entities.Order{}, logPersistence("cart", "commit", err)
	}

	if err := cart.MarkCommitted(order.ID, now); err != nil {
		return entities.Order{}, err
	}
	if err := u.carts.Save(ctx, cart); err != nil {
		// The order exists; a stale open cart is reported but not rolled back.
		log.Printf("[cart][usecase] cart close failed after commit cart_id=%s order_id=%s err=%v", cart.ID, order.ID, err)
	}
	log.Printf("[cart][usecase] checkout success cart_id=%s order_id=%s", cart.ID, order.ID)
	return order, nil
}

func (u *CartUseCase) Discard(ctx context.Context, id string) (*pricing.Cart, error) {
	id, err := requireID(id)
	if err != nil {
		return nil, err
	}
	unlock, err := u.lockCart(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cart, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := cart.Discard(clock()); err != nil {
		return nil, err
	}
	if err := u.carts.Save(ctx, cart); err != nil {
		return nil, logPersistence("cart", "save", err)
	}
	return cart, nil
}
