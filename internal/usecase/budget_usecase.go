package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/pricing"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const defaultValidityDays = 7

var (
	ErrBudgetNotFound          = fmt.Errorf("budget %w", entities.ErrNotFound)
	ErrBudgetReadOnly          = fmt.Errorf("%w: budget is approved or converted", entities.ErrReadOnly)
	ErrInvalidBudgetTransition = fmt.Errorf("%w for budget", entities.ErrInvalidTransition)
	ErrBudgetWithoutItems      = fmt.Errorf("%w: budget needs at least one item", entities.ErrValidation)
	ErrBudgetChanged           = fmt.Errorf("%w: budget was edited during approval, reload and retry", entities.ErrConflict)
)

// BudgetInput is the editable part of a budget. Items are catalog references;
// new ones get snapshotted at the current price, unchanged ones keep the price
// they were quoted at.
type BudgetInput struct {
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	Date            string
	ValidityDate    string
	Items           []ItemRef
	Discount        float64
	Notes           string
	WarrantyNotes   string
	PaymentTerms    string
	PaymentMethod   string
	Signature       string
}

// IBudgetUseCase exposes the budget lifecycle:
//
//	draft -> sent -> approved | rejected, approved -> converted
//
// Approval generates the order, decrements stock and links the customer.
type IBudgetUseCase interface {
	List(ctx context.Context) ([]entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Create(ctx context.Context, in BudgetInput) (entities.Budget, error)
	Update(ctx context.Context, id string, in BudgetInput) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	Send(ctx context.Context, id string) (entities.Budget, error)
	Approve(ctx context.Context, id string) (entities.Budget, error)
	Reject(ctx context.Context, id string) (entities.Budget, error)
	Convert(ctx context.Context, id string) (entities.Budget, error)
	RenderPDF(ctx context.Context, id, userID string) ([]byte, error)
}

type BudgetUseCase struct {
	repo        interfaces.IBudgetRepository
	catalog     catalogLookup
	customers   interfaces.ICustomerRepository
	fulfillment interfaces.IFulfillmentRepository
	guard       interfaces.IOperationGuard
	users       interfaces.IUserRepository
	renderer    interfaces.IBudgetRenderer
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

type BudgetDeps struct {
	Budgets     interfaces.IBudgetRepository
	Products    interfaces.IProductRepository
	Services    interfaces.IServiceRepository
	Customers   interfaces.ICustomerRepository
	Fulfillment interfaces.IFulfillmentRepository
	Guard       interfaces.IOperationGuard
	Users       interfaces.IUserRepository
	Renderer    interfaces.IBudgetRenderer
}

func NewBudgetUseCase(d BudgetDeps) *BudgetUseCase {
	return &BudgetUseCase{
		repo:        d.Budgets,
		catalog:     catalogLookup{products: d.Products, services: d.Services},
		customers:   d.Customers,
		fulfillment: d.Fulfillment,
		guard:       d.Guard,
		users:       d.Users,
		renderer:    d.Renderer,
	}
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	budgets, err := u.repo.List(ctx)
	return budgets, logPersistence("budget", "list", err)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.Budget{}, err
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, logPersistence("budget", "get", err)
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

// snapshot prices the referenced items through a scratch cart so repeated
// products share one stock check. A ref that matches an item already on the
// budget (same item, type and quantity) keeps the stored line untouched;
// only new or changed lines read the live catalog.
func (u *BudgetUseCase) snapshot(ctx context.Context, refs []ItemRef, existing []entities.OrderItem) ([]entities.OrderItem, error) {
	if len(refs) == 0 {
		return nil, ErrBudgetWithoutItems
	}
	items := make([]entities.OrderItem, len(refs))
	kept := make([]bool, len(refs))
	used := make([]bool, len(existing))
	cart := pricing.NewCart("", "", clock())
	for i, ref := range refs {
		for j, item := range existing {
			if used[j] || item.ItemID != ref.ItemID || item.Type != ref.Type || item.Quantity != ref.Quantity {
				continue
			}
			used[j] = true
			kept[i] = true
			items[i] = item
			cart.Items = append(cart.Items, item)
			break
		}
	}
	for i, ref := range refs {
		if kept[i] {
			continue
		}
		entry, err := u.catalog.entry(ctx, ref)
		if err != nil {
			return nil, err
		}
		item, err := cart.AddItem(entry, ref.Quantity, clock())
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

// apply validates in and writes it onto b. Lines already on b keep their
// snapshot.
func (u *BudgetUseCase) apply(ctx context.Context, b *entities.Budget, in BudgetInput) error {
	b.CustomerID = strings.TrimSpace(in.CustomerID)
	b.CustomerName = strings.TrimSpace(in.CustomerName)
	if b.CustomerName == "" && b.CustomerID != "" {
		c, err := u.customers.GetByID(ctx, b.CustomerID)
		if err != nil {
			return logPersistence("budget", "customer lookup", err)
		}
		b.CustomerName = c.Name
	}
	if b.CustomerName == "" {
		return entities.ValidationError("customer_name", "is required")
	}
	if in.Discount < 0 {
		return entities.ValidationError("discount", "must not be negative")
	}

	b.Date = strings.TrimSpace(in.Date)
	if b.Date == "" {
		b.Date = today()
	}
	if !validDate(b.Date) {
		return entities.ValidationError("date", "must be YYYY-MM-DD")
	}
	b.ValidityDate = strings.TrimSpace(in.ValidityDate)
	if b.ValidityDate == "" {
		d, _ := time.Parse("2006-01-02", b.Date)
		b.ValidityDate = d.AddDate(0, 0, defaultValidityDays).Format("2006-01-02")
	}
	if !validDate(b.ValidityDate) {
		return entities.ValidationError("validity_date", "must be YYYY-MM-DD")
	}

	items, err := u.snapshot(ctx, in.Items, b.Items)
	if err != nil {
		return err
	}
	b.Items = items
	b.Discount = in.Discount
	b.TotalValue = pricing.BudgetTotal(items, in.Discount)
	b.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	b.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	b.CustomerAddress = strings.TrimSpace(in.CustomerAddress)
	b.Notes = in.Notes
	b.WarrantyNotes = in.WarrantyNotes
	b.PaymentTerms = in.PaymentTerms
	b.PaymentMethod = in.PaymentMethod
	b.Signature = in.Signature
	return nil
}

func (u *BudgetUseCase) Create(ctx context.Context, in BudgetInput) (entities.Budget, error) {
	b := entities.Budget{ID: uuid.NewString(), Status: entities.BudgetStatusDraft}
	if err := u.apply(ctx, &b, in); err != nil {
		return entities.Budget{}, err
	}
	b.CreatedAt = clock()
	b.UpdatedAt = b.CreatedAt

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Budget{}, logPersistence("budget", "create", err)
	}
	log.Printf("[budget][usecase] created budget_id=%s total=%.2f", created.ID, created.TotalValue)
	return created, nil
}

// Update rewrites an editable budget. Approved and converted budgets are
// read-only.
func (u *BudgetUseCase) Update(ctx context.Context, id string, in BudgetInput) (entities.Budget, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if current.Status.ReadOnly() {
		return entities.Budget{}, ErrBudgetReadOnly
	}
	next := current
	if err := u.apply(ctx, &next, in); err != nil {
		return entities.Budget{}, err
	}
	next.UpdatedAt = clock()

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		if errors.Is(err, entities.ErrReadOnly) {
			return entities.Budget{}, ErrBudgetReadOnly
		}
		return entities.Budget{}, logPersistence("budget", "update", err)
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return logPersistence("budget", "delete", u.repo.Delete(ctx, id))
}

func (u *BudgetUseCase) Send(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusSent)
}

func (u *BudgetUseCase) Reject(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusRejected)
}

// Convert marks an approved budget as converted.
func (u *BudgetUseCase) Convert(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusConverted)
}

func allowedFrom(to entities.BudgetStatus) []entities.BudgetStatus {
	var from []entities.BudgetStatus
	for _, s := range []entities.BudgetStatus{
		entities.BudgetStatusDraft,
		entities.BudgetStatusSent,
		entities.BudgetStatusApproved,
		entities.BudgetStatusRejected,
		entities.BudgetStatusConverted,
	} {
		if s.CanTransition(to) {
			from = append(from, s)
		}
	}
	return from
}

func (u *BudgetUseCase) transition(ctx context.Context, id string, to entities.BudgetStatus) (entities.Budget, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if !current.Status.CanTransition(to) {
		log.Printf("[budget][usecase] transition rejected budget_id=%s from=%s to=%s", current.ID, current.Status, to)
		return entities.Budget{}, ErrInvalidBudgetTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, to, allowedFrom(to))
	if err != nil {
		if errors.Is(err, entities.ErrInvalidTransition) {
			return entities.Budget{}, ErrInvalidBudgetTransition
		}
		return entities.Budget{}, logPersistence("budget", "update status", err)
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	log.Printf("[budget][usecase] status changed budget_id=%s from=%s to=%s", updated.ID, current.Status, to)
	return updated, nil
}

// Approve turns the budget into an order. Status change, order, customer and
// stock decrements are written in a single commit. Approving an approved or
// converted budget returns it unchanged.
func (u *BudgetUseCase) Approve(ctx context.Context, id string) (entities.Budget, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.Budget{}, err
	}
	key := "budget:approve:" + id
	token, ok, err := u.guard.Acquire(ctx, key)
	if err != nil {
		return entities.Budget{}, logPersistence("budget", "guard", err)
	}
	if !ok {
		return entities.Budget{}, ErrOperationInProgress
	}
	defer func() {
		if err := u.guard.Release(context.WithoutCancel(ctx), key, token); err != nil {
			log.Printf("[budget][usecase] guard release failed budget_id=%s err=%v", id, err)
		}
	}()

	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	log.Printf("[budget][usecase] approve start budget_id=%s status=%s", b.ID, b.Status)
	if b.Status.ReadOnly() {
		return b, nil
	}
	if !b.Status.CanTransition(entities.BudgetStatusApproved) {
		return entities.Budget{}, ErrInvalidBudgetTransition
	}
	if len(b.Items) == 0 {
		return entities.Budget{}, ErrBudgetWithoutItems
	}

	_, decrements, err := u.catalog.liveStock(ctx, b.Items)
	if err != nil {
		return entities.Budget{}, err
	}

	customer, isNew, err := u.resolveCustomer(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}

	now := clock()
	order := entities.Order{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		BudgetID:   b.ID,
		Date:       today(),
		Status:     entities.OrderStatusCompleted,
		Items:      append([]entities.OrderItem(nil), b.Items...),
		TotalValue: b.TotalValue,
		Notes:      "Gerado a partir do orçamento #" + b.ID,
		CreatedAt:  now,
	}
	commit := interfaces.OrderCommit{Order: order, Decrements: decrements, ApproveBudgetID: b.ID, BudgetSeenAt: b.UpdatedAt}
	if isNew {
		commit.NewCustomer = &customer
	}

	if err := u.fulfillment.Commit(ctx, commit); err != nil {
		switch {
		case errors.Is(err, entities.ErrReadOnly):
			log.Printf("[budget][usecase] approve raced with another approval budget_id=%s", b.ID)
			return u.GetByID(ctx, b.ID)
		case errors.Is(err, entities.ErrInsufficientStock):
			log.Printf("[budget][usecase] approve rejected budget_id=%s err=%v", b.ID, err)
			return entities.Budget{}, err
		case errors.Is(err, entities.ErrConflict):
			log.Printf("[budget][usecase] approve aborted, budget edited concurrently budget_id=%s", b.ID)
			return entities.Budget{}, ErrBudgetChanged
		}
		return entities.Budget{}, logPersistence("budget", "approve commit", err)
	}

	b.Status = entities.BudgetStatusApproved
	b.OrderID = order.ID
	b.CustomerID = customer.ID
	b.UpdatedAt = now
	log.Printf("[budget][usecase] approve success budget_id=%s order_id=%s customer_id=%s new_customer=%t", b.ID, order.ID, customer.ID, isNew)
	return b, nil
}

// resolveCustomer finds the budget's customer by id, then by exact name. A
// missing customer is built from the budget snapshot with empty contacts.
func (u *BudgetUseCase) resolveCustomer(ctx context.Context, b entities.Budget) (entities.Customer, bool, error) {
	if b.CustomerID != "" {
		c, err := u.customers.GetByID(ctx, b.CustomerID)
		if err != nil {
			return entities.Customer{}, false, logPersistence("budget", "customer lookup", err)
		}
		if c.ID != "" {
			return c, false, nil
		}
	}
	c, err := u.customers.FindByName(ctx, b.CustomerName)
	if err != nil {
		return entities.Customer{}, false, logPersistence("budget", "customer lookup", err)
	}
	if c.ID != "" {
		return c, false, nil
	}
	return entities.Customer{
		ID:        uuid.NewString(),
		Name:      b.CustomerName,
		Orders:    []entities.Order{},
		CreatedAt: clock(),
	}, true, nil
}

// RenderPDF prints the budget with the company data of the requesting user.
func (u *BudgetUseCase) RenderPDF(ctx context.Context, id, userID string) ([]byte, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var settings entities.UserSettings
	if strings.TrimSpace(userID) != "" {
		account, err := u.users.GetByID(ctx, userID)
		if err != nil {
			return nil, logPersistence("budget", "settings lookup", err)
		}
		settings = account.Settings
	}
	doc, err := u.renderer.Render(b, settings)
	if err != nil {
		log.Printf("[budget][usecase] render failed budget_id=%s err=%v", b.ID, err)
		return nil, err
	}
	return doc, nil
}
