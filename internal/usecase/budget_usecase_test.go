package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"
	mock_interfaces "bahia_gestao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type budgetMocks struct {
	budgets     *mock_interfaces.MockIBudgetRepository
	products    *mock_interfaces.MockIProductRepository
	services    *mock_interfaces.MockIServiceRepository
	customers   *mock_interfaces.MockICustomerRepository
	fulfillment *mock_interfaces.MockIFulfillmentRepository
	guard       *mock_interfaces.MockIOperationGuard
	users       *mock_interfaces.MockIUserRepository
	renderer    *mock_interfaces.MockIBudgetRenderer
}

func newBudgetUseCaseForTest(ctrl *gomock.Controller) (*BudgetUseCase, budgetMocks) {
	m := budgetMocks{
		budgets:     mock_interfaces.NewMockIBudgetRepository(ctrl),
		products:    mock_interfaces.NewMockIProductRepository(ctrl),
		services:    mock_interfaces.NewMockIServiceRepository(ctrl),
		customers:   mock_interfaces.NewMockICustomerRepository(ctrl),
		fulfillment: mock_interfaces.NewMockIFulfillmentRepository(ctrl),
		guard:       mock_interfaces.NewMockIOperationGuard(ctrl),
		users:       mock_interfaces.NewMockIUserRepository(ctrl),
		renderer:    mock_interfaces.NewMockIBudgetRenderer(ctrl),
	}
	uc := NewBudgetUseCase(BudgetDeps{
		Budgets:     m.budgets,
		Products:    m.products,
		Services:    m.services,
		Customers:   m.customers,
		Fulfillment: m.fulfillment,
		Guard:       m.guard,
		Users:       m.users,
		Renderer:    m.renderer,
	})
	return uc, m
}

func sentBudget() entities.Budget {
	return entities.Budget{
		ID:           "b-1",
		CustomerName: "Padaria Central",
		Status:       entities.BudgetStatusSent,
		Items: []entities.OrderItem{
			{ItemID: "p-1", Name: "Cabo 2.5mm", Type: entities.ItemTypeProduct, Quantity: 2, UnitPrice: 10, Total: 20},
			{ItemID: "s-1", Name: "Instalação", Type: entities.ItemTypeService, Quantity: 1, UnitPrice: 100, Total: 100},
		},
		TotalValue: 110,
		Discount:   10,
	}
}

func expectGuard(m budgetMocks, key string) {
	m.guard.EXPECT().Acquire(gomock.Any(), key).Return("tok", true, nil)
	m.guard.EXPECT().Release(gomock.Any(), key, "tok").Return(nil)
}

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("snapshots items and defaults dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(cableProduct(10), nil).Times(2)
		m.services.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Service{ID: "s-1", Name: "Instalação", Price: 100, Active: true}, nil)
		m.budgets.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				return b, nil
			},
		)

		b, err := uc.Create(context.Background(), BudgetInput{
			CustomerName: " Padaria Central ",
			Date:         "2026-05-01",
			Discount:     30,
			Items: []ItemRef{
				{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 2},
				{ItemID: "s-1", Type: entities.ItemTypeService, Quantity: 1},
				{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 1},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BudgetStatusDraft || b.CustomerName != "Padaria Central" {
			t.Fatalf("unexpected budget: %+v", b)
		}
		if b.ValidityDate != "2026-05-08" {
			t.Fatalf("expected validity 2026-05-08, got %s", b.ValidityDate)
		}
		if b.TotalValue != 100 || len(b.Items) != 3 {
			t.Fatalf("unexpected totals: total=%v items=%d", b.TotalValue, len(b.Items))
		}
	})

	t.Run("discount larger than subtotal clamps at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(cableProduct(10), nil)
		m.budgets.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
		)

		b, err := uc.Create(context.Background(), BudgetInput{
			CustomerName: "Ana",
			Discount:     500,
			Items:        []ItemRef{{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 1}},
		})
		if err != nil || b.TotalValue != 0 {
			t.Fatalf("expected clamped total, err=%v budget=%+v", err, b)
		}
	})

	t.Run("cumulative stock check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(cableProduct(3), nil).Times(2)

		_, err := uc.Create(context.Background(), BudgetInput{
			CustomerName: "Ana",
			Items: []ItemRef{
				{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 2},
				{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 2},
			},
		})
		if !errors.Is(err, entities.ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newBudgetUseCaseForTest(ctrl)

		cases := []BudgetInput{
			{Items: []ItemRef{{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 1}}},
			{CustomerName: "Ana", Discount: -1},
			{CustomerName: "Ana", Date: "01/05/2026"},
			{CustomerName: "Ana"},
		}
		for _, in := range cases {
			if _, err := uc.Create(context.Background(), in); !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected validation error for %+v, got %v", in, err)
			}
		}
	})
}

func TestBudgetUseCase_Update(t *testing.T) {
	t.Run("approved budget is read-only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		b := sentBudget()
		b.Status = entities.BudgetStatusApproved
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.Update(context.Background(), "b-1", BudgetInput{CustomerName: "X"})
		if !errors.Is(err, ErrBudgetReadOnly) {
			t.Fatalf("expected ErrBudgetReadOnly, got %v", err)
		}
	})

	t.Run("repository rejects a concurrent approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(sentBudget(), nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(cableProduct(10), nil)
		m.budgets.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Budget{}, entities.ErrReadOnly)

		_, err := uc.Update(context.Background(), "b-1", BudgetInput{
			CustomerName: "Padaria Central",
			Items:        []ItemRef{{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 1}},
		})
		if !errors.Is(err, ErrBudgetReadOnly) {
			t.Fatalf("expected ErrBudgetReadOnly, got %v", err)
		}
	})

	t.Run("unchanged lines keep their quoted price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		draft := sentBudget()
		draft.Status = entities.BudgetStatusDraft
		draft.Items = draft.Items[:1]
		draft.Discount = 0
		draft.TotalValue = 20
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(draft, nil)
		m.budgets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
		)

		res, err := uc.Update(context.Background(), "b-1", BudgetInput{
			CustomerName: "Padaria Central",
			Notes:        "entregar pela manhã",
			Items:        []ItemRef{{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 2}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Items[0].UnitPrice != 10 || res.TotalValue != 20 || res.Notes != "entregar pela manhã" {
			t.Fatalf("stored snapshot should survive the edit: %+v", res)
		}
	})

	t.Run("new line snapshots current price next to kept ones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		draft := sentBudget()
		draft.Status = entities.BudgetStatusDraft
		draft.Items = draft.Items[:1]
		repriced := cableProduct(3)
		repriced.Price = 15
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(draft, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(repriced, nil)
		m.budgets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) { return b, nil },
		)

		res, err := uc.Update(context.Background(), "b-1", BudgetInput{
			CustomerName: "Padaria Central",
			Items: []ItemRef{
				{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 1},
				{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 2},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 2 || res.Items[0].UnitPrice != 15 || res.Items[1].UnitPrice != 10 {
			t.Fatalf("unexpected items: %+v", res.Items)
		}
		if res.TotalValue != 35 {
			t.Fatalf("expected total 35, got %v", res.TotalValue)
		}
	})

	t.Run("kept lines still count against stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		draft := sentBudget()
		draft.Status = entities.BudgetStatusDraft
		draft.Items = draft.Items[:1]
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(draft, nil)
		m.products.EXPECT().GetByID(gomock.Any(), "p-1").Return(cableProduct(2), nil)

		_, err := uc.Update(context.Background(), "b-1", BudgetInput{
			CustomerName: "Padaria Central",
			Items: []ItemRef{
				{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 2},
				{ItemID: "p-1", Type: entities.ItemTypeProduct, Quantity: 1},
			},
		})
		var stockErr *entities.InsufficientStockError
		if !errors.As(err, &stockErr) || stockErr.Available != 0 {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
	})
}

func TestBudgetUseCase_Transitions(t *testing.T) {
	t.Run("send draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		b := sentBudget()
		b.Status = entities.BudgetStatusDraft
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.budgets.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BudgetStatusSent, []entities.BudgetStatus{entities.BudgetStatusDraft}).
			Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusSent}, nil)

		res, err := uc.Send(context.Background(), "b-1")
		if err != nil || res.Status != entities.BudgetStatusSent {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("reject approved budget fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		b := sentBudget()
		b.Status = entities.BudgetStatusApproved
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.Reject(context.Background(), "b-1")
		if !errors.Is(err, ErrInvalidBudgetTransition) {
			t.Fatalf("expected ErrInvalidBudgetTransition, got %v", err)
		}
	})

	t.Run("convert loses race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		b := sentBudget()
		b.Status = entities.BudgetStatusApproved
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.budgets.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BudgetStatusConverted, gomock.Any()).
			Return(entities.Budget{}, entities.ErrInvalidTransition)

		_, err := uc.Convert(context.Background(), "b-1")
		if !errors.Is(err, ErrInvalidBudgetTransition) {
			t.Fatalf("expected ErrInvalidBudgetTransition, got %v", err)
		}
	})

	t.Run("allowedFrom", func(t *testing.T) {
		from := allowedFrom(entities.BudgetStatusApproved)
		if len(from) != 2 || from[0] != entities.BudgetStatusDraft || from[1] != entities.BudgetStatusSent {
			t.Fatalf("unexpected from list: %v", from)
		}
	})
}

func TestBudgetUseCase_Approve(t *testing.T) {
	t.Run("creates order for existing customer found by name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		expectGuard(m, "budget:approve:b-1")
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(sentBudget(), nil)
		m.products.EXPECT().GetByIDs(gomock.Any(), []string{"p-1"}).Return(map[string]entities.Product{"p-1": cableProduct(5)}, nil)
		m.customers.EXPECT().FindByName(gomock.Any(), "Padaria Central").Return(entities.Customer{ID: "cust-7", Name: "Padaria Central"}, nil)
		m.fulfillment.EXPECT().Commit(gomock.Any(), gomock.AssignableToTypeOf(interfaces.OrderCommit{})).DoAndReturn(
			func(_ context.Context, c interfaces.OrderCommit) error {
				if c.ApproveBudgetID != "b-1" || c.NewCustomer != nil {
					t.Fatalf("unexpected commit: %+v", c)
				}
				if c.Order.CustomerID != "cust-7" || c.Order.BudgetID != "b-1" || c.Order.TotalValue != 110 {
					t.Fatalf("unexpected order: %+v", c.Order)
				}
				if c.Order.Notes != "Gerado a partir do orçamento #b-1" {
					t.Fatalf("unexpected notes: %q", c.Order.Notes)
				}
				if len(c.Decrements) != 1 || c.Decrements[0].ProductID != "p-1" || c.Decrements[0].Quantity != 2 {
					t.Fatalf("unexpected decrements: %+v", c.Decrements)
				}
				return nil
			},
		)

		b, err := uc.Approve(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BudgetStatusApproved || b.OrderID == "" || b.CustomerID != "cust-7" {
			t.Fatalf("unexpected budget: %+v", b)
		}
	})

	t.Run("creates a customer when none matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		b := sentBudget()
		b.CustomerID = "gone"
		expectGuard(m, "budget:approve:b-1")
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.products.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]entities.Product{"p-1": cableProduct(5)}, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Customer{}, nil)
		m.customers.EXPECT().FindByName(gomock.Any(), "Padaria Central").Return(entities.Customer{}, nil)
		m.fulfillment.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.OrderCommit) error {
				if c.NewCustomer == nil || c.NewCustomer.Name != "Padaria Central" {
					t.Fatalf("expected new customer, got %+v", c.NewCustomer)
				}
				if c.Order.CustomerID != c.NewCustomer.ID {
					t.Fatalf("order should point at the new customer")
				}
				return nil
			},
		)

		if _, err := uc.Approve(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already approved is returned unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		b := sentBudget()
		b.Status = entities.BudgetStatusApproved
		b.OrderID = "o-1"
		expectGuard(m, "budget:approve:b-1")
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		res, err := uc.Approve(context.Background(), "b-1")
		if err != nil || res.OrderID != "o-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("rejected budget cannot be approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		b := sentBudget()
		b.Status = entities.BudgetStatusRejected
		expectGuard(m, "budget:approve:b-1")
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

		_, err := uc.Approve(context.Background(), "b-1")
		if !errors.Is(err, ErrInvalidBudgetTransition) {
			t.Fatalf("expected ErrInvalidBudgetTransition, got %v", err)
		}
	})

	t.Run("insufficient stock writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		expectGuard(m, "budget:approve:b-1")
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(sentBudget(), nil)
		m.products.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]entities.Product{"p-1": cableProduct(1)}, nil)

		_, err := uc.Approve(context.Background(), "b-1")
		var stockErr *entities.InsufficientStockError
		if !errors.As(err, &stockErr) || stockErr.Available != 1 || stockErr.Requested != 2 {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
	})

	t.Run("lost race returns stored budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		stored := sentBudget()
		stored.Status = entities.BudgetStatusApproved
		stored.OrderID = "o-other"
		expectGuard(m, "budget:approve:b-1")
		gomock.InOrder(
			m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(sentBudget(), nil),
			m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(stored, nil),
		)
		m.products.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]entities.Product{"p-1": cableProduct(5)}, nil)
		m.customers.EXPECT().FindByName(gomock.Any(), gomock.Any()).Return(entities.Customer{ID: "cust-1"}, nil)
		m.fulfillment.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(entities.ErrReadOnly)

		res, err := uc.Approve(context.Background(), "b-1")
		if err != nil || res.OrderID != "o-other" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("budget edited during approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		b := sentBudget()
		b.UpdatedAt = time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
		expectGuard(m, "budget:approve:b-1")
		m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)
		m.products.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(map[string]entities.Product{"p-1": cableProduct(5)}, nil)
		m.customers.EXPECT().FindByName(gomock.Any(), gomock.Any()).Return(entities.Customer{ID: "cust-1"}, nil)
		m.fulfillment.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.OrderCommit) error {
				if !c.BudgetSeenAt.Equal(b.UpdatedAt) {
					t.Fatalf("commit should carry the version it was built from, got %v", c.BudgetSeenAt)
				}
				return fmt.Errorf("%w: budget b-1 changed since it was read", entities.ErrConflict)
			},
		)

		_, err := uc.Approve(context.Background(), "b-1")
		if !errors.Is(err, ErrBudgetChanged) {
			t.Fatalf("expected ErrBudgetChanged, got %v", err)
		}
	})

	t.Run("guard held", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBudgetUseCaseForTest(ctrl)

		m.guard.EXPECT().Acquire(gomock.Any(), "budget:approve:b-1").Return("", false, nil)

		_, err := uc.Approve(context.Background(), "b-1")
		if !errors.Is(err, ErrOperationInProgress) {
			t.Fatalf("expected ErrOperationInProgress, got %v", err)
		}
	})
}

func TestBudgetUseCase_RenderPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newBudgetUseCaseForTest(ctrl)

	settings := entities.UserSettings{CompanyName: "Bahia Elétrica"}
	m.budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(sentBudget(), nil)
	m.users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.UserAccount{Profile: entities.UserProfile{ID: "u-1"}, Settings: settings}, nil)
	m.renderer.EXPECT().Render(gomock.Any(), settings).Return([]byte("%PDF-1.3"), nil)

	doc, err := uc.RenderPDF(context.Background(), "b-1", "u-1")
	if err != nil || string(doc) != "%PDF-1.3" {
		t.Fatalf("unexpected result err=%v doc=%q", err, doc)
	}
}
