package usecase

import (
	"context"
	"errors"
	"testing"

	"bahia_gestao/internal/domain/entities"
	mock_interfaces "bahia_gestao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestExpenseUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		cases := []entities.Expense{
			{Amount: 10, Category: "Aluguel", Date: "2026-03-01"},
			{Description: "Aluguel", Amount: 0, Category: "Aluguel", Date: "2026-03-01"},
			{Description: "Aluguel", Amount: 10, Date: "2026-03-01"},
			{Description: "Aluguel", Amount: 10, Category: "Aluguel", Date: "março"},
		}
		for _, in := range cases {
			if _, err := uc.Create(context.Background(), in); !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected ErrValidation for %+v, got %v", in, err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Expense) (entities.Expense, error) { return e, nil },
		)

		e, err := uc.Create(context.Background(), entities.Expense{Description: " Aluguel ", Amount: 1500, Category: "Fixas", Date: "2026-03-01"})
		if err != nil || e.ID == "" || e.Description != "Aluguel" {
			t.Fatalf("unexpected result err=%v e=%+v", err, e)
		}
	})
}

func TestExpenseUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
	uc := NewExpenseUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Expense{}, nil)

	if _, err := uc.GetByID(context.Background(), "e-1"); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestDashboardUseCase_Summary(t *testing.T) {
	t.Run("aggregates repositories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		services := mock_interfaces.NewMockIServiceRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		appointments := mock_interfaces.NewMockIAppointmentRepository(ctrl)
		expenses := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewDashboardUseCase(DashboardDeps{
			Products: products, Services: services, Orders: orders,
			Appointments: appointments, Expenses: expenses,
		})

		products.EXPECT().List(gomock.Any()).Return([]entities.Product{{ID: "p-1", Cost: 5, Price: 10, Stock: 4, MinStock: 5}}, nil)
		services.EXPECT().List(gomock.Any()).Return(nil, nil)
		orders.EXPECT().List(gomock.Any()).Return([]entities.Order{{ID: "o-1", TotalValue: 200}}, nil)
		appointments.EXPECT().List(gomock.Any()).Return(nil, nil)
		expenses.EXPECT().List(gomock.Any()).Return([]entities.Expense{{ID: "e-1", Amount: 50, Date: "2020-01-01"}}, nil)

		s, err := uc.Summary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.StockValue != 20 || s.RealizedRevenue != 200 || s.ExpensesAllTime != 50 || len(s.LowStock) != 1 {
			t.Fatalf("unexpected summary: %+v", s)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewDashboardUseCase(DashboardDeps{Products: products})

		products.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Summary(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
