package usecase

import (
	"context"
	"time"

	"bahia_gestao/internal/domain/dashboard"
	"bahia_gestao/internal/usecase/interfaces"
)

type IDashboardUseCase interface {
	Summary(ctx context.Context) (dashboard.Summary, error)
}

type DashboardUseCase struct {
	products     interfaces.IProductRepository
	services     interfaces.IServiceRepository
	orders       interfaces.IOrderRepository
	appointments interfaces.IAppointmentRepository
	expenses     interfaces.IExpenseRepository
	thresholds   dashboard.Thresholds
	loc          *time.Location
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

type DashboardDeps struct {
	Products     interfaces.IProductRepository
	Services     interfaces.IServiceRepository
	Orders       interfaces.IOrderRepository
	Appointments interfaces.IAppointmentRepository
	Expenses     interfaces.IExpenseRepository
	Thresholds   dashboard.Thresholds
	Location     *time.Location
}

func NewDashboardUseCase(d DashboardDeps) *DashboardUseCase {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{
		products:     d.Products,
		services:     d.Services,
		orders:       d.Orders,
		appointments: d.Appointments,
		expenses:     d.Expenses,
		thresholds:   d.Thresholds,
		loc:          loc,
	}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (dashboard.Summary, error) {
	in := dashboard.Input{Now: clock().In(u.loc), Thresholds: u.thresholds}
	var err error
	if in.Products, err = u.products.List(ctx); err != nil {
		return dashboard.Summary{}, logPersistence("dashboard", "products", err)
	}
	if in.Services, err = u.services.List(ctx); err != nil {
		return dashboard.Summary{}, logPersistence("dashboard", "services", err)
	}
	if in.Orders, err = u.orders.List(ctx); err != nil {
		return dashboard.Summary{}, logPersistence("dashboard", "orders", err)
	}
	if in.Appointments, err = u.appointments.List(ctx); err != nil {
		return dashboard.Summary{}, logPersistence("dashboard", "appointments", err)
	}
	if in.Expenses, err = u.expenses.List(ctx); err != nil {
		return dashboard.Summary{}, logPersistence("dashboard", "expenses", err)
	}
	return dashboard.Build(in), nil
}
