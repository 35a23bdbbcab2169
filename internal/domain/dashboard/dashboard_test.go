package dashboard

import (
	"math"
	"testing"
	"time"

	"bahia_gestao/internal/domain/entities"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func fixture() Input {
	return Input{
		Now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		Products: []entities.Product{
			{ID: "p1", Name: "Cabo", Category: "Fios", Stock: 10, MinStock: 2, Cost: 5, Price: 10},
			{ID: "p2", Name: "Disjuntor", Category: "Proteção", Stock: 1, MinStock: 3, Cost: 45, Price: 50},
		},
		Services: []entities.Service{
			{ID: "s1", Name: "Instalação", Category: "Obra", Price: 100, Cost: 50, Active: true},
			{ID: "s2", Name: "Visita", Category: "Obra", Price: 100, Cost: 80, Active: true},
			{ID: "s3", Name: "Antigo", Category: "Obra", Price: 100, Cost: 99, Active: false},
		},
		Orders: []entities.Order{
			{ID: "o1", Date: "2024-03-02", TotalValue: 300},
			{ID: "o2", Date: "2024-01-20", TotalValue: 700},
			{ID: "o3", Date: "2023-03-20", TotalValue: 1000},
		},
		Expenses: []entities.Expense{
			{ID: "e1", Date: "2024-03-10", Amount: 100, Category: "Aluguel"},
			{ID: "e2", Date: "2024-02-10", Amount: 50, Category: "Combustível"},
			{ID: "e3", Date: "2024-03-11", Amount: 25, Category: "Aluguel"},
		},
		Appointments: []entities.Appointment{
			{ID: "a1", Date: "2024-03-01", Status: entities.AppointmentStatusCompleted},
			{ID: "a2", Date: "2024-03-20", Status: entities.AppointmentStatusPending},
			{ID: "a3", Date: "2024-02-20", Status: entities.AppointmentStatusCanceled},
			{ID: "a4", Date: "2024-02-21", Status: entities.AppointmentStatusCompleted},
		},
	}
}

func TestBuildCatalogMetrics(t *testing.T) {
	s := Build(fixture())

	if s.StockValue != 95 || s.PotentialSales != 150 || s.PotentialProfit != 55 {
		t.Fatalf("unexpected stock metrics: %v %v %v", s.StockValue, s.PotentialSales, s.PotentialProfit)
	}
	// (0.5 + 0.1) / 2
	if !near(s.AvgProductMargin, 30) {
		t.Fatalf("expected 30%% product margin, got %v", s.AvgProductMargin)
	}
	if !near(s.AvgServiceMargin, 35) {
		t.Fatalf("expected 35%% service margin over active services, got %v", s.AvgServiceMargin)
	}
	if len(s.LowStock) != 1 || s.LowStock[0].ID != "p2" {
		t.Fatalf("unexpected low stock: %+v", s.LowStock)
	}
	if len(s.LowMarginProducts) != 1 || s.LowMarginProducts[0].ID != "p2" {
		t.Fatalf("unexpected low margin products: %+v", s.LowMarginProducts)
	}
	if len(s.LowMarginServices) != 1 || s.LowMarginServices[0].ID != "s2" {
		t.Fatalf("unexpected low margin services: %+v", s.LowMarginServices)
	}
	if len(s.ServicesByCategory) != 1 || s.ServicesByCategory[0].Value != 2 {
		t.Fatalf("unexpected service categories: %+v", s.ServicesByCategory)
	}
	if s.TopProducts[0].Name != "Cabo" {
		t.Fatalf("unexpected top products: %+v", s.TopProducts)
	}
}

func TestBuildFinancials(t *testing.T) {
	s := Build(fixture())

	if s.RealizedRevenue != 2000 || s.OrderCount != 3 {
		t.Fatalf("unexpected revenue: %v count=%d", s.RealizedRevenue, s.OrderCount)
	}
	if s.ExpensesAllTime != 175 || s.ExpensesThisMonth != 125 {
		t.Fatalf("unexpected expenses: %v %v", s.ExpensesAllTime, s.ExpensesThisMonth)
	}
	if s.NetProfit != 1825 {
		t.Fatalf("expected net profit 1825, got %v", s.NetProfit)
	}
	if len(s.ExpensesByCategory) != 2 || s.ExpensesByCategory[0].Name != "Aluguel" || s.ExpensesByCategory[0].Value != 125 {
		t.Fatalf("unexpected expense categories: %+v", s.ExpensesByCategory)
	}
}

func TestBuildMonthlySeries(t *testing.T) {
	s := Build(fixture())

	if len(s.Monthly) != 8 {
		t.Fatalf("expected 6 real + 2 projected months, got %d", len(s.Monthly))
	}
	wantLabels := []string{"Out", "Nov", "Dez", "Jan", "Fev", "Mar", "Abr", "Mai"}
	for i, l := range wantLabels {
		if s.Monthly[i].Label != l {
			t.Fatalf("month %d: expected %s, got %s", i, l, s.Monthly[i].Label)
		}
	}

	march := s.Monthly[5]
	if !march.Real || march.Key != "2024-03" || march.Revenue != 300 || march.Expenses != 125 || march.Profit != 175 {
		t.Fatalf("unexpected march point: %+v", march)
	}
	if s.Monthly[3].Revenue != 700 {
		t.Fatalf("expected january revenue 700, got %+v", s.Monthly[3])
	}

	april, may := s.Monthly[6], s.Monthly[7]
	if april.Real || april.Revenue != 300 || april.Profit != 100 {
		t.Fatalf("unexpected first projection: %+v", april)
	}
	if may.Revenue != 360 || may.Profit != 120 {
		t.Fatalf("unexpected second projection: %+v", may)
	}
}

func TestBuildAppointmentKPIs(t *testing.T) {
	s := Build(fixture())

	want := AppointmentKPIs{ThisMonth: 2, Pending: 1, Canceled: 1, CompletedThisMonth: 1}
	if s.Appointments != want {
		t.Fatalf("expected %+v, got %+v", want, s.Appointments)
	}
	feb := s.AppointmentEvolution[4]
	if feb.Label != "Fev" || feb.Canceled != 1 || feb.Completed != 1 {
		t.Fatalf("unexpected february: %+v", feb)
	}
}

func TestBuildEmpty(t *testing.T) {
	s := Build(Input{Now: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)})
	if s.AvgProductMargin != 0 || s.AvgServiceMargin != 0 || s.NetProfit != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
	if s.Monthly[7].Label != "Fev" || s.Monthly[7].Key != "2025-02" {
		t.Fatalf("projection must roll over the year, got %+v", s.Monthly[7])
	}
	if s.LowStock == nil {
		t.Fatalf("lists must be empty, not nil")
	}
}
