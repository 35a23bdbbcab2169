package request

import (
	"testing"

	"bahia_gestao/internal/domain/entities"
)

func TestServiceRequest_ToEntityDefaultsActive(t *testing.T) {
	r := ServiceRequest{Name: "  Instalação  ", Price: 150}
	svc := r.ToEntity("s1")
	if svc.ID != "s1" || svc.Name != "Instalação" {
		t.Fatalf("unexpected service: %+v", svc)
	}
	if !svc.Active {
		t.Fatalf("expected active by default")
	}

	inactive := false
	r.Active = &inactive
	if r.ToEntity("s1").Active {
		t.Fatalf("expected explicit inactive flag to be kept")
	}
}

func TestBudgetRequest_ToInput(t *testing.T) {
	r := BudgetRequest{
		CustomerName: " Maria ",
		Items: []ItemRequest{
			{ItemID: " p1 ", Type: "product", Quantity: 2},
			{ItemID: "s1", Type: "service", Quantity: 1},
		},
		Discount: 10,
	}
	in := r.ToInput()
	if in.CustomerName != "Maria" || in.Discount != 10 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(in.Items))
	}
	if in.Items[0].ItemID != "p1" || in.Items[0].Type != entities.ItemTypeProduct || in.Items[0].Quantity != 2 {
		t.Fatalf("unexpected first item: %+v", in.Items[0])
	}
	if in.Items[1].Type != entities.ItemTypeService {
		t.Fatalf("unexpected second item: %+v", in.Items[1])
	}
}

func TestCheckoutRequest_ToCheckoutInput(t *testing.T) {
	r := CheckoutRequest{
		CustomerID: " c1 ",
		Date:       "2024-05-02",
		AdjustmentsQuery: AdjustmentsQuery{
			DiscountPercent: 10,
			SurchargeValue:  5,
		},
	}
	in := r.ToCheckoutInput()
	if in.CustomerID != "c1" || in.Date != "2024-05-02" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Adjustments.DiscountPercent != 10 || in.Adjustments.SurchargeValue != 5 {
		t.Fatalf("unexpected adjustments: %+v", in.Adjustments)
	}
}

func TestAppointmentQuery_ToFilter(t *testing.T) {
	q := AppointmentQuery{Search: " ana ", Status: "pending", Responsible: " João "}
	f := q.ToFilter()
	if f.Search != "ana" || f.Status != "pending" || f.Responsible != "João" {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestProductRequest_ToEntity(t *testing.T) {
	p := ProductRequest{Name: " Cabo ", Stock: 3, MinStock: 1, Cost: 2, Price: 4}.ToEntity("p1")
	if p.ID != "p1" || p.Name != "Cabo" || p.Stock != 3 || p.Price != 4 {
		t.Fatalf("unexpected product: %+v", p)
	}
}
