package export

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"bahia_gestao/internal/domain/entities"
)

func sampleBudget() entities.Budget {
	return entities.Budget{
		ID:            "5f0c9d2e-7b1a-4c3e-9a8b-1234abcd5678",
		CustomerName:  "Condomínio Solar",
		CustomerEmail: "sindico@solar.com.br",
		Date:          "2024-05-02",
		ValidityDate:  "2024-05-17",
		Status:        entities.BudgetStatusSent,
		Items: []entities.OrderItem{
			{ItemID: "p1", Name: "Disjuntor bipolar 40A", Type: entities.ItemTypeProduct, Quantity: 4, UnitPrice: 45.9, Total: 183.6},
			{ItemID: "s1", Name: "Instalação de quadro de distribuição", Type: entities.ItemTypeService, Quantity: 1, UnitPrice: 650, Total: 650},
		},
		Discount:   33.6,
		TotalValue: 800,
		Notes:      "Execução em dois dias úteis.",
	}
}

func newTestRenderer() *BudgetPDFRenderer {
	r := NewBudgetPDFRenderer(time.UTC)
	r.now = func() time.Time { return time.Date(2024, 5, 2, 14, 30, 0, 0, time.UTC) }
	return r
}

func signaturePNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 6))
	for x := 0; x < 20; x++ {
		img.Set(x, 3, color.Black)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestBudgetPDFRenderer_Render(t *testing.T) {
	b := sampleBudget()

	out, err := newTestRenderer().Render(b, entities.UserSettings{FullName: "João Lima"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("expected a pdf document")
	}
}

func TestBudgetPDFRenderer_RenderWithSignature(t *testing.T) {
	b := sampleBudget()
	b.Signature = signaturePNG(t)

	withSig, err := newTestRenderer().Render(b, entities.UserSettings{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b.Signature = ""
	without, err := newTestRenderer().Render(b, entities.UserSettings{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(withSig) <= len(without) {
		t.Fatalf("expected the signature image to be embedded")
	}
}

func TestBudgetPDFRenderer_InvalidSignatureIsSkipped(t *testing.T) {
	b := sampleBudget()
	b.Signature = "data:image/png;base64,bm90LWFuLWltYWdl"

	if _, err := newTestRenderer().Render(b, entities.UserSettings{}); err != nil {
		t.Fatalf("invalid signature must not fail the document: %v", err)
	}
}

func TestBudgetPDFRenderer_EmptyBudget(t *testing.T) {
	out, err := newTestRenderer().Render(entities.Budget{}, entities.UserSettings{})
	if err != nil || len(out) == 0 {
		t.Fatalf("expected a document, err=%v", err)
	}
}

func TestBudgetNumber(t *testing.T) {
	cases := map[string]string{
		"":                                     "00000000",
		"abc":                                  "ABC",
		"5f0c9d2e-7b1a-4c3e-9a8b-1234abcd5678": "ABCD5678",
	}
	for id, want := range cases {
		if got := BudgetNumber(id); got != want {
			t.Fatalf("BudgetNumber(%q) = %q, want %q", id, got, want)
		}
	}
	if got := ProposalFileName("1234abcd5678"); got != "Proposta_ABCD5678.pdf" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestMoney(t *testing.T) {
	cases := map[float64]string{
		0:          "0,00",
		45.9:       "45,90",
		1234.5:     "1.234,50",
		1234567.89: "1.234.567,89",
		-980:       "-980,00",
	}
	for v, want := range cases {
		if got := money(v); got != want {
			t.Fatalf("money(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestLongDateTime(t *testing.T) {
	got := longDateTime(time.Date(2024, 5, 2, 14, 30, 5, 0, time.UTC))
	if got != "quinta-feira, 02 de maio de 2024 às 14:30:05" {
		t.Fatalf("unexpected footer date %q", got)
	}
}
