// Package export renders the printable PDFs: budget quotes and the
// appointment report.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"log"
	"strings"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	margin       = 10.0
	sectionH     = 6.0
	rowH         = 6.0
	signatureKey = "signature"
)

var (
	blue     = [3]int{26, 55, 112}
	grayFill = [3]int{245, 245, 245}
	grayLine = [3]int{200, 200, 200}
	grayText = [3]int{100, 100, 100}
)

// Company fallbacks printed when the user has not filled in their settings.
var defaultCompany = entities.UserSettings{
	FullName:       "Sistema",
	CompanyName:    "Bahia Elétrica & Automação",
	CompanyCNPJ:    "00.000.000/0001-00",
	CompanyAddress: "Rua Exemplo, 123 - Centro",
	CompanyCity:    "Salvador - BA - 40000-000",
	CompanyPhone:   "(71) 99999-9999",
	CompanyEmail:   "contato@bahiaeletrica.com.br",
}

const (
	defaultNotes    = "Sem observações adicionais."
	defaultWarranty = "Garantia conforme especificações do fabricante. Serviços com garantia de 90 dias."
	defaultPayment  = "PIX / TRANSFERÊNCIA"
	declaration     = "Declaro ter conferido a quantidade, e as condições dos produtos/serviços entregues, dando plena quitação do feito, para mais nada reclamar."
)

var (
	weekdays = [...]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}
	months   = [...]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}
)

// BudgetPDFRenderer lays out an A4 quote: header, client block, items,
// totals, payment schedule, notes, warranty, acceptance and footer.
type BudgetPDFRenderer struct {
	now func() time.Time
	loc *time.Location
}

var _ interfaces.IBudgetRenderer = (*BudgetPDFRenderer)(nil)

func NewBudgetPDFRenderer(loc *time.Location) *BudgetPDFRenderer {
	if loc == nil {
		loc = time.Local
	}
	return &BudgetPDFRenderer{now: time.Now, loc: loc}
}

// BudgetNumber is the printed order number: the last 8 characters of the id,
// upper-cased.
func BudgetNumber(id string) string {
	if id == "" {
		return "00000000"
	}
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}

// ProposalFileName is the download name of a budget quote.
func ProposalFileName(id string) string {
	return "Proposta_" + BudgetNumber(id) + ".pdf"
}

type page struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	width float64
}

func (r *BudgetPDFRenderer) Render(b entities.Budget, company entities.UserSettings) ([]byte, error) {
	company = withDefaults(company)
	now := r.now().In(r.loc)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, 16)
	pdf.AliasNbPages("")
	p := &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pageW, pageH := pdf.GetPageSize()
	p.width = pageW - 2*margin

	pdf.SetFooterFunc(func() {
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(0.3)
		pdf.Line(margin, pageH-12, pageW-margin, pageH-12)
		pdf.SetY(-11)
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(grayText[0], grayText[1], grayText[2])
		pdf.CellFormat(70, 4, p.tr(longDateTime(now)), "", 0, "L", false, 0, "")
		pdf.CellFormat(70, 4, p.tr("Gerado por "+company.FullName), "", 0, "L", false, 0, "")
		pdf.CellFormat(p.width-140, 4, p.tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 6)
		pdf.CellFormat(p.width, 3, p.tr("Informações geradas através do sistema BAHIA ELÉTRICA - "+company.CompanyEmail), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	number := BudgetNumber(b.ID)
	p.header(company)
	p.banner("Pedido: " + number)
	p.statusRow(b, company, now)
	p.clientBlock(b)
	p.itemsTable(b.Items)
	p.totals(b)
	p.paymentSchedule(b, now)
	p.textBox("4 Detalhamento / Observações", fallback(b.Notes, defaultNotes))
	p.textBox("5 Observações de Garantia", fallback(b.WarrantyNotes, defaultWarranty))
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(p.width, 4, p.tr(declaration), "", "L", false)
	pdf.Ln(2)
	p.acceptance(b)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render budget %s: %w", b.ID, err)
	}
	log.Printf("[budget][export] pdf rendered budget_id=%s bytes=%d", b.ID, buf.Len())
	return buf.Bytes(), nil
}

func (p *page) header(company entities.UserSettings) {
	pdf := p.pdf
	y := pdf.GetY()
	pdf.SetFillColor(grayLine[0], grayLine[1], grayLine[2])
	pdf.Rect(margin, y, 35, 20, "F")
	pdf.SetXY(margin, y+8)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(grayText[0], grayText[1], grayText[2])
	pdf.CellFormat(35, 4, "LOGO", "", 0, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(margin+40, y)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(p.width-40, 6, p.tr(company.CompanyName), "", 2, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range []string{
		company.CompanyCNPJ,
		company.CompanyAddress,
		company.CompanyCity,
		company.CompanyEmail + " - " + company.CompanyPhone,
	} {
		pdf.CellFormat(p.width-40, 5, p.tr(line), "", 2, "R", false, 0, "")
	}
	pdf.SetXY(margin, y+32)
}

func (p *page) banner(text string) {
	pdf := p.pdf
	pdf.SetFillColor(blue[0], blue[1], blue[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(p.width, 10, p.tr(text), "", 1, "C", true, 0, "")
	pdf.Ln(2)
}

func (p *page) section(title string) {
	pdf := p.pdf
	pdf.SetFillColor(blue[0], blue[1], blue[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(p.width, sectionH, p.tr(" "+title), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(grayLine[0], grayLine[1], grayLine[2])
	pdf.SetLineWidth(0.2)
}

// cell is one bordered table cell.
type cell struct {
	text  string
	w     float64
	align string
	bold  bool
	fill  bool
}

func (p *page) row(cells ...cell) {
	pdf := p.pdf
	for i, c := range cells {
		style := ""
		if c.bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 8)
		if c.fill {
			pdf.SetFillColor(grayFill[0], grayFill[1], grayFill[2])
		}
		align := c.align
		if align == "" {
			align = "L"
		}
		ln := 0
		if i == len(cells)-1 {
			ln = 1
		}
		pdf.CellFormat(c.w, rowH, p.tr(c.text), "1", ln, align, c.fill, 0, "")
	}
}

func (p *page) headRow(titles []string, widths []float64) {
	cells := make([]cell, len(titles))
	for i, t := range titles {
		cells[i] = cell{text: t, w: widths[i], bold: true, fill: true}
	}
	p.row(cells...)
}

func (p *page) statusRow(b entities.Budget, company entities.UserSettings, now time.Time) {
	w := p.width / 4
	widths := []float64{w, w, w, w}
	p.pdf.SetTextColor(0, 0, 0)
	p.pdf.SetDrawColor(grayLine[0], grayLine[1], grayLine[2])
	p.headRow([]string{"Status", "Comercialização", "Fechamento", "Consultor / Vendedor"}, widths)

	closing := "-"
	if b.ValidityDate != "" {
		closing = brDate(b.ValidityDate) + " 12:00"
	}
	seller := "Vendedor"
	if company.FullName != defaultCompany.FullName {
		seller = company.FullName
	}
	p.row(
		cell{text: statusLabel(b.Status), w: w},
		cell{text: brDate(b.Date) + " " + now.Format("15:04"), w: w},
		cell{text: closing, w: w},
		cell{text: seller + " - " + company.CompanyEmail, w: w},
	)
	p.pdf.Ln(2)
}

func (p *page) clientBlock(b entities.Budget) {
	p.section("1 Dados do Cliente")
	label, value := 35.0, p.width/2-35
	p.row(cell{text: "Razão / Fantasia", w: label, bold: true}, cell{text: fallback(b.CustomerName, "Cliente"), w: p.width - label})
	p.row(
		cell{text: "Contato", w: label, bold: true}, cell{text: "", w: value},
		cell{text: "Email", w: label, bold: true}, cell{text: b.CustomerEmail, w: value},
	)
	p.row(
		cell{text: "Fone Fixo", w: label, bold: true}, cell{text: b.CustomerPhone, w: value},
		cell{text: "Celular", w: label, bold: true}, cell{text: "", w: value},
	)
	p.row(cell{text: "Endereço", w: label, bold: true}, cell{text: fallback(b.CustomerAddress, "Endereço não informado"), w: p.width - label})
	p.pdf.Ln(2)
}

func (p *page) itemsTable(items []entities.OrderItem) {
	p.section("2 Produtos / Serviços")
	widths := []float64{p.width - 90, 15, 20, 15, 20, 20}
	p.headRow([]string{"Descrição | Tipo", "Qtd.", "V. Unit.", "IPI", "Desconto", "Subtotal"}, widths)
	if len(items) == 0 {
		p.row(
			cell{text: "Nenhum item", w: widths[0]}, cell{text: "-", w: widths[1], align: "C"},
			cell{text: "-", w: widths[2], align: "R"}, cell{text: "-", w: widths[3], align: "R"},
			cell{text: "-", w: widths[4], align: "R"}, cell{text: "-", w: widths[5], align: "R"},
		)
	}
	for _, item := range items {
		desc := p.fit(item.Name, widths[0]) + " (" + typeLabel(item.Type) + ")"
		p.row(
			cell{text: desc, w: widths[0]},
			cell{text: fmt.Sprint(item.Quantity), w: widths[1], align: "C"},
			cell{text: money(item.UnitPrice), w: widths[2], align: "R"},
			cell{text: "0,00", w: widths[3], align: "R"},
			cell{text: "0,00", w: widths[4], align: "R"},
			cell{text: money(item.Total), w: widths[5], align: "R", bold: true},
		)
	}
	p.pdf.Ln(2)
}

// fit keeps the first line of text that fits in w.
func (p *page) fit(text string, w float64) string {
	p.pdf.SetFont("Helvetica", "", 8)
	lines := p.pdf.SplitText(text, w-30)
	if len(lines) == 0 {
		return text
	}
	if len(lines) > 1 {
		return lines[0] + "..."
	}
	return lines[0]
}

func (p *page) totals(b entities.Budget) {
	p.section("2.1 Totalizadores")
	quantity := 0
	products, services, subtotal := decimal.Zero, decimal.Zero, decimal.Zero
	for _, item := range b.Items {
		quantity += item.Quantity
		total := decimal.NewFromFloat(item.Total)
		subtotal = subtotal.Add(total)
		if item.Type == entities.ItemTypeProduct {
			products = products.Add(total)
		} else {
			services = services.Add(total)
		}
	}
	grand := b.TotalValue
	if grand == 0 && len(b.Items) > 0 && b.Discount == 0 {
		grand = subtotal.InexactFloat64()
	}

	l, v := 35.0, p.width/2-35
	p.row(cell{text: "Soma de Itens", w: l, bold: true}, cell{text: fmt.Sprint(len(b.Items)), w: v},
		cell{text: "IPI", w: l, bold: true}, cell{text: "0,00", w: v, align: "R"})
	p.row(cell{text: "Soma das Qtdes", w: l, bold: true}, cell{text: fmt.Sprint(quantity), w: v},
		cell{text: "Frete", w: l, bold: true}, cell{text: "0,00", w: v, align: "R"})
	p.row(cell{text: "Produtos", w: l, bold: true}, cell{text: money(products.InexactFloat64()), w: v},
		cell{text: "Desconto", w: l, bold: true}, cell{text: money(b.Discount), w: v, align: "R"})
	p.row(cell{text: "Serviços", w: l, bold: true}, cell{text: money(services.InexactFloat64()), w: v},
		cell{text: "Total Geral", w: l, bold: true, fill: true}, cell{text: money(grand), w: v, align: "R", bold: true, fill: true})
	p.pdf.Ln(2)
}

func (p *page) paymentSchedule(b entities.Budget, now time.Time) {
	p.section("3 Forma de Parcelamento: " + fallback(b.PaymentMethod, "À Vista"))
	widths := []float64{20, 30, p.width - 90, 40}
	p.headRow([]string{"Dias", "Vencimento", "Forma de Pagamento", "Valor"}, widths)
	p.row(
		cell{text: "30", w: widths[0], align: "C"},
		cell{text: now.AddDate(0, 0, 30).Format("02/01/2006"), w: widths[1], align: "C"},
		cell{text: fallback(b.PaymentMethod, defaultPayment), w: widths[2]},
		cell{text: money(b.TotalValue), w: widths[3], align: "R"},
	)
	p.pdf.Ln(2)
}

func (p *page) textBox(title, text string) {
	p.section(title)
	pdf := p.pdf
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(p.width, 4, p.tr(text), "1", "L", false)
	pdf.Ln(2)
}

func (p *page) acceptance(b entities.Budget) {
	p.section("6 Dados de Aceite do Pedido")
	pdf := p.pdf
	y := pdf.GetY()
	pdf.Rect(margin, y, p.width, 18, "D")

	if img, ok := decodeSignature(b.Signature); ok {
		pdf.RegisterImageOptionsReader(signatureKey, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img))
		if pdf.Ok() {
			pdf.ImageOptions(signatureKey, margin+80, y+1, 50, 15, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		} else {
			log.Printf("[budget][export] signature skipped budget_id=%s err=%v", b.ID, pdf.Error())
			pdf.ClearError()
		}
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(margin+5, y+6)
	pdf.CellFormat(20, 4, "Data", "", 0, "L", false, 0, "")
	pdf.SetXY(margin, y+6)
	pdf.CellFormat(p.width, 4, p.tr("Assinatura: "+strings.ToUpper(fallback(b.CustomerName, "Cliente"))), "", 0, "C", false, 0, "")
	pdf.Line(margin+15, y+12, margin+50, y+12)
	pdf.SetY(y + 20)
}

// decodeSignature accepts a PNG data URL or bare base64 and checks it is a
// readable PNG before it reaches the document.
func decodeSignature(sig string) ([]byte, bool) {
	if sig == "" {
		return nil, false
	}
	if i := strings.Index(sig, ","); strings.HasPrefix(sig, "data:") && i >= 0 {
		sig = sig[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return nil, false
	}
	if _, err := png.DecodeConfig(bytes.NewReader(raw)); err != nil {
		return nil, false
	}
	return raw, true
}

func withDefaults(s entities.UserSettings) entities.UserSettings {
	s.FullName = fallback(s.FullName, defaultCompany.FullName)
	s.CompanyName = fallback(s.CompanyName, defaultCompany.CompanyName)
	s.CompanyCNPJ = fallback(s.CompanyCNPJ, defaultCompany.CompanyCNPJ)
	s.CompanyAddress = fallback(s.CompanyAddress, defaultCompany.CompanyAddress)
	s.CompanyCity = fallback(s.CompanyCity, defaultCompany.CompanyCity)
	s.CompanyPhone = fallback(s.CompanyPhone, defaultCompany.CompanyPhone)
	s.CompanyEmail = fallback(s.CompanyEmail, defaultCompany.CompanyEmail)
	return s
}

func fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func statusLabel(s entities.BudgetStatus) string {
	switch s {
	case entities.BudgetStatusApproved, entities.BudgetStatusConverted:
		return "APROVADO"
	case entities.BudgetStatusRejected:
		return "REJEITADO"
	}
	return "PENDENTE"
}

func typeLabel(t entities.ItemType) string {
	if t == entities.ItemTypeProduct {
		return "Produto"
	}
	return "Serviço"
}

// money formats v as 1.234,56.
func money(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := b.String() + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

func brDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

func longDateTime(t time.Time) string {
	return fmt.Sprintf("%s, %02d de %s de %d às %s",
		weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year(), t.Format("15:04:05"))
}
