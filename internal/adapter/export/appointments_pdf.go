package export

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const reportTitle = "Relatório de Agendamentos - Bahia Elétrica"

var (
	reportHeader = []string{"Data", "Hora", "Título", "Cliente", "Responsável", "Status"}
	reportHead   = [3]int{52, 107, 168}
)

// AppointmentsPDF prints the filtered agenda as a single grid table, one row
// per appointment in the order given.
type AppointmentsPDF struct {
	now func() time.Time
	loc *time.Location
}

var _ interfaces.IAppointmentReportRenderer = (*AppointmentsPDF)(nil)

func NewAppointmentsPDF(loc *time.Location) *AppointmentsPDF {
	if loc == nil {
		loc = time.Local
	}
	return &AppointmentsPDF{now: time.Now, loc: loc}
}

func (r *AppointmentsPDF) Render(apps []entities.Appointment) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 10, 14)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	width := pageW - 28
	widths := []float64{22, 14, width - 128, 36, 30, 26}

	head := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(reportHead[0], reportHead[1], reportHead[2])
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(grayLine[0], grayLine[1], grayLine[2])
		for i, title := range reportHeader {
			ln := 0
			if i == len(reportHeader)-1 {
				ln = 1
			}
			pdf.CellFormat(widths[i], rowH, tr(title), "1", ln, "L", true, 0, "")
		}
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			head()
		}
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(14, 15, tr(reportTitle))
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(14, 22, "Gerado em: "+r.now().In(r.loc).Format("02/01/2006 15:04"))
	pdf.SetY(28)
	head()

	for _, a := range apps {
		row := []string{brDate(a.Date), a.Time, a.Title, a.CustomerName, a.Responsible, a.Status.Label()}
		for i, text := range row {
			ln := 0
			if i == len(row)-1 {
				ln = 1
			}
			pdf.CellFormat(widths[i], rowH, tr(clip(pdf, text, widths[i])), "1", ln, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render appointment report: %w", err)
	}
	log.Printf("[appointment][export] pdf rendered rows=%d bytes=%d", len(apps), buf.Len())
	return buf.Bytes(), nil
}

// clip cuts text to the first line that fits a cell of width w.
func clip(pdf *fpdf.Fpdf, text string, w float64) string {
	lines := pdf.SplitText(text, w-2)
	if len(lines) <= 1 {
		return text
	}
	return lines[0] + "..."
}
