package schedule

import (
	"bufio"
	"io"
	"strings"
	"time"

	"bahia_gestao/internal/domain/entities"
)

var csvHeader = []string{"Data", "Hora", "Título", "Cliente", "Responsável", "Status", "Local", "Descrição"}

// WriteCSV writes one header row and one row per appointment. Every field is
// quoted with embedded quotes doubled, and rows are separated by "\n".
func WriteCSV(w io.Writer, apps []entities.Appointment) error {
	bw := bufio.NewWriter(w)
	writeRow(bw, csvHeader)
	for _, a := range apps {
		bw.WriteByte('\n')
		writeRow(bw, []string{
			displayDate(a.Date),
			a.Time,
			a.Title,
			a.CustomerName,
			a.Responsible,
			a.Status.Label(),
			a.Location,
			a.Description,
		})
	}
	return bw.Flush()
}

// ExportFileName is the download name for an export made on day.
func ExportFileName(day time.Time) string {
	return "agendamentos_" + day.Format(DateLayout) + ".csv"
}

// ReportFileName is the download name for the PDF report made on day.
func ReportFileName(day time.Time) string {
	return "agendamentos_" + day.Format(DateLayout) + ".pdf"
}

func writeRow(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(f, `"`, `""`))
		w.WriteByte('"')
	}
}

// displayDate turns YYYY-MM-DD into dd/MM/yyyy, passing other input through.
func displayDate(value string) string {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return value
	}
	return d.Format("02/01/2006")
}
