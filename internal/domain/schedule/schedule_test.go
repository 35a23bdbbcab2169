package schedule

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"bahia_gestao/internal/domain/entities"
)

func appt(id, title, customer, date, hour string, status entities.AppointmentStatus, responsible string) entities.Appointment {
	return entities.Appointment{
		ID:           id,
		Title:        title,
		CustomerName: customer,
		Date:         date,
		Time:         hour,
		Status:       status,
		Responsible:  responsible,
	}
}

func sample() []entities.Appointment {
	return []entities.Appointment{
		appt("c", "Revisão quadro", "Padaria Sol", "2024-03-06", "08:00", entities.AppointmentStatusPending, "Carlos Lima"),
		appt("b", "Instalação", "Acme", "2024-03-05", "14:30", entities.AppointmentStatusInProgress, "Ana"),
		appt("a", "Visita técnica", "ACME Ltda", "2024-03-05", "09:00", entities.AppointmentStatusPending, "Carlos Lima"),
		appt("d", "Orçamento", "Mercado Bom", "2024-04-01", "10:00", entities.AppointmentStatusCanceled, "Ana"),
	}
}

func ids(apps []entities.Appointment) string {
	var b bytes.Buffer
	for _, a := range apps {
		b.WriteString(a.ID)
	}
	return b.String()
}

func TestFilterAppointments(t *testing.T) {
	cases := []struct {
		name   string
		filter Filter
		want   string
	}{
		{name: "no filter sorts by date and time", filter: Filter{}, want: "abcd"},
		{name: "search is case-insensitive on customer", filter: Filter{Search: "acme"}, want: "ab"},
		{name: "search matches title", filter: Filter{Search: "QUADRO"}, want: "c"},
		{name: "status all", filter: Filter{Status: StatusAll}, want: "abcd"},
		{name: "status exact", filter: Filter{Status: "pending"}, want: "ac"},
		{name: "responsible substring", filter: Filter{Responsible: "Carlos"}, want: "ac"},
		{name: "responsible is case-sensitive", filter: Filter{Responsible: "carlos"}, want: ""},
		{name: "combined", filter: Filter{Search: "acme", Status: "in_progress", Responsible: "Ana"}, want: "b"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := sample()
			got := ids(FilterAppointments(in, tc.filter))
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
			if ids(in) != "cbad" {
				t.Fatalf("input must not be reordered, got %q", ids(in))
			}
		})
	}
}

func TestGroupByDay(t *testing.T) {
	month := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	apps := append(sample(), entities.Appointment{ID: "x", Date: "not-a-date"})

	buckets := GroupByDay(apps, month)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %v", buckets)
	}
	if ids(buckets[5]) != "ba" || ids(buckets[6]) != "c" {
		t.Fatalf("unexpected buckets: 5=%q 6=%q", ids(buckets[5]), ids(buckets[6]))
	}

	seen := map[string]int{}
	total := 0
	for _, bucket := range buckets {
		for _, a := range bucket {
			seen[a.ID]++
			total++
		}
	}
	if total != 3 {
		t.Fatalf("expected 3 appointments in March, got %d", total)
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("appointment %s appears %d times", id, n)
		}
	}
}

func TestProjectToCalendar(t *testing.T) {
	var apps []entities.Appointment
	for i := 0; i < 6; i++ {
		status := entities.AppointmentStatusPending
		if i == 1 {
			status = entities.AppointmentStatusCompleted
		}
		apps = append(apps, appt(string(rune('a'+i)), "t", "c", "2024-02-29", "10:00", status, "r"))
	}

	cal := ProjectToCalendar(apps, time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC))
	if cal.Month != "2024-02" || cal.Label != "Fevereiro 2024" {
		t.Fatalf("unexpected header: %s %s", cal.Month, cal.Label)
	}
	if len(cal.Days) != 29 {
		t.Fatalf("expected leap february, got %d days", len(cal.Days))
	}
	if cal.LeadingBlanks != 4 {
		t.Fatalf("1 Feb 2024 is a Thursday, got %d", cal.LeadingBlanks)
	}

	last := cal.Days[28]
	if last.Date != "2024-02-29" || len(last.Appointments) != 6 {
		t.Fatalf("unexpected cell: %+v", last)
	}
	if len(last.Dots) != MaxDots || last.Overflow != 2 || last.Dots[1] != entities.AppointmentStatusCompleted {
		t.Fatalf("unexpected dots: %+v overflow=%d", last.Dots, last.Overflow)
	}
	if len(cal.Days[0].Dots) != 0 || cal.Days[0].Overflow != 0 {
		t.Fatalf("empty day must have no dots")
	}
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC)
	m, err := ParseMonth("", now)
	if err != nil || m.Day() != 1 || m.Month() != time.March {
		t.Fatalf("unexpected default month %v err=%v", m, err)
	}
	if _, err := ParseMonth("03/2024", now); err == nil {
		t.Fatalf("expected error")
	}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	got := Upcoming(FilterAppointments(sample(), Filter{}), now, 3)
	if ids(got) != "c" {
		t.Fatalf("expected only future pending, got %q", ids(got))
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	apps := []entities.Appointment{
		{Date: "2024-03-05", Time: "09:00", Title: `Troca do "disjuntor"`, CustomerName: "Acme, Ltda", Responsible: "Ana", Status: entities.AppointmentStatusCompleted, Description: "linha 1\nlinha 2"},
		{Date: "2024-03-06", Time: "10:00", Title: "Visita", CustomerName: "Bob", Status: entities.AppointmentStatusCanceled},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, apps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("generated csv does not parse: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][2] != "Título" || records[0][7] != "Descrição" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	row := records[1]
	if row[0] != "05/03/2024" || row[2] != `Troca do "disjuntor"` || row[3] != "Acme, Ltda" || row[5] != "Concluído" || row[7] != "linha 1\nlinha 2" {
		t.Fatalf("unexpected row: %q", row)
	}
	if records[2][5] != "Cancelado" {
		t.Fatalf("unexpected status label: %q", records[2][5])
	}
}

func TestWriteCSVQuotesEveryField(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteCSV(&buf, nil)
	want := `"Data","Hora","Título","Cliente","Responsável","Status","Local","Descrição"`
	if buf.String() != want {
		t.Fatalf("expected %s, got %s", want, buf.String())
	}
	if ExportFileName(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) != "agendamentos_2024-03-05.csv" {
		t.Fatalf("unexpected file name")
	}
}
