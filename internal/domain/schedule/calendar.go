package schedule

import (
	"fmt"
	"time"

	"bahia_gestao/internal/domain/entities"
)

// MaxDots is how many status indicators a calendar cell shows.
const MaxDots = 4

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthLabel formats a month as "Março 2024".
func MonthLabel(month time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[month.Month()-1], month.Year())
}

// GroupByDay buckets the appointments of the anchor's month by day of month.
// Appointments outside that month or with an unparsable date are left out.
// Each bucket keeps the input order.
func GroupByDay(apps []entities.Appointment, month time.Time) map[int][]entities.Appointment {
	out := make(map[int][]entities.Appointment)
	for _, a := range apps {
		d, err := time.ParseInLocation(DateLayout, a.Date, month.Location())
		if err != nil {
			continue
		}
		if d.Year() != month.Year() || d.Month() != month.Month() {
			continue
		}
		out[d.Day()] = append(out[d.Day()], a)
	}
	return out
}

type CalendarDay struct {
	Day          int                          `json:"day"`
	Date         string                       `json:"date"`
	Appointments []entities.Appointment       `json:"appointments"`
	Dots         []entities.AppointmentStatus `json:"dots"`
	Overflow     int                          `json:"overflow"`
}

// CalendarMonth is the month grid. LeadingBlanks is the weekday of the first
// day with Sunday as 0.
type CalendarMonth struct {
	Month         string        `json:"month"`
	Label         string        `json:"label"`
	LeadingBlanks int           `json:"leading_blanks"`
	Days          []CalendarDay `json:"days"`
}

// ProjectToCalendar builds one cell per day of the anchor's month.
func ProjectToCalendar(apps []entities.Appointment, month time.Time) CalendarMonth {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysIn := first.AddDate(0, 1, -1).Day()
	buckets := GroupByDay(apps, first)

	cal := CalendarMonth{
		Month:         first.Format("2006-01"),
		Label:         MonthLabel(first),
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]CalendarDay, 0, daysIn),
	}
	for day := 1; day <= daysIn; day++ {
		bucket := buckets[day]
		if bucket == nil {
			bucket = []entities.Appointment{}
		}
		cell := CalendarDay{
			Day:          day,
			Date:         first.AddDate(0, 0, day-1).Format(DateLayout),
			Appointments: bucket,
			Dots:         make([]entities.AppointmentStatus, 0, MaxDots),
		}
		for i, a := range bucket {
			if i == MaxDots {
				break
			}
			cell.Dots = append(cell.Dots, a.Status)
		}
		if len(bucket) > MaxDots {
			cell.Overflow = len(bucket) - MaxDots
		}
		cal.Days = append(cal.Days, cell)
	}
	return cal
}

// ParseMonth reads "YYYY-MM". An empty value yields the month of now.
func ParseMonth(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	}
	m, err := time.ParseInLocation("2006-01", value, now.Location())
	if err != nil {
		return time.Time{}, entities.ValidationError("month", "must be YYYY-MM")
	}
	return m, nil
}
