package schedule

import (
	"sort"
	"strings"
	"time"

	"bahia_gestao/internal/domain/entities"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	StatusAll = "all"
)

// Filter narrows the appointment list. Empty fields match everything.
type Filter struct {
	Search      string
	Status      string
	Responsible string
}

func (f Filter) matches(a entities.Appointment) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Title), term) &&
			!strings.Contains(strings.ToLower(a.CustomerName), term) {
			return false
		}
	}
	if f.Status != "" && f.Status != StatusAll && string(a.Status) != f.Status {
		return false
	}
	if f.Responsible != "" && !strings.Contains(a.Responsible, f.Responsible) {
		return false
	}
	return true
}

// FilterAppointments returns the matching appointments sorted by date and time.
// The input slice is not modified.
func FilterAppointments(all []entities.Appointment, f Filter) []entities.Appointment {
	out := make([]entities.Appointment, 0, len(all))
	for _, a := range all {
		if f.matches(a) {
			out = append(out, a)
		}
	}
	SortByStart(out)
	return out
}

// SortByStart orders appointments by date then time, keeping the relative
// order of ties.
func SortByStart(apps []entities.Appointment) {
	sort.SliceStable(apps, func(i, j int) bool {
		return startKey(apps[i]) < startKey(apps[j])
	})
}

func startKey(a entities.Appointment) string {
	return a.Date + "T" + a.Time
}

// Start parses the local start instant of an appointment.
func Start(a entities.Appointment, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+"T"+TimeLayout, startKey(a), loc)
}

// Upcoming returns up to limit pending appointments starting after now.
// apps must already be sorted.
func Upcoming(apps []entities.Appointment, now time.Time, limit int) []entities.Appointment {
	out := make([]entities.Appointment, 0, limit)
	for _, a := range apps {
		if len(out) == limit {
			break
		}
		if a.Status != entities.AppointmentStatusPending {
			continue
		}
		start, err := Start(a, now.Location())
		if err != nil || !start.After(now) {
			continue
		}
		out = append(out, a)
	}
	return out
}
