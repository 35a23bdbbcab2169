package entities

type AppointmentStatus string

const (
	AppointmentStatusPending    AppointmentStatus = "pending"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCanceled   AppointmentStatus = "canceled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusInProgress, AppointmentStatusCompleted, AppointmentStatusCanceled:
		return true
	}
	return false
}

// CanTransition: pending -> in_progress -> completed, pending|in_progress ->
// canceled. Staying in the same status is always allowed.
func (s AppointmentStatus) CanTransition(to AppointmentStatus) bool {
	if s == to {
		return true
	}
	switch to {
	case AppointmentStatusInProgress:
		return s == AppointmentStatusPending
	case AppointmentStatusCompleted:
		return s == AppointmentStatusInProgress
	case AppointmentStatusCanceled:
		return s == AppointmentStatusPending || s == AppointmentStatusInProgress
	}
	return false
}

// Label is the pt-BR text used in exports.
func (s AppointmentStatus) Label() string {
	switch s {
	case AppointmentStatusPending:
		return "Pendente"
	case AppointmentStatusInProgress:
		return "Em Andamento"
	case AppointmentStatusCompleted:
		return "Concluído"
	}
	return "Cancelado"
}

// Appointment dates are local calendar dates (YYYY-MM-DD) and times HH:mm.
type Appointment struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	CustomerID   string            `json:"customer_id,omitempty"`
	CustomerName string            `json:"customer_name"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Duration     int               `json:"duration"`
	Status       AppointmentStatus `json:"status"`
	Description  string            `json:"description,omitempty"`
	Responsible  string            `json:"responsible"`
	Location     string            `json:"location,omitempty"`
}
