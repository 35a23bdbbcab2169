package interfaces

import "bahia_gestao/internal/domain/entities"

// IBudgetRenderer produces the printable quote for a budget.
type IBudgetRenderer interface {
	Render(b entities.Budget, company entities.UserSettings) ([]byte, error)
}

// IAppointmentReportRenderer prints an already filtered and sorted agenda.
type IAppointmentReportRenderer interface {
	Render(apps []entities.Appointment) ([]byte, error)
}
