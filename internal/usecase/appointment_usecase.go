package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/domain/schedule"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const defaultAppointmentMinutes = 60

var (
	ErrAppointmentNotFound          = fmt.Errorf("appointment %w", entities.ErrNotFound)
	ErrInvalidAppointmentTransition = fmt.Errorf("%w for appointment", entities.ErrInvalidTransition)
)

type IAppointmentUseCase interface {
	List(ctx context.Context, f schedule.Filter) ([]entities.Appointment, error)
	Upcoming(ctx context.Context, limit int) ([]entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
	Calendar(ctx context.Context, month string, f schedule.Filter) (schedule.CalendarMonth, error)
	ExportCSV(ctx context.Context, f schedule.Filter, w io.Writer) error
	ExportPDF(ctx context.Context, f schedule.Filter) ([]byte, error)
}

type AppointmentUseCase struct {
	repo      interfaces.IAppointmentRepository
	customers interfaces.ICustomerRepository
	report    interfaces.IAppointmentReportRenderer
	loc       *time.Location
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

// NewAppointmentUseCase; loc is the business time zone used to read the
// local appointment dates.
func NewAppointmentUseCase(repo interfaces.IAppointmentRepository, customers interfaces.ICustomerRepository, report interfaces.IAppointmentReportRenderer, loc *time.Location) *AppointmentUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &AppointmentUseCase{repo: repo, customers: customers, report: report, loc: loc}
}

func (u *AppointmentUseCase) now() time.Time {
	return clock().In(u.loc)
}

func (u *AppointmentUseCase) List(ctx context.Context, f schedule.Filter) ([]entities.Appointment, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, logPersistence("appointment", "list", err)
	}
	return schedule.FilterAppointments(all, f), nil
}

func (u *AppointmentUseCase) Upcoming(ctx context.Context, limit int) ([]entities.Appointment, error) {
	sorted, err := u.List(ctx, schedule.Filter{})
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 3
	}
	return schedule.Upcoming(sorted, u.now(), limit), nil
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.Appointment{}, err
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, logPersistence("appointment", "get", err)
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

// normalize checks required fields before any write. A missing customer
// name falls back to the linked customer's name.
func (u *AppointmentUseCase) normalize(ctx context.Context, a *entities.Appointment) error {
	a.Title = strings.TrimSpace(a.Title)
	a.Date = strings.TrimSpace(a.Date)
	a.Time = strings.TrimSpace(a.Time)
	a.CustomerID = strings.TrimSpace(a.CustomerID)
	a.CustomerName = strings.TrimSpace(a.CustomerName)

	switch {
	case a.Title == "":
		return entities.ValidationError("title", "is required")
	case a.Date == "":
		return entities.ValidationError("date", "is required")
	case a.Time == "":
		return entities.ValidationError("time", "is required")
	}
	if _, err := time.Parse(schedule.DateLayout, a.Date); err != nil {
		return entities.ValidationError("date", "must be YYYY-MM-DD")
	}
	if _, err := time.Parse(schedule.TimeLayout, a.Time); err != nil {
		return entities.ValidationError("time", "must be HH:mm")
	}
	if a.Duration < 0 {
		return entities.ValidationError("duration", "must not be negative")
	}
	if a.Duration == 0 {
		a.Duration = defaultAppointmentMinutes
	}
	if a.Status == "" {
		a.Status = entities.AppointmentStatusPending
	}
	if !a.Status.Valid() {
		return entities.ValidationError("status", "is unknown")
	}

	if a.CustomerName == "" && a.CustomerID != "" {
		c, err := u.customers.GetByID(ctx, a.CustomerID)
		if err != nil {
			return logPersistence("appointment", "customer lookup", err)
		}
		a.CustomerName = c.Name
	}
	if a.CustomerName == "" {
		return entities.ValidationError("customer_name", "is required")
	}
	return nil
}

func (u *AppointmentUseCase) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	if err := u.normalize(ctx, &a); err != nil {
		return entities.Appointment{}, err
	}
	a.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, a)
	return created, logPersistence("appointment", "create", err)
}

// Update rewrites the appointment. A status change must follow the
// appointment lifecycle.
func (u *AppointmentUseCase) Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	current, err := u.GetByID(ctx, a.ID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.Status == "" {
		a.Status = current.Status
	}
	if err := u.normalize(ctx, &a); err != nil {
		return entities.Appointment{}, err
	}
	if !current.Status.CanTransition(a.Status) {
		return entities.Appointment{}, ErrInvalidAppointmentTransition
	}
	a.ID = current.ID

	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return entities.Appointment{}, logPersistence("appointment", "update", err)
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return updated, nil
}

func (u *AppointmentUseCase) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if !status.Valid() {
		return entities.Appointment{}, entities.ValidationError("status", "is unknown")
	}
	if !current.Status.CanTransition(status) {
		return entities.Appointment{}, ErrInvalidAppointmentTransition
	}
	current.Status = status
	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Appointment{}, logPersistence("appointment", "update status", err)
	}
	if updated.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return updated, nil
}

func (u *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return logPersistence("appointment", "delete", u.repo.Delete(ctx, id))
}

// Calendar groups the filtered appointments of month ("YYYY-MM", default
// current month) by day.
func (u *AppointmentUseCase) Calendar(ctx context.Context, month string, f schedule.Filter) (schedule.CalendarMonth, error) {
	anchor, err := schedule.ParseMonth(strings.TrimSpace(month), u.now())
	if err != nil {
		return schedule.CalendarMonth{}, err
	}
	apps, err := u.List(ctx, f)
	if err != nil {
		return schedule.CalendarMonth{}, err
	}
	return schedule.ProjectToCalendar(apps, anchor), nil
}

func (u *AppointmentUseCase) ExportCSV(ctx context.Context, f schedule.Filter, w io.Writer) error {
	apps, err := u.List(ctx, f)
	if err != nil {
		return err
	}
	return schedule.WriteCSV(w, apps)
}

// ExportPDF renders the same rows ExportCSV writes.
func (u *AppointmentUseCase) ExportPDF(ctx context.Context, f schedule.Filter) ([]byte, error) {
	apps, err := u.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return u.report.Render(apps)
}
