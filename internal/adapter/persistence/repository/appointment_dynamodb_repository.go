package repository

import (
	"context"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"
)

const defaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID           string `dynamodbav:"id"`
	Title        string `dynamodbav:"title"`
	CustomerID   string `dynamodbav:"customer_id,omitempty"`
	CustomerName string `dynamodbav:"customer_name"`
	Date         string `dynamodbav:"date"`
	Time         string `dynamodbav:"time"`
	Duration     int    `dynamodbav:"duration"`
	Status       string `dynamodbav:"status"`
	Description  string `dynamodbav:"description,omitempty"`
	Responsible  string `dynamodbav:"responsible"`
	Location     string `dynamodbav:"location,omitempty"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type AppointmentDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb dynamoAPI) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{table: newDynamoTable(ddb, "APPOINTMENTS_TABLE", defaultAppointmentsTableName)}
}

func (r *AppointmentDynamoRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	raws, err := r.table.scanAll(ctx, "list appointments", nil)
	if err != nil {
		return nil, err
	}
	return decodeAll("list appointments", raws, fromAppointmentItem)
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	var it appointmentItem
	found, err := r.table.get(ctx, "get appointment", id, &it)
	if err != nil || !found {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	if err := r.table.insert(ctx, "create appointment", toAppointmentItem(a)); err != nil {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	found, err := r.table.replace(ctx, "update appointment", toAppointmentItem(a))
	if err != nil || !found {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, "delete appointment", id)
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:           a.ID,
		Title:        a.Title,
		CustomerID:   a.CustomerID,
		CustomerName: a.CustomerName,
		Date:         a.Date,
		Time:         a.Time,
		Duration:     a.Duration,
		Status:       string(a.Status),
		Description:  a.Description,
		Responsible:  a.Responsible,
		Location:     a.Location,
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:           it.ID,
		Title:        it.Title,
		CustomerID:   it.CustomerID,
		CustomerName: it.CustomerName,
		Date:         it.Date,
		Time:         it.Time,
		Duration:     it.Duration,
		Status:       entities.AppointmentStatus(it.Status),
		Description:  it.Description,
		Responsible:  it.Responsible,
		Location:     it.Location,
	}
}
