package interfaces

import (
	"context"

	"bahia_gestao/internal/domain/entities"
)

type IAppointmentRepository interface {
	List(ctx context.Context) ([]entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type IKanbanColumnRepository interface {
	List(ctx context.Context) ([]entities.KanbanColumn, error)
	GetByID(ctx context.Context, id string) (entities.KanbanColumn, error)
	Create(ctx context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error)
	Update(ctx context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error)
	Delete(ctx context.Context, id string) error
}

// IProjectRepository. CountByStatus backs the column referential check.
type IProjectRepository interface {
	List(ctx context.Context) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	CountByStatus(ctx context.Context, columnID string) (int, error)
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}

type IExpenseRepository interface {
	List(ctx context.Context) ([]entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
}
