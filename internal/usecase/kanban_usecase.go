package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrColumnNotFound  = fmt.Errorf("kanban column %w", entities.ErrNotFound)
	ErrProjectNotFound = fmt.Errorf("project %w", entities.ErrNotFound)
	ErrColumnInUse     = fmt.Errorf("%w: column still has projects", entities.ErrConflict)
	ErrUnknownColumn   = fmt.Errorf("%w: status must reference an existing column", entities.ErrValidation)
)

type IKanbanUseCase interface {
	ListColumns(ctx context.Context) ([]entities.KanbanColumn, error)
	CreateColumn(ctx context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error)
	UpdateColumn(ctx context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error)
	DeleteColumn(ctx context.Context, id string) error

	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	CreateProject(ctx context.Context, p entities.Project) (entities.Project, error)
	UpdateProject(ctx context.Context, p entities.Project) (entities.Project, error)
	MoveProject(ctx context.Context, id, columnID string) (entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type KanbanUseCase struct {
	columns  interfaces.IKanbanColumnRepository
	projects interfaces.IProjectRepository
}

var _ IKanbanUseCase = (*KanbanUseCase)(nil)

func NewKanbanUseCase(columns interfaces.IKanbanColumnRepository, projects interfaces.IProjectRepository) *KanbanUseCase {
	return &KanbanUseCase{columns: columns, projects: projects}
}

func (u *KanbanUseCase) ListColumns(ctx context.Context) ([]entities.KanbanColumn, error) {
	cols, err := u.columns.List(ctx)
	return cols, logPersistence("kanban", "list columns", err)
}

// CreateColumn keeps a caller-chosen id (e.g. "todo") when given.
func (u *KanbanUseCase) CreateColumn(ctx context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return entities.KanbanColumn{}, entities.ValidationError("title", "is required")
	}
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	created, err := u.columns.Create(ctx, c)
	return created, logPersistence("kanban", "create column", err)
}

func (u *KanbanUseCase) UpdateColumn(ctx context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error) {
	id, err := requireID(c.ID)
	if err != nil {
		return entities.KanbanColumn{}, err
	}
	c.ID = id
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return entities.KanbanColumn{}, entities.ValidationError("title", "is required")
	}
	updated, err := u.columns.Update(ctx, c)
	if err != nil {
		return entities.KanbanColumn{}, logPersistence("kanban", "update column", err)
	}
	if updated.ID == "" {
		return entities.KanbanColumn{}, ErrColumnNotFound
	}
	return updated, nil
}

// DeleteColumn refuses while any project sits in the column.
func (u *KanbanUseCase) DeleteColumn(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	n, err := u.projects.CountByStatus(ctx, id)
	if err != nil {
		return logPersistence("kanban", "count projects", err)
	}
	if n > 0 {
		log.Printf("[kanban][usecase] delete column blocked column_id=%s projects=%d", id, n)
		return ErrColumnInUse
	}
	return logPersistence("kanban", "delete column", u.columns.Delete(ctx, id))
}

func (u *KanbanUseCase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	projects, err := u.projects.List(ctx)
	return projects, logPersistence("kanban", "list projects", err)
}

func (u *KanbanUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.Project{}, err
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, logPersistence("kanban", "get project", err)
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *KanbanUseCase) requireColumn(ctx context.Context, columnID string) error {
	columnID = strings.TrimSpace(columnID)
	if columnID == "" {
		return ErrUnknownColumn
	}
	col, err := u.columns.GetByID(ctx, columnID)
	if err != nil {
		return logPersistence("kanban", "get column", err)
	}
	if col.ID == "" {
		return ErrUnknownColumn
	}
	return nil
}

func (u *KanbanUseCase) validateProject(ctx context.Context, p *entities.Project) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Status = strings.TrimSpace(p.Status)
	if p.Title == "" {
		return entities.ValidationError("title", "is required")
	}
	if p.Priority == "" {
		p.Priority = entities.PriorityMedium
	}
	if !p.Priority.Valid() {
		return entities.ValidationError("priority", "must be low, medium or high")
	}
	return u.requireColumn(ctx, p.Status)
}

func (u *KanbanUseCase) CreateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := u.validateProject(ctx, &p); err != nil {
		return entities.Project{}, err
	}
	p.ID = uuid.NewString()
	created, err := u.projects.Create(ctx, p)
	return created, logPersistence("kanban", "create project", err)
}

func (u *KanbanUseCase) UpdateProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	current, err := u.GetProject(ctx, p.ID)
	if err != nil {
		return entities.Project{}, err
	}
	p.ID = current.ID
	if err := u.validateProject(ctx, &p); err != nil {
		return entities.Project{}, err
	}
	updated, err := u.projects.Update(ctx, p)
	if err != nil {
		return entities.Project{}, logPersistence("kanban", "update project", err)
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *KanbanUseCase) MoveProject(ctx context.Context, id, columnID string) (entities.Project, error) {
	current, err := u.GetProject(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	current.Status = columnID
	return u.UpdateProject(ctx, current)
}

func (u *KanbanUseCase) DeleteProject(ctx context.Context, id string) error {
	id, err := requireID(id)
	if err != nil {
		return err
	}
	return logPersistence("kanban", "delete project", u.projects.Delete(ctx, id))
}
