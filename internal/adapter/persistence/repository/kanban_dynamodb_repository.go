package repository

import (
	"context"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultKanbanColumnsTableName = "kanban_columns"
	defaultProjectsTableName      = "projects"
)

type kanbanColumnItem struct {
	ID    string `dynamodbav:"id"`
	Title string `dynamodbav:"title"`
	Color string `dynamodbav:"color"`
}

// KanbanColumnDynamoRepository persists board columns.
//
// Table requirements:
//   - PK: id (string)
type KanbanColumnDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IKanbanColumnRepository = (*KanbanColumnDynamoRepository)(nil)

func NewKanbanColumnDynamoRepository(ddb dynamoAPI) *KanbanColumnDynamoRepository {
	return &KanbanColumnDynamoRepository{table: newDynamoTable(ddb, "KANBAN_COLUMNS_TABLE", defaultKanbanColumnsTableName)}
}

func (r *KanbanColumnDynamoRepository) List(ctx context.Context) ([]entities.KanbanColumn, error) {
	raws, err := r.table.scanAll(ctx, "list kanban columns", nil)
	if err != nil {
		return nil, err
	}
	return decodeAll("list kanban columns", raws, func(it kanbanColumnItem) entities.KanbanColumn {
		return entities.KanbanColumn(it)
	})
}

func (r *KanbanColumnDynamoRepository) GetByID(ctx context.Context, id string) (entities.KanbanColumn, error) {
	var it kanbanColumnItem
	found, err := r.table.get(ctx, "get kanban column", id, &it)
	if err != nil || !found {
		return entities.KanbanColumn{}, err
	}
	return entities.KanbanColumn(it), nil
}

func (r *KanbanColumnDynamoRepository) Create(ctx context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error) {
	if err := r.table.insert(ctx, "create kanban column", kanbanColumnItem(c)); err != nil {
		return entities.KanbanColumn{}, err
	}
	return c, nil
}

func (r *KanbanColumnDynamoRepository) Update(ctx context.Context, c entities.KanbanColumn) (entities.KanbanColumn, error) {
	found, err := r.table.replace(ctx, "update kanban column", kanbanColumnItem(c))
	if err != nil || !found {
		return entities.KanbanColumn{}, err
	}
	return c, nil
}

func (r *KanbanColumnDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, "delete kanban column", id)
}

type projectItem struct {
	ID           string `dynamodbav:"id"`
	Title        string `dynamodbav:"title"`
	CustomerName string `dynamodbav:"customer_name"`
	Status       string `dynamodbav:"status"`
	Priority     string `dynamodbav:"priority"`
	Deadline     string `dynamodbav:"deadline,omitempty"`
	Description  string `dynamodbav:"description,omitempty"`
	Responsible  string `dynamodbav:"responsible,omitempty"`
}

// ProjectDynamoRepository persists kanban projects. status holds the column id.
//
// Table requirements:
//   - PK: id (string)
type ProjectDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb dynamoAPI) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{table: newDynamoTable(ddb, "PROJECTS_TABLE", defaultProjectsTableName)}
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	raws, err := r.table.scanAll(ctx, "list projects", nil)
	if err != nil {
		return nil, err
	}
	return decodeAll("list projects", raws, fromProjectItem)
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var it projectItem
	found, err := r.table.get(ctx, "get project", id, &it)
	if err != nil || !found {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

// CountByStatus counts the projects sitting in a column.
func (r *ProjectDynamoRepository) CountByStatus(ctx context.Context, columnID string) (int, error) {
	in := &dynamodb.ScanInput{
		TableName:                aws.String(r.table.name),
		FilterExpression:         aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: columnID},
		},
		Select: types.SelectCount,
	}
	total := 0
	for {
		out, err := r.table.ddb.Scan(ctx, in)
		if err != nil {
			return 0, entities.NewPersistenceError("count projects", err)
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := r.table.insert(ctx, "create project", toProjectItem(p)); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	found, err := r.table.replace(ctx, "update project", toProjectItem(p))
	if err != nil || !found {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, "delete project", id)
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:           p.ID,
		Title:        p.Title,
		CustomerName: p.CustomerName,
		Status:       p.Status,
		Priority:     string(p.Priority),
		Deadline:     p.Deadline,
		Description:  p.Description,
		Responsible:  p.Responsible,
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:           it.ID,
		Title:        it.Title,
		CustomerName: it.CustomerName,
		Status:       it.Status,
		Priority:     entities.Priority(it.Priority),
		Deadline:     it.Deadline,
		Description:  it.Description,
		Responsible:  it.Responsible,
	}
}
