package request

import (
	"strings"

	"bahia_gestao/internal/domain/entities"
)

type KanbanColumnRequest struct {
	Title string `json:"title" binding:"required"`
	Color string `json:"color"`
}

func (r KanbanColumnRequest) ToEntity(id string) entities.KanbanColumn {
	return entities.KanbanColumn{ID: id, Title: strings.TrimSpace(r.Title), Color: strings.TrimSpace(r.Color)}
}

type ProjectRequest struct {
	Title        string `json:"title" binding:"required"`
	CustomerName string `json:"customer_name"`
	Status       string `json:"status" binding:"required"`
	Priority     string `json:"priority"`
	Deadline     string `json:"deadline"`
	Description  string `json:"description"`
	Responsible  string `json:"responsible"`
}

func (r ProjectRequest) ToEntity(id string) entities.Project {
	return entities.Project{
		ID:           id,
		Title:        strings.TrimSpace(r.Title),
		CustomerName: strings.TrimSpace(r.CustomerName),
		Status:       strings.TrimSpace(r.Status),
		Priority:     entities.Priority(strings.TrimSpace(r.Priority)),
		Deadline:     strings.TrimSpace(r.Deadline),
		Description:  r.Description,
		Responsible:  strings.TrimSpace(r.Responsible),
	}
}

type MoveProjectRequest struct {
	Status string `json:"status" binding:"required"`
}
