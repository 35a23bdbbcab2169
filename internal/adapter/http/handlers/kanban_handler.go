package handlers

import (
	"errors"
	"net/http"

	request "bahia_gestao/internal/adapter/http/dto/request"
	"bahia_gestao/internal/usecase"
	"bahia_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidColumnPayload  = pkg.NewDomainErrorSimple("INVALID_COLUMN_INPUT", "Invalid column payload", http.StatusBadRequest)
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
)

// KanbanHandler serves the project board: columns and the projects in them.
type KanbanHandler struct {
	usecase usecase.IKanbanUseCase
}

func NewKanbanHandler(uc usecase.IKanbanUseCase) *KanbanHandler {
	return &KanbanHandler{usecase: uc}
}

func (h *KanbanHandler) ListColumns(c *gin.Context) {
	columns, err := h.usecase.ListColumns(c.Request.Context())
	if err != nil {
		writeError(c, mapKanbanError(err))
		return
	}
	c.JSON(http.StatusOK, columns)
}

func (h *KanbanHandler) CreateColumn(c *gin.Context) {
	var payload request.KanbanColumnRequest
	if !bindJSON(c, &payload, errInvalidColumnPayload) {
		return
	}
	column, err := h.usecase.CreateColumn(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		writeError(c, mapKanbanError(err))
		return
	}
	c.JSON(http.StatusCreated, column)
}

func (h *KanbanHandler) UpdateColumn(c *gin.Context) {
	var payload request.KanbanColumnRequest
	if !bindJSON(c, &payload, errInvalidColumnPayload) {
		return
	}
	column, err := h.usecase.UpdateColumn(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapKanbanError(err))
		return
	}
	c.JSON(http.StatusOK, column)
}

// DeleteColumn answers 409 while projects still sit in the column.
func (h *KanbanHandler) DeleteColumn(c *gin.Context) {
	if err := h.usecase.DeleteColumn(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapKanbanError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *KanbanHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		writeError(c, mapKanbanError(err))
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *KanbanHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapKanbanError(err))
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *KanbanHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if !bindJSON(c, &payload, errInvalidProjectPayload) {
		return
	}
	project, err := h.usecase.CreateProject(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		writeError(c, mapKanbanError(err))
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *KanbanHandler) UpdateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if !bindJSON(c, &payload, errInvalidProjectPayload) {
		return
	}
	project, err := h.usecase.UpdateProject(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, mapKanbanError(err))
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *KanbanHandler) MoveProject(c *gin.Context) {
	var payload request.MoveProjectRequest
	if !bindJSON(c, &payload, errInvalidProjectPayload) {
		return
	}
	project, err := h.usecase.MoveProject(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		writeError(c, mapKanbanError(err))
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *KanbanHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapKanbanError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapKanbanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrColumnNotFound):
		return pkg.NewDomainErrorSimple("COLUMN_NOT_FOUND", "Kanban column not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrColumnInUse):
		return pkg.NewDomainErrorSimple("COLUMN_IN_USE", "Column still has projects", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownColumn):
		return pkg.NewDomainErrorSimple("UNKNOWN_COLUMN", "Status must reference an existing column", http.StatusBadRequest)
	default:
		return mapDomainError(err)
	}
}
