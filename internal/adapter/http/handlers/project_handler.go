package handlers

import (
	"errors"
	"net/http"

	request "marcenaria_gestao/internal/adapter/http/dto/request"
	response "marcenaria_gestao/internal/adapter/http/dto/response"
	"marcenaria_gestao/internal/domain/entities"
	"marcenaria_gestao/internal/usecase"
	"marcenaria_gestao/pkg"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves projects (obras) and their progress log.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// ListProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Param status query string false "ativa, concluida or pausada"
// @Param team_id query string false "team id"
// @Param q query string false "search text"
// @Success 200 {object} response.ListResponse[response.ProjectResponse]
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	items, err := h.usecase.List(c.Request.Context(), usecase.ProjectFilter{
		Status: entities.ProjectStatus(q.Status),
		TeamID: q.TeamID,
		Query:  q.Query,
	})
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(items, response.FromProject))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(created))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var payload request.ProjectPatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	patch, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(updated))
}

func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	var payload request.StatusPatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.ProjectStatus(payload.Status))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(updated))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddProjectUpdate appends an entry to the project progress log.
func (h *ProjectHandler) AddProjectUpdate(c *gin.Context) {
	var payload request.ProjectUpdateCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.AddUpdate(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(updated))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProjectInput):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidProjectStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid project status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
