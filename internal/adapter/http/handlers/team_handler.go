package handlers

import (
	"errors"
	"net/http"

	request "marcenaria_gestao/internal/adapter/http/dto/request"
	response "marcenaria_gestao/internal/adapter/http/dto/response"
	"marcenaria_gestao/internal/usecase"
	"marcenaria_gestao/pkg"

	"github.com/gin-gonic/gin"
)

// TeamHandler serves teams (equipes) and their rosters.
type TeamHandler struct {
	usecase usecase.ITeamUseCase
}

func NewTeamHandler(uc usecase.ITeamUseCase) *TeamHandler {
	return &TeamHandler{usecase: uc}
}

func (h *TeamHandler) ListTeams(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	items, err := h.usecase.List(c.Request.Context(), usecase.TeamFilter{ProjectID: q.ProjectID, Query: q.Query})
	if err != nil {
		writeError(c, mapTeamError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(items, response.FromTeam))
}

func (h *TeamHandler) GetTeam(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapTeamError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTeam(t))
}

// CreateTeam godoc
// @Summary Create a team, optionally with its initial roster
// @Tags teams
// @Accept json
// @Produce json
// @Param payload body request.TeamCreate true "team"
// @Success 201 {object} response.TeamResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var payload request.TeamCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapTeamError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTeam(created))
}

func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var payload request.TeamPatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapTeamError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTeam(updated))
}

func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapTeamError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddTeamMember godoc
// @Summary Add a member to a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "team id"
// @Param payload body request.TeamMemberCreate true "member"
// @Success 201 {object} response.TeamResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /teams/{id}/members [post]
func (h *TeamHandler) AddTeamMember(c *gin.Context) {
	var payload request.TeamMemberCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.AddMember(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapTeamError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTeam(updated))
}

func (h *TeamHandler) RemoveTeamMember(c *gin.Context) {
	updated, err := h.usecase.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("member_id"))
	if err != nil {
		writeError(c, mapTeamError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTeam(updated))
}

func mapTeamError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTeamID), errors.Is(err, usecase.ErrInvalidMemberID), errors.Is(err, usecase.ErrInvalidTeamInput):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrTeamNotFound):
		return pkg.NewDomainErrorSimple("TEAM_NOT_FOUND", "Team not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTeamMemberNotFound):
		return pkg.NewDomainErrorSimple("TEAM_MEMBER_NOT_FOUND", "Team member not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
