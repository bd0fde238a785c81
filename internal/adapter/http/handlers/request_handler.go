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

// RequestHandler serves fabrication requests (solicitações).
type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

// ListRequests godoc
// @Summary List fabrication requests
// @Tags requests
// @Produce json
// @Param status query string false "status"
// @Param project_id query string false "project id"
// @Param team_id query string false "team id"
// @Param q query string false "search text"
// @Success 200 {object} response.ListResponse[response.RequestResponse]
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	items, err := h.usecase.List(c.Request.Context(), usecase.RequestFilter{
		Status:    entities.RequestStatus(q.Status),
		ProjectID: q.ProjectID,
		TeamID:    q.TeamID,
		Query:     q.Query,
	})
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(items, response.FromRequest))
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// CreateRequest godoc
// @Summary Create a fabrication request
// @Tags requests
// @Accept json
// @Produce json
// @Param payload body request.RequestCreate true "request"
// @Success 201 {object} response.RequestResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var payload request.RequestCreate
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
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRequest(created))
}

func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	var payload request.RequestPatch
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
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	var payload request.StatusPatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.RequestStatus(payload.Status))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(updated))
}

func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapRequestError(err error) *pkg.AppError {
	if appErr, ok := commonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidRequestInput):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidRequestStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid request status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
