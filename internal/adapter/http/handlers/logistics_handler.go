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

type LogisticsHandler struct {
	usecase usecase.ILogisticsUseCase
}

func NewLogisticsHandler(uc usecase.ILogisticsUseCase) *LogisticsHandler {
	return &LogisticsHandler{usecase: uc}
}

func logisticsFilter(q request.ListQuery) usecase.LogisticsEventFilter {
	return usecase.LogisticsEventFilter{
		Status:    entities.LogisticsEventStatus(q.Status),
		Type:      entities.LogisticsEventType(q.Type),
		ProjectID: q.ProjectID,
		TeamID:    q.TeamID,
		VehicleID: q.VehicleID,
		Query:     q.Query,
	}
}

func (h *LogisticsHandler) ListLogisticsEvents(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	items, err := h.usecase.List(c.Request.Context(), logisticsFilter(q))
	if err != nil {
		writeError(c, mapLogisticsError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(items, response.FromLogisticsEvent))
}

// Timeline godoc
// @Summary Logistics events grouped by scheduled day
// @Tags logistics-events
// @Produce json
// @Param status query string false "status"
// @Param type query string false "carga, descarga, entrega or retirada"
// @Success 200 {array} response.TimelineDayResponse
// @Router /logistics-events/timeline [get]
func (h *LogisticsHandler) Timeline(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	days, err := h.usecase.Timeline(c.Request.Context(), logisticsFilter(q))
	if err != nil {
		writeError(c, mapLogisticsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTimeline(days))
}

func (h *LogisticsHandler) GetLogisticsEvent(c *gin.Context) {
	ev, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLogisticsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLogisticsEvent(ev))
}

func (h *LogisticsHandler) CreateLogisticsEvent(c *gin.Context) {
	var payload request.LogisticsEventCreate
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
		writeError(c, mapLogisticsError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLogisticsEvent(created))
}

func (h *LogisticsHandler) UpdateLogisticsEvent(c *gin.Context) {
	var payload request.LogisticsEventPatch
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
		writeError(c, mapLogisticsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLogisticsEvent(updated))
}

func (h *LogisticsHandler) UpdateLogisticsEventStatus(c *gin.Context) {
	var payload request.StatusPatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.LogisticsEventStatus(payload.Status))
	if err != nil {
		writeError(c, mapLogisticsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLogisticsEvent(updated))
}

func (h *LogisticsHandler) DeleteLogisticsEvent(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapLogisticsError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLogisticsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLogisticsEventID), errors.Is(err, usecase.ErrInvalidLogisticsEventInput):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidLogisticsEventStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid logistics event status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLogisticsEventType):
		return pkg.NewDomainErrorSimple("INVALID_TYPE", "Invalid logistics event type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLogisticsEventNotFound):
		return pkg.NewDomainErrorSimple("LOGISTICS_EVENT_NOT_FOUND", "Logistics event not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
