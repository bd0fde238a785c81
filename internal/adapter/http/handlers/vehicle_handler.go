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

// VehicleHandler serves the fleet (frota).
type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
	// defaultWindow is used by MaintenanceDue when ?days is absent.
	defaultWindow int
}

func NewVehicleHandler(uc usecase.IVehicleUseCase, defaultWindowDays int) *VehicleHandler {
	return &VehicleHandler{usecase: uc, defaultWindow: defaultWindowDays}
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	items, err := h.usecase.List(c.Request.Context(), usecase.VehicleFilter{
		Status: entities.VehicleStatus(q.Status),
		TeamID: q.TeamID,
		Query:  q.Query,
	})
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(items, response.FromVehicle))
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(v))
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleCreate
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
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromVehicle(created))
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var payload request.VehiclePatch
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
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(updated))
}

func (h *VehicleHandler) UpdateVehicleStatus(c *gin.Context) {
	var payload request.StatusPatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.VehicleStatus(payload.Status))
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(updated))
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMaintenanceRecord godoc
// @Summary Register a maintenance service on a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "vehicle id"
// @Param payload body request.MaintenanceRecordCreate true "record"
// @Success 201 {object} response.VehicleResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /vehicles/{id}/maintenance [post]
func (h *VehicleHandler) AddMaintenanceRecord(c *gin.Context) {
	var payload request.MaintenanceRecordCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.AddMaintenanceRecord(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromVehicle(updated))
}

// MaintenanceDue godoc
// @Summary Vehicles whose next maintenance is due within the window
// @Tags vehicles
// @Produce json
// @Param days query int false "window in days"
// @Success 200 {object} response.ListResponse[response.VehicleResponse]
// @Router /vehicles/maintenance-due [get]
func (h *VehicleHandler) MaintenanceDue(c *gin.Context) {
	var q request.MaintenanceDueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	days := h.defaultWindow
	if q.Days != nil {
		days = *q.Days
	}

	items, err := h.usecase.MaintenanceDue(c.Request.Context(), days)
	if err != nil {
		writeError(c, mapVehicleError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(items, response.FromVehicle))
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID), errors.Is(err, usecase.ErrInvalidVehicleInput),
		errors.Is(err, usecase.ErrInvalidMaintenanceDays):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidMaintenanceInput):
		return pkg.NewDomainErrorSimple("INVALID_MAINTENANCE_RECORD", "Invalid maintenance record", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVehicleStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid vehicle status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
