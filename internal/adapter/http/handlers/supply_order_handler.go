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

// SupplyOrderHandler serves warehouse (almoxarifado) orders.
type SupplyOrderHandler struct {
	usecase usecase.ISupplyOrderUseCase
}

func NewSupplyOrderHandler(uc usecase.ISupplyOrderUseCase) *SupplyOrderHandler {
	return &SupplyOrderHandler{usecase: uc}
}

func (h *SupplyOrderHandler) ListSupplyOrders(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidQuery)
		return
	}
	items, err := h.usecase.List(c.Request.Context(), usecase.SupplyOrderFilter{
		Status:    entities.SupplyOrderStatus(q.Status),
		Origin:    entities.SupplyOrigin(q.Origin),
		ProjectID: q.ProjectID,
		TeamID:    q.TeamID,
		Query:     q.Query,
	})
	if err != nil {
		writeError(c, mapSupplyOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(items, response.FromSupplyOrder))
}

func (h *SupplyOrderHandler) GetSupplyOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapSupplyOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupplyOrder(o))
}

func (h *SupplyOrderHandler) CreateSupplyOrder(c *gin.Context) {
	var payload request.SupplyOrderCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapSupplyOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSupplyOrder(created))
}

func (h *SupplyOrderHandler) UpdateSupplyOrder(c *gin.Context) {
	var payload request.SupplyOrderPatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		writeError(c, mapSupplyOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupplyOrder(updated))
}

func (h *SupplyOrderHandler) UpdateSupplyOrderStatus(c *gin.Context) {
	var payload request.StatusPatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.SupplyOrderStatus(payload.Status))
	if err != nil {
		writeError(c, mapSupplyOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupplyOrder(updated))
}

// ReviewSupplyOrder godoc
// @Summary Record the mediator decision on a supply order
// @Tags supply-orders
// @Accept json
// @Produce json
// @Param id path string true "supply order id"
// @Param payload body request.SupplyOrderReview true "review"
// @Success 200 {object} response.SupplyOrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /supply-orders/{id}/review [patch]
func (h *SupplyOrderHandler) ReviewSupplyOrder(c *gin.Context) {
	var payload request.SupplyOrderReview
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	updated, err := h.usecase.Review(c.Request.Context(), c.Param("id"), usecase.SupplyOrderReview{
		Status:        entities.SupplyOrderStatus(payload.Status),
		EstimatedCost: payload.EstimatedCost,
		MediatorNotes: payload.MediatorNotes,
	})
	if err != nil {
		writeError(c, mapSupplyOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSupplyOrder(updated))
}

func (h *SupplyOrderHandler) DeleteSupplyOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapSupplyOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapSupplyOrderError(err error) *pkg.AppError {
	if appErr, ok := commonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidSupplyOrderID), errors.Is(err, usecase.ErrInvalidSupplyOrderInput):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidSupplyOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid supply order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrigin):
		return pkg.NewDomainErrorSimple("INVALID_ORIGIN", "Origin must be producao or obra", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimatedCost):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATED_COST", "Estimated cost must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSupplyOrderNotFound):
		return pkg.NewDomainErrorSimple("SUPPLY_ORDER_NOT_FOUND", "Supply order not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
