package handlers

import (
	"errors"
	"net/http"

	request "control_plagas/internal/adapter/http/dto/request"
	response "control_plagas/internal/adapter/http/dto/response"
	"control_plagas/internal/usecase"
	"control_plagas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)

// WorkOrderHandler handles HTTP requests for the work order ledger.
//
// The persistence write and any calendar mirroring are independent steps; this
// handler only ever touches the ledger.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	orders, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	var payload request.WorkOrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// DeleteWorkOrder removes the local record only; a mirrored calendar event is
// the caller's to remove through the calendar endpoints.
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Work order deleted"})
}

func (h *WorkOrderHandler) AppendVisit(c *gin.Context) {
	var payload request.VisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AppendVisit(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(order))
}

func (h *WorkOrderHandler) CompleteWorkOrder(c *gin.Context) {
	order, err := h.usecase.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidWorkOrder),
		errors.Is(err, usecase.ErrInvalidVisit):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
