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

var errInvalidCalendarPayload = pkg.NewDomainErrorSimple("INVALID_CALENDAR_INPUT", "Invalid calendar payload", http.StatusBadRequest)

// CalendarHandler exposes the calendar sync surface. Sync outcomes are
// independent from ledger writes; callers sequence the two themselves.
type CalendarHandler struct {
	usecase usecase.ICalendarSyncUseCase
}

func NewCalendarHandler(uc usecase.ICalendarSyncUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var payload request.CalendarEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalendarPayload.HTTPStatus, errInvalidCalendarPayload.ToHTTPError())
		return
	}

	ref, err := h.usecase.CreateEvent(c.Request.Context(), payload.OrderID)
	if err != nil {
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCalendarEventRef(ref))
}

func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	var payload request.CalendarEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalendarPayload.HTTPStatus, errInvalidCalendarPayload.ToHTTPError())
		return
	}

	ref, err := h.usecase.UpdateEvent(c.Request.Context(), c.Param("event_id"), payload.OrderID)
	if err != nil {
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalendarEventRef(ref))
}

// RemoveEvent returns success even when the provider no longer knows the
// event; the use case swallows that case.
func (h *CalendarHandler) RemoveEvent(c *gin.Context) {
	if err := h.usecase.RemoveEvent(c.Request.Context(), c.Param("event_id")); err != nil {
		appErr := mapCalendarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event removed"})
}

func (h *CalendarHandler) Health(c *gin.Context) {
	health := h.usecase.Health()
	c.JSON(http.StatusOK, response.CalendarHealthResponse{Configured: health.Configured})
}

func mapCalendarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEventID),
		errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotSchedulable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_SCHEDULABLE", "Work order has no scheduled timestamp", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNeighborNotFound):
		return pkg.NewDomainErrorSimple("NEIGHBOR_NOT_FOUND", "Neighbor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCalendarEventNotFound):
		return pkg.NewDomainErrorSimple("CALENDAR_EVENT_NOT_FOUND", "Calendar event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCalendarNotConfigured):
		return pkg.NewDomainErrorSimple("CALENDAR_NOT_CONFIGURED", "Calendar sync is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrCalendarUpstream):
		return pkg.NewDomainErrorSimple("CALENDAR_UPSTREAM_ERROR", err.Error(), http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
