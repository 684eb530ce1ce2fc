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

var errInvalidNeighborPayload = pkg.NewDomainErrorSimple("INVALID_NEIGHBOR_INPUT", "Invalid neighbor payload", http.StatusBadRequest)

// NeighborHandler handles HTTP requests for the neighbor registry.
type NeighborHandler struct {
	usecase usecase.INeighborUseCase
}

func NewNeighborHandler(uc usecase.INeighborUseCase) *NeighborHandler {
	return &NeighborHandler{usecase: uc}
}

func (h *NeighborHandler) CreateNeighbor(c *gin.Context) {
	var payload request.NeighborRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNeighborPayload.HTTPStatus, errInvalidNeighborPayload.ToHTTPError())
		return
	}

	neighbor, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapNeighborError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromNeighbor(neighbor))
}

func (h *NeighborHandler) ListNeighbors(c *gin.Context) {
	neighbors, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapNeighborError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNeighbors(neighbors))
}

func (h *NeighborHandler) GetNeighbor(c *gin.Context) {
	neighbor, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNeighborError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNeighbor(neighbor))
}

func (h *NeighborHandler) UpdateNeighbor(c *gin.Context) {
	var payload request.NeighborUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNeighborPayload.HTTPStatus, errInvalidNeighborPayload.ToHTTPError())
		return
	}

	neighbor, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapNeighborError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNeighbor(neighbor))
}

func (h *NeighborHandler) DeleteNeighbor(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapNeighborError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Neighbor deleted"})
}

func mapNeighborError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNeighborID), errors.Is(err, usecase.ErrInvalidNeighbor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNeighborNotFound):
		return pkg.NewDomainErrorSimple("NEIGHBOR_NOT_FOUND", "Neighbor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
