package handlers

import (
	"errors"
	"net/http"

	request "dynamic_shipping/internal/adapter/http/dto/request"
	response "dynamic_shipping/internal/adapter/http/dto/response"
	"dynamic_shipping/internal/usecase"
	"dynamic_shipping/internal/usecase/interfaces"
	"dynamic_shipping/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidShipmentPayload = pkg.NewDomainErrorSimple("INVALID_SHIPMENT_INPUT", "Invalid shipment payload", http.StatusBadRequest)
)

// ShipmentHandler handles HTTP requests for shipments.

type ShipmentHandler struct {
	usecase usecase.IShipmentUseCase
}

func NewShipmentHandler(uc usecase.IShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{usecase: uc}
}

// BookShipment creates a shipment for the caller, pricing it with the
// current rate table and minting a fresh tracking number.
func (h *ShipmentHandler) BookShipment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var payload request.BookShipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ResolveCommand()
	if err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	shipment, err := h.usecase.Book(c.Request.Context(), userID, cmd)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromShipment(shipment))
}

// ListShipments returns the caller's shipments, newest first.
func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	shipments, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipments(shipments))
}

// GetShipment returns one of the caller's shipments by id.
func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	shipment, err := h.usecase.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipment(shipment))
}

// UpdateShipment patches the booking fields of a pending shipment.
func (h *ShipmentHandler) UpdateShipment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var payload request.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	upd, err := payload.ResolveUpdate()
	if err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	shipment, err := h.usecase.Update(c.Request.Context(), userID, c.Param("id"), upd)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipment(shipment))
}

// UpdateShipmentStatus advances a shipment along its status lifecycle.
func (h *ShipmentHandler) UpdateShipmentStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var payload request.UpdateShipmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	shipment, err := h.usecase.UpdateStatus(c.Request.Context(), userID, c.Param("id"), status)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipment(shipment))
}

// DeleteShipment removes one of the caller's shipments.
func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetShipmentStats returns the caller's dashboard counters.
func (h *ShipmentHandler) GetShipmentStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.usecase.Stats(c.Request.Context(), userID)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipmentStats(stats))
}

func mapShipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidShipmentID), errors.Is(err, usecase.ErrInvalidBooking), errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrInvalidUpdate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentNotOwned):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Shipment belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrShipmentNotFound):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "Shipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrTrackingNumberExhausted):
		return pkg.NewDomainErrorSimple("TRACKING_NUMBER_CONFLICT", "Could not allocate a unique tracking number", http.StatusConflict)
	case errors.Is(err, interfaces.ErrUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
