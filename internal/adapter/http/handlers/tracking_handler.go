package handlers

import (
	"errors"
	"net/http"

	response "dynamic_shipping/internal/adapter/http/dto/response"
	"dynamic_shipping/internal/usecase"
	"dynamic_shipping/internal/usecase/interfaces"
	"dynamic_shipping/pkg"

	"github.com/gin-gonic/gin"
)

// TrackingHandler handles public tracking lookups. Tracking is keyed by
// tracking number and requires no caller identity.

type TrackingHandler struct {
	usecase usecase.ITrackingUseCase
}

func NewTrackingHandler(uc usecase.ITrackingUseCase) *TrackingHandler {
	return &TrackingHandler{usecase: uc}
}

// Track returns the public tracking view for a tracking number.
func (h *TrackingHandler) Track(c *gin.Context) {
	view, err := h.usecase.Track(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTrackingView(view))
}

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTrackingNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentNotFound):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "Shipment not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Storage temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
