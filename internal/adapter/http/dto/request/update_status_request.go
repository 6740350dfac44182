package request

import (
	"errors"
	"strings"

	"dynamic_shipping/internal/domain/entities"
)

var ErrInvalidStatusValue = errors.New("invalid status value")

// UpdateShipmentStatusRequest is the payload accepted by
// PATCH /v1/shipments/:id/status.
type UpdateShipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateShipmentStatusRequest) ResolveStatus() (entities.ShipmentStatus, error) {
	status := entities.ShipmentStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	if !status.IsValid() {
		return "", ErrInvalidStatusValue
	}
	return status, nil
}
