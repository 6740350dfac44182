package interfaces

import (
	"context"

	"dynamic_shipping/internal/domain/entities"
)

// ICarrierFeed supplies the ordered tracking event history for a shipment.
// The current implementation is a deterministic mock derived from the
// shipment itself; a real carrier integration would replace it behind the
// same interface.

type ICarrierFeed interface {
	EventsForShipment(ctx context.Context, s entities.Shipment) ([]entities.TrackingEvent, error)
}
