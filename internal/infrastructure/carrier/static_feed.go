package carrier

import (
	"context"
	"time"

	"dynamic_shipping/internal/domain/entities"
	"dynamic_shipping/internal/usecase/interfaces"
)

// StaticFeed derives a carrier event history from the shipment's own status
// and timestamps. It stands in for a live carrier integration and always
// returns events in chronological order.
type StaticFeed struct{}

var _ interfaces.ICarrierFeed = (*StaticFeed)(nil)

func NewStaticFeed() *StaticFeed {
	return &StaticFeed{}
}

func (f *StaticFeed) EventsForShipment(_ context.Context, s entities.Shipment) ([]entities.TrackingEvent, error) {
	created := s.CreatedAt

	processing := entities.TrackingEvent{
		Status:    "Processing",
		Location:  s.OriginAddress,
		Timestamp: created,
		Details:   "Shipment information received",
	}
	pickedUp := entities.TrackingEvent{
		Status:    "Picked Up",
		Location:  s.OriginAddress,
		Timestamp: created.Add(12 * time.Hour),
		Details:   "Package picked up by carrier",
	}
	inTransit := entities.TrackingEvent{
		Status:    "In Transit",
		Location:  "Distribution center",
		Timestamp: created.Add(24 * time.Hour),
		Details:   "Package departed origin facility",
	}

	switch s.Status {
	case entities.ShipmentStatusPending:
		return []entities.TrackingEvent{processing}, nil
	case entities.ShipmentStatusInTransit:
		return []entities.TrackingEvent{processing, pickedUp, inTransit}, nil
	case entities.ShipmentStatusDelivered:
		deliveredAt := s.EstimatedDelivery
		if s.ActualDelivery != nil {
			deliveredAt = *s.ActualDelivery
		}
		delivered := entities.TrackingEvent{
			Status:    "Delivered",
			Location:  s.DestinationAddress,
			Timestamp: deliveredAt,
			Details:   "Package delivered",
		}
		return []entities.TrackingEvent{processing, pickedUp, inTransit, delivered}, nil
	case entities.ShipmentStatusCancelled:
		cancelled := entities.TrackingEvent{
			Status:    "Cancelled",
			Location:  s.OriginAddress,
			Timestamp: s.UpdatedAt,
			Details:   "Shipment cancelled",
		}
		return []entities.TrackingEvent{processing, cancelled}, nil
	}
	return []entities.TrackingEvent{processing}, nil
}
