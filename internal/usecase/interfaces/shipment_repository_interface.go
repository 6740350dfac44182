package interfaces

import (
	"context"
	"time"

	"dynamic_shipping/internal/domain/entities"
)

// IShipmentRepository abstracts DynamoDB persistence for Shipment.
//
// Contract notes:
//   - Create atomically checks-and-inserts the tracking number; a taken
//     number fails with ErrDuplicateTrackingNumber and nothing is written.
//   - Lookup misses return a zero-value Shipment and a nil error.
//   - ListByUserID returns the caller's rows ordered by created_at descending.
//   - GetStats aggregates over the user's rows (active counts are unwindowed,
//     delivered/spent use the trailing 30-day window).

type IShipmentRepository interface {
	Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error)
	GetByID(ctx context.Context, id string) (entities.Shipment, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (entities.Shipment, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Shipment, error)
	Update(ctx context.Context, id string, upd entities.ShipmentUpdate) (entities.Shipment, error)
	UpdateStatus(ctx context.Context, id string, status entities.ShipmentStatus, actualDelivery *time.Time) (entities.Shipment, error)
	Delete(ctx context.Context, id string) error
	GetStats(ctx context.Context, userID string) (entities.ShipmentStats, error)
}
