package interfaces

import (
	"context"

	"dynamic_shipping/internal/domain/entities"
)

// IShipmentPaymentRepository abstracts DynamoDB persistence for
// ShipmentPayment.

type IShipmentPaymentRepository interface {
	Create(ctx context.Context, p entities.ShipmentPayment) (entities.ShipmentPayment, error)
	GetByID(ctx context.Context, id string) (entities.ShipmentPayment, error)
	ListByShipmentID(ctx context.Context, shipmentID string) ([]entities.ShipmentPayment, error)
}
