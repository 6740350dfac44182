package response

import (
	"time"

	"dynamic_shipping/internal/domain/entities"
)

type ShipmentPaymentResponse struct {
	PaymentID  string    `json:"payment_id"`
	ID         string    `json:"id"`
	ShipmentID string    `json:"shipment_id"`
	Date       time.Time `json:"date"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromShipmentPayment(p entities.ShipmentPayment) ShipmentPaymentResponse {
	return ShipmentPaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		ShipmentID:         p.ShipmentID,
		Date:               p.Date,
		Amount:             p.Amount,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
