package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// In the requested scope we only need to create/process and persist an
// approved payment. The type supports a denied status for completeness.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// ShipmentPayment is a payment taken for a booked shipment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (shipment_id-index): shipment_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type ShipmentPayment struct {
	ID         string        `json:"id"`
	ShipmentID string        `json:"shipment_id"`
	Date       time.Time     `json:"date"`
	Amount     float64       `json:"amount"`
	Status     PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
