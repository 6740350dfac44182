package entities

import "time"

// ShipmentStatus represents the lifecycle of a shipment.
//
// Domain notes:
//   - The shipping-service is the source of truth for shipment state.
//   - Transitions are strictly forward: pending -> in_transit -> delivered.
//   - cancelled is reachable from pending or in_transit only.
//   - delivered and cancelled are terminal.

type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "pending"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusCancelled ShipmentStatus = "cancelled"
)

// IsValid reports whether s is one of the known statuses.
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusInTransit, ShipmentStatusDelivered, ShipmentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s ShipmentStatus) IsTerminal() bool {
	return s == ShipmentStatusDelivered || s == ShipmentStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is a legal step of the
// state machine. No transition reverses a previous one.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	switch s {
	case ShipmentStatusPending:
		return next == ShipmentStatusInTransit || next == ShipmentStatusCancelled
	case ShipmentStatusInTransit:
		return next == ShipmentStatusDelivered || next == ShipmentStatusCancelled
	default:
		return false
	}
}

// ShippingMethod is the closed set of service levels a shipment can be booked
// with.

type ShippingMethod string

const (
	ShippingMethodExpress  ShippingMethod = "express"
	ShippingMethodPriority ShippingMethod = "priority"
	ShippingMethodStandard ShippingMethod = "standard"
	ShippingMethodEconomy  ShippingMethod = "economy"
)

func (m ShippingMethod) IsValid() bool {
	switch m {
	case ShippingMethodExpress, ShippingMethodPriority, ShippingMethodStandard, ShippingMethodEconomy:
		return true
	}
	return false
}

// DeliveryEstimateOffset is added to the pickup date to derive the estimated
// delivery date at booking time.
const DeliveryEstimateOffset = 7 * 24 * time.Hour

// Shipment is the central entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id, range created_at
//   - GSI2 (tracking_number-index): tracking_number
//
// Identity:
//   - ID is the server-assigned opaque row identifier.
//   - TrackingNumber is the human-presentable business identifier; globally
//     unique and immutable once assigned.
//
// Ownership:
//   - UserID is set at creation and never changes. A user may only read or
//     mutate their own shipments.

type Shipment struct {
	ID                 string         `json:"id"`
	UserID             string         `json:"user_id"`
	TrackingNumber     string         `json:"tracking_number"`
	Status             ShipmentStatus `json:"status"`
	OriginAddress      string         `json:"origin_address"`
	DestinationAddress string         `json:"destination_address"`
	PackageWeight      float64        `json:"package_weight"`
	PackageDimensions  string         `json:"package_dimensions"`
	ShippingMethod     ShippingMethod `json:"shipping_method"`
	DeclaredValue      float64        `json:"declared_value,omitempty"`
	Cost               float64        `json:"cost"`
	EstimatedDelivery  time.Time      `json:"estimated_delivery"`
	ActualDelivery     *time.Time     `json:"actual_delivery,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// ShipmentStats is the dashboard aggregation over a user's shipments.
//
// ActiveShipments counts rows with status pending or in_transit regardless of
// age. DeliveredShipments and TotalSpent are windowed to the trailing 30 days
// (by actual_delivery and created_at respectively).

type ShipmentStats struct {
	ActiveShipments    int     `json:"active_shipments"`
	DeliveredShipments int     `json:"delivered_shipments"`
	TotalSpent         float64 `json:"total_spent"`
}

// StatsWindow is the trailing aggregation window used by ShipmentStats.
const StatsWindow = 30 * 24 * time.Hour

// ShipmentUpdate carries the mutable fields of a partial update. Nil fields
// are left untouched.

type ShipmentUpdate struct {
	OriginAddress      *string
	DestinationAddress *string
	PackageWeight      *float64
	PackageDimensions  *string
	ShippingMethod     *ShippingMethod
	DeclaredValue      *float64
	EstimatedDelivery  *time.Time
}
