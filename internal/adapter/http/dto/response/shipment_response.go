package response

import (
	"time"

	"dynamic_shipping/internal/domain/entities"
)

type ShipmentResponse struct {
	ID                 string     `json:"id"`
	TrackingNumber     string     `json:"tracking_number"`
	Status             string     `json:"status"`
	OriginAddress      string     `json:"origin_address"`
	DestinationAddress string     `json:"destination_address"`
	PackageWeight      float64    `json:"package_weight"`
	PackageDimensions  string     `json:"package_dimensions"`
	ShippingMethod     string     `json:"shipping_method"`
	DeclaredValue      float64    `json:"declared_value,omitempty"`
	Cost               float64    `json:"cost"`
	EstimatedDelivery  time.Time  `json:"estimated_delivery"`
	ActualDelivery     *time.Time `json:"actual_delivery,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func FromShipment(s entities.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                 s.ID,
		TrackingNumber:     s.TrackingNumber,
		Status:             string(s.Status),
		OriginAddress:      s.OriginAddress,
		DestinationAddress: s.DestinationAddress,
		PackageWeight:      s.PackageWeight,
		PackageDimensions:  s.PackageDimensions,
		ShippingMethod:     string(s.ShippingMethod),
		DeclaredValue:      s.DeclaredValue,
		Cost:               s.Cost,
		EstimatedDelivery:  s.EstimatedDelivery,
		ActualDelivery:     s.ActualDelivery,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func FromShipments(shipments []entities.Shipment) []ShipmentResponse {
	out := make([]ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, FromShipment(s))
	}
	return out
}

type ShipmentStatsResponse struct {
	ActiveShipments    int     `json:"active_shipments"`
	DeliveredShipments int     `json:"delivered_shipments"`
	TotalSpent         float64 `json:"total_spent"`
}

func FromShipmentStats(s entities.ShipmentStats) ShipmentStatsResponse {
	return ShipmentStatsResponse{
		ActiveShipments:    s.ActiveShipments,
		DeliveredShipments: s.DeliveredShipments,
		TotalSpent:         s.TotalSpent,
	}
}
