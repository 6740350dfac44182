package request

import (
	"strings"

	"dynamic_shipping/internal/domain/entities"
)

// UpdateShipmentRequest is the payload accepted by PATCH /v1/shipments/:id.
// Omitted fields keep their stored value.
type UpdateShipmentRequest struct {
	OriginAddress      *string  `json:"origin_address"`
	DestinationAddress *string  `json:"destination_address"`
	Weight             *float64 `json:"weight"`
	PackageDimensions  *string  `json:"package_dimensions"`
	ShippingMethod     *string  `json:"shipping_method"`
	DeclaredValue      *float64 `json:"declared_value"`
}

// ResolveUpdate translates the payload into the patch applied by the
// shipment use case.
func (r UpdateShipmentRequest) ResolveUpdate() (entities.ShipmentUpdate, error) {
	upd := entities.ShipmentUpdate{
		OriginAddress:      r.OriginAddress,
		DestinationAddress: r.DestinationAddress,
		PackageWeight:      r.Weight,
		PackageDimensions:  r.PackageDimensions,
		DeclaredValue:      r.DeclaredValue,
	}
	if r.ShippingMethod != nil {
		method := entities.ShippingMethod(strings.ToLower(strings.TrimSpace(*r.ShippingMethod)))
		if !method.IsValid() {
			return entities.ShipmentUpdate{}, ErrInvalidShippingMethod
		}
		upd.ShippingMethod = &method
	}
	return upd, nil
}
