package request

import (
	"errors"
	"strings"
	"time"

	"dynamic_shipping/internal/domain/entities"
	"dynamic_shipping/internal/usecase"
)

var (
	ErrInvalidPickupDate     = errors.New("invalid pickup date")
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
)

// BookShipmentRequest is the payload accepted by POST /v1/shipments.
type BookShipmentRequest struct {
	OriginAddress      string  `json:"origin_address" binding:"required"`
	DestinationAddress string  `json:"destination_address" binding:"required"`
	Weight             float64 `json:"weight" binding:"required"`
	Length             float64 `json:"length" binding:"required"`
	Width              float64 `json:"width" binding:"required"`
	Height             float64 `json:"height" binding:"required"`
	DimensionUnit      string  `json:"dimension_unit"`
	ShippingMethod     string  `json:"shipping_method" binding:"required"`
	DeclaredValue      float64 `json:"declared_value"`
	PickupDate         string  `json:"pickup_date"`
}

// ResolveCommand validates the payload shape and translates it into the
// booking command. An empty pickup_date means pickup today.
func (r BookShipmentRequest) ResolveCommand() (usecase.BookShipmentCommand, error) {
	method := entities.ShippingMethod(strings.ToLower(strings.TrimSpace(r.ShippingMethod)))
	if !method.IsValid() {
		return usecase.BookShipmentCommand{}, ErrInvalidShippingMethod
	}

	pickup := time.Now().UTC()
	if v := strings.TrimSpace(r.PickupDate); v != "" {
		parsed, err := parsePickupDate(v)
		if err != nil {
			return usecase.BookShipmentCommand{}, ErrInvalidPickupDate
		}
		pickup = parsed
	}

	return usecase.BookShipmentCommand{
		OriginAddress:      r.OriginAddress,
		DestinationAddress: r.DestinationAddress,
		Weight:             r.Weight,
		Length:             r.Length,
		Width:              r.Width,
		Height:             r.Height,
		DimensionUnit:      strings.TrimSpace(r.DimensionUnit),
		ShippingMethod:     method,
		DeclaredValue:      r.DeclaredValue,
		PickupDate:         pickup,
	}, nil
}

func parsePickupDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
