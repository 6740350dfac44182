package request

import (
	"dynamic_shipping/internal/usecase"
)

// QuoteRequest is the payload accepted by POST /v1/quotes. Units are
// descriptive only and do not rescale the computed rate.
type QuoteRequest struct {
	Weight        float64 `json:"weight" binding:"required"`
	Length        float64 `json:"length" binding:"required"`
	Width         float64 `json:"width" binding:"required"`
	Height        float64 `json:"height" binding:"required"`
	WeightUnit    string  `json:"weight_unit"`
	DimensionUnit string  `json:"dimension_unit"`
}

func (r QuoteRequest) ResolveCommand() usecase.QuoteCommand {
	return usecase.QuoteCommand{
		Weight:        r.Weight,
		Length:        r.Length,
		Width:         r.Width,
		Height:        r.Height,
		WeightUnit:    r.WeightUnit,
		DimensionUnit: r.DimensionUnit,
	}
}
