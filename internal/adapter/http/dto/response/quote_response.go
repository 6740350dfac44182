package response

import (
	"dynamic_shipping/internal/domain/entities"
)

type QuoteResponse struct {
	BaseRate float64 `json:"base_rate"`
	VolRate  float64 `json:"volume_rate"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func FromRateQuote(q entities.RateQuote) QuoteResponse {
	return QuoteResponse{
		BaseRate: q.BaseRate,
		VolRate:  q.VolumeRate,
		Subtotal: q.Subtotal,
		Tax:      q.Tax,
		Total:    q.Total,
	}
}
