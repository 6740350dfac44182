package entities

// Rate constants of the shipping cost formula. The formula does not normalize
// units; callers are expected to quote weight and dimensions in the units the
// constants were calibrated for.
const (
	weightRatePerUnit = 2.5
	volumeRatePerUnit = 0.1
	taxRate           = 0.10
)

// RateQuote is the ephemeral cost breakdown computed for a package. It has no
// identity and is never persisted; the booking flow copies Total into the
// shipment's cost column.

type RateQuote struct {
	BaseRate   float64 `json:"base_rate"`
	VolumeRate float64 `json:"volume_rate"`
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
}

// NewRateQuote computes the shipping cost estimate from package attributes.
// Pure; inputs must already be validated as positive reals, the formula
// itself propagates whatever it is given.
func NewRateQuote(weight, length, width, height float64) RateQuote {
	volume := length * width * height
	base := weight * weightRatePerUnit
	volumeRate := volume * volumeRatePerUnit
	subtotal := base + volumeRate
	return RateQuote{
		BaseRate:   base,
		VolumeRate: volumeRate,
		Subtotal:   subtotal,
		Tax:        subtotal * taxRate,
		Total:      subtotal * (1 + taxRate),
	}
}
