package usecase

import (
	"context"
	"errors"

	"dynamic_shipping/internal/domain/entities"
)

var ErrInvalidQuoteInput = errors.New("invalid quote input")

// QuoteCommand is the validated input of a rate estimate. Weight and
// dimensions must be positive reals; unit selectors are accepted but do not
// change the formula's constants.

type QuoteCommand struct {
	Weight        float64
	Length        float64
	Width         float64
	Height        float64
	WeightUnit    string
	DimensionUnit string
}

// IQuoteUseCase computes shipping cost estimates for the booking form.

type IQuoteUseCase interface {
	EstimateRate(ctx context.Context, cmd QuoteCommand) (entities.RateQuote, error)
}

type QuoteUseCase struct{}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase() *QuoteUseCase {
	return &QuoteUseCase{}
}

// EstimateRate rejects non-positive inputs and applies the rate formula. The
// formula itself is pure and NaN-propagating, so validation happens here and
// nowhere later.
func (u *QuoteUseCase) EstimateRate(_ context.Context, cmd QuoteCommand) (entities.RateQuote, error) {
	if cmd.Weight <= 0 || cmd.Length <= 0 || cmd.Width <= 0 || cmd.Height <= 0 {
		return entities.RateQuote{}, ErrInvalidQuoteInput
	}
	return entities.NewRateQuote(cmd.Weight, cmd.Length, cmd.Width, cmd.Height), nil
}
