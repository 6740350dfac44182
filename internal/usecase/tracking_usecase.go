package usecase

import (
	"context"
	"errors"
	"strings"

	"dynamic_shipping/internal/domain/entities"
	"dynamic_shipping/internal/usecase/interfaces"
)

var ErrInvalidTrackingNumber = errors.New("invalid tracking number")

// ITrackingUseCase resolves a tracking number into the display-ready
// status/history/progress model.

type ITrackingUseCase interface {
	Track(ctx context.Context, trackingNumber string) (entities.TrackingView, error)
}

type TrackingUseCase struct {
	repo interfaces.IShipmentRepository
	feed interfaces.ICarrierFeed
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(repo interfaces.IShipmentRepository, feed interfaces.ICarrierFeed) *TrackingUseCase {
	return &TrackingUseCase{repo: repo, feed: feed}
}

// Track looks the shipment up by its tracking number, pulls the carrier event
// history and derives the view. A lookup miss surfaces ErrShipmentNotFound;
// an empty history is not an error, the view carries neutral values.
func (u *TrackingUseCase) Track(ctx context.Context, trackingNumber string) (entities.TrackingView, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return entities.TrackingView{}, ErrInvalidTrackingNumber
	}

	s, err := u.repo.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return entities.TrackingView{}, err
	}
	if s.ID == "" {
		return entities.TrackingView{}, ErrShipmentNotFound
	}

	history, err := u.feed.EventsForShipment(ctx, s)
	if err != nil {
		return entities.TrackingView{}, err
	}
	return entities.NewTrackingView(s, history), nil
}
