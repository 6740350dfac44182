package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dynamic_shipping/internal/domain/entities"
	mock_interfaces "dynamic_shipping/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTrackingUseCase_Track(t *testing.T) {
	t.Run("invalid tracking number", func(t *testing.T) {
		uc := NewTrackingUseCase(nil, nil)
		_, err := uc.Track(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidTrackingNumber) {
			t.Fatalf("expected ErrInvalidTrackingNumber, got %v", err)
		}
	})

	t.Run("lookup miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		uc := NewTrackingUseCase(repo, nil)

		repo.EXPECT().GetByTrackingNumber(gomock.Any(), "DSL-20240613-10000").Return(entities.Shipment{}, nil)

		_, err := uc.Track(context.Background(), "DSL-20240613-10000")
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		uc := NewTrackingUseCase(repo, nil)

		repo.EXPECT().GetByTrackingNumber(gomock.Any(), "DSL-20240613-10000").Return(entities.Shipment{}, errors.New("db"))

		_, err := uc.Track(context.Background(), "DSL-20240613-10000")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("derives view from feed history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		feed := mock_interfaces.NewMockICarrierFeed(ctrl)
		uc := NewTrackingUseCase(repo, feed)

		s := entities.Shipment{
			ID:             "ship-1",
			TrackingNumber: "DSL-20240613-10000",
			Status:         entities.ShipmentStatusInTransit,
		}
		history := []entities.TrackingEvent{
			{Status: "Processing", Location: "New York, NY", Timestamp: time.Date(2024, 6, 13, 10, 0, 0, 0, time.UTC)},
			{Status: "Picked Up", Location: "New York, NY", Timestamp: time.Date(2024, 6, 13, 14, 0, 0, 0, time.UTC)},
			{Status: "In Transit", Location: "Memphis, TN", Timestamp: time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC)},
		}

		repo.EXPECT().GetByTrackingNumber(gomock.Any(), "DSL-20240613-10000").Return(s, nil)
		feed.EXPECT().EventsForShipment(gomock.Any(), s).Return(history, nil)

		view, err := uc.Track(context.Background(), " DSL-20240613-10000 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.CurrentLocation != "Memphis, TN" {
			t.Fatalf("unexpected location %q", view.CurrentLocation)
		}
		if view.Status != entities.ShipmentStatusInTransit {
			t.Fatalf("unexpected status %s", view.Status)
		}
		if len(view.Stages) != 3 {
			t.Fatalf("expected 3 stages, got %d", len(view.Stages))
		}
	})

	t.Run("feed error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		feed := mock_interfaces.NewMockICarrierFeed(ctrl)
		uc := NewTrackingUseCase(repo, feed)

		s := entities.Shipment{ID: "ship-1", TrackingNumber: "DSL-20240613-10000"}
		repo.EXPECT().GetByTrackingNumber(gomock.Any(), "DSL-20240613-10000").Return(s, nil)
		feed.EXPECT().EventsForShipment(gomock.Any(), s).Return(nil, errors.New("feed down"))

		_, err := uc.Track(context.Background(), "DSL-20240613-10000")
		if err == nil || err.Error() != "feed down" {
			t.Fatalf("expected feed error, got %v", err)
		}
	})
}
