package entities

import (
	"testing"
	"time"
)

func sampleHistory() []TrackingEvent {
	base := time.Date(2023, 6, 8, 10, 15, 0, 0, time.UTC)
	return []TrackingEvent{
		{Status: "Processing", Location: "New York, NY", Timestamp: base, Details: "Shipment information received"},
		{Status: "Picked Up", Location: "New York, NY", Timestamp: base.Add(4 * time.Hour), Details: "Package picked up by carrier"},
		{Status: "In Transit", Location: "Memphis, TN", Timestamp: base.Add(47 * time.Hour), Details: "Package in transit to destination"},
	}
}

func stageByKey(t *testing.T, view TrackingView, key StageKey) Stage {
	t.Helper()
	for _, st := range view.Stages {
		if st.Key == key {
			return st
		}
	}
	t.Fatalf("stage %s missing from view", key)
	return Stage{}
}

func TestNewTrackingView_Stages(t *testing.T) {
	s := Shipment{TrackingNumber: "DSL-20230608-12345", Status: ShipmentStatusInTransit}
	view := NewTrackingView(s, sampleHistory())

	if !stageByKey(t, view, StageShipped).Complete {
		t.Fatalf("expected shipped stage complete")
	}
	if !stageByKey(t, view, StageInTransit).Complete {
		t.Fatalf("expected in_transit stage complete")
	}
	if stageByKey(t, view, StageDelivered).Complete {
		t.Fatalf("expected delivered stage incomplete")
	}
}

func TestNewTrackingView_CurrentLocationAndLastUpdated(t *testing.T) {
	history := sampleHistory()
	view := NewTrackingView(Shipment{Status: ShipmentStatusInTransit}, history)

	last := history[len(history)-1]
	if view.CurrentLocation != last.Location {
		t.Fatalf("expected location %q, got %q", last.Location, view.CurrentLocation)
	}
	if !view.LastUpdated.Equal(last.Timestamp) {
		t.Fatalf("expected last updated %v, got %v", last.Timestamp, view.LastUpdated)
	}
}

func TestNewTrackingView_EmptyHistory(t *testing.T) {
	view := NewTrackingView(Shipment{Status: ShipmentStatusPending}, nil)

	if view.CurrentLocation != "" {
		t.Fatalf("expected empty location, got %q", view.CurrentLocation)
	}
	if !view.LastUpdated.IsZero() {
		t.Fatalf("expected zero last updated, got %v", view.LastUpdated)
	}
	for _, st := range view.Stages {
		if st.Complete {
			t.Fatalf("expected stage %s incomplete with no events", st.Key)
		}
	}
	if len(view.Stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(view.Stages))
	}
}

func TestNewTrackingView_DeliveredHistory(t *testing.T) {
	history := append(sampleHistory(), TrackingEvent{
		Status:    "Delivered",
		Location:  "Los Angeles, CA",
		Timestamp: time.Date(2023, 6, 12, 14, 0, 0, 0, time.UTC),
	})
	view := NewTrackingView(Shipment{Status: ShipmentStatusDelivered}, history)

	if !stageByKey(t, view, StageDelivered).Complete {
		t.Fatalf("expected delivered stage complete")
	}
	if view.CurrentLocation != "Los Angeles, CA" {
		t.Fatalf("unexpected location %q", view.CurrentLocation)
	}
}
