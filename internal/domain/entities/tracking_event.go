package entities

import (
	"strings"
	"time"
)

// TrackingEvent is one timestamped status/location record from the carrier
// feed. Events belong to exactly one shipment and are ordered chronologically
// ascending; the most recent event is the source of the current location.

type TrackingEvent struct {
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

// StageKey identifies one of the three coarse progress buckets shown on the
// tracking screen.

type StageKey string

const (
	StageShipped   StageKey = "shipped"
	StageInTransit StageKey = "in_transit"
	StageDelivered StageKey = "delivered"
)

// Stage is one entry of the three-stage progress indicator.

type Stage struct {
	Key      StageKey `json:"key"`
	Complete bool     `json:"complete"`
}

// TrackingView is the display-ready model derived from a shipment and its
// event history. When the history is empty, CurrentLocation is "" and
// LastUpdated is the zero time; the caller renders a neutral placeholder.

type TrackingView struct {
	TrackingNumber    string         `json:"tracking_number"`
	Status            ShipmentStatus `json:"status"`
	CurrentLocation   string         `json:"current_location,omitempty"`
	EstimatedDelivery time.Time      `json:"estimated_delivery"`
	LastUpdated       time.Time      `json:"last_updated,omitempty"`
	Stages            []Stage        `json:"stages"`
	History           []TrackingEvent `json:"history"`
}

// Stage keyword matching follows the carrier's free-text labels: an event
// whose label mentions "Picked" completes the shipped stage, "Transit" the
// in_transit stage and "Delivered" the delivered stage. Anything else is a
// plain location update.
var stageKeywords = map[StageKey]string{
	StageShipped:   "Picked",
	StageInTransit: "Transit",
	StageDelivered: "Delivered",
}

// NewTrackingView derives the tracking screen model from a shipment and its
// ordered event history.
func NewTrackingView(s Shipment, history []TrackingEvent) TrackingView {
	view := TrackingView{
		TrackingNumber:    s.TrackingNumber,
		Status:            s.Status,
		EstimatedDelivery: s.EstimatedDelivery,
		History:           history,
	}
	if len(history) > 0 {
		last := history[len(history)-1]
		view.CurrentLocation = last.Location
		view.LastUpdated = last.Timestamp
	}
	for _, key := range []StageKey{StageShipped, StageInTransit, StageDelivered} {
		view.Stages = append(view.Stages, Stage{Key: key, Complete: stageComplete(history, stageKeywords[key])})
	}
	return view
}

func stageComplete(history []TrackingEvent, keyword string) bool {
	for _, ev := range history {
		if strings.Contains(ev.Status, keyword) {
			return true
		}
	}
	return false
}
