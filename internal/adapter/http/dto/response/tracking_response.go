package response

import (
	"time"

	"dynamic_shipping/internal/domain/entities"
)

type TrackingEventResponse struct {
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

type TrackingStageResponse struct {
	Key      string `json:"key"`
	Complete bool   `json:"complete"`
}

type TrackingResponse struct {
	TrackingNumber    string                  `json:"tracking_number"`
	Status            string                  `json:"status"`
	CurrentLocation   string                  `json:"current_location,omitempty"`
	EstimatedDelivery time.Time               `json:"estimated_delivery"`
	LastUpdated       time.Time               `json:"last_updated"`
	Stages            []TrackingStageResponse `json:"stages"`
	History           []TrackingEventResponse `json:"history"`
}

func FromTrackingView(v entities.TrackingView) TrackingResponse {
	stages := make([]TrackingStageResponse, 0, len(v.Stages))
	for _, s := range v.Stages {
		stages = append(stages, TrackingStageResponse{Key: string(s.Key), Complete: s.Complete})
	}
	history := make([]TrackingEventResponse, 0, len(v.History))
	for _, e := range v.History {
		history = append(history, TrackingEventResponse{
			Status:    e.Status,
			Location:  e.Location,
			Timestamp: e.Timestamp,
			Details:   e.Details,
		})
	}
	return TrackingResponse{
		TrackingNumber:    v.TrackingNumber,
		Status:            string(v.Status),
		CurrentLocation:   v.CurrentLocation,
		EstimatedDelivery: v.EstimatedDelivery,
		LastUpdated:       v.LastUpdated,
		Stages:            stages,
		History:           history,
	}
}
