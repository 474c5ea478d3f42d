package response_models

import "yeohaeng/internal/models/request_models"

type GenerateSyncResponse struct {
	Plan   *ItineraryPlan `json:"plan"`
	PlanID string         `json:"plan_id"`
}

type GenerateAsyncResponse struct {
	PlanID string `json:"plan_id"`
}

// PlanRecordResponse is what polling clients see. Status leaves
// "processing" exactly once, when the background generation finishes.
type PlanRecordResponse struct {
	PlanID    string                       `json:"plan_id"`
	Status    string                       `json:"status"`
	Error     string                       `json:"error,omitempty"`
	Request   request_models.TravelRequest `json:"request_details"`
	Plan      *ItineraryPlan               `json:"plan,omitempty"`
	CreatedAt string                       `json:"created_at,omitempty"`
}
