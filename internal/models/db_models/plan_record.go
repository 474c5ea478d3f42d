package db_models

import (
	"yeohaeng/internal/models/request_models"
	"yeohaeng/internal/models/response_models"
)

type PlanStatus string

const (
	PlanStatusProcessing PlanStatus = "processing"
	PlanStatusCompleted  PlanStatus = "completed"
	PlanStatusFailed     PlanStatus = "failed"
)

// PlanRecord is the persisted unit of a generation request. It is written
// by exactly one owner after creation (the background job for async mode,
// the request handler for sync mode) and never deleted.
type PlanRecord struct {
	BaseModel
	Status  PlanStatus                     `gorm:"type:varchar(16);index"`
	Error   string                         `gorm:"type:text"`
	Request request_models.TravelRequest   `gorm:"serializer:json"`
	Plan    *response_models.ItineraryPlan `gorm:"serializer:json"`
}
