package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yeohaeng/internal/models/request_models"
	"yeohaeng/internal/models/response_models"
	"yeohaeng/internal/services"
	"yeohaeng/pkg/utils"
)

const (
	GenerationModeSync  = "sync"
	GenerationModeAsync = "async"
)

type PlanController struct {
	plannerService services.PlannerServiceInterface
	pool           *services.GenerationWorkerPool
	mode           string
}

func NewPlanController(plannerService services.PlannerServiceInterface, pool *services.GenerationWorkerPool, mode string) *PlanController {
	if mode != GenerationModeSync {
		mode = GenerationModeAsync
	}
	return &PlanController{
		plannerService: plannerService,
		pool:           pool,
		mode:           mode,
	}
}

// GenerateHandler accepts a travel request and either blocks for the plan
// (sync mode) or returns the record id immediately (async mode).
func (p *PlanController) GenerateHandler(c *gin.Context) {
	var req request_models.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Destination == "" || req.DurationDays < 1 {
		utils.RespondError(c, http.StatusBadRequest, "destination and duration_days are required")
		return
	}

	if p.mode == GenerationModeSync {
		id, plan, err := p.plannerService.GenerateAndStore(c.Request.Context(), req)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, response_models.GenerateSyncResponse{
			Plan:   plan,
			PlanID: id.String(),
		}, "Itinerary generated successfully")
		return
	}

	id, err := p.plannerService.StartGeneration(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := p.pool.Enqueue(services.GenerationJob{PlanID: id, Request: req}); err != nil {
		// The record would stay "processing" forever otherwise.
		_ = p.plannerService.MarkFailed(c.Request.Context(), id, "server is busy, try again later")
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.GenerateAsyncResponse{PlanID: id.String()}, "Itinerary generation started")
}

// GetPlanHandler returns the stored record for polling.
func (p *PlanController) GetPlanHandler(c *gin.Context) {
	planId := c.Param("planId")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	record, err := p.plannerService.GetPlanRecord(c.Request.Context(), planId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, record, "Plan fetched successfully")
}
