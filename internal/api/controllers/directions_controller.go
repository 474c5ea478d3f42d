package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yeohaeng/internal/models/request_models"
	"yeohaeng/internal/services"
	"yeohaeng/pkg/utils"
)

type DirectionsController struct {
	directionsService services.DirectionsServiceInterface
}

func NewDirectionsController(directionsService services.DirectionsServiceInterface) *DirectionsController {
	return &DirectionsController{
		directionsService: directionsService,
	}
}

func (d *DirectionsController) GetDirectionsHandler(c *gin.Context) {
	var req request_models.DirectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Origin == nil || req.Destination == nil {
		utils.RespondError(c, http.StatusBadRequest, "Origin and destination coordinates are required")
		return
	}

	summary, err := d.directionsService.GetDirections(c.Request.Context(), *req.Origin, *req.Destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Directions fetched successfully")
}
