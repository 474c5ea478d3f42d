package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesController serves the UI shell. The browser-side Maps key is
// injected into the page; the plan itself is fetched by the client via
// /get_plan/:planId.
type PagesController struct {
	mapsAPIKey string
}

func NewPagesController(mapsAPIKey string) *PagesController {
	return &PagesController{mapsAPIKey: mapsAPIKey}
}

func (p *PagesController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"MapsAPIKey": p.mapsAPIKey,
		"PlanID":     c.Param("planId"),
	})
}

func (p *PagesController) Explore(c *gin.Context) {
	c.HTML(http.StatusOK, "explore.html", gin.H{
		"Plans": []interface{}{},
	})
}
