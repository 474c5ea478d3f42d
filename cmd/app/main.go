package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"yeohaeng/cmd/fx/ai_fx"
	"yeohaeng/cmd/fx/config_fx"
	"yeohaeng/cmd/fx/db_fx"
	"yeohaeng/cmd/fx/directions_fx"
	"yeohaeng/cmd/fx/geocode_fx"
	"yeohaeng/cmd/fx/pages_fx"
	"yeohaeng/cmd/fx/plan_fx"
	"yeohaeng/internal/api/controllers"
	"yeohaeng/pkg/config"
	"yeohaeng/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		ai_fx.Module,
		geocode_fx.Module,
		plan_fx.Module,
		directions_fx.Module,
		pages_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	directionsController *controllers.DirectionsController,
	pagesController *controllers.PagesController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	r.LoadHTMLGlob("templates/*.html")

	RegisterRoutes(r, planController, directionsController, pagesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	directionsController *controllers.DirectionsController,
	pagesController *controllers.PagesController) {

	r.GET("/", pagesController.Index)
	r.GET("/plan/:planId", pagesController.Index)
	r.GET("/explore", pagesController.Explore)

	r.GET("/get_plan/:planId", planController.GetPlanHandler)
	r.POST("/generate", planController.GenerateHandler)
	r.POST("/get_kakao_directions", directionsController.GetDirectionsHandler)
}
