package pages_fx

import (
	"go.uber.org/fx"

	"yeohaeng/internal/api/controllers"
	"yeohaeng/pkg/config"
)

var Module = fx.Provide(providePagesController)

func providePagesController(cfg *config.Config) *controllers.PagesController {
	return controllers.NewPagesController(cfg.MapsAPIKey)
}
