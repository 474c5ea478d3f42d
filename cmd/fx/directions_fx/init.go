package directions_fx

import (
	"go.uber.org/fx"

	"yeohaeng/internal/api/controllers"
	"yeohaeng/internal/services"
	"yeohaeng/pkg/config"
)

var Module = fx.Provide(
	provideDirectionsCache,
	provideDirectionsService,
	provideDirectionsController,
)

func provideDirectionsCache() services.DirectionsPairCache {
	return services.NewInMemoryPairCache()
}

func provideDirectionsService(cache services.DirectionsPairCache, cfg *config.Config) services.DirectionsServiceInterface {
	return services.NewKakaoDirectionsClient(cfg.KakaoAPIKey, cache, cfg.DirectionsCacheTTL)
}

func provideDirectionsController(directionsService services.DirectionsServiceInterface) *controllers.DirectionsController {
	return controllers.NewDirectionsController(directionsService)
}
