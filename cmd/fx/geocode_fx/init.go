package geocode_fx

import (
	"log"

	"go.uber.org/fx"

	"yeohaeng/internal/services"
	"yeohaeng/pkg/config"
)

var Module = fx.Provide(ProvideGeocodeService)

// ProvideGeocodeService returns nil when no Maps key is configured; the
// validator then skips geographic checks rather than failing generations.
func ProvideGeocodeService(cfg *config.Config) services.GeocodeServiceInterface {
	if cfg.MapsAPIKey == "" {
		log.Println("MAPS_API_KEY is not set, geographic validation disabled")
		return nil
	}
	return services.NewGoogleGeocodeClient(cfg.MapsAPIKey)
}
