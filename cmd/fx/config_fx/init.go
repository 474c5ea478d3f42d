package config_fx

import (
	"go.uber.org/fx"

	"yeohaeng/pkg/config"
)

var Module = fx.Provide(provideConfig)

func provideConfig() *config.Config {
	return config.LoadConfig()
}
