package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"yeohaeng/internal/infra"
	"yeohaeng/pkg/config"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(registerDBLifecycle),
)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg.PostgresURL)
}

func registerDBLifecycle(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
}
