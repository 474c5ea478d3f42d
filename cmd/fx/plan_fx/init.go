package plan_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"yeohaeng/internal/api/controllers"
	"yeohaeng/internal/repositories"
	"yeohaeng/internal/services"
	"yeohaeng/pkg/config"
	"yeohaeng/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		providePlanRepo,
		providePlanValidator,
		providePlannerService,
		provideWorkerPool,
		providePlanController,
	),
	fx.Invoke(registerPoolLifecycle),
)

func providePlanRepo(db *gorm.DB) repositories.PlanRecordRepository {
	return repositories.NewPlanRecordRepository(db)
}

func providePlanValidator(geocoder services.GeocodeServiceInterface) *services.PlanValidator {
	return services.NewPlanValidator(geocoder)
}

func providePlannerService(
	generator utils.PlanGeneratorInterface,
	geocoder services.GeocodeServiceInterface,
	validator *services.PlanValidator,
	planRepo repositories.PlanRecordRepository,
	cfg *config.Config,
) services.PlannerServiceInterface {
	return services.NewPlannerService(generator, geocoder, validator, planRepo, cfg.MaxAttempts)
}

func provideWorkerPool(planner services.PlannerServiceInterface, cfg *config.Config) *services.GenerationWorkerPool {
	return services.NewGenerationWorkerPool(planner, cfg.GenerationWorkers, cfg.GenerationQueue, cfg.GenerationTimeout)
}

func providePlanController(
	planner services.PlannerServiceInterface,
	pool *services.GenerationWorkerPool,
	cfg *config.Config,
) *controllers.PlanController {
	return controllers.NewPlanController(planner, pool, cfg.GenerationMode)
}

func registerPoolLifecycle(lc fx.Lifecycle, pool *services.GenerationWorkerPool) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pool.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			pool.Stop()
			return nil
		},
	})
}
