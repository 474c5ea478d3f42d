package ai_fx

import (
	"log"
	"strings"

	"go.uber.org/fx"

	"yeohaeng/pkg/config"
	"yeohaeng/pkg/utils"
)

var Module = fx.Provide(ProvidePlanGenerator)

// ProvidePlanGenerator creates the model client for the configured
// provider. A missing key leaves the generator uninitialized (nil) so
// generation routes return 500 instead of the process refusing to start.
func ProvidePlanGenerator(cfg *config.Config) utils.PlanGeneratorInterface {
	var apiKey, model string

	switch strings.ToLower(cfg.AIProvider) {
	case "openai":
		apiKey, model = cfg.OpenAIAPIKey, cfg.OpenAIModel
	case "gemini":
		apiKey, model = cfg.GeminiAPIKey, cfg.GeminiModel
	default:
		log.Printf("unsupported AI provider %q, generation disabled", cfg.AIProvider)
		return nil
	}

	if apiKey == "" {
		log.Printf("%s API key is not set, generation disabled", cfg.AIProvider)
		return nil
	}

	log.Printf("Initializing %s plan generator with model: %s", cfg.AIProvider, model)

	client, err := utils.NewPlanGenerator(cfg.AIProvider, apiKey, model)
	if err != nil {
		log.Printf("failed to create %s client: %v, generation disabled", cfg.AIProvider, err)
		return nil
	}
	return client
}
