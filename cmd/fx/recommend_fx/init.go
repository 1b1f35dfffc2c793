package recommend_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"wanderlust/internal/recommend"
	"wanderlust/pkg/utils"
)

var Module = fx.Provide(
	ProvideRecommender,
	ProvideImageService,
)

// RecommendConfig holds configuration for the recommendation backend.
type RecommendConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideRecommender creates the recommendation client selected by
// RECOMMEND_PROVIDER ("gemini" or "openai").
func ProvideRecommender() (recommend.Recommender, error) {
	config := getRecommendConfig()

	log.Printf("Initializing %s recommender with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "gemini":
		client, err := recommend.NewGeminiRecommender(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini recommender: %w", err)
		}
		return client, nil
	case "openai":
		return recommend.NewOpenAIRecommender(config.APIKey, config.Model), nil
	default:
		return nil, fmt.Errorf("unsupported recommendation provider: %s. Use 'gemini' or 'openai'", config.Provider)
	}
}

func ProvideImageService() utils.ImageService {
	return utils.NewPollinationsImages()
}

func getRecommendConfig() RecommendConfig {
	provider := getEnvWithDefault("RECOMMEND_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the Gemini provider")
		}
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	}

	return RecommendConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
