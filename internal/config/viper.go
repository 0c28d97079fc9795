package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/middleware"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/llm"
	"github.com/spf13/viper"
)

// NewViper loads config.yaml (config.prod.yaml when ENV=production) from the
// working directory. The file is optional; environment variables override it.
func NewViper() *viper.Viper {
	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	setDefaults(config)

	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	_ = config.BindEnv("llm.api_key", "LLM_API_KEY", "GEMINI_API_KEY")
	_ = config.BindEnv("llm.model", "LLM_MODEL", "GEMINI_MODEL_ID")

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return config
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "adaptive-learning-be")
	config.SetDefault("api.listen", ":8080")
	config.SetDefault("api.prefork", false)
	config.SetDefault("api.cors.origins", middleware.DefaultCorsOrigins)
	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")
	config.SetDefault("log.file", "")
	config.SetDefault("llm.provider", llm.ProviderGemini)
	config.SetDefault("llm.base_url", "")
	config.SetDefault("predictor.model_path", "")
}
