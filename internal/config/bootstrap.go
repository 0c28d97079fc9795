package config

import (
	"context"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/handler"
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/middleware"
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/route"
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/usecase"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/llm"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/predictor"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	Log       *logrus.Logger
	Validator *validate.Validator
	Generator *llm.Client
	Predictor usecase.OutcomePredictor
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	generator := config.Generator
	if generator == nil {
		generator = llm.NewClient(context.Background(), llm.Config{
			Provider: config.Config.GetString("llm.provider"),
			APIKey:   config.Config.GetString("llm.api_key"),
			Model:    config.Config.GetString("llm.model"),
			BaseURL:  config.Config.GetString("llm.base_url"),
		}, config.Log)
	}

	outcome := config.Predictor
	if outcome == nil {
		outcome = predictor.Load(config.Config.GetString("predictor.model_path"), config.Log)
	}

	studentUsecase := usecase.NewStudentUsecase(usecase.StudentConfig{
		Telemetry: usecase.NewTelemetryGenerator(),
		Predictor: outcome,
		Log:       config.Log,
	})
	tutorUsecase := usecase.NewTutorUsecase(usecase.TutorConfig{
		Generator: generator,
		Models:    generator,
		Log:       config.Log,
	})
	courseUsecase := usecase.NewCourseUsecase(usecase.CourseConfig{
		Generator: generator,
		Log:       config.Log,
	})

	route.Setup(&route.RouteConfig{
		Api:            config.Api,
		Middleware:     mid,
		SystemHandler:  handler.NewSystemHandler(config.Log, studentUsecase, tutorUsecase),
		StudentHandler: handler.NewStudentHandler(config.Log, studentUsecase),
		TutorHandler:   handler.NewTutorHandler(config.Validator, config.Log, tutorUsecase),
		CourseHandler:  handler.NewCourseHandler(config.Validator, config.Log, courseUsecase),
	})

}
