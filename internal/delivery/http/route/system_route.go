package route

import (
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupSystemRoute(api fiber.Router, handler handler.SystemHandler) {
	api.Get("/health", handler.Health)

	router := api.Group("/ai")
	{
		router.Get("/models", handler.ListModels)
	}
}
