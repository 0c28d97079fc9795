package route

import (
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupTutorRoute(api fiber.Router, handler handler.TutorHandler) {
	api.Post("/generate", handler.GenerateContent)

	router := api.Group("/ai")
	{
		router.Post("/explain", handler.Explain)
		router.Post("/generate", handler.GenerateLesson)
		router.Post("/study-tool", handler.StudyTool)
	}
}
