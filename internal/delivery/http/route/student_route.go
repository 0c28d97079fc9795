package route

import (
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoute(api fiber.Router, handler handler.StudentHandler) {
	router := api.Group("/student")
	{
		router.Get("/status", handler.Status)
	}
}
