package route

import (
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/handler"
	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoute(api fiber.Router, handler handler.CourseHandler) {
	router := api.Group("/ai")
	{
		router.Post("/generate-course", handler.GenerateCourse)
		router.Post("/personalize-saga", handler.PersonalizeSaga)
	}
}
