package route

import (
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/handler"
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api            *fiber.App
	Middleware     *middleware.Middleware
	SystemHandler  handler.SystemHandler
	StudentHandler handler.StudentHandler
	TutorHandler   handler.TutorHandler
	CourseHandler  handler.CourseHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(c.Middleware.RequestIDMiddleware())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${locals:requestid}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	c.Api.Get("/", c.SystemHandler.Root)

	api := c.Api.Group("/api")
	SetupSystemRoute(api, c.SystemHandler)
	SetupStudentRoute(api, c.StudentHandler)
	SetupTutorRoute(api, c.TutorHandler)
	SetupCourseRoute(api, c.CourseHandler)
}
