package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

var DefaultCorsOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:3000",
	"http://0.0.0.0:5173",
}

func (m *Middleware) CorsMiddleware() fiber.Handler {
	origins := DefaultCorsOrigins
	if m != nil && len(m.CorsOrigins) > 0 {
		origins = m.CorsOrigins
	}

	allowOrigins := strings.Join(origins, ",")
	return cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Content-Length, Accept-Encoding, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowOrigins:     allowOrigins,
		AllowCredentials: allowOrigins != "*",
		ExposeHeaders:    "Content-Length, Content-Type, X-Request-ID",
	})
}
