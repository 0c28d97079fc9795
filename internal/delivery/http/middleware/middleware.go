package middleware

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type MiddlewareConfig struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

// Middleware holds the settings resolved once at startup for the global
// middleware chain.
type Middleware struct {
	Log         *logrus.Logger
	CorsOrigins []string
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	m := &Middleware{CorsOrigins: DefaultCorsOrigins}
	if c == nil {
		return m
	}

	m.Log = c.Log
	if c.Config != nil {
		if v := c.Config.GetStringSlice("api.cors.origins"); len(v) > 0 {
			m.CorsOrigins = v
		}
	}
	if m.Log != nil {
		m.Log.WithField("origins", m.CorsOrigins).Debug("cors origins resolved")
	}
	return m
}
