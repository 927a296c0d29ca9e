package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	rateLimitRequests = 100 // requests per second across all clients
	rateLimitBurst    = 200
)

// NewRouter wires the HTTP surface around the handler.
func NewRouter(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("64K"))
	e.Use(globalRateLimit(rate.NewLimiter(rate.Limit(rateLimitRequests), rateLimitBurst)))

	e.GET("/", h.Welcome)

	v1 := e.Group("/v1")
	v1.POST("/register", h.Register)
	v1.POST("/register/social", h.SocialAuth)
	v1.POST("/login", h.Login)
	v1.POST("/login/social", h.SocialAuth)
	v1.POST("/forgot-password", h.ForgotPassword)
	v1.POST("/reset-password/:tokenId", h.ResetPassword)
	v1.POST("/logout", h.Logout)

	return e
}

func globalRateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}
