package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"gymplan/internal/config"
	"gymplan/internal/handler"
	"gymplan/internal/middleware"
	"gymplan/internal/session"
)

// authRateLimit caps sign-up/login attempts per client IP.
const authRateLimit = rate.Limit(5)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	sessions session.Store,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes, rate limited per client IP
	limited := api.Group("", echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStore(authRateLimit),
	}))
	limited.POST("/signup", authHandler.Signup)
	limited.POST("/login", authHandler.Login)

	// Secured routes (require a valid session cookie)
	secured := api.Group("", middleware.Session(sessions))
	secured.POST("/profile", profileHandler.SaveProfile)
	secured.GET("/profile", profileHandler.GetProfile)
	secured.GET("/logout", authHandler.Logout)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
