package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/api/handler"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/api/middleware"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/service"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dailydiet"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	userService := service.NewUserService(userRepo, log)
	userHandler := handler.NewUserHandler(userService)

	mealRepo := postgres.NewMealRepository(db)
	mealService := service.NewMealService(mealRepo, log)
	mealHandler := handler.NewMealHandler(mealService)

	requireUser := middleware.RequireUser()

	// --- User routes (public) ---
	e.POST("/users", userHandler.Register)

	// --- Meal routes (identity-gated) ---
	// The literal /meals/metrics segment is registered before /meals/:id
	// so the intent stays visible, even though echo already prefers
	// static segments over parameters.
	meals := e.Group("/meals", requireUser)
	meals.POST("", mealHandler.Create)
	meals.GET("", mealHandler.List)
	meals.GET("/metrics", mealHandler.Metrics)
	meals.GET("/:id", mealHandler.Get)
	meals.PUT("/:id", mealHandler.Update)
	meals.DELETE("/:id", mealHandler.Delete)

	// --- Health probes and Prometheus exposition (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is Postgres up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
