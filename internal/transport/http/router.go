package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/fittrack/internal/transport/http/handler"
	"github.com/ErlanBelekov/fittrack/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

type RouterConfig struct {
	JWTKey      []byte
	CORSOrigins []string
	HSTS        bool
}

type Handlers struct {
	Auth      *handler.AuthHandler
	Workouts  *handler.WorkoutHandler
	Dashboard *handler.DashboardHandler
	Diet      *handler.DietHandler
	Profile   *handler.ProfileHandler
	Settings  *handler.SettingsHandler
}

func NewRouter(logger *slog.Logger, cfg RouterConfig, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security(cfg.HSTS))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	auth := r.Group("/auth")
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/password-reset", h.Auth.RequestPasswordReset)
	auth.POST("/password-reset/confirm", h.Auth.ConfirmPasswordReset)

	// The workout library and sample meals are public reference data.
	workouts := r.Group("/workouts")
	workouts.GET("", h.Workouts.List)
	workouts.GET("/categories", h.Workouts.Categories)
	workouts.GET("/:id", h.Workouts.GetByID)
	r.GET("/meals/samples", h.Diet.Samples)

	protected := r.Group("", middleware.Auth(cfg.JWTKey))
	protected.DELETE("/account", h.Auth.DeleteAccount)

	protected.POST("/sessions", h.Workouts.LogSession)
	protected.GET("/sessions", h.Workouts.ListSessions)

	protected.GET("/dashboard", h.Dashboard.Get)

	protected.POST("/meals", h.Diet.LogMeal)
	protected.GET("/meals/today", h.Diet.Today)
	protected.DELETE("/meals/:id", h.Diet.DeleteMeal)

	protected.GET("/profile", h.Profile.Get)
	protected.PUT("/profile", h.Profile.Update)

	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	return r
}
