package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/metrics"
	"github.com/ErlanBelekov/fittrack/internal/state"
	"github.com/ErlanBelekov/fittrack/internal/usecase"
	"github.com/gin-gonic/gin"
)

// workoutCatalog is satisfied by *catalog.Catalog.
type workoutCatalog interface {
	Workouts() []domain.Workout
	Workout(id string) (domain.Workout, error)
	Categories() []string
}

type sessionUsecaser interface {
	LogSession(ctx context.Context, userID string, in usecase.LogSessionInput) (*domain.WorkoutSession, error)
	ListSessions(ctx context.Context, userID string, limit int) ([]*domain.WorkoutSession, error)
}

type WorkoutHandler struct {
	catalog  workoutCatalog
	sessions sessionUsecaser
	logger   *slog.Logger
}

func NewWorkoutHandler(catalog workoutCatalog, sessions sessionUsecaser, logger *slog.Logger) *WorkoutHandler {
	return &WorkoutHandler{catalog: catalog, sessions: sessions, logger: logger.With("component", "workout_handler")}
}

type listWorkoutsResponse struct {
	Workouts []domain.Workout `json:"workouts"`
	// Message is set when no workout matches.
	Message string `json:"message,omitempty"`
}

// GET /workouts?q=&category=
func (h *WorkoutHandler) List(c *gin.Context) {
	menu := state.NewMenu().SetQuery(c.Query("q"))
	if cat := c.Query("category"); cat != "" {
		menu = menu.SelectCategory(cat)
	}

	resp := listWorkoutsResponse{Workouts: menu.Visible(h.catalog.Workouts())}
	result := "match"
	if len(resp.Workouts) == 0 {
		resp.Message = menu.EmptyMessage()
		result = "empty"
	}
	metrics.CatalogFilterTotal.WithLabelValues(result).Inc()
	c.JSON(http.StatusOK, resp)
}

// GET /workouts/categories
func (h *WorkoutHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Categories()})
}

// GET /workouts/:id
// Includes the pre-filled session form shown by "Start workout".
func (h *WorkoutHandler) GetByID(c *gin.Context) {
	w, err := h.catalog.Workout(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrWorkoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errWorkoutNotFound})
			return
		}
		respondInternal(c, h.logger, "get workout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workout": w, "session_form": state.StartWorkout(w)})
}

type logSessionRequest struct {
	WorkoutID       string  `json:"workout_id"       binding:"required"`
	DurationMin     int     `json:"duration"         binding:"required,min=1"`
	HeartRate       *int    `json:"heart_rate"       binding:"required,gte=0"`
	BodyTemperature float64 `json:"body_temperature" binding:"required,gte=95,lte=107.6"`
	Notes           string  `json:"notes"            binding:"max=500"`
}

// POST /sessions
func (h *WorkoutHandler) LogSession(c *gin.Context) {
	var req logSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	s, err := h.sessions.LogSession(c.Request.Context(), userID(c), usecase.LogSessionInput{
		WorkoutID:       req.WorkoutID,
		DurationMin:     req.DurationMin,
		HeartRate:       *req.HeartRate,
		BodyTemperature: req.BodyTemperature,
		Notes:           req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrWorkoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errWorkoutNotFound})
			return
		}
		respondInternal(c, h.logger, "log session", err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// GET /sessions?limit=
func (h *WorkoutHandler) ListSessions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}

	sessions, err := h.sessions.ListSessions(c.Request.Context(), userID(c), limit)
	if err != nil {
		respondInternal(c, h.logger, "list sessions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
