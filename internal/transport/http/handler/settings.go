package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/usecase"
	"github.com/gin-gonic/gin"
)

type settingsUsecaser interface {
	Get(ctx context.Context, userID string) (*domain.Settings, error)
	Update(ctx context.Context, userID string, in usecase.UpdateSettingsInput) (*domain.Settings, error)
}

type SettingsHandler struct {
	settings settingsUsecaser
	logger   *slog.Logger
}

func NewSettingsHandler(settings settingsUsecaser, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, logger: logger.With("component", "settings_handler")}
}

// Pointers distinguish an explicit false from a missing field.
type updateSettingsRequest struct {
	Notifications     *bool                    `json:"notifications"      binding:"required"`
	EmailReminders    *bool                    `json:"email_reminders"    binding:"required"`
	ReminderFrequency domain.ReminderFrequency `json:"reminder_frequency" binding:"required,oneof=daily 3x/week weekly"`
	WeeklyGoal        int                      `json:"weekly_goal"        binding:"required,min=1,max=7"`
	DailyCalorieGoal  int                      `json:"daily_calorie_goal" binding:"required,min=1000,max=5000"`
	Language          string                   `json:"language"           binding:"required,oneof=en es fr de"`
}

// GET /settings
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errSettingsNotFound})
			return
		}
		respondInternal(c, h.logger, "get settings", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// PUT /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	s, err := h.settings.Update(c.Request.Context(), userID(c), usecase.UpdateSettingsInput{
		Notifications:     *req.Notifications,
		EmailReminders:    *req.EmailReminders,
		ReminderFrequency: req.ReminderFrequency,
		WeeklyGoal:        req.WeeklyGoal,
		DailyCalorieGoal:  req.DailyCalorieGoal,
		Language:          req.Language,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errSettingsNotFound})
			return
		}
		respondInternal(c, h.logger, "update settings", err)
		return
	}
	c.JSON(http.StatusOK, s)
}
