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

type dashboardUsecaser interface {
	Get(ctx context.Context, userID string) (*usecase.Dashboard, error)
}

type DashboardHandler struct {
	dashboard dashboardUsecaser
	logger    *slog.Logger
}

func NewDashboardHandler(dashboard dashboardUsecaser, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger.With("component", "dashboard_handler")}
}

// GET /dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	d, err := h.dashboard.Get(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errSettingsNotFound})
			return
		}
		respondInternal(c, h.logger, "get dashboard", err)
		return
	}
	c.JSON(http.StatusOK, d)
}
