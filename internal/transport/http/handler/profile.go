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

type profileUsecaser interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, userID string, in usecase.UpdateProfileInput) (*domain.Profile, error)
}

type ProfileHandler struct {
	profiles profileUsecaser
	logger   *slog.Logger
}

func NewProfileHandler(profiles profileUsecaser, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger.With("component", "profile_handler")}
}

type updateProfileRequest struct {
	FullName string         `json:"full_name" binding:"required,fullname"`
	Bio      string         `json:"bio"       binding:"textmax=200"`
	Age      *int           `json:"age"       binding:"omitempty,min=13,max=120"`
	WeightKg *float64       `json:"weight"    binding:"omitempty,gte=0"`
	HeightCm *float64       `json:"height"    binding:"omitempty,gte=0"`
	Gender   *domain.Gender `json:"gender"    binding:"omitempty,oneof=male female other prefer-not"`
	Goals    []string       `json:"goals"     binding:"max=3,unique,dive,fitgoal"`
}

// GET /profile
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProfileNotFound})
			return
		}
		respondInternal(c, h.logger, "get profile", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p, err := h.profiles.Update(c.Request.Context(), userID(c), usecase.UpdateProfileInput{
		FullName: req.FullName,
		Bio:      req.Bio,
		Age:      req.Age,
		WeightKg: req.WeightKg,
		HeightCm: req.HeightCm,
		Gender:   req.Gender,
		Goals:    req.Goals,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errProfileNotFound})
			return
		}
		respondInternal(c, h.logger, "update profile", err)
		return
	}
	c.JSON(http.StatusOK, p)
}
