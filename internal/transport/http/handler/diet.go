package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/state"
	"github.com/ErlanBelekov/fittrack/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type dietUsecaser interface {
	LogMeal(ctx context.Context, userID string, in state.MealInput) (*domain.LoggedMeal, error)
	DeleteMeal(ctx context.Context, userID, mealID string) error
	Today(ctx context.Context, userID string) (*usecase.DayLog, error)
}

// sampleMeals is satisfied by *catalog.Catalog.
type sampleMeals interface {
	SampleMeals() []domain.Meal
}

type DietHandler struct {
	diet    dietUsecaser
	samples sampleMeals
	logger  *slog.Logger
}

func NewDietHandler(diet dietUsecaser, samples sampleMeals, logger *slog.Logger) *DietHandler {
	return &DietHandler{diet: diet, samples: samples, logger: logger.With("component", "diet_handler")}
}

type logMealRequest struct {
	Name     string          `json:"name"      binding:"required,max=100"`
	Calories int             `json:"calories"  binding:"required,gt=0"`
	MealType domain.MealType `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
}

// GET /meals/samples
func (h *DietHandler) Samples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"meals": h.samples.SampleMeals()})
}

// POST /meals
func (h *DietHandler) LogMeal(c *gin.Context) {
	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	m, err := h.diet.LogMeal(c.Request.Context(), userID(c), state.MealInput{
		Name:     req.Name,
		Calories: req.Calories,
		MealType: req.MealType,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrIncompleteMeal) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		respondInternal(c, h.logger, "log meal", err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// DELETE /meals/:id
func (h *DietHandler) DeleteMeal(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errMealNotFound})
		return
	}

	if err := h.diet.DeleteMeal(c.Request.Context(), userID(c), id); err != nil {
		if errors.Is(err, domain.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errMealNotFound})
			return
		}
		respondInternal(c, h.logger, "delete meal", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /meals/today
func (h *DietHandler) Today(c *gin.Context) {
	log, err := h.diet.Today(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errSettingsNotFound})
			return
		}
		respondInternal(c, h.logger, "today's meals", err)
		return
	}
	c.JSON(http.StatusOK, log)
}
