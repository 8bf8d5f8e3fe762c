// seed creates a demo account with two weeks of workouts and today's meals
// in the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ErlanBelekov/fittrack/config"
	"github.com/ErlanBelekov/fittrack/internal/catalog"
	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/email"
	"github.com/ErlanBelekov/fittrack/internal/events"
	"github.com/ErlanBelekov/fittrack/internal/infrastructure/postgres"
	ctxlog "github.com/ErlanBelekov/fittrack/internal/log"
	"github.com/ErlanBelekov/fittrack/internal/ratelimit"
	"github.com/ErlanBelekov/fittrack/internal/state"
	"github.com/ErlanBelekov/fittrack/internal/usecase"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedEmail    = "demo@fittrack.local"
	seedPassword = "Demo1234"
	seedName     = "Demo User"
)

type sessionSpec struct {
	daysAgo   int
	workoutID string
	duration  int
	heartRate int
}

// Gaps on days 3 and 8 so the streak on the dashboard is 3.
var sessions = []sessionSpec{
	{0, "running", 30, 145},
	{1, "yoga-flow", 45, 105},
	{2, "hiit", 25, 165},
	{4, "cycling", 40, 138},
	{5, "weight-lifting", 50, 128},
	{6, "swimming", 35, 140},
	{7, "running", 28, 150},
	{9, "pilates", 40, 112},
	{10, "tabata", 30, 158},
	{12, "yoga-flow", 60, 100},
}

var meals = []state.MealInput{
	{Name: "Greek Yogurt Parfait", Calories: 320, MealType: domain.MealBreakfast},
	{Name: "Grilled Chicken Salad", Calories: 450, MealType: domain.MealLunch},
	{Name: "Apple with Almond Butter", Calories: 200, MealType: domain.MealSnack},
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v (run: direnv allow)", err)
	}
	logger := ctxlog.New(os.Stdout, cfg.Env, cfg.SlogLevel())

	if err := postgres.Migrate(cfg.DatabaseURL, logger); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	auth := usecase.NewAuthUsecase(
		postgres.NewUserRepository(pool),
		email.NewLogSender(logger),
		ratelimit.NewMemoryLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow),
		usecase.AuthConfig{
			JWTKey:     []byte(cfg.JWTSecret),
			JWTTTL:     cfg.JWTTTL,
			AppBaseURL: cfg.AppBaseURL,
			BcryptCost: bcrypt.MinCost,
		},
		logger,
	)

	sess, err := auth.Signup(ctx, usecase.SignupInput{Email: seedEmail, FullName: seedName, Password: seedPassword})
	if err != nil {
		if domain.AuthCode(err) != domain.CodeEmailInUse {
			log.Fatalf("signup: %v", err)
		}
		// Already seeded: just print a fresh token.
		sess, err = auth.Login(ctx, seedEmail, seedPassword)
		if err != nil {
			log.Fatalf("login: %v", err)
		}
		printUsage(sess, 0, 0)
		return
	}
	userID := sess.User.ID

	workouts := usecase.NewWorkoutUsecase(cat, postgres.NewSessionRepository(pool), events.NoopPublisher{}, logger)
	now := time.Now().UTC()
	var logged int
	for _, spec := range sessions {
		at := now.AddDate(0, 0, -spec.daysAgo)
		_, err := workouts.LogSession(ctx, userID, usecase.LogSessionInput{
			WorkoutID:       spec.workoutID,
			DurationMin:     spec.duration,
			HeartRate:       spec.heartRate,
			BodyTemperature: 98.6,
			PerformedAt:     &at,
		})
		if errors.Is(err, domain.ErrWorkoutNotFound) {
			logger.Warn("skipping unknown workout", "workout_id", spec.workoutID)
			continue
		}
		if err != nil {
			log.Fatalf("log session %s: %v", spec.workoutID, err)
		}
		logged++
	}

	diet := usecase.NewDietUsecase(postgres.NewMealRepository(pool), postgres.NewSettingsRepository(pool, logger), logger)
	for _, m := range meals {
		if _, err := diet.LogMeal(ctx, userID, m); err != nil {
			log.Fatalf("log meal %s: %v", m.Name, err)
		}
	}

	printUsage(sess, logged, len(meals))
}

func printUsage(sess *usecase.Session, sessionCount, mealCount int) {
	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:      %s / %s\n", seedEmail, seedPassword)
	fmt.Printf("  User ID:   %s\n", sess.User.ID)
	fmt.Printf("  Sessions:  %d\n", sessionCount)
	fmt.Printf("  Meals:     %d\n", mealCount)
	fmt.Printf("  Token exp: %s\n", sess.ExpiresAt.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Try it:")
	fmt.Println()
	fmt.Printf("    export JWT=%s\n", sess.Token)
	fmt.Println("    curl -s http://localhost:8080/dashboard -H \"Authorization: Bearer $JWT\"")
	fmt.Println("    curl -s http://localhost:8080/meals/today -H \"Authorization: Bearer $JWT\"")
}
