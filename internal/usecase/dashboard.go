package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/repository"
)

const (
	recentSessionCount = 5
	// Streaks are counted over at most this many days of history.
	streakLookback = 366
)

// QuoteSource is satisfied by *catalog.Catalog.
type QuoteSource interface {
	Quote() string
}

type DashboardUsecase struct {
	sessions repository.SessionRepository
	settings repository.SettingsRepository
	quotes   QuoteSource
	logger   *slog.Logger
	now      func() time.Time
}

func NewDashboardUsecase(sessions repository.SessionRepository, settings repository.SettingsRepository, quotes QuoteSource, logger *slog.Logger) *DashboardUsecase {
	return &DashboardUsecase{
		sessions: sessions,
		settings: settings,
		quotes:   quotes,
		logger:   logger.With("component", "dashboard_usecase"),
		now:      time.Now,
	}
}

type Dashboard struct {
	WorkoutsThisWeek int                      `json:"workouts_this_week"`
	CurrentStreak    int                      `json:"current_streak"`
	WeeklyGoal       int                      `json:"weekly_goal"`
	GoalProgress     int                      `json:"goal_progress"`
	RecentSessions   []*domain.WorkoutSession `json:"recent_sessions"`
	Quote            string                   `json:"quote"`
}

func (u *DashboardUsecase) Get(ctx context.Context, userID string) (*Dashboard, error) {
	now := u.now().UTC()

	settings, err := u.settings.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	thisWeek, err := u.sessions.CountSince(ctx, userID, WeekStart(now))
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	days, err := u.sessions.ActiveDays(ctx, userID, startOfDay(now).AddDate(0, 0, -streakLookback))
	if err != nil {
		return nil, fmt.Errorf("active days: %w", err)
	}
	recent, err := u.sessions.ListRecent(ctx, userID, recentSessionCount)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}

	return &Dashboard{
		WorkoutsThisWeek: thisWeek,
		CurrentStreak:    Streak(days, now),
		WeeklyGoal:       settings.WeeklyGoal,
		GoalProgress:     GoalProgress(thisWeek, settings.WeeklyGoal),
		RecentSessions:   recent,
		Quote:            u.quotes.Quote(),
	}, nil
}

// WeekStart returns Monday 00:00 UTC of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	d := startOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// Streak counts consecutive days with a session, ending today or, when
// nothing was logged today yet, yesterday. days must be distinct and newest
// first.
func Streak(days []time.Time, now time.Time) int {
	if len(days) == 0 {
		return 0
	}
	expect := startOfDay(now)
	if startOfDay(days[0]).Before(expect) {
		expect = expect.AddDate(0, 0, -1)
	}
	n := 0
	for _, d := range days {
		day := startOfDay(d)
		if day.After(expect) {
			continue
		}
		if !day.Equal(expect) {
			break
		}
		n++
		expect = expect.AddDate(0, 0, -1)
	}
	return n
}

// GoalProgress is the weekly goal completion percentage, capped at 100.
func GoalProgress(done, goal int) int {
	if goal <= 0 {
		return 0
	}
	return min(100, done*100/goal)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
