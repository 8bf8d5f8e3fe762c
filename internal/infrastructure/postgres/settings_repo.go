package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSettingsRepository(pool *pgxpool.Pool, logger *slog.Logger) *SettingsRepository {
	return &SettingsRepository{pool: pool, logger: logger.With("component", "settings_repo")}
}

const settingsColumns = `user_id, notifications, email_reminders, reminder_frequency,
	weekly_goal, daily_calorie_goal, language, next_reminder_at, updated_at`

func (r *SettingsRepository) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+settingsColumns+` FROM settings WHERE user_id = $1`, userID)
	return scanSettings(row)
}

func (r *SettingsRepository) Update(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE settings SET
			notifications = $2, email_reminders = $3, reminder_frequency = $4,
			weekly_goal = $5, daily_calorie_goal = $6, language = $7,
			next_reminder_at = $8, updated_at = NOW()
		WHERE user_id = $1
		RETURNING `+settingsColumns,
		s.UserID, s.Notifications, s.EmailReminders, s.ReminderFrequency,
		s.WeeklyGoal, s.DailyCalorieGoal, s.Language, s.NextReminderAt,
	)
	return scanSettings(row)
}

// ClaimDueReminders atomically claims due reminders and advances next_reminder_at.
// FOR UPDATE SKIP LOCKED keeps replicas of the reminder process from double-sending.
func (r *SettingsRepository) ClaimDueReminders(ctx context.Context, limit int, computeNext func(*domain.Reminder) *time.Time) (claimed []*domain.Reminder, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	rows, err := tx.Query(ctx, `
		SELECT s.user_id, u.email, p.full_name, s.reminder_frequency, s.next_reminder_at
		FROM settings s
		JOIN users u ON u.id = s.user_id
		JOIN profiles p ON p.user_id = s.user_id
		WHERE s.next_reminder_at <= NOW() AND s.notifications AND s.email_reminders
		ORDER BY s.next_reminder_at ASC
		LIMIT $1
		FOR UPDATE OF s SKIP LOCKED`, limit)
	if err != nil {
		return nil, fmt.Errorf("claim reminders: %w", err)
	}

	for rows.Next() {
		var rem domain.Reminder
		if scanErr := rows.Scan(&rem.UserID, &rem.Email, &rem.FullName, &rem.Frequency, &rem.DueAt); scanErr != nil {
			rows.Close()
			err = fmt.Errorf("scan reminder: %w", scanErr)
			return nil, err
		}
		claimed = append(claimed, &rem)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminders: %w", err)
	}

	for _, rem := range claimed {
		next := computeNext(rem)
		if _, err = tx.Exec(ctx,
			`UPDATE settings SET next_reminder_at = $2 WHERE user_id = $1`,
			rem.UserID, next,
		); err != nil {
			return nil, fmt.Errorf("advance reminder %s: %w", rem.UserID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	if len(claimed) > 0 {
		r.logger.Debug("claimed reminders", "count", len(claimed))
	}
	return claimed, nil
}

func scanSettings(row rowScanner) (*domain.Settings, error) {
	var s domain.Settings
	err := row.Scan(
		&s.UserID, &s.Notifications, &s.EmailReminders, &s.ReminderFrequency,
		&s.WeeklyGoal, &s.DailyCalorieGoal, &s.Language, &s.NextReminderAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("scan settings: %w", err)
	}
	return &s, nil
}
