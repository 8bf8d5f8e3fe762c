package reminder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/ErlanBelekov/fittrack/internal/email"
	"github.com/ErlanBelekov/fittrack/internal/metrics"
)

// claimer is satisfied by *postgres.SettingsRepository.
type claimer interface {
	ClaimDueReminders(ctx context.Context, limit int, computeNext func(*domain.Reminder) *time.Time) ([]*domain.Reminder, error)
}

type Dispatcher struct {
	repo        claimer
	sender      email.Sender
	logger      *slog.Logger
	interval    time.Duration
	batchSize   int
	concurrency int
	appURL      string
	now         func() time.Time
}

func NewDispatcher(repo claimer, sender email.Sender, logger *slog.Logger, interval time.Duration, batchSize, concurrency int, appURL string) *Dispatcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Dispatcher{
		repo:        repo,
		sender:      sender,
		logger:      logger.With("component", "reminder_dispatcher"),
		interval:    interval,
		batchSize:   batchSize,
		concurrency: concurrency,
		appURL:      appURL,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("dispatcher started", "interval", d.interval, "batch_size", d.batchSize)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("dispatcher shut down")
			return
		case <-ticker.C:
			d.Dispatch(ctx)
		}
	}
}

// Dispatch claims one batch of due reminders and emails them. It returns the
// number of reminders sent successfully.
func (d *Dispatcher) Dispatch(ctx context.Context) int {
	start := time.Now()
	defer func() { metrics.ReminderCycleDuration.Observe(time.Since(start).Seconds()) }()

	due, err := d.repo.ClaimDueReminders(ctx, d.batchSize, d.computeNext)
	if err != nil {
		d.logger.ErrorContext(ctx, "claim due reminders", "error", err)
		return 0
	}
	if len(due) == 0 {
		return 0
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		sent int
		sem  = make(chan struct{}, d.concurrency)
	)
	for _, rem := range due {
		sem <- struct{}{}
		wg.Add(1)
		go func(r *domain.Reminder) {
			defer wg.Done()
			defer func() { <-sem }()
			if d.send(ctx, r) {
				mu.Lock()
				sent++
				mu.Unlock()
			}
		}(rem)
	}
	wg.Wait()

	d.logger.InfoContext(ctx, "reminders dispatched", "claimed", len(due), "sent", sent)
	return sent
}

// A failed send is not retried; the reminder has already been advanced to
// its next slot.
func (d *Dispatcher) send(ctx context.Context, r *domain.Reminder) bool {
	subject, body := email.WorkoutReminder(r.FullName, string(r.Frequency), d.appURL)
	if err := d.sender.Send(ctx, r.Email, subject, body); err != nil {
		metrics.RemindersSentTotal.WithLabelValues("failed").Inc()
		d.logger.ErrorContext(ctx, "send reminder", "user_id", r.UserID, "error", err)
		return false
	}
	metrics.RemindersSentTotal.WithLabelValues("sent").Inc()
	return true
}

// computeNext returns the next future reminder slot, skipping any missed
// while the process was down. Unknown frequencies stop further reminders.
func (d *Dispatcher) computeNext(r *domain.Reminder) *time.Time {
	next, err := NextAfter(r.Frequency, r.DueAt)
	if err != nil {
		d.logger.Error("invalid reminder frequency", "user_id", r.UserID, "frequency", r.Frequency, "error", err)
		return nil
	}
	now := d.now()
	for !next.After(now) {
		next, _ = NextAfter(r.Frequency, next)
	}
	return &next
}
