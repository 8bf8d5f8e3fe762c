package usecase_test

import (
	"context"
	"time"

	"github.com/ErlanBelekov/fittrack/internal/domain"
)

type fakeSessionRepo struct {
	create     func(ctx context.Context, s *domain.WorkoutSession) (*domain.WorkoutSession, error)
	listRecent func(ctx context.Context, userID string, limit int) ([]*domain.WorkoutSession, error)
	countSince func(ctx context.Context, userID string, since time.Time) (int, error)
	activeDays func(ctx context.Context, userID string, since time.Time) ([]time.Time, error)
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	return r.create(ctx, s)
}

func (r *fakeSessionRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.WorkoutSession, error) {
	return r.listRecent(ctx, userID, limit)
}

func (r *fakeSessionRepo) CountSince(ctx context.Context, userID string, since time.Time) (int, error) {
	return r.countSince(ctx, userID, since)
}

func (r *fakeSessionRepo) ActiveDays(ctx context.Context, userID string, since time.Time) ([]time.Time, error) {
	return r.activeDays(ctx, userID, since)
}

type fakeSettingsRepo struct {
	get    func(ctx context.Context, userID string) (*domain.Settings, error)
	update func(ctx context.Context, s *domain.Settings) (*domain.Settings, error)
	claim  func(ctx context.Context, limit int, computeNext func(*domain.Reminder) *time.Time) ([]*domain.Reminder, error)
}

func (r *fakeSettingsRepo) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	return r.get(ctx, userID)
}

func (r *fakeSettingsRepo) Update(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	return r.update(ctx, s)
}

func (r *fakeSettingsRepo) ClaimDueReminders(ctx context.Context, limit int, computeNext func(*domain.Reminder) *time.Time) ([]*domain.Reminder, error) {
	return r.claim(ctx, limit, computeNext)
}

type fakeMealRepo struct {
	create      func(ctx context.Context, m *domain.LoggedMeal) (*domain.LoggedMeal, error)
	deleteMeal  func(ctx context.Context, id, userID string) error
	listBetween func(ctx context.Context, userID string, from, to time.Time) ([]*domain.LoggedMeal, error)
}

func (r *fakeMealRepo) Create(ctx context.Context, m *domain.LoggedMeal) (*domain.LoggedMeal, error) {
	return r.create(ctx, m)
}

func (r *fakeMealRepo) Delete(ctx context.Context, id, userID string) error {
	return r.deleteMeal(ctx, id, userID)
}

func (r *fakeMealRepo) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.LoggedMeal, error) {
	return r.listBetween(ctx, userID, from, to)
}

type fakeProfileRepo struct {
	get    func(ctx context.Context, userID string) (*domain.Profile, error)
	update func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}

func (r *fakeProfileRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return r.get(ctx, userID)
}

func (r *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	return r.update(ctx, p)
}

type fakePublisher struct {
	published []*domain.WorkoutSession
	err       error
}

func (p *fakePublisher) WorkoutLogged(_ context.Context, s *domain.WorkoutSession) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, s)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

type fakeCatalog map[string]domain.Workout

func (c fakeCatalog) Workout(id string) (domain.Workout, error) {
	w, ok := c[id]
	if !ok {
		return domain.Workout{}, domain.ErrWorkoutNotFound
	}
	return w, nil
}

type fixedQuote string

func (q fixedQuote) Quote() string { return string(q) }
