package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/drivingschool-api/internal/models"
)

// ScheduleRepository stores planned classes.
type ScheduleRepository struct {
	db *MemoryDB
}

// NewScheduleRepository creates a new schedule repository.
func NewScheduleRepository(db *MemoryDB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// List returns every entry in insertion order.
func (r *ScheduleRepository) List(ctx context.Context) ([]models.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.db.schedule.snapshot(), nil
}

// FindByID returns an entry or ErrNoRecord.
func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*models.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entry, ok := r.db.schedule.get(id)
	if !ok {
		return nil, fmt.Errorf("find schedule %s: %w", id, ErrNoRecord)
	}
	return &entry, nil
}

// Create appends a new entry.
func (r *ScheduleRepository) Create(ctx context.Context, entry *models.Schedule) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.db.schedule.insert(*entry); err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

// UpdateStatus replaces the status of an entry, leaving every other field untouched.
func (r *ScheduleRepository) UpdateStatus(ctx context.Context, id string, status models.ScheduleStatus) (*models.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entry, ok := r.db.schedule.update(id, func(s *models.Schedule) {
		s.Status = status
	})
	if !ok {
		return nil, fmt.Errorf("update schedule %s: %w", id, ErrNoRecord)
	}
	return &entry, nil
}
