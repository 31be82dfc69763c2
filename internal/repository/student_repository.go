package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/drivingschool-api/internal/models"
)

// StudentRepository manages the in-memory student roster.
type StudentRepository struct {
	db *MemoryDB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *MemoryDB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns every student in enrollment order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.db.students.snapshot(), nil
}

// FindByID returns a student or ErrNoRecord.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	student, ok := r.db.students.get(id)
	if !ok {
		return nil, fmt.Errorf("find student %s: %w", id, ErrNoRecord)
	}
	return &student, nil
}

// AddTheoreticalHours credits hours to a student's theoretical accumulator.
func (r *StudentRepository) AddTheoreticalHours(ctx context.Context, id string, hours int) (*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	student, ok := r.db.students.update(id, func(s *models.Student) {
		s.TheoreticalHours += hours
	})
	if !ok {
		return nil, fmt.Errorf("credit student %s: %w", id, ErrNoRecord)
	}
	return &student, nil
}
