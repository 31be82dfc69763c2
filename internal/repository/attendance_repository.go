package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/drivingschool-api/internal/models"
)

// AttendanceRepository stores attendance marks.
type AttendanceRepository struct {
	db *MemoryDB
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(db *MemoryDB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// List returns every mark in insertion order.
func (r *AttendanceRepository) List(ctx context.Context) ([]models.Attendance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.db.attendance.snapshot(), nil
}

// FindByStudentAndDate returns the mark for a (student, date) pair or ErrNoRecord.
func (r *AttendanceRepository) FindByStudentAndDate(ctx context.Context, studentID, date string) (*models.Attendance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	record, ok := r.db.attendance.find(func(a models.Attendance) bool {
		return a.StudentID == studentID && a.Date == date
	})
	if !ok {
		return nil, fmt.Errorf("find attendance %s@%s: %w", studentID, date, ErrNoRecord)
	}
	return &record, nil
}

// Create appends a new mark.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.db.attendance.insert(*record); err != nil {
		return fmt.Errorf("create attendance: %w", err)
	}
	return nil
}

// UpdateStatus replaces the status and credited hours of an existing mark.
func (r *AttendanceRepository) UpdateStatus(ctx context.Context, id string, status models.AttendanceStatus, hours int) (*models.Attendance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	record, ok := r.db.attendance.update(id, func(a *models.Attendance) {
		a.Status = status
		a.Hours = hours
	})
	if !ok {
		return nil, fmt.Errorf("update attendance %s: %w", id, ErrNoRecord)
	}
	return &record, nil
}
