package service

import (
	"context"
	"iter"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/drivingschool-api/internal/dto"
	"github.com/noah-isme/drivingschool-api/internal/models"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
)

type attendanceReader interface {
	Students(ctx context.Context) ([]models.Student, error)
	AttendanceByDate(ctx context.Context, date string) iter.Seq2[models.Attendance, error]
}

// AttendanceService builds the daily attendance views. An empty date means today.
type AttendanceService struct {
	data   attendanceReader
	now    Clock
	logger *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(data attendanceReader, now Clock, logger *zap.Logger) *AttendanceService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{data: data, now: now, logger: logger}
}

// ByDate returns the marks recorded for a day in insertion order.
func (s *AttendanceService) ByDate(ctx context.Context, date string) ([]models.Attendance, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	return Collect(s.data.AttendanceByDate(ctx, date))
}

// DayRoster pairs every student with their mark for date. The absent filter
// also matches students who have not been marked.
func (s *AttendanceService) DayRoster(ctx context.Context, date string, filter models.AttendanceFilter) ([]models.RosterEntry, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	if !filter.Valid() {
		return nil, appErrors.InvalidArgument("unknown attendance filter %q", filter)
	}
	students, err := s.data.Students(ctx)
	if err != nil {
		return nil, err
	}
	marks, err := s.marksFor(ctx, date)
	if err != nil {
		return nil, err
	}

	roster := make([]models.RosterEntry, 0, len(students))
	for _, student := range students {
		var mark *models.Attendance
		if record, ok := marks[student.ID]; ok {
			mark = &record
		}
		if !rosterMatches(filter, mark) {
			continue
		}
		roster = append(roster, models.RosterEntry{Student: student, Attendance: mark})
	}
	return roster, nil
}

// DayStats counts the marks of a day; absent is whatever is neither present nor late.
func (s *AttendanceService) DayStats(ctx context.Context, date string) (dto.AttendanceDayStats, error) {
	date, err := s.resolveDate(date)
	if err != nil {
		return dto.AttendanceDayStats{}, err
	}
	students, err := s.data.Students(ctx)
	if err != nil {
		return dto.AttendanceDayStats{}, err
	}
	stats := dto.AttendanceDayStats{Date: date, Total: len(students)}
	for record, err := range s.data.AttendanceByDate(ctx, date) {
		if err != nil {
			return dto.AttendanceDayStats{}, err
		}
		switch record.Status {
		case models.AttendanceStatusPresent:
			stats.Present++
		case models.AttendanceStatusLate:
			stats.Late++
		}
	}
	stats.Absent = max(stats.Total-stats.Present-stats.Late, 0)
	return stats, nil
}

func (s *AttendanceService) resolveDate(date string) (string, error) {
	if date == "" {
		return s.now.today(), nil
	}
	if !models.ValidDate(date) {
		return "", appErrors.InvalidArgument("date %q is not a YYYY-MM-DD date", date)
	}
	return date, nil
}

func (s *AttendanceService) marksFor(ctx context.Context, date string) (map[string]models.Attendance, error) {
	marks := make(map[string]models.Attendance)
	for record, err := range s.data.AttendanceByDate(ctx, date) {
		if err != nil {
			return nil, err
		}
		marks[record.StudentID] = record
	}
	return marks, nil
}

func rosterMatches(filter models.AttendanceFilter, mark *models.Attendance) bool {
	switch filter {
	case "", models.AttendanceFilterAll:
		return true
	case models.AttendanceFilterAbsent:
		return mark == nil || mark.Status == models.AttendanceStatusAbsent
	default:
		return mark != nil && string(mark.Status) == string(filter)
	}
}
