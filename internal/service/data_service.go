package service

import (
	"context"
	"errors"
	"iter"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/drivingschool-api/internal/models"
	"github.com/noah-isme/drivingschool-api/internal/repository"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
)

const (
	// CreditHours is what one present mark is worth.
	CreditHours = 2
	// DefaultInstructor is recorded on attendance created without an instructor.
	DefaultInstructor = "Miguel Ángel Torres"

	dashboardCachePattern = "dashboard:*"
)

// IDGenerator returns a fresh record identifier on every call.
type IDGenerator func() string

type studentStore interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	AddTheoreticalHours(ctx context.Context, id string, hours int) (*models.Student, error)
}

type attendanceStore interface {
	List(ctx context.Context) ([]models.Attendance, error)
	FindByStudentAndDate(ctx context.Context, studentID, date string) (*models.Attendance, error)
	Create(ctx context.Context, record *models.Attendance) error
	UpdateStatus(ctx context.Context, id string, status models.AttendanceStatus, hours int) (*models.Attendance, error)
}

type scheduleStore interface {
	List(ctx context.Context) ([]models.Schedule, error)
	FindByID(ctx context.Context, id string) (*models.Schedule, error)
	Create(ctx context.Context, entry *models.Schedule) error
	UpdateStatus(ctx context.Context, id string, status models.ScheduleStatus) (*models.Schedule, error)
}

type referenceStore interface {
	Instructors(ctx context.Context) ([]models.Instructor, error)
	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	VehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
}

// NewScheduleEntry is the payload for a new class. The identifier and status are assigned on insert.
type NewScheduleEntry struct {
	StudentID  string           `json:"student_id" validate:"required"`
	Date       string           `json:"date" validate:"required,isodate"`
	Time       string           `json:"time" validate:"required,clocktime"`
	Type       models.ClassType `json:"type" validate:"required,class_type"`
	Instructor string           `json:"instructor" validate:"required"`
	Vehicle    string           `json:"vehicle"`
}

// DataServiceParams bundles DataService collaborators.
type DataServiceParams struct {
	Students          studentStore
	Attendance        attendanceStore
	Schedule          scheduleStore
	Reference         referenceStore
	Cache             *CacheService
	Metrics           *MetricsService
	Validator         *validator.Validate
	Logger            *zap.Logger
	IDs               IDGenerator
	DefaultInstructor string
}

// DataService owns student, attendance and schedule state and keeps the
// hour accumulators consistent with attendance marks.
type DataService struct {
	students          studentStore
	attendance        attendanceStore
	schedule          scheduleStore
	reference         referenceStore
	cache             *CacheService
	metrics           *MetricsService
	validator         *validator.Validate
	logger            *zap.Logger
	ids               IDGenerator
	defaultInstructor string

	mu sync.Mutex
}

// NewDataService constructs the data service.
func NewDataService(p DataServiceParams) *DataService {
	if p.Validator == nil {
		p.Validator = validator.New()
	}
	registerValidations(p.Validator)
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.IDs == nil {
		p.IDs = uuid.NewString
	}
	if p.DefaultInstructor == "" {
		p.DefaultInstructor = DefaultInstructor
	}
	return &DataService{
		students:          p.Students,
		attendance:        p.Attendance,
		schedule:          p.Schedule,
		reference:         p.Reference,
		cache:             p.Cache,
		metrics:           p.Metrics,
		validator:         p.Validator,
		logger:            p.Logger,
		ids:               p.IDs,
		defaultInstructor: p.DefaultInstructor,
	}
}

// UpsertAttendance records a student's mark for a date, creating the record on
// first mark and replacing its status afterwards. A present mark credits
// CreditHours to the student's theoretical hours unless the record was already
// present. Nothing is taken back when a present mark is changed.
func (s *DataService) UpsertAttendance(ctx context.Context, studentID, date string, status models.AttendanceStatus) (*models.Attendance, error) {
	if !status.Valid() {
		return nil, appErrors.InvalidArgument("attendance status %q is not one of present, absent, late", status)
	}
	if !models.ValidDate(date) {
		return nil, appErrors.InvalidArgument("date %q is not a YYYY-MM-DD date", date)
	}
	if studentID == "" {
		return nil, appErrors.InvalidArgument("student id is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// the record write and the credit must not be split by a cancellation
	ctx = context.WithoutCancel(ctx)

	hours := 0
	if status == models.AttendanceStatusPresent {
		hours = CreditHours
	}

	var (
		record     *models.Attendance
		wasPresent bool
		created    bool
	)
	existing, err := s.attendance.FindByStudentAndDate(ctx, studentID, date)
	switch {
	case err == nil:
		wasPresent = existing.Status == models.AttendanceStatusPresent
		record, err = s.attendance.UpdateStatus(ctx, existing.ID, status, hours)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update attendance")
		}
	case errors.Is(err, repository.ErrNoRecord):
		record = &models.Attendance{
			ID:         s.ids(),
			StudentID:  studentID,
			Date:       date,
			Type:       models.ClassTypeTheoretical,
			Status:     status,
			Hours:      hours,
			Instructor: s.defaultInstructor,
		}
		if err := s.attendance.Create(ctx, record); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create attendance")
		}
		created = true
	default:
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance")
	}

	credited := 0
	if status == models.AttendanceStatusPresent && !wasPresent {
		// credit goes to theoretical hours whatever the record's class type
		_, err := s.students.AddTheoreticalHours(ctx, studentID, CreditHours)
		switch {
		case err == nil:
			credited = CreditHours
		case errors.Is(err, repository.ErrNoRecord):
			s.logger.Debug("attendance recorded for unknown student", zap.String("student_id", studentID))
		default:
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to credit hours")
		}
	}

	s.metrics.RecordAttendanceMark(string(status), created, credited)
	s.logger.Info("attendance marked",
		zap.String("attendance_id", record.ID),
		zap.String("student_id", studentID),
		zap.String("date", date),
		zap.String("status", string(status)),
		zap.Bool("created", created),
		zap.Int("credited_hours", credited),
	)
	s.invalidate(ctx)
	return record, nil
}

// AddSchedule appends a new class with a fresh identifier and scheduled status.
// Double bookings are accepted.
func (s *DataService) AddSchedule(ctx context.Context, entry NewScheduleEntry) (*models.Schedule, error) {
	if entry.Type != "" && !entry.Type.Valid() {
		return nil, appErrors.InvalidArgument("class type %q is not one of theoretical, practical", entry.Type)
	}
	if err := s.validator.Struct(entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := &models.Schedule{
		ID:         s.ids(),
		StudentID:  entry.StudentID,
		Date:       entry.Date,
		Time:       entry.Time,
		Type:       entry.Type,
		Instructor: entry.Instructor,
		Vehicle:    entry.Vehicle,
		Status:     models.ScheduleStatusScheduled,
	}
	if err := s.schedule.Create(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create schedule")
	}

	s.metrics.RecordScheduleCreated()
	s.logger.Info("schedule created",
		zap.String("schedule_id", record.ID),
		zap.String("student_id", record.StudentID),
		zap.String("date", record.Date),
		zap.String("time", record.Time),
	)
	s.invalidate(ctx)
	return record, nil
}

// UpdateScheduleStatus replaces the status of a schedule entry and nothing else.
// An unknown id is a no-op reported as (false, nil).
func (s *DataService) UpdateScheduleStatus(ctx context.Context, scheduleID string, status models.ScheduleStatus) (bool, error) {
	if !status.Valid() {
		return false, appErrors.InvalidArgument("schedule status %q is not one of scheduled, completed, cancelled", status)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.schedule.UpdateStatus(ctx, scheduleID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			s.metrics.RecordScheduleStatusUpdate(string(status), false)
			s.logger.Warn("schedule status update ignored, unknown id",
				zap.String("schedule_id", scheduleID),
				zap.String("status", string(status)),
			)
			return false, nil
		}
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update schedule")
	}

	s.metrics.RecordScheduleStatusUpdate(string(status), true)
	s.logger.Info("schedule status updated", zap.String("schedule_id", scheduleID), zap.String("status", string(status)))
	s.invalidate(ctx)
	return true, nil
}

// AttendanceByStudent yields the student's marks in insertion order.
func (s *DataService) AttendanceByStudent(ctx context.Context, studentID string) iter.Seq2[models.Attendance, error] {
	return filtered(ctx, s.attendance.List, func(a models.Attendance) bool { return a.StudentID == studentID })
}

// AttendanceByDate yields the marks of one day in insertion order.
func (s *DataService) AttendanceByDate(ctx context.Context, date string) iter.Seq2[models.Attendance, error] {
	return filtered(ctx, s.attendance.List, func(a models.Attendance) bool { return a.Date == date })
}

// ScheduleByStudent yields the student's classes in insertion order.
func (s *DataService) ScheduleByStudent(ctx context.Context, studentID string) iter.Seq2[models.Schedule, error] {
	return filtered(ctx, s.schedule.List, func(e models.Schedule) bool { return e.StudentID == studentID })
}

// ScheduleByDate yields the classes of one day in insertion order.
func (s *DataService) ScheduleByDate(ctx context.Context, date string) iter.Seq2[models.Schedule, error] {
	return filtered(ctx, s.schedule.List, func(e models.Schedule) bool { return e.Date == date })
}

// filtered reads the collection afresh on every iteration and yields matching rows.
// A failed read is yielded once as the error and ends the sequence.
func filtered[T any](ctx context.Context, list func(context.Context) ([]T, error), match func(T) bool) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		rows, err := list(ctx)
		if err != nil {
			var zero T
			yield(zero, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read records"))
			return
		}
		for _, row := range rows {
			if match(row) && !yield(row, nil) {
				return
			}
		}
	}
}

// Collect drains a query into a non-nil slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	out := make([]T, 0)
	for row, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// Students returns a snapshot of the roster.
func (s *DataService) Students(ctx context.Context) ([]models.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Student returns one student or NOT_FOUND.
func (s *DataService) Student(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Attendance returns a snapshot of every attendance mark.
func (s *DataService) Attendance(ctx context.Context) ([]models.Attendance, error) {
	records, err := s.attendance.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	return records, nil
}

// Schedule returns a snapshot of every schedule entry.
func (s *DataService) Schedule(ctx context.Context) ([]models.Schedule, error) {
	entries, err := s.schedule.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule")
	}
	return entries, nil
}

// ScheduleEntry returns one schedule entry or NOT_FOUND.
func (s *DataService) ScheduleEntry(ctx context.Context, id string) (*models.Schedule, error) {
	entry, err := s.schedule.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule entry not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule entry")
	}
	return entry, nil
}

// Instructors returns the instructor reference list.
func (s *DataService) Instructors(ctx context.Context) ([]models.Instructor, error) {
	instructors, err := s.reference.Instructors(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructors")
	}
	return instructors, nil
}

// Vehicles returns the fleet.
func (s *DataService) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.reference.Vehicles(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list vehicles")
	}
	return vehicles, nil
}

// Vehicle returns one vehicle or NOT_FOUND.
func (s *DataService) Vehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicle, err := s.reference.VehicleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "vehicle not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load vehicle")
	}
	return vehicle, nil
}

func (s *DataService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, dashboardCachePattern); err != nil {
		s.logger.Warn("dashboard cache not invalidated", zap.Error(err))
	}
}
