package service

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noah-isme/drivingschool-api/internal/display"
	"github.com/noah-isme/drivingschool-api/internal/dto"
	"github.com/noah-isme/drivingschool-api/internal/models"
	"github.com/noah-isme/drivingschool-api/internal/progress"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
)

// filterAll is accepted wherever an enum filter is, and means no filter.
const filterAll = "all"

type studentReader interface {
	Students(ctx context.Context) ([]models.Student, error)
	Student(ctx context.Context, id string) (*models.Student, error)
	Attendance(ctx context.Context) ([]models.Attendance, error)
}

// StudentService serves the roster and hours progress views.
type StudentService struct {
	data   studentReader
	logger *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(data studentReader, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{data: data, logger: logger}
}

// List returns the roster narrowed by a case-insensitive search over name,
// last name and email, and by status.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]dto.StudentDetail, error) {
	if filter.Status == filterAll {
		filter.Status = ""
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, appErrors.InvalidArgument("unknown student status %q", filter.Status)
	}
	students, err := s.data.Students(ctx)
	if err != nil {
		return nil, err
	}
	search := normalise(filter.Search)
	result := make([]dto.StudentDetail, 0, len(students))
	for _, student := range students {
		if filter.Status != "" && student.Status != filter.Status {
			continue
		}
		if search != "" && !containsAny(search, student.Name, student.LastName, student.Email) {
			continue
		}
		detail, err := s.detail(student)
		if err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, nil
}

// Get returns one student with derived progress.
func (s *StudentService) Get(ctx context.Context, id string) (*dto.StudentDetail, error) {
	student, err := s.data.Student(ctx, id)
	if err != nil {
		return nil, err
	}
	detail, err := s.detail(*student)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Hours returns the progress rows for the hours view. The default order is by
// overall progress, highest first.
func (s *StudentService) Hours(ctx context.Context, filter models.HoursFilter) ([]dto.HoursRow, error) {
	if filter.License == filterAll {
		filter.License = ""
	}
	if filter.License != "" && !filter.License.Valid() {
		return nil, appErrors.InvalidArgument("unknown license type %q", filter.License)
	}
	if filter.SortBy == "" {
		filter.SortBy = models.HoursSortProgress
	}
	switch filter.SortBy {
	case models.HoursSortProgress, models.HoursSortName, models.HoursSortLicense:
	default:
		return nil, appErrors.InvalidArgument("unknown sort %q, expected progress, name or license", filter.SortBy)
	}

	students, err := s.data.Students(ctx)
	if err != nil {
		return nil, err
	}
	search := normalise(filter.Search)
	rows := make([]dto.HoursRow, 0, len(students))
	for _, student := range students {
		if filter.License != "" && student.LicenseType != filter.License {
			continue
		}
		if search != "" && !containsAny(search, student.Name, student.LastName) {
			continue
		}
		row, err := hoursRow(student)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	// Names are compared the way a Spanish reader expects: accents and case are secondary.
	collator := collate.New(language.Spanish, collate.IgnoreCase)
	slices.SortStableFunc(rows, func(a, b dto.HoursRow) int {
		switch filter.SortBy {
		case models.HoursSortName:
			return collator.CompareString(a.FullName, b.FullName)
		case models.HoursSortLicense:
			return collator.CompareString(string(a.LicenseType), string(b.LicenseType))
		default:
			return cmp.Compare(b.Progress.Overall, a.Progress.Overall)
		}
	})
	return rows, nil
}

// HoursOverview counts students per progress band and present marks per student.
func (s *StudentService) HoursOverview(ctx context.Context) (dto.HoursOverview, error) {
	students, err := s.data.Students(ctx)
	if err != nil {
		return dto.HoursOverview{}, err
	}
	records, err := s.data.Attendance(ctx)
	if err != nil {
		return dto.HoursOverview{}, err
	}

	overview := dto.HoursOverview{Total: len(students), AttendedClasses: make(map[string]int, len(students))}
	for _, student := range students {
		breakdown, err := progress.ForStudent(student)
		if err != nil {
			return dto.HoursOverview{}, err
		}
		switch progress.BandOf(breakdown) {
		case progress.BandCompleted:
			overview.Completed++
		case progress.BandInProgress:
			overview.InProgress++
		default:
			overview.NeedsAttention++
		}
		overview.AttendedClasses[student.ID] = 0
	}
	for _, record := range records {
		if record.Status != models.AttendanceStatusPresent {
			continue
		}
		if _, known := overview.AttendedClasses[record.StudentID]; known {
			overview.AttendedClasses[record.StudentID]++
		}
	}
	return overview, nil
}

func (s *StudentService) detail(student models.Student) (dto.StudentDetail, error) {
	breakdown, err := progress.ForStudent(student)
	if err != nil {
		s.logger.Warn("student progress unavailable", zap.String("student_id", student.ID), zap.Error(err))
		return dto.StudentDetail{}, err
	}
	return dto.StudentDetail{
		Student:      student,
		Initials:     display.Initials(student.Name, student.LastName),
		StatusClass:  display.StatusClass(string(student.Status)).CSS(),
		LicenseClass: display.LicenseTypeClass(student.LicenseType).CSS(),
		Progress:     breakdown,
	}, nil
}

func hoursRow(student models.Student) (dto.HoursRow, error) {
	breakdown, err := progress.ForStudent(student)
	if err != nil {
		return dto.HoursRow{}, err
	}
	return dto.HoursRow{
		StudentID:       student.ID,
		FullName:        student.FullName(),
		LicenseType:     student.LicenseType,
		LicenseClass:    display.LicenseTypeClass(student.LicenseType).CSS(),
		Instructor:      student.Instructor,
		TheoreticalDone: student.TheoreticalHours,
		TheoreticalReq:  student.TotalTheoreticalRequired,
		PracticalDone:   student.PracticalHours,
		PracticalReq:    student.TotalPracticalRequired,
		Progress:        breakdown,
		Band:            progress.BandOf(breakdown),
	}, nil
}

func normalise(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
