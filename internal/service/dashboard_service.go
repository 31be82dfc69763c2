package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/drivingschool-api/internal/dto"
	"github.com/noah-isme/drivingschool-api/internal/models"
	"github.com/noah-isme/drivingschool-api/internal/progress"
)

type dashboardReader interface {
	Students(ctx context.Context) ([]models.Student, error)
	Attendance(ctx context.Context) ([]models.Attendance, error)
	Schedule(ctx context.Context) ([]models.Schedule, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL       time.Duration
	RecentStudents int
}

// DashboardServiceParams groups dependencies for DashboardService.
type DashboardServiceParams struct {
	Data   dashboardReader
	Cache  *CacheService
	Config DashboardServiceConfig
	Now    Clock
	Logger *zap.Logger
}

// DashboardService composes the landing page summary.
type DashboardService struct {
	data   dashboardReader
	cache  *CacheService
	cfg    DashboardServiceConfig
	now    Clock
	logger *zap.Logger
}

// NewDashboardService constructs a dashboard service.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.RecentStudents <= 0 {
		cfg.RecentStudents = 5
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	return &DashboardService{
		data:   params.Data,
		cache:  params.Cache,
		cfg:    cfg,
		now:    params.Now,
		logger: params.Logger,
	}
}

// Summary returns today's dashboard and whether it was served from cache.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardSummary, bool, error) {
	today := s.now.today()
	summary, hit, err := cached(ctx, s.cache, summaryKey(today), s.cfg.CacheTTL, func(ctx context.Context) (dto.DashboardSummary, error) {
		return s.build(ctx, today)
	})
	if err != nil {
		return nil, false, err
	}
	return &summary, hit, nil
}

// Warm rebuilds the summary for date and stores it in the cache.
func (s *DashboardService) Warm(ctx context.Context, date string) error {
	if !s.cache.Enabled() {
		return nil
	}
	summary, err := s.build(ctx, date)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, summaryKey(date), summary, s.cfg.CacheTTL)
}

func summaryKey(date string) string {
	return fmt.Sprintf("dashboard:summary:%s", date)
}

func (s *DashboardService) build(ctx context.Context, today string) (dto.DashboardSummary, error) {
	students, err := s.data.Students(ctx)
	if err != nil {
		return dto.DashboardSummary{}, err
	}
	records, err := s.data.Attendance(ctx)
	if err != nil {
		return dto.DashboardSummary{}, err
	}
	entries, err := s.data.Schedule(ctx)
	if err != nil {
		return dto.DashboardSummary{}, err
	}

	summary := dto.DashboardSummary{
		Date:           today,
		TotalStudents:  len(students),
		TodaySchedule:  make([]models.Schedule, 0),
		RecentStudents: make([]models.Student, 0, s.cfg.RecentStudents),
		GeneratedAt:    s.now().UTC(),
	}

	progressSum := 0
	for _, student := range students {
		switch student.Status {
		case models.StudentStatusActive:
			summary.ActiveStudents++
		case models.StudentStatusGraduated:
			summary.GraduatedStudents++
		}
		breakdown, err := progress.ForStudent(student)
		if err != nil {
			return dto.DashboardSummary{}, err
		}
		progressSum += breakdown.Overall
	}
	if len(students) > 0 {
		summary.CompletionRate = int(math.Round(float64(progressSum) / float64(len(students))))
	}

	for _, record := range records {
		if record.Date == today && record.Status == models.AttendanceStatusPresent {
			summary.TodayAttendance++
		}
	}

	for _, entry := range entries {
		if entry.Status == models.ScheduleStatusScheduled {
			summary.ScheduledClasses++
		}
		if entry.Date == today {
			summary.TodaySchedule = append(summary.TodaySchedule, entry)
		}
	}
	sortByTime(summary.TodaySchedule)

	recent := students
	if len(recent) > s.cfg.RecentStudents {
		recent = recent[:s.cfg.RecentStudents]
	}
	summary.RecentStudents = append(summary.RecentStudents, recent...)

	s.logger.Debug("dashboard summary built",
		zap.String("date", today),
		zap.Int("students", summary.TotalStudents),
		zap.Int("today_schedule", len(summary.TodaySchedule)),
	)
	return summary, nil
}
