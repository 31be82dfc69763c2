package service

import (
	"context"
	"iter"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/drivingschool-api/internal/display"
	"github.com/noah-isme/drivingschool-api/internal/dto"
	"github.com/noah-isme/drivingschool-api/internal/models"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
)

type scheduleReader interface {
	Schedule(ctx context.Context) ([]models.Schedule, error)
	ScheduleByDate(ctx context.Context, date string) iter.Seq2[models.Schedule, error]
	ScheduleByStudent(ctx context.Context, studentID string) iter.Seq2[models.Schedule, error]
}

// ScheduleService builds the day and week calendar views.
type ScheduleService struct {
	data   scheduleReader
	locale string
	now    Clock
	logger *zap.Logger
}

// NewScheduleService constructs the schedule service. locale is the fallback
// used when a caller does not ask for one.
func NewScheduleService(data scheduleReader, locale string, now Clock, logger *zap.Logger) *ScheduleService {
	if locale == "" {
		locale = display.DefaultLocale
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{data: data, locale: locale, now: now, logger: logger}
}

// ForDate returns the classes of a day, filtered and ordered by time. An empty
// date means today.
func (s *ScheduleService) ForDate(ctx context.Context, date string, filter models.ScheduleFilter, locale string) ([]dto.ScheduleView, error) {
	if date == "" {
		date = s.now.today()
	}
	if !models.ValidDate(date) {
		return nil, appErrors.InvalidArgument("date %q is not a YYYY-MM-DD date", date)
	}
	if filter.Type == filterAll {
		filter.Type = ""
	}
	if filter.Status == filterAll {
		filter.Status = ""
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, appErrors.InvalidArgument("unknown class type %q", filter.Type)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, appErrors.InvalidArgument("unknown schedule status %q", filter.Status)
	}

	var entries []models.Schedule
	for entry, err := range s.data.ScheduleByDate(ctx, date) {
		if err != nil {
			return nil, err
		}
		if filter.Matches(entry) {
			entries = append(entries, entry)
		}
	}
	return s.views(sortByTime(entries), locale)
}

// Today returns today's classes ordered by time.
func (s *ScheduleService) Today(ctx context.Context, locale string) ([]dto.ScheduleView, error) {
	return s.ForDate(ctx, s.now.today(), models.ScheduleFilter{}, locale)
}

// ForStudent returns a student's classes in insertion order.
func (s *ScheduleService) ForStudent(ctx context.Context, studentID, locale string) ([]dto.ScheduleView, error) {
	entries, err := Collect(s.data.ScheduleByStudent(ctx, studentID))
	if err != nil {
		return nil, err
	}
	return s.views(entries, locale)
}

// Week returns seven day buckets starting on the Monday of the week containing date.
// An empty date means the current week.
func (s *ScheduleService) Week(ctx context.Context, date, locale string) (dto.ScheduleWeek, error) {
	if date == "" {
		date = s.now.today()
	}
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return dto.ScheduleWeek{}, appErrors.InvalidArgument("date %q is not a YYYY-MM-DD date", date)
	}
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)

	entries, err := s.data.Schedule(ctx)
	if err != nil {
		return dto.ScheduleWeek{}, err
	}
	byDate := make(map[string][]models.Schedule)
	for _, entry := range entries {
		byDate[entry.Date] = append(byDate[entry.Date], entry)
	}

	week := dto.ScheduleWeek{Days: make([]dto.ScheduleDay, 0, 7)}
	for i := 0; i < 7; i++ {
		iso := monday.AddDate(0, 0, i).Format(models.DateLayout)
		weekday, err := display.FormatWeekday(iso, s.localeOr(locale))
		if err != nil {
			return dto.ScheduleWeek{}, err
		}
		views, err := s.views(sortByTime(byDate[iso]), locale)
		if err != nil {
			return dto.ScheduleWeek{}, err
		}
		week.Days = append(week.Days, dto.ScheduleDay{Date: iso, Weekday: weekday, Entries: views})
	}
	week.Start = week.Days[0].Date
	week.End = week.Days[6].Date
	return week, nil
}

func (s *ScheduleService) views(entries []models.Schedule, locale string) ([]dto.ScheduleView, error) {
	locale = s.localeOr(locale)
	views := make([]dto.ScheduleView, 0, len(entries))
	for _, entry := range entries {
		date, err := display.FormatDate(entry.Date, locale)
		if err != nil {
			return nil, err
		}
		clock, err := display.FormatTime(entry.Time, locale)
		if err != nil {
			return nil, err
		}
		views = append(views, dto.ScheduleView{
			Schedule:    entry,
			DisplayDate: date,
			DisplayTime: clock,
			StatusClass: display.StatusClass(string(entry.Status)).CSS(),
		})
	}
	return views, nil
}

func (s *ScheduleService) localeOr(locale string) string {
	if locale == "" {
		return s.locale
	}
	return locale
}

// sortByTime orders entries by HH:MM, keeping insertion order for ties.
func sortByTime(entries []models.Schedule) []models.Schedule {
	slices.SortStableFunc(entries, func(a, b models.Schedule) int {
		return strings.Compare(a.Time, b.Time)
	})
	return entries
}
