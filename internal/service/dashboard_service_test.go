package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/drivingschool-api/internal/models"
)

type failingDashboardReader struct{ err error }

func (f failingDashboardReader) Students(context.Context) ([]models.Student, error) {
	return nil, f.err
}
func (f failingDashboardReader) Attendance(context.Context) ([]models.Attendance, error) {
	return nil, f.err
}
func (f failingDashboardReader) Schedule(context.Context) ([]models.Schedule, error) {
	return nil, f.err
}

func newDashboard(f *fixture, date string) *DashboardService {
	return NewDashboardService(DashboardServiceParams{
		Data:   f.data,
		Cache:  NewCacheService(f.cache, f.metrics, time.Minute, nil, true),
		Config: DashboardServiceConfig{RecentStudents: 5},
		Now:    fixedClock(date),
	})
}

func TestDashboardServiceSummary(t *testing.T) {
	f := newFixture(t)
	svc := newDashboard(f, "2024-07-16")

	summary, _, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-07-16", summary.Date)
	assert.Equal(t, 6, summary.TotalStudents)
	assert.Equal(t, 5, summary.ActiveStudents)
	assert.Equal(t, 1, summary.GraduatedStudents)
	assert.Equal(t, 2, summary.TodayAttendance)
	assert.Equal(t, 3, summary.ScheduledClasses)
	assert.Equal(t, 75, summary.CompletionRate)
	assert.Empty(t, summary.TodaySchedule)
	require.Len(t, summary.RecentStudents, 5)
	assert.Equal(t, "1", summary.RecentStudents[0].ID)
	assert.Equal(t, "5", summary.RecentStudents[4].ID)
}

func TestDashboardServiceTodaySchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.data.AddSchedule(ctx, NewScheduleEntry{
		StudentID: "4", Date: "2024-07-17", Time: "06:30",
		Type: models.ClassTypeTheoretical, Instructor: "Miguel Ángel Torres",
	})
	require.NoError(t, err)

	summary, _, err := newDashboard(f, "2024-07-17").Summary(ctx)
	require.NoError(t, err)
	times := ids(summary.TodaySchedule, func(s models.Schedule) string { return s.Time })
	assert.Equal(t, []string{"06:30", "08:00", "10:00", "14:00"}, times)
	assert.Equal(t, 4, summary.ScheduledClasses)
	assert.Zero(t, summary.TodayAttendance)
}

func TestDashboardServiceUsesCacheUntilMutation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := newDashboard(f, "2024-07-16")

	first, hit, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	require.Contains(t, f.cache.values, "dashboard:summary:2024-07-16")

	second, hit, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first.TodayAttendance, second.TodayAttendance)
	assert.EqualValues(t, 1, f.metrics.Snapshot().CacheHits)

	_, err = f.data.UpsertAttendance(ctx, "5", "2024-07-16", models.AttendanceStatusPresent)
	require.NoError(t, err)
	assert.NotContains(t, f.cache.values, "dashboard:summary:2024-07-16")

	third, hit, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 3, third.TodayAttendance)
}

func TestDashboardServiceWithoutCache(t *testing.T) {
	f := newFixture(t)
	svc := NewDashboardService(DashboardServiceParams{Data: f.data, Now: fixedClock("2024-07-16")})

	summary, _, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Len(t, summary.RecentStudents, 5)
	assert.Empty(t, f.cache.values)
}

func TestDashboardServicePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewDashboardService(DashboardServiceParams{Data: failingDashboardReader{err: boom}})

	_, _, err := svc.Summary(context.Background())
	assert.ErrorIs(t, err, boom)
}
