package service

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/drivingschool-api/internal/models"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
)

func rosterIDs(entries []models.RosterEntry) []string {
	return ids(entries, func(e models.RosterEntry) string { return e.Student.ID })
}

func TestAttendanceServiceDayRoster(t *testing.T) {
	svc := NewAttendanceService(newFixture(t).data, nil, nil)
	ctx := context.Background()

	all, err := svc.DayRoster(ctx, "2024-07-16", models.AttendanceFilterAll)
	require.NoError(t, err)
	require.Len(t, all, 6)
	require.NotNil(t, all[0].Attendance)
	assert.Equal(t, models.AttendanceStatusPresent, all[0].Attendance.Status)
	assert.Nil(t, all[2].Attendance)

	present, err := svc.DayRoster(ctx, "2024-07-16", models.AttendanceFilterPresent)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, rosterIDs(present))

	absent, err := svc.DayRoster(ctx, "2024-07-16", models.AttendanceFilterAbsent)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4", "5", "6"}, rosterIDs(absent))

	late, err := svc.DayRoster(ctx, "2024-07-16", models.AttendanceFilterLate)
	require.NoError(t, err)
	assert.Empty(t, late)

	_, err = svc.DayRoster(ctx, "2024-07-16", "excused")
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
	_, err = svc.DayRoster(ctx, "yesterday", "")
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
}

func TestAttendanceServiceDayStats(t *testing.T) {
	f := newFixture(t)
	svc := NewAttendanceService(f.data, nil, nil)
	ctx := context.Background()

	stats, err := svc.DayStats(ctx, "2024-07-16")
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Present)
	assert.Equal(t, 0, stats.Late)
	assert.Equal(t, 4, stats.Absent)

	_, err = f.data.UpsertAttendance(ctx, "3", "2024-07-16", models.AttendanceStatusLate)
	require.NoError(t, err)
	stats, err = svc.DayStats(ctx, "2024-07-16")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 3, stats.Absent)

	empty, err := svc.DayStats(ctx, "2024-08-01")
	require.NoError(t, err)
	assert.Equal(t, 6, empty.Absent)
}

func TestAttendanceServiceDefaultsToToday(t *testing.T) {
	svc := NewAttendanceService(newFixture(t).data, fixedClock("2024-07-16"), nil)
	ctx := context.Background()

	records, err := svc.ByDate(ctx, "")
	require.NoError(t, err)
	assert.Len(t, records, 3)

	stats, err := svc.DayStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-16", stats.Date)

	none, err := svc.ByDate(ctx, "2024-07-01")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

type brokenMarks struct {
	students []models.Student
	err      error
}

func (b brokenMarks) Students(context.Context) ([]models.Student, error) {
	return b.students, nil
}

func (b brokenMarks) AttendanceByDate(context.Context, string) iter.Seq2[models.Attendance, error] {
	return func(yield func(models.Attendance, error) bool) {
		yield(models.Attendance{}, b.err)
	}
}

func TestAttendanceServicePropagatesReadErrors(t *testing.T) {
	readErr := errors.New("store unavailable")
	svc := NewAttendanceService(brokenMarks{students: []models.Student{{ID: "1"}}, err: readErr}, fixedClock("2024-07-16"), nil)
	ctx := context.Background()

	records, err := svc.ByDate(ctx, "2024-07-16")
	assert.ErrorIs(t, err, readErr)
	assert.Nil(t, records)

	roster, err := svc.DayRoster(ctx, "", models.AttendanceFilterAll)
	assert.ErrorIs(t, err, readErr)
	assert.Nil(t, roster)

	_, err = svc.DayStats(ctx, "")
	assert.ErrorIs(t, err, readErr)
}

func TestAttendanceServiceCancelledContext(t *testing.T) {
	svc := NewAttendanceService(newFixture(t).data, fixedClock("2024-07-16"), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, err := svc.ByDate(ctx, "2024-07-16")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, records)
}
