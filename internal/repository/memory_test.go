package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/drivingschool-api/internal/models"
	"github.com/noah-isme/drivingschool-api/internal/seed"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
)

func openDefault(t *testing.T) *MemoryDB {
	t.Helper()
	db, err := Open(seed.Default())
	require.NoError(t, err)
	return db
}

func TestOpenRejectsDuplicateIDs(t *testing.T) {
	data := seed.Default()
	data.Schedule = append(data.Schedule, data.Schedule[0])

	_, err := Open(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestStudentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(openDefault(t))

	students, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 6)
	assert.Equal(t, "1", students[0].ID)
	assert.Equal(t, "6", students[5].ID)

	students[0].TheoreticalHours = 99
	stored, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 18, stored.TheoreticalHours, "snapshots must not alias stored rows")

	updated, err := repo.AddTheoreticalHours(ctx, "1", 2)
	require.NoError(t, err)
	assert.Equal(t, 20, updated.TheoreticalHours)
	assert.Equal(t, 12, updated.PracticalHours)

	_, err = repo.FindByID(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNoRecord))
	_, err = repo.AddTheoreticalHours(ctx, "missing", 2)
	assert.True(t, errors.Is(err, ErrNoRecord))
}

func TestAttendanceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(openDefault(t))

	record, err := repo.FindByStudentAndDate(ctx, "4", "2024-07-16")
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceStatusAbsent, record.Status)

	_, err = repo.FindByStudentAndDate(ctx, "4", "2024-07-17")
	assert.True(t, errors.Is(err, ErrNoRecord))

	require.NoError(t, repo.Create(ctx, &models.Attendance{
		ID: "new", StudentID: "4", Date: "2024-07-17",
		Type: models.ClassTypeTheoretical, Status: models.AttendanceStatusLate,
	}))
	err = repo.Create(ctx, &models.Attendance{ID: "new"})
	assert.True(t, errors.Is(err, ErrDuplicateID))

	updated, err := repo.UpdateStatus(ctx, "3", models.AttendanceStatusPresent, 2)
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceStatusPresent, updated.Status)
	assert.Equal(t, 2, updated.Hours)
	assert.Equal(t, models.ClassTypeTheoretical, updated.Type)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "new", all[3].ID)
}

func TestScheduleRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewScheduleRepository(openDefault(t))

	before, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)

	after, err := repo.UpdateStatus(ctx, "2", models.ScheduleStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusCompleted, after.Status)
	after.Status = before.Status
	assert.Equal(t, *before, *after)

	_, err = repo.UpdateStatus(ctx, "404", models.ScheduleStatusCompleted)
	assert.True(t, errors.Is(err, ErrNoRecord))

	require.NoError(t, repo.Create(ctx, &models.Schedule{ID: "4", StudentID: "1", Date: "2024-07-21", Time: "09:00"}))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestReferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewReferenceRepository(openDefault(t))

	instructors, err := repo.Instructors(ctx)
	require.NoError(t, err)
	assert.Len(t, instructors, 3)

	vehicles, err := repo.Vehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 4)

	vehicle, err := repo.VehicleByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Honda CB 125", vehicle.DisplayName())

	_, err = repo.VehicleByID(ctx, "9")
	assert.True(t, errors.Is(err, ErrNoRecord))
}

func TestRepositoriesHonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	db := openDefault(t)

	_, err := NewStudentRepository(db).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = NewScheduleRepository(db).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTableConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(openDefault(t))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = repo.AddTheoreticalHours(ctx, "2", 1)
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.List(ctx)
		}()
	}
	wg.Wait()

	student, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 65, student.TheoreticalHours)
}

func TestCacheRepositoryWithoutClient(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository(nil, "drivingschool", nil)

	var dest map[string]int
	assert.ErrorIs(t, repo.Get(ctx, "dashboard:summary", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(ctx, "dashboard:summary", map[string]int{"a": 1}, 0))
	assert.NoError(t, repo.DeleteByPattern(ctx, "dashboard:*"))
	assert.NoError(t, repo.Ping(ctx))
	assert.NoError(t, repo.Close())
	assert.Equal(t, "drivingschool:dashboard:summary", repo.key("dashboard:summary"))
}
