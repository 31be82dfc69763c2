package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/drivingschool-api/internal/repository"
	"github.com/noah-isme/drivingschool-api/internal/seed"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
)

type fixture struct {
	db      *repository.MemoryDB
	data    *DataService
	cache   *memoryCacheRepo
	metrics *MetricsService
}

func sequentialIDs() IDGenerator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("gen-%d", n.Add(1))
	}
}

func fixedClock(date string) Clock {
	return func() time.Time {
		t, err := time.Parse("2006-01-02 15:04", date+" 10:30")
		if err != nil {
			panic(err)
		}
		return t
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := repository.Open(seed.Default())
	require.NoError(t, err)

	metrics := NewMetricsService()
	cacheRepo := newMemoryCacheRepo()
	data := NewDataService(DataServiceParams{
		Students:   repository.NewStudentRepository(db),
		Attendance: repository.NewAttendanceRepository(db),
		Schedule:   repository.NewScheduleRepository(db),
		Reference:  repository.NewReferenceRepository(db),
		Cache:      NewCacheService(cacheRepo, metrics, time.Minute, nil, true),
		Metrics:    metrics,
		IDs:        sequentialIDs(),
	})
	return &fixture{db: db, data: data, cache: cacheRepo, metrics: metrics}
}

type memoryCacheRepo struct {
	mu          sync.Mutex
	values      map[string][]byte
	invalidated []string
	gets        int
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{values: make(map[string][]byte)}
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	raw, ok := m.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			delete(m.values, key)
		}
	}
	return nil
}

func (m *memoryCacheRepo) invalidations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.invalidated)
}
