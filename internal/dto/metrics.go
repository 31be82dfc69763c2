package dto

import "time"

// MetricsSnapshot is a point-in-time digest of the Prometheus counters.
type MetricsSnapshot struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	AttendanceMarks          uint64    `json:"attendance_marks"`
	HoursCredited            uint64    `json:"hours_credited"`
	SchedulesCreated         uint64    `json:"schedules_created"`
	UnknownScheduleUpdates   uint64    `json:"unknown_schedule_updates"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
