package dto

import (
	"time"

	"github.com/noah-isme/drivingschool-api/internal/models"
)

// DashboardSummary is the landing page payload.
type DashboardSummary struct {
	Date              string            `json:"date"`
	TotalStudents     int               `json:"total_students"`
	ActiveStudents    int               `json:"active_students"`
	GraduatedStudents int               `json:"graduated_students"`
	TodayAttendance   int               `json:"today_attendance"`
	ScheduledClasses  int               `json:"scheduled_classes"`
	CompletionRate    int               `json:"completion_rate"`
	TodaySchedule     []models.Schedule `json:"today_schedule"`
	RecentStudents    []models.Student  `json:"recent_students"`
	GeneratedAt       time.Time         `json:"generated_at"`
}
