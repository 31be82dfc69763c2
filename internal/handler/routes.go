package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the API mounts.
type Handlers struct {
	Students   *StudentHandler
	Hours      *HoursHandler
	Attendance *AttendanceHandler
	Schedule   *ScheduleHandler
	Fleet      *FleetHandler
	Dashboard  *DashboardHandler
	Metrics    *MetricsHandler
}

// RegisterRoutes mounts the ops endpoints on the engine and the API under prefix.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)

	students := api.Group("/students")
	students.GET("", h.Students.List)
	students.GET("/:id", h.Students.Get)
	students.GET("/:id/attendance", h.Students.Attendance)
	students.GET("/:id/schedule", h.Students.Schedule)

	hours := api.Group("/hours")
	hours.GET("", h.Hours.List)
	hours.GET("/overview", h.Hours.Overview)
	hours.GET("/export", h.Hours.Export)

	attendance := api.Group("/attendance")
	attendance.GET("", h.Attendance.ByDate)
	attendance.PUT("", h.Attendance.Upsert)
	attendance.GET("/roster", h.Attendance.Roster)
	attendance.GET("/stats", h.Attendance.Stats)

	schedule := api.Group("/schedule")
	schedule.GET("", h.Schedule.List)
	schedule.POST("", h.Schedule.Create)
	schedule.GET("/week", h.Schedule.Week)
	schedule.PATCH("/:id/status", h.Schedule.UpdateStatus)

	vehicles := api.Group("/vehicles")
	vehicles.GET("", h.Fleet.Vehicles)
	vehicles.GET("/stats", h.Fleet.Stats)
	vehicles.GET("/:id/upcoming", h.Fleet.Upcoming)

	api.GET("/instructors", h.Fleet.Instructors)
	api.GET("/dashboard", h.Dashboard.Summary)
}
