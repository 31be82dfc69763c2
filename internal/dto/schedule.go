package dto

import "github.com/noah-isme/drivingschool-api/internal/models"

// ScheduleView is a schedule entry with locale formatted date and time.
type ScheduleView struct {
	models.Schedule
	DisplayDate string `json:"display_date"`
	DisplayTime string `json:"display_time"`
	StatusClass string `json:"status_class"`
}

// ScheduleDay buckets the entries of one calendar day.
type ScheduleDay struct {
	Date    string         `json:"date"`
	Weekday string         `json:"weekday"`
	Entries []ScheduleView `json:"entries"`
}

// ScheduleWeek is a Monday to Sunday calendar page.
type ScheduleWeek struct {
	Start string        `json:"start"`
	End   string        `json:"end"`
	Days  []ScheduleDay `json:"days"`
}

// UpdateScheduleStatusRequest is the body of a status transition.
type UpdateScheduleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
