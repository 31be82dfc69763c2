package models

import "strings"

// ScheduleStatus is the state of a planned class.
type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusCompleted ScheduleStatus = "completed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// Valid returns true when the status is a supported value.
func (s ScheduleStatus) Valid() bool {
	switch s {
	case ScheduleStatusScheduled, ScheduleStatusCompleted, ScheduleStatusCancelled:
		return true
	default:
		return false
	}
}

// Schedule is a planned or completed class event.
type Schedule struct {
	ID         string         `json:"id" yaml:"id"`
	StudentID  string         `json:"student_id" yaml:"student_id"`
	Date       string         `json:"date" yaml:"date"`
	Time       string         `json:"time" yaml:"time"`
	Type       ClassType      `json:"type" yaml:"type"`
	Instructor string         `json:"instructor" yaml:"instructor"`
	Vehicle    string         `json:"vehicle,omitempty" yaml:"vehicle,omitempty"`
	Status     ScheduleStatus `json:"status" yaml:"status"`
}

// InstructorRef returns the instructor the entry points at (a display name today).
func (s Schedule) InstructorRef() string {
	return s.Instructor
}

// VehicleRef returns the vehicle the entry points at (a display label today).
func (s Schedule) VehicleRef() string {
	return s.Vehicle
}

// ScheduleFilter narrows a day's schedule. Empty fields match everything.
// Instructor compares case-insensitively against the entry's instructor.
type ScheduleFilter struct {
	Type       ClassType
	Status     ScheduleStatus
	Instructor string
}

// Matches reports whether the entry passes the filter.
func (f ScheduleFilter) Matches(s Schedule) bool {
	if f.Type != "" && s.Type != f.Type {
		return false
	}
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.Instructor != "" && !strings.EqualFold(s.InstructorRef(), f.Instructor) {
		return false
	}
	return true
}
