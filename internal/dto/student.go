package dto

import (
	"github.com/noah-isme/drivingschool-api/internal/models"
	"github.com/noah-isme/drivingschool-api/internal/progress"
)

// StudentDetail is a roster entry enriched with derived progress and badges.
type StudentDetail struct {
	models.Student
	Initials     string             `json:"initials"`
	StatusClass  string             `json:"status_class"`
	LicenseClass string             `json:"license_class"`
	Progress     progress.Breakdown `json:"progress"`
}

// HoursRow is one line of the hours progress view.
type HoursRow struct {
	StudentID       string             `json:"student_id"`
	FullName        string             `json:"full_name"`
	LicenseType     models.LicenseType `json:"license_type"`
	LicenseClass    string             `json:"license_class"`
	Instructor      string             `json:"instructor"`
	TheoreticalDone int                `json:"theoretical_hours"`
	TheoreticalReq  int                `json:"total_theoretical_required"`
	PracticalDone   int                `json:"practical_hours"`
	PracticalReq    int                `json:"total_practical_required"`
	Progress        progress.Breakdown `json:"progress"`
	Band            progress.Band      `json:"band"`
}

// HoursOverview summarises how the whole roster is progressing.
type HoursOverview struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	InProgress     int `json:"in_progress"`
	NeedsAttention int `json:"needs_attention"`
	// AttendedClasses counts present marks per student id.
	AttendedClasses map[string]int `json:"attended_classes"`
}
