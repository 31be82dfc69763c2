package models

import "strings"

// StudentStatus is the lifecycle state of an enrolled student.
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusSuspended StudentStatus = "suspended"
	StudentStatusInactive  StudentStatus = "inactive"
)

// Valid returns true when the status is a supported value.
func (s StudentStatus) Valid() bool {
	switch s {
	case StudentStatusActive, StudentStatusGraduated, StudentStatusSuspended, StudentStatusInactive:
		return true
	default:
		return false
	}
}

// Student represents a learner enrolled at the school.
type Student struct {
	ID                       string        `json:"id" yaml:"id"`
	Name                     string        `json:"name" yaml:"name"`
	LastName                 string        `json:"last_name" yaml:"last_name"`
	Email                    string        `json:"email" yaml:"email"`
	Phone                    string        `json:"phone" yaml:"phone"`
	LicenseType              LicenseType   `json:"license_type" yaml:"license_type"`
	EnrollmentDate           string        `json:"enrollment_date" yaml:"enrollment_date"`
	Instructor               string        `json:"instructor" yaml:"instructor"`
	TheoreticalHours         int           `json:"theoretical_hours" yaml:"theoretical_hours"`
	PracticalHours           int           `json:"practical_hours" yaml:"practical_hours"`
	TotalTheoreticalRequired int           `json:"total_theoretical_required" yaml:"total_theoretical_required"`
	TotalPracticalRequired   int           `json:"total_practical_required" yaml:"total_practical_required"`
	Status                   StudentStatus `json:"status" yaml:"status"`
	Avatar                   string        `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// FullName joins first and last name.
func (s Student) FullName() string {
	return strings.TrimSpace(s.Name + " " + s.LastName)
}

// CompletedHours sums both accumulators.
func (s Student) CompletedHours() int {
	return s.TheoreticalHours + s.PracticalHours
}

// RequiredHours sums both targets.
func (s Student) RequiredHours() int {
	return s.TotalTheoreticalRequired + s.TotalPracticalRequired
}

// StudentFilter encapsulates roster search parameters.
type StudentFilter struct {
	Search string
	Status StudentStatus
}

// HoursSort selects the ordering of the hours view.
type HoursSort string

const (
	HoursSortProgress HoursSort = "progress"
	HoursSortName     HoursSort = "name"
	HoursSortLicense  HoursSort = "license"
)

// HoursFilter scopes the hours progress view.
type HoursFilter struct {
	Search  string
	License LicenseType
	SortBy  HoursSort
}
