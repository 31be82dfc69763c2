package models

// ClassType distinguishes classroom theory from in-vehicle practice.
type ClassType string

const (
	ClassTypeTheoretical ClassType = "theoretical"
	ClassTypePractical   ClassType = "practical"
)

// Valid returns true when the class type is a supported value.
func (t ClassType) Valid() bool {
	return t == ClassTypeTheoretical || t == ClassTypePractical
}

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate:
		return true
	default:
		return false
	}
}

// Attendance is the mark a student received for one class day.
type Attendance struct {
	ID         string           `json:"id" yaml:"id"`
	StudentID  string           `json:"student_id" yaml:"student_id"`
	Date       string           `json:"date" yaml:"date"`
	Type       ClassType        `json:"type" yaml:"type"`
	Status     AttendanceStatus `json:"status" yaml:"status"`
	Hours      int              `json:"hours" yaml:"hours"`
	Instructor string           `json:"instructor" yaml:"instructor"`
	Notes      string           `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// AttendanceFilter narrows the daily roster. Absent also matches unmarked students.
type AttendanceFilter string

const (
	AttendanceFilterAll     AttendanceFilter = "all"
	AttendanceFilterPresent AttendanceFilter = "present"
	AttendanceFilterAbsent  AttendanceFilter = "absent"
	AttendanceFilterLate    AttendanceFilter = "late"
)

// Valid returns true when the filter is a supported value.
func (f AttendanceFilter) Valid() bool {
	switch f {
	case "", AttendanceFilterAll, AttendanceFilterPresent, AttendanceFilterAbsent, AttendanceFilterLate:
		return true
	default:
		return false
	}
}

// RosterEntry pairs a student with their mark for the requested day, if any.
type RosterEntry struct {
	Student    Student     `json:"student"`
	Attendance *Attendance `json:"attendance,omitempty"`
}
