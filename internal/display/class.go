// Package display maps domain values onto presentation categories and
// human readable strings. Everything here is pure.
package display

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/noah-isme/drivingschool-api/internal/models"
)

// Class is a badge colour category understood by the dashboard.
type Class string

const (
	ClassGreen  Class = "green"
	ClassBlue   Class = "blue"
	ClassYellow Class = "yellow"
	ClassOrange Class = "orange"
	ClassRed    Class = "red"
	ClassGray   Class = "gray"
)

// Neutral is returned for values without a dedicated category.
const Neutral = ClassGray

// CSS renders the class as the utility classes the dashboard badges use.
func (c Class) CSS() string {
	return "bg-" + string(c) + "-100 text-" + string(c) + "-800"
}

// student, attendance and schedule statuses never share a spelling, so one table covers them.
var statusClasses = map[string]Class{
	string(models.StudentStatusActive):     ClassGreen,
	string(models.StudentStatusGraduated):  ClassBlue,
	string(models.StudentStatusSuspended):  ClassRed,
	string(models.StudentStatusInactive):   ClassGray,
	string(models.AttendanceStatusPresent): ClassGreen,
	string(models.AttendanceStatusAbsent):  ClassRed,
	string(models.AttendanceStatusLate):    ClassYellow,
	string(models.ScheduleStatusScheduled): ClassBlue,
	string(models.ScheduleStatusCompleted): ClassGreen,
	string(models.ScheduleStatusCancelled): ClassRed,
}

// StatusClass maps any status value to its badge class, falling back to Neutral.
func StatusClass(status string) Class {
	if c, ok := statusClasses[status]; ok {
		return c
	}
	return Neutral
}

// LicenseTypeClass maps a licence category to its badge class.
func LicenseTypeClass(l models.LicenseType) Class {
	switch l {
	case models.LicenseA1:
		return ClassGreen
	case models.LicenseA2:
		return ClassBlue
	case models.LicenseB1:
		return ClassYellow
	case models.LicenseB2:
		return ClassOrange
	case models.LicenseC1:
		return ClassRed
	}
	return Neutral
}

// Initials returns the upper-cased first letter of each name part.
func Initials(first, last string) string {
	var b strings.Builder
	for _, part := range []string{first, last} {
		r, _ := utf8.DecodeRuneInString(strings.TrimSpace(part))
		if r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
