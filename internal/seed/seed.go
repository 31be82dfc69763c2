// Package seed provides the initial in-memory collections the service boots with.
package seed

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/noah-isme/drivingschool-api/internal/models"
)

// Data is a complete fixture set.
type Data struct {
	Students    []models.Student    `yaml:"students"`
	Instructors []models.Instructor `yaml:"instructors"`
	Vehicles    []models.Vehicle    `yaml:"vehicles"`
	Attendance  []models.Attendance `yaml:"attendance"`
	Schedule    []models.Schedule   `yaml:"schedule"`
}

// Default returns a fresh copy of the built-in fixture set.
func Default() Data {
	return Data{
		Students:    defaultStudents(),
		Instructors: defaultInstructors(),
		Vehicles:    defaultVehicles(),
		Attendance:  defaultAttendance(),
		Schedule:    defaultSchedule(),
	}
}

// LoadFile reads a YAML fixture set from disk and validates it.
func LoadFile(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML fixture set.
func Parse(raw []byte) (Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("decode seed yaml: %w", err)
	}
	data.fillRequiredHours()
	if err := data.Validate(); err != nil {
		return Data{}, err
	}
	return data, nil
}

// fillRequiredHours gives students enrolled without hour totals the reference
// totals of their licence category.
func (d Data) fillRequiredHours() {
	for i := range d.Students {
		s := &d.Students[i]
		req, ok := models.RequirementsFor(s.LicenseType)
		if !ok {
			continue
		}
		if s.TotalTheoreticalRequired == 0 {
			s.TotalTheoreticalRequired = req.Theoretical
		}
		if s.TotalPracticalRequired == 0 {
			s.TotalPracticalRequired = req.Practical
		}
	}
}

// Validate checks identifier uniqueness, enumerated fields and date formats.
func (d Data) Validate() error {
	var errs []error

	studentIDs := map[string]struct{}{}
	for _, s := range d.Students {
		if err := unique(studentIDs, "student", s.ID); err != nil {
			errs = append(errs, err)
		}
		if !s.LicenseType.Valid() {
			errs = append(errs, fmt.Errorf("student %s: invalid license type %q", s.ID, s.LicenseType))
		}
		if !s.Status.Valid() {
			errs = append(errs, fmt.Errorf("student %s: invalid status %q", s.ID, s.Status))
		}
		if s.TotalTheoreticalRequired <= 0 || s.TotalPracticalRequired <= 0 {
			errs = append(errs, fmt.Errorf("student %s: required hour totals must be positive", s.ID))
		}
		if s.TheoreticalHours < 0 || s.PracticalHours < 0 {
			errs = append(errs, fmt.Errorf("student %s: hour accumulators must not be negative", s.ID))
		}
	}

	instructorIDs := map[string]struct{}{}
	for _, i := range d.Instructors {
		if err := unique(instructorIDs, "instructor", i.ID); err != nil {
			errs = append(errs, err)
		}
		for _, l := range i.Specialties {
			if !l.Valid() {
				errs = append(errs, fmt.Errorf("instructor %s: invalid specialty %q", i.ID, l))
			}
		}
	}

	vehicleIDs := map[string]struct{}{}
	plates := map[string]struct{}{}
	for _, v := range d.Vehicles {
		if err := unique(vehicleIDs, "vehicle", v.ID); err != nil {
			errs = append(errs, err)
		}
		if err := unique(plates, "plate", v.Plate); err != nil {
			errs = append(errs, err)
		}
		if !v.Status.Valid() {
			errs = append(errs, fmt.Errorf("vehicle %s: invalid status %q", v.ID, v.Status))
		}
		if !v.LicenseType.Valid() {
			errs = append(errs, fmt.Errorf("vehicle %s: invalid license type %q", v.ID, v.LicenseType))
		}
	}

	attendanceIDs := map[string]struct{}{}
	marks := map[[2]string]struct{}{}
	for _, a := range d.Attendance {
		if err := unique(attendanceIDs, "attendance", a.ID); err != nil {
			errs = append(errs, err)
		}
		key := [2]string{a.StudentID, a.Date}
		if _, dup := marks[key]; dup {
			errs = append(errs, fmt.Errorf("attendance %s: student %s already marked on %s", a.ID, a.StudentID, a.Date))
		}
		marks[key] = struct{}{}
		if !a.Status.Valid() || !a.Type.Valid() {
			errs = append(errs, fmt.Errorf("attendance %s: invalid type or status", a.ID))
		}
		if !models.ValidDate(a.Date) {
			errs = append(errs, fmt.Errorf("attendance %s: date %q is not YYYY-MM-DD", a.ID, a.Date))
		}
	}

	scheduleIDs := map[string]struct{}{}
	for _, s := range d.Schedule {
		if err := unique(scheduleIDs, "schedule", s.ID); err != nil {
			errs = append(errs, err)
		}
		if !s.Status.Valid() || !s.Type.Valid() {
			errs = append(errs, fmt.Errorf("schedule %s: invalid type or status", s.ID))
		}
		if !models.ValidDate(s.Date) {
			errs = append(errs, fmt.Errorf("schedule %s: date %q is not YYYY-MM-DD", s.ID, s.Date))
		}
		if !models.ValidTime(s.Time) {
			errs = append(errs, fmt.Errorf("schedule %s: time %q is not HH:MM", s.ID, s.Time))
		}
	}

	return errors.Join(errs...)
}

func unique(seen map[string]struct{}, kind, id string) error {
	if id == "" {
		return fmt.Errorf("%s: empty identifier", kind)
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%s %s: duplicate identifier", kind, id)
	}
	seen[id] = struct{}{}
	return nil
}
