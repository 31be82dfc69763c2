package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/drivingschool-api/internal/models"
)

func TestDefaultIsValid(t *testing.T) {
	data := Default()

	require.NoError(t, data.Validate())
	assert.Len(t, data.Students, 6)
	assert.Len(t, data.Instructors, 3)
	assert.Len(t, data.Vehicles, 4)
	assert.Len(t, data.Attendance, 3)
	assert.Len(t, data.Schedule, 3)
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	first := Default()
	first.Students[0].TheoreticalHours = 99
	first.Instructors[0].Specialties[0] = models.LicenseC1

	second := Default()
	assert.Equal(t, 18, second.Students[0].TheoreticalHours)
	assert.Equal(t, models.LicenseB1, second.Instructors[0].Specialties[0])
}

const fixture = `
students:
  - id: s-1
    name: Laura
    last_name: Gil
    email: laura@example.com
    license_type: B1
    enrollment_date: "2024-05-01"
    instructor: Roberto Silva Pérez
    theoretical_hours: 4
    practical_hours: 0
    total_theoretical_required: 20
    total_practical_required: 20
    status: active
instructors:
  - id: i-1
    name: Roberto
    last_name: Silva Pérez
    specialties: [B1, C1]
vehicles:
  - id: v-1
    brand: Mazda
    model: "2"
    year: 2020
    plate: XYZ-987
    license_type: B1
    status: maintenance
attendance:
  - id: a-1
    student_id: s-1
    date: "2024-05-02"
    type: theoretical
    status: present
    hours: 2
    instructor: Roberto Silva Pérez
schedule:
  - id: c-1
    student_id: s-1
    date: "2024-05-03"
    time: "09:00"
    type: practical
    instructor: Roberto Silva Pérez
    vehicle: Mazda 2
    status: scheduled
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	data, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, data.Students, 1)
	assert.Equal(t, "Laura Gil", data.Students[0].FullName())
	assert.Equal(t, models.LicenseB1, data.Students[0].LicenseType)
	assert.True(t, data.Instructors[0].CanTeach(models.LicenseC1))
	assert.Equal(t, models.VehicleStatusMaintenance, data.Vehicles[0].Status)
	assert.Equal(t, "Mazda 2", data.Schedule[0].VehicleRef())
}

func TestParseRejectsInvalidFixtures(t *testing.T) {
	cases := map[string]string{
		"duplicate student": "students:\n  - {id: '1', license_type: B1, status: active, total_theoretical_required: 1, total_practical_required: 1}\n  - {id: '1', license_type: B1, status: active, total_theoretical_required: 1, total_practical_required: 1}\n",
		"bad license":       "students:\n  - {id: '1', license_type: Z9, status: active, total_theoretical_required: 1, total_practical_required: 1}\n",
		"negative totals":   "students:\n  - {id: '1', license_type: B1, status: active, total_theoretical_required: -1, total_practical_required: 1}\n",
		"duplicate plate":   "vehicles:\n  - {id: '1', plate: AAA, license_type: B1, status: available}\n  - {id: '2', plate: AAA, license_type: B1, status: available}\n",
		"vehicle license":   "vehicles:\n  - {id: '1', plate: AAA, license_type: D9, status: available}\n",
		"double mark":       "attendance:\n  - {id: '1', student_id: '1', date: '2024-01-01', type: theoretical, status: present}\n  - {id: '2', student_id: '1', date: '2024-01-01', type: theoretical, status: late}\n",
		"slashed date":      "attendance:\n  - {id: '1', student_id: '1', date: '16/07/2024', type: theoretical, status: present}\n",
		"bad schedule":      "schedule:\n  - {id: '1', date: '2024-07-17', time: '08:00', type: driving, status: scheduled}\n",
		"schedule date":     "schedule:\n  - {id: '1', date: '2024-7-17', time: '08:00', type: practical, status: scheduled}\n",
		"schedule time":     "schedule:\n  - {id: '1', date: '2024-07-17', time: '8am', type: practical, status: scheduled}\n",
		"malformed":         "students: [",
	}
	for name, raw := range cases {
		_, err := Parse([]byte(raw))
		assert.Error(t, err, name)
	}
}

func TestParseFillsRequiredHoursFromLicence(t *testing.T) {
	data, err := Parse([]byte("students:\n  - {id: '1', license_type: B2, status: active, total_practical_required: 30}\n"))
	require.NoError(t, err)

	assert.Equal(t, 22, data.Students[0].TotalTheoreticalRequired)
	assert.Equal(t, 30, data.Students[0].TotalPracticalRequired)
}

func TestValidateRejectsSlashedAttendanceDate(t *testing.T) {
	data := Default()
	data.Attendance[0].Date = "16/07/2024"

	err := data.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `attendance 1: date "16/07/2024"`)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
