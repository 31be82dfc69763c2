package display

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/drivingschool-api/internal/models"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
)

func TestStatusClass(t *testing.T) {
	assert.Equal(t, ClassGreen, StatusClass("active"))
	assert.Equal(t, ClassBlue, StatusClass("graduated"))
	assert.Equal(t, ClassYellow, StatusClass("late"))
	assert.Equal(t, ClassRed, StatusClass("cancelled"))
	assert.Equal(t, Neutral, StatusClass("inactive"))
	assert.Equal(t, Neutral, StatusClass("unknown"))
	assert.Equal(t, Neutral, StatusClass(string(models.VehicleStatusInUse)))
	assert.Equal(t, Neutral, StatusClass(string(models.VehicleStatusMaintenance)))
	assert.Equal(t, Neutral, StatusClass(""))
	assert.Equal(t, "bg-green-100 text-green-800", StatusClass("present").CSS())
}

func TestLicenseTypeClassIsTotal(t *testing.T) {
	seen := map[Class]bool{}
	for _, l := range models.LicenseTypes {
		c := LicenseTypeClass(l)
		assert.NotEqual(t, Neutral, c, "licence %s", l)
		seen[c] = true
	}
	assert.Len(t, seen, len(models.LicenseTypes))
	assert.Equal(t, "bg-orange-100 text-orange-800", LicenseTypeClass(models.LicenseB2).CSS())
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		iso, locale, want string
	}{
		{"2024-07-16", "es-CO", "16 de julio de 2024"},
		{"2024-01-05", "", "5 de enero de 2024"},
		{"2024-07-16", "en-US", "July 16, 2024"},
		{"2024-12-31", "fr-FR", "31 de diciembre de 2024"},
		{"2024-12-31", "not a locale!", "31 de diciembre de 2024"},
	}
	for _, tc := range cases {
		got, err := FormatDate(tc.iso, tc.locale)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		hhmm, locale, want string
	}{
		{"08:00", "es-CO", "08:00 a. m."},
		{"14:00", "es-CO", "02:00 p. m."},
		{"00:30", "es", "12:30 a. m."},
		{"12:15", "en", "12:15 PM"},
	}
	for _, tc := range cases {
		got, err := FormatTime(tc.hhmm, tc.locale)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestFormatRejectsMalformedInput(t *testing.T) {
	_, err := FormatDate("16/07/2024", "es-CO")
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))

	_, err = FormatTime("25:00", "es-CO")
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "CR", Initials("Carlos Andrés", "Rodríguez Muñoz"))
	assert.Equal(t, "ÁT", Initials("ángel", "torres"))
	assert.Equal(t, "V", Initials("Valentina", ""))
}

func TestFormatWeekday(t *testing.T) {
	got, err := FormatWeekday("2024-07-17", "es-CO")
	require.NoError(t, err)
	assert.Equal(t, "miércoles", got)

	got, err = FormatWeekday("2024-07-15", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "Monday", got)

	_, err = FormatWeekday("2024-13-01", "")
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
}
