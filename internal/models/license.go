package models

// LicenseType is the category of driving licence a student trains for.
type LicenseType string

const (
	LicenseA1 LicenseType = "A1"
	LicenseA2 LicenseType = "A2"
	LicenseB1 LicenseType = "B1"
	LicenseB2 LicenseType = "B2"
	LicenseC1 LicenseType = "C1"
)

// LicenseTypes lists every licence category in catalogue order.
var LicenseTypes = []LicenseType{LicenseA1, LicenseA2, LicenseB1, LicenseB2, LicenseC1}

// Valid returns true when the licence type is one of the known categories.
func (l LicenseType) Valid() bool {
	switch l {
	case LicenseA1, LicenseA2, LicenseB1, LicenseB2, LicenseC1:
		return true
	default:
		return false
	}
}

// HourRequirement holds the hours a licence category demands.
type HourRequirement struct {
	Theoretical int `json:"theoretical" yaml:"theoretical"`
	Practical   int `json:"practical" yaml:"practical"`
}

var licenseRequirements = map[LicenseType]HourRequirement{
	LicenseA1: {Theoretical: 14, Practical: 14},
	LicenseA2: {Theoretical: 16, Practical: 16},
	LicenseB1: {Theoretical: 20, Practical: 20},
	LicenseB2: {Theoretical: 22, Practical: 22},
	LicenseC1: {Theoretical: 25, Practical: 25},
}

// RequirementsFor returns the reference hour totals for a licence category.
// Students copy these at enrollment; they are not re-derived afterwards.
func RequirementsFor(l LicenseType) (HourRequirement, bool) {
	req, ok := licenseRequirements[l]
	return req, ok
}
