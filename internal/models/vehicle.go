package models

import "strings"

// VehicleStatus is the operational state of a fleet vehicle.
type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "available"
	VehicleStatusInUse        VehicleStatus = "in_use"
	VehicleStatusMaintenance  VehicleStatus = "maintenance"
	VehicleStatusOutOfService VehicleStatus = "out_of_service"
)

// Valid returns true when the status is a supported value.
func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusInUse, VehicleStatusMaintenance, VehicleStatusOutOfService:
		return true
	default:
		return false
	}
}

// Vehicle is a fleet unit used for practical classes.
type Vehicle struct {
	ID              string        `json:"id" yaml:"id"`
	Brand           string        `json:"brand" yaml:"brand"`
	Model           string        `json:"model" yaml:"model"`
	Year            int           `json:"year" yaml:"year"`
	Plate           string        `json:"plate" yaml:"plate"`
	LicenseType     LicenseType   `json:"license_type" yaml:"license_type"`
	Status          VehicleStatus `json:"status" yaml:"status"`
	Mileage         int           `json:"mileage" yaml:"mileage"`
	LastMaintenance string        `json:"last_maintenance,omitempty" yaml:"last_maintenance,omitempty"`
	NextMaintenance string        `json:"next_maintenance,omitempty" yaml:"next_maintenance,omitempty"`
}

// DisplayName is the label schedules carry for this vehicle.
func (v Vehicle) DisplayName() string {
	return strings.TrimSpace(v.Brand + " " + v.Model)
}

// ReferencedBy reports whether a schedule entry points at this vehicle.
// Schedules only hold a free-text label, so the match is on the brand.
func (v Vehicle) ReferencedBy(s Schedule) bool {
	ref := s.VehicleRef()
	return ref != "" && v.Brand != "" && strings.Contains(ref, v.Brand)
}

// VehicleFilter scopes fleet listings.
type VehicleFilter struct {
	Search string
	Status VehicleStatus
}
