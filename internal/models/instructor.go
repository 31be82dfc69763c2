package models

import (
	"slices"
	"strings"
)

// Instructor is read-only reference data describing who teaches which licences.
type Instructor struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	LastName    string        `json:"last_name" yaml:"last_name"`
	Email       string        `json:"email" yaml:"email"`
	Phone       string        `json:"phone" yaml:"phone"`
	Specialties []LicenseType `json:"specialties" yaml:"specialties"`
	Avatar      string        `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// FullName is the display name attendance and schedule records refer to.
func (i Instructor) FullName() string {
	return strings.TrimSpace(i.Name + " " + i.LastName)
}

// CanTeach reports whether the licence category is among the specialties.
func (i Instructor) CanTeach(l LicenseType) bool {
	return slices.Contains(i.Specialties, l)
}
