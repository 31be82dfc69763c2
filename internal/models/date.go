package models

import "time"

const (
	// DateLayout is the ISO calendar date format every record date uses.
	DateLayout = "2006-01-02"
	// TimeLayout is the 24h clock format schedule times use.
	TimeLayout = "15:04"
)

// ValidDate reports whether s is a well-formed ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidTime reports whether s is a well-formed HH:MM clock time.
func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
