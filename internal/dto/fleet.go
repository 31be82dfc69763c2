package dto

// FleetStats counts vehicles per operational status.
type FleetStats struct {
	Total        int `json:"total"`
	Available    int `json:"available"`
	InUse        int `json:"in_use"`
	Maintenance  int `json:"maintenance"`
	OutOfService int `json:"out_of_service"`
}
