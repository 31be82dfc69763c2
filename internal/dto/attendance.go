package dto

// AttendanceDayStats counts marks for one day. Absent includes unmarked students.
type AttendanceDayStats struct {
	Date    string `json:"date"`
	Total   int    `json:"total"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
}

// UpsertAttendanceRequest is the body of an attendance mark.
type UpsertAttendanceRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Status    string `json:"status" binding:"required"`
}
