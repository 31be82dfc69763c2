package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/drivingschool-api/internal/dto"
	"github.com/noah-isme/drivingschool-api/internal/models"
	"github.com/noah-isme/drivingschool-api/pkg/response"
)

type attendanceService interface {
	ByDate(ctx context.Context, date string) ([]models.Attendance, error)
	DayRoster(ctx context.Context, date string, filter models.AttendanceFilter) ([]models.RosterEntry, error)
	DayStats(ctx context.Context, date string) (dto.AttendanceDayStats, error)
}

type attendanceMarker interface {
	UpsertAttendance(ctx context.Context, studentID, date string, status models.AttendanceStatus) (*models.Attendance, error)
}

// AttendanceHandler exposes daily attendance marking.
type AttendanceHandler struct {
	views  attendanceService
	marker attendanceMarker
}

// NewAttendanceHandler constructs an AttendanceHandler.
func NewAttendanceHandler(views attendanceService, marker attendanceMarker) *AttendanceHandler {
	return &AttendanceHandler{views: views, marker: marker}
}

// ByDate godoc
// @Summary Attendance marks of a day
// @Tags Attendance
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} response.Envelope
// @Router /attendance [get]
func (h *AttendanceHandler) ByDate(c *gin.Context) {
	records, err := h.views.ByDate(c.Request.Context(), strings.TrimSpace(c.Query("date")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, records)
}

// Upsert godoc
// @Summary Mark a student's attendance for a day
// @Description A present mark credits two theoretical hours the first time it is recorded.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.UpsertAttendanceRequest true "Attendance mark"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /attendance [put]
func (h *AttendanceHandler) Upsert(c *gin.Context) {
	var req dto.UpsertAttendanceRequest
	if !bindJSON(c, &req, "attendance") {
		return
	}
	record, err := h.marker.UpsertAttendance(c.Request.Context(), req.StudentID, req.Date, models.AttendanceStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Roster godoc
// @Summary Every student with their mark for a day
// @Tags Attendance
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Param filter query string false "all, present, absent (includes unmarked) or late"
// @Success 200 {object} response.Envelope
// @Router /attendance/roster [get]
func (h *AttendanceHandler) Roster(c *gin.Context) {
	roster, err := h.views.DayRoster(c.Request.Context(),
		strings.TrimSpace(c.Query("date")),
		models.AttendanceFilter(strings.TrimSpace(c.Query("filter"))),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, roster)
}

// Stats godoc
// @Summary Attendance counts for a day
// @Tags Attendance
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} response.Envelope
// @Router /attendance/stats [get]
func (h *AttendanceHandler) Stats(c *gin.Context) {
	stats, err := h.views.DayStats(c.Request.Context(), strings.TrimSpace(c.Query("date")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
