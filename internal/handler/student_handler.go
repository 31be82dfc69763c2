package handler

import (
	"context"
	"iter"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/drivingschool-api/internal/dto"
	"github.com/noah-isme/drivingschool-api/internal/models"
	"github.com/noah-isme/drivingschool-api/internal/service"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
	"github.com/noah-isme/drivingschool-api/pkg/response"
)

type studentService interface {
	List(ctx context.Context, filter models.StudentFilter) ([]dto.StudentDetail, error)
	Get(ctx context.Context, id string) (*dto.StudentDetail, error)
}

type studentHistory interface {
	AttendanceByStudent(ctx context.Context, studentID string) iter.Seq2[models.Attendance, error]
}

type studentSchedule interface {
	ForStudent(ctx context.Context, studentID, locale string) ([]dto.ScheduleView, error)
}

// StudentHandler exposes the roster.
type StudentHandler struct {
	students studentService
	history  studentHistory
	schedule studentSchedule
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(students studentService, history studentHistory, schedule studentSchedule) *StudentHandler {
	return &StudentHandler{students: students, history: history, schedule: schedule}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param search query string false "Search over name, last name and email"
// @Param status query string false "active, graduated, suspended, inactive or all"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	filter := models.StudentFilter{
		Search: c.Query("search"),
		Status: models.StudentStatus(strings.TrimSpace(c.Query("status"))),
	}
	students, err := h.students.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, students)
}

// Get godoc
// @Summary Get student with progress
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Attendance godoc
// @Summary Attendance history of a student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/attendance [get]
func (h *StudentHandler) Attendance(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.students.Get(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	if h.history == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	records, err := service.Collect(h.history.AttendanceByStudent(c.Request.Context(), id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, records)
}

// Schedule godoc
// @Summary Classes of a student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Param locale query string false "Display locale, e.g. es-CO or en"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/schedule [get]
func (h *StudentHandler) Schedule(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.students.Get(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	if h.schedule == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	entries, err := h.schedule.ForStudent(c.Request.Context(), id, requestLocale(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, entries)
}
