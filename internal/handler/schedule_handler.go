package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/drivingschool-api/internal/dto"
	"github.com/noah-isme/drivingschool-api/internal/models"
	"github.com/noah-isme/drivingschool-api/internal/service"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
	"github.com/noah-isme/drivingschool-api/pkg/response"
)

type scheduleViews interface {
	ForDate(ctx context.Context, date string, filter models.ScheduleFilter, locale string) ([]dto.ScheduleView, error)
	Week(ctx context.Context, date, locale string) (dto.ScheduleWeek, error)
}

type scheduleMutator interface {
	AddSchedule(ctx context.Context, entry service.NewScheduleEntry) (*models.Schedule, error)
	UpdateScheduleStatus(ctx context.Context, scheduleID string, status models.ScheduleStatus) (bool, error)
	ScheduleEntry(ctx context.Context, id string) (*models.Schedule, error)
}

// ScheduleHandler exposes the class calendar.
type ScheduleHandler struct {
	views   scheduleViews
	mutator scheduleMutator
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(views scheduleViews, mutator scheduleMutator) *ScheduleHandler {
	return &ScheduleHandler{views: views, mutator: mutator}
}

// List godoc
// @Summary Classes of a day ordered by time
// @Tags Schedule
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Param type query string false "theoretical, practical or all"
// @Param status query string false "scheduled, completed, cancelled or all"
// @Param instructor query string false "Instructor name as shown on the class"
// @Param locale query string false "Display locale"
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	filter := models.ScheduleFilter{
		Type:       models.ClassType(strings.TrimSpace(c.Query("type"))),
		Status:     models.ScheduleStatus(strings.TrimSpace(c.Query("status"))),
		Instructor: strings.TrimSpace(c.Query("instructor")),
	}
	entries, err := h.views.ForDate(c.Request.Context(), strings.TrimSpace(c.Query("date")), filter, requestLocale(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, entries)
}

// Week godoc
// @Summary Monday to Sunday calendar
// @Tags Schedule
// @Produce json
// @Param date query string false "Any day of the wanted week, defaults to today"
// @Param locale query string false "Display locale"
// @Success 200 {object} response.Envelope
// @Router /schedule/week [get]
func (h *ScheduleHandler) Week(c *gin.Context) {
	week, err := h.views.Week(c.Request.Context(), strings.TrimSpace(c.Query("date")), requestLocale(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, week)
}

// Create godoc
// @Summary Schedule a class
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body service.NewScheduleEntry true "Class"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedule [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var entry service.NewScheduleEntry
	if !bindJSON(c, &entry, "schedule") {
		return
	}
	created, err := h.mutator.AddSchedule(c.Request.Context(), entry)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// UpdateStatus godoc
// @Summary Change the status of a class
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param payload body dto.UpdateScheduleStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedule/{id}/status [patch]
func (h *ScheduleHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateScheduleStatusRequest
	if !bindJSON(c, &req, "schedule status") {
		return
	}
	id := c.Param("id")
	found, err := h.mutator.UpdateScheduleStatus(c.Request.Context(), id, models.ScheduleStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	if !found {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "schedule entry not found"))
		return
	}
	entry, err := h.mutator.ScheduleEntry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry)
}
