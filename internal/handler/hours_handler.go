package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/drivingschool-api/internal/dto"
	"github.com/noah-isme/drivingschool-api/internal/models"
	"github.com/noah-isme/drivingschool-api/internal/service"
	"github.com/noah-isme/drivingschool-api/pkg/response"
)

type hoursService interface {
	Hours(ctx context.Context, filter models.HoursFilter) ([]dto.HoursRow, error)
	HoursOverview(ctx context.Context) (dto.HoursOverview, error)
}

type hoursExporter interface {
	Hours(ctx context.Context, format string, filter models.HoursFilter) (*service.ExportResult, error)
}

// HoursHandler exposes hour progress and its exports.
type HoursHandler struct {
	hours    hoursService
	exporter hoursExporter
}

// NewHoursHandler constructs an HoursHandler.
func NewHoursHandler(hours hoursService, exporter hoursExporter) *HoursHandler {
	return &HoursHandler{hours: hours, exporter: exporter}
}

func hoursFilter(c *gin.Context) models.HoursFilter {
	return models.HoursFilter{
		Search:  c.Query("search"),
		License: models.LicenseType(strings.TrimSpace(c.Query("license"))),
		SortBy:  models.HoursSort(strings.TrimSpace(c.Query("sort"))),
	}
}

// List godoc
// @Summary Hour progress per student
// @Tags Hours
// @Produce json
// @Param search query string false "Search over name and last name"
// @Param license query string false "A1, A2, B1, B2, C1 or all"
// @Param sort query string false "progress (default), name or license"
// @Success 200 {object} response.Envelope
// @Router /hours [get]
func (h *HoursHandler) List(c *gin.Context) {
	rows, err := h.hours.Hours(c.Request.Context(), hoursFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, rows)
}

// Overview godoc
// @Summary Progress bands across the roster
// @Tags Hours
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /hours/overview [get]
func (h *HoursHandler) Overview(c *gin.Context) {
	overview, err := h.hours.HoursOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview)
}

// Export godoc
// @Summary Download hour progress
// @Tags Hours
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /hours/export [get]
func (h *HoursHandler) Export(c *gin.Context) {
	format := strings.ToLower(strings.TrimSpace(c.Query("format")))
	result, err := h.exporter.Hours(c.Request.Context(), format, hoursFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Body)
}
