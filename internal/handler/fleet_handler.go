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

type fleetService interface {
	List(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error)
	Stats(ctx context.Context) (dto.FleetStats, error)
	Upcoming(ctx context.Context, vehicleID string) ([]models.Schedule, error)
	Instructors(ctx context.Context, license models.LicenseType) ([]models.Instructor, error)
}

// FleetHandler exposes vehicles and instructors.
type FleetHandler struct {
	service fleetService
}

// NewFleetHandler constructs a FleetHandler.
func NewFleetHandler(service fleetService) *FleetHandler {
	return &FleetHandler{service: service}
}

// Vehicles godoc
// @Summary List vehicles
// @Tags Fleet
// @Produce json
// @Param search query string false "Search over brand, model and plate"
// @Param status query string false "available, in_use, maintenance, out_of_service or all"
// @Success 200 {object} response.Envelope
// @Router /vehicles [get]
func (h *FleetHandler) Vehicles(c *gin.Context) {
	vehicles, err := h.service.List(c.Request.Context(), models.VehicleFilter{
		Search: c.Query("search"),
		Status: models.VehicleStatus(strings.TrimSpace(c.Query("status"))),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, vehicles)
}

// Stats godoc
// @Summary Fleet counts per status
// @Tags Fleet
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /vehicles/stats [get]
func (h *FleetHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// Upcoming godoc
// @Summary Upcoming classes booked on a vehicle
// @Tags Fleet
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /vehicles/{id}/upcoming [get]
func (h *FleetHandler) Upcoming(c *gin.Context) {
	entries, err := h.service.Upcoming(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, entries)
}

// Instructors godoc
// @Summary List instructors
// @Tags Fleet
// @Produce json
// @Param license query string false "Only instructors teaching this licence"
// @Success 200 {object} response.Envelope
// @Router /instructors [get]
func (h *FleetHandler) Instructors(c *gin.Context) {
	instructors, err := h.service.Instructors(c.Request.Context(), models.LicenseType(strings.TrimSpace(c.Query("license"))))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, instructors)
}
