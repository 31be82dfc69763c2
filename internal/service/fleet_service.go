package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/drivingschool-api/internal/dto"
	"github.com/noah-isme/drivingschool-api/internal/models"
	appErrors "github.com/noah-isme/drivingschool-api/pkg/errors"
)

type fleetReader interface {
	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	Vehicle(ctx context.Context, id string) (*models.Vehicle, error)
	Instructors(ctx context.Context) ([]models.Instructor, error)
	Schedule(ctx context.Context) ([]models.Schedule, error)
}

// FleetService serves vehicles, their upcoming bookings and the instructor list.
type FleetService struct {
	data   fleetReader
	now    Clock
	logger *zap.Logger
}

// NewFleetService constructs the fleet service.
func NewFleetService(data fleetReader, now Clock, logger *zap.Logger) *FleetService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FleetService{data: data, now: now, logger: logger}
}

// List returns vehicles matching a search over brand, model and plate, and a status.
func (s *FleetService) List(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error) {
	if filter.Status == filterAll {
		filter.Status = ""
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, appErrors.InvalidArgument("unknown vehicle status %q", filter.Status)
	}
	vehicles, err := s.data.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	search := normalise(filter.Search)
	result := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if search != "" && !containsAny(search, v.Brand, v.Model, v.Plate) {
			continue
		}
		result = append(result, v)
	}
	return result, nil
}

// Stats counts the fleet per status.
func (s *FleetService) Stats(ctx context.Context) (dto.FleetStats, error) {
	vehicles, err := s.data.Vehicles(ctx)
	if err != nil {
		return dto.FleetStats{}, err
	}
	stats := dto.FleetStats{Total: len(vehicles)}
	for _, v := range vehicles {
		switch v.Status {
		case models.VehicleStatusAvailable:
			stats.Available++
		case models.VehicleStatusInUse:
			stats.InUse++
		case models.VehicleStatusMaintenance:
			stats.Maintenance++
		case models.VehicleStatusOutOfService:
			stats.OutOfService++
		}
	}
	return stats, nil
}

// Upcoming returns the scheduled classes from today onwards that reference the vehicle.
func (s *FleetService) Upcoming(ctx context.Context, vehicleID string) ([]models.Schedule, error) {
	vehicle, err := s.data.Vehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	entries, err := s.data.Schedule(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now.today()
	upcoming := make([]models.Schedule, 0)
	for _, entry := range entries {
		if entry.Status != models.ScheduleStatusScheduled || entry.Date < today {
			continue
		}
		if vehicle.ReferencedBy(entry) {
			upcoming = append(upcoming, entry)
		}
	}
	return upcoming, nil
}

// Instructors returns the instructor reference list, optionally only those
// who can teach the given licence.
func (s *FleetService) Instructors(ctx context.Context, license models.LicenseType) ([]models.Instructor, error) {
	if license == filterAll {
		license = ""
	}
	if license != "" && !license.Valid() {
		return nil, appErrors.InvalidArgument("unknown license type %q", license)
	}
	instructors, err := s.data.Instructors(ctx)
	if err != nil {
		return nil, err
	}
	if license == "" {
		return instructors, nil
	}
	result := make([]models.Instructor, 0, len(instructors))
	for _, i := range instructors {
		if i.CanTeach(license) {
			result = append(result, i)
		}
	}
	return result, nil
}
