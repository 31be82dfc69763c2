package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/drivingschool-api/internal/models"
)

// ReferenceRepository exposes the read-only instructor and fleet lists.
type ReferenceRepository struct {
	db *MemoryDB
}

// NewReferenceRepository constructs a ReferenceRepository.
func NewReferenceRepository(db *MemoryDB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// Instructors returns every instructor.
func (r *ReferenceRepository) Instructors(ctx context.Context) ([]models.Instructor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.db.instructors.snapshot(), nil
}

// Vehicles returns the whole fleet.
func (r *ReferenceRepository) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.db.vehicles.snapshot(), nil
}

// VehicleByID returns a vehicle or ErrNoRecord.
func (r *ReferenceRepository) VehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vehicle, ok := r.db.vehicles.get(id)
	if !ok {
		return nil, fmt.Errorf("find vehicle %s: %w", id, ErrNoRecord)
	}
	return &vehicle, nil
}
