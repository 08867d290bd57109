package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-matching/internal/domain"
	"delivery-matching/internal/geo"
)

// DriverRepo represents driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

// GetByUserID returns the driver profile linked to an authenticated user, or nil when there is none.
func (r *DriverRepo) GetByUserID(ctx context.Context, userID string) (*domain.Driver, error) {
	var (
		d        domain.Driver
		lat, lng *float64
		radius   *float64
	)
	err := r.db.QueryRow(ctx, `
        SELECT id, user_id, latitude, longitude, status, is_active, max_radius_km
        FROM drivers
        WHERE user_id = $1
    `, userID).Scan(&d.ID, &d.UserID, &lat, &lng, &d.Status, &d.IsActive, &radius)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver by user %q: %w", userID, err)
	}
	d.Location = point(lat, lng)
	if radius != nil {
		d.MaxRadiusKm = *radius
	}
	return &d, nil
}

func point(lat, lng *float64) *geo.Point {
	if lat == nil || lng == nil {
		return nil
	}
	return &geo.Point{Lat: *lat, Lng: *lng}
}
