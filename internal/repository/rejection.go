package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-matching/internal/apperr"
)

// RejectionRepo stores per-driver order rejections.
type RejectionRepo struct{ db *pgxpool.Pool }

// NewRejectionRepo creates a new RejectionRepo.
func NewRejectionRepo(db *pgxpool.Pool) *RejectionRepo { return &RejectionRepo{db: db} }

// InsertIgnoreDuplicate records that the driver rejected the order.
// It reports whether a new row was written; a repeated rejection is not an error.
func (r *RejectionRepo) InsertIgnoreDuplicate(ctx context.Context, driverID, orderID int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        INSERT INTO order_rejections (driver_id, order_id)
        VALUES ($1, $2)
        ON CONFLICT (driver_id, order_id) DO NOTHING
    `, driverID, orderID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, apperr.ErrOrderNotFound
		}
		return false, fmt.Errorf("reject order %d by driver %d: %w", orderID, driverID, err)
	}
	return ct.RowsAffected() > 0, nil
}
