package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-matching/internal/domain"
	"delivery-matching/internal/geo"
)

const orderColumns = `o.id, o.number, o.customer_id, o.status, o.delivery_status, o.assigned_driver_id,
            o.latitude, o.longitude, o.address_line1, o.address_line2, o.city, o.postal_code,
            o.total, o.created_at`

// OrderRepo represents order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

// Get returns an order by id, or nil when it does not exist.
func (r *OrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

// ListOpenForDriver returns unassigned pending orders whose destination falls inside box
// and that the driver has not rejected, newest first.
func (r *OrderRepo) ListOpenForDriver(ctx context.Context, driverID int64, box geo.Box) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+orderColumns+`
        FROM orders o
        WHERE o.assigned_driver_id IS NULL
          AND o.delivery_status = 'pending'
          AND o.status NOT IN ('cancelled', 'delivered')
          AND o.latitude IS NOT NULL
          AND o.longitude IS NOT NULL
          AND o.latitude BETWEEN $2 AND $3
          AND o.longitude BETWEEN $4 AND $5
          AND NOT EXISTS (
              SELECT 1 FROM order_rejections r
              WHERE r.order_id = o.id AND r.driver_id = $1
          )
        ORDER BY o.created_at DESC, o.id
    `, driverID, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, fmt.Errorf("list open orders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan open order: %w", err)
		}
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list open orders: %w", err)
	}
	return out, nil
}

// ItemsByOrderIDs returns line items grouped by order id.
func (r *OrderRepo) ItemsByOrderIDs(ctx context.Context, ids []int64) (map[int64][]domain.OrderItem, error) {
	out := make(map[int64][]domain.OrderItem, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `
        SELECT order_id, product_name, variant_name, quantity, unit_price
        FROM order_items
        WHERE order_id = ANY($1)
        ORDER BY order_id, id
    `, ids)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.OrderID, &it.ProductName, &it.VariantName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	return out, nil
}

// AssignIfUnassigned assigns the order to the driver only while it is still open.
// The returned row count is 1 for the single winning caller and 0 for everyone else.
func (r *OrderRepo) AssignIfUnassigned(ctx context.Context, orderID, driverID int64) (int64, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET assigned_driver_id = $2,
            delivery_status    = 'assigned',
            updated_at         = now()
        WHERE id = $1
          AND assigned_driver_id IS NULL
          AND delivery_status = 'pending'
          AND status NOT IN ('cancelled', 'delivered')
    `, orderID, driverID)
	if err != nil {
		return 0, fmt.Errorf("assign order %d: %w", orderID, err)
	}
	return ct.RowsAffected(), nil
}

// AdvanceDeliveryStatus moves an assigned order to status `to` if its current status is one of `from`.
func (r *OrderRepo) AdvanceDeliveryStatus(ctx context.Context, orderID int64, to domain.DeliveryStatus, from []domain.DeliveryStatus) (int64, error) {
	if len(from) == 0 {
		return 0, nil
	}
	prev := make([]string, len(from))
	for i, s := range from {
		prev[i] = string(s)
	}
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET delivery_status = $2,
            updated_at      = now()
        WHERE id = $1
          AND assigned_driver_id IS NOT NULL
          AND delivery_status = ANY($3)
    `, orderID, string(to), prev)
	if err != nil {
		return 0, fmt.Errorf("advance order %d to %s: %w", orderID, to, err)
	}
	return ct.RowsAffected(), nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o        domain.Order
		lat, lng *float64
	)
	err := row.Scan(
		&o.ID, &o.Number, &o.CustomerID, &o.Status, &o.DeliveryStatus, &o.AssignedDriverID,
		&lat, &lng, &o.Address.Line1, &o.Address.Line2, &o.Address.City, &o.Address.PostalCode,
		&o.Total, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Destination = point(lat, lng)
	return &o, nil
}
