//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"delivery-matching/internal/apperr"
	"delivery-matching/internal/domain"
	"delivery-matching/internal/geo"
	"delivery-matching/internal/repository"
)

var (
	sanFrancisco = geo.Point{Lat: 37.7749, Lng: -122.4194}
	oakland      = geo.Point{Lat: 37.8044, Lng: -122.2712}
)

type MatchingRepositorySuite struct {
	suite.Suite
	pool       *pgxpool.Pool
	drivers    *repository.DriverRepo
	orders     *repository.OrderRepo
	rejections *repository.RejectionRepo
}

func TestMatchingRepositorySuite(t *testing.T) {
	suite.Run(t, new(MatchingRepositorySuite))
}

func (s *MatchingRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.drivers = repository.NewDriverRepo(tcPool)
	s.orders = repository.NewOrderRepo(tcPool)
	s.rejections = repository.NewRejectionRepo(tcPool)
}

func (s *MatchingRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(),
		`TRUNCATE order_rejections, order_items, orders, drivers RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *MatchingRepositorySuite) insertDriver(userID string, loc *geo.Point, status domain.DriverStatus, active bool) int64 {
	var lat, lng *float64
	if loc != nil {
		lat, lng = &loc.Lat, &loc.Lng
	}
	var id int64
	err := s.pool.QueryRow(context.Background(), `
        INSERT INTO drivers (user_id, latitude, longitude, status, is_active, max_radius_km)
        VALUES ($1, $2, $3, $4, $5, 25)
        RETURNING id
    `, userID, lat, lng, status, active).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *MatchingRepositorySuite) insertOrder(number string, dest geo.Point, createdAt time.Time) int64 {
	var id int64
	err := s.pool.QueryRow(context.Background(), `
        INSERT INTO orders (number, customer_id, status, latitude, longitude, address_line1, city, total, created_at)
        VALUES ($1, 1, 'confirmed', $2, $3, '1 Market St', 'San Francisco', 2599, $4)
        RETURNING id
    `, number, dest.Lat, dest.Lng, createdAt).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *MatchingRepositorySuite) TestGetByUserID() {
	ctx := context.Background()
	id := s.insertDriver("user-1", &sanFrancisco, domain.DriverAvailable, true)
	s.insertDriver("user-2", nil, domain.DriverOffline, false)

	got, err := s.drivers.GetByUserID(ctx, "user-1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(id, got.ID)
	s.Equal(domain.DriverAvailable, got.Status)
	s.True(got.IsActive)
	s.Equal(25.0, got.MaxRadiusKm)
	s.Require().NotNil(got.Location)
	s.InDelta(sanFrancisco.Lat, got.Location.Lat, 1e-9)

	noLoc, err := s.drivers.GetByUserID(ctx, "user-2")
	s.Require().NoError(err)
	s.Require().NotNil(noLoc)
	s.Nil(noLoc.Location)
	s.False(noLoc.IsActive)

	missing, err := s.drivers.GetByUserID(ctx, "nobody")
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *MatchingRepositorySuite) TestListOpenForDriver_FiltersAndOrders() {
	ctx := context.Background()
	driverID := s.insertDriver("user-1", &sanFrancisco, domain.DriverAvailable, true)
	otherID := s.insertDriver("user-2", &oakland, domain.DriverAvailable, true)

	now := time.Now().UTC()
	older := s.insertOrder("A-1", geo.Point{Lat: 37.7849, Lng: -122.4094}, now.Add(-time.Hour))
	newer := s.insertOrder("A-2", geo.Point{Lat: 37.7849, Lng: -122.4094}, now)
	far := s.insertOrder("A-3", geo.Point{Lat: 40.7128, Lng: -74.0060}, now)
	taken := s.insertOrder("A-4", sanFrancisco, now)
	cancelled := s.insertOrder("A-5", sanFrancisco, now)
	rejected := s.insertOrder("A-6", sanFrancisco, now)

	_, err := s.orders.AssignIfUnassigned(ctx, taken, otherID)
	s.Require().NoError(err)
	_, err = s.pool.Exec(ctx, `UPDATE orders SET status = 'cancelled' WHERE id = $1`, cancelled)
	s.Require().NoError(err)
	_, err = s.rejections.InsertIgnoreDuplicate(ctx, driverID, rejected)
	s.Require().NoError(err)

	got, err := s.orders.ListOpenForDriver(ctx, driverID, geo.BoundingBox(sanFrancisco, 25))
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(newer, got[0].ID)
	s.Equal(older, got[1].ID)
	s.Equal("1 Market St", got[0].Address.Line1)
	s.Equal(int64(2599), got[0].Total)

	// the rejection is scoped to the driver that made it
	forOther, err := s.orders.ListOpenForDriver(ctx, otherID, geo.BoundingBox(sanFrancisco, 25))
	s.Require().NoError(err)
	ids := make([]int64, 0, len(forOther))
	for _, o := range forOther {
		ids = append(ids, o.ID)
	}
	s.Contains(ids, rejected)
	s.NotContains(ids, far)
	s.NotContains(ids, taken)
}

func (s *MatchingRepositorySuite) TestItemsByOrderIDs() {
	ctx := context.Background()
	o1 := s.insertOrder("B-1", sanFrancisco, time.Now())
	o2 := s.insertOrder("B-2", sanFrancisco, time.Now())
	_, err := s.pool.Exec(ctx, `
        INSERT INTO order_items (order_id, product_name, variant_name, quantity, unit_price)
        VALUES ($1, 'Coffee', 'Large', 2, 450), ($1, 'Bagel', '', 1, 300), ($2, 'Tea', 'Small', 1, 250)
    `, o1, o2)
	s.Require().NoError(err)

	got, err := s.orders.ItemsByOrderIDs(ctx, []int64{o1, o2, 999})
	s.Require().NoError(err)
	s.Len(got[o1], 2)
	s.Equal("Coffee", got[o1][0].ProductName)
	s.Equal(2, got[o1][0].Quantity)
	s.Len(got[o2], 1)
	s.Empty(got[999])

	empty, err := s.orders.ItemsByOrderIDs(ctx, nil)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *MatchingRepositorySuite) TestAssignIfUnassigned_SingleWinner() {
	ctx := context.Background()
	orderID := s.insertOrder("C-1", sanFrancisco, time.Now())

	const drivers = 10
	ids := make([]int64, drivers)
	for i := range ids {
		ids[i] = s.insertDriver(fmt.Sprintf("user-%d", i), &sanFrancisco, domain.DriverAvailable, true)
	}

	var (
		wg     sync.WaitGroup
		wins   int64
		winner int64
	)
	start := make(chan struct{})
	for _, id := range ids {
		wg.Add(1)
		go func(driverID int64) {
			defer wg.Done()
			<-start
			n, err := s.orders.AssignIfUnassigned(ctx, orderID, driverID)
			s.NoError(err)
			if n == 1 {
				atomic.AddInt64(&wins, 1)
				atomic.StoreInt64(&winner, driverID)
			}
		}(id)
	}
	close(start)
	wg.Wait()

	s.Equal(int64(1), wins)

	got, err := s.orders.Get(ctx, orderID)
	s.Require().NoError(err)
	s.Require().NotNil(got.AssignedDriverID)
	s.Equal(winner, *got.AssignedDriverID)
	s.Equal(domain.DeliveryAssigned, got.DeliveryStatus)
}

func (s *MatchingRepositorySuite) TestAssignIfUnassigned_ClosedOrder() {
	ctx := context.Background()
	driverID := s.insertDriver("user-1", &sanFrancisco, domain.DriverAvailable, true)
	orderID := s.insertOrder("C-2", sanFrancisco, time.Now())
	_, err := s.pool.Exec(ctx, `UPDATE orders SET status = 'delivered' WHERE id = $1`, orderID)
	s.Require().NoError(err)

	n, err := s.orders.AssignIfUnassigned(ctx, orderID, driverID)
	s.Require().NoError(err)
	s.Zero(n)

	n, err = s.orders.AssignIfUnassigned(ctx, 999, driverID)
	s.Require().NoError(err)
	s.Zero(n)

	missing, err := s.orders.Get(ctx, 999)
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *MatchingRepositorySuite) TestRejection_Idempotent() {
	ctx := context.Background()
	driverID := s.insertDriver("user-1", &sanFrancisco, domain.DriverAvailable, true)
	orderID := s.insertOrder("D-1", sanFrancisco, time.Now())

	created, err := s.rejections.InsertIgnoreDuplicate(ctx, driverID, orderID)
	s.Require().NoError(err)
	s.True(created)

	created, err = s.rejections.InsertIgnoreDuplicate(ctx, driverID, orderID)
	s.Require().NoError(err)
	s.False(created)

	var n int
	s.Require().NoError(s.pool.QueryRow(ctx,
		`SELECT count(*) FROM order_rejections WHERE driver_id = $1 AND order_id = $2`,
		driverID, orderID,
	).Scan(&n))
	s.Equal(1, n)

	// rejection leaves the order itself untouched
	got, err := s.orders.Get(ctx, orderID)
	s.Require().NoError(err)
	s.Nil(got.AssignedDriverID)
	s.Equal(domain.DeliveryPending, got.DeliveryStatus)
}

func (s *MatchingRepositorySuite) TestRejection_UnknownOrder() {
	ctx := context.Background()
	driverID := s.insertDriver("user-1", &sanFrancisco, domain.DriverAvailable, true)

	_, err := s.rejections.InsertIgnoreDuplicate(ctx, driverID, 4242)
	s.ErrorIs(err, apperr.ErrOrderNotFound)
}

func (s *MatchingRepositorySuite) TestAdvanceDeliveryStatus() {
	ctx := context.Background()
	driverID := s.insertDriver("user-1", &sanFrancisco, domain.DriverAvailable, true)
	orderID := s.insertOrder("E-1", sanFrancisco, time.Now())

	// not assigned yet: nothing moves
	n, err := s.orders.AdvanceDeliveryStatus(ctx, orderID, domain.DeliveryPickedUp, domain.DeliveryPickedUp.Predecessors())
	s.Require().NoError(err)
	s.Zero(n)

	_, err = s.orders.AssignIfUnassigned(ctx, orderID, driverID)
	s.Require().NoError(err)

	n, err = s.orders.AdvanceDeliveryStatus(ctx, orderID, domain.DeliveryPickedUp, domain.DeliveryPickedUp.Predecessors())
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	// stale replay of the same event
	n, err = s.orders.AdvanceDeliveryStatus(ctx, orderID, domain.DeliveryPickedUp, domain.DeliveryPickedUp.Predecessors())
	s.Require().NoError(err)
	s.Zero(n)

	got, err := s.orders.Get(ctx, orderID)
	s.Require().NoError(err)
	s.Equal(domain.DeliveryPickedUp, got.DeliveryStatus)
}
