package tracking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"delivery-matching/internal/domain"
	"delivery-matching/internal/service/tracking"
	testlog "delivery-matching/internal/testutil"
)

type advanceCall struct {
	orderID int64
	to      domain.DeliveryStatus
	from    []domain.DeliveryStatus
}

type stubStore struct {
	calls []advanceCall
	n     int64
	err   error
}

func (s *stubStore) AdvanceDeliveryStatus(_ context.Context, orderID int64, to domain.DeliveryStatus, from []domain.DeliveryStatus) (int64, error) {
	s.calls = append(s.calls, advanceCall{orderID: orderID, to: to, from: from})
	return s.n, s.err
}

func event(status domain.DeliveryStatus) domain.DeliveryStatusEvent {
	return domain.DeliveryStatusEvent{OrderID: 42, Status: status, OccurredAt: time.Now()}
}

func TestHandle_AdvancesFromPredecessors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status domain.DeliveryStatus
		from   []domain.DeliveryStatus
	}{
		{domain.DeliveryPickedUp, []domain.DeliveryStatus{domain.DeliveryAssigned}},
		{domain.DeliveryOutForDelivery, []domain.DeliveryStatus{domain.DeliveryPickedUp}},
		{domain.DeliveryDelivered, []domain.DeliveryStatus{domain.DeliveryOutForDelivery}},
		{domain.DeliveryFailed, []domain.DeliveryStatus{domain.DeliveryAssigned, domain.DeliveryPickedUp, domain.DeliveryOutForDelivery}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.status), func(t *testing.T) {
			t.Parallel()
			store := &stubStore{n: 1}
			rec := testlog.New()
			p := tracking.NewProcessor(store, rec.Logger())

			require.NoError(t, p.Handle(context.Background(), event(tc.status)))
			require.Len(t, store.calls, 1)
			require.Equal(t, int64(42), store.calls[0].orderID)
			require.Equal(t, tc.status, store.calls[0].to)
			require.ElementsMatch(t, tc.from, store.calls[0].from)
			require.Equal(t, "info", rec.Entries()[0].Level)
		})
	}
}

func TestHandle_SkipsStatusesItDoesNotDrive(t *testing.T) {
	t.Parallel()

	for _, s := range []domain.DeliveryStatus{domain.DeliveryPending, domain.DeliveryAssigned, "teleported"} {
		store := &stubStore{n: 1}
		p := tracking.NewProcessor(store, testlog.New().Logger())

		require.NoError(t, p.Handle(context.Background(), event(s)))
		require.Empty(t, store.calls, string(s))
	}
}

func TestHandle_StaleEventIsAcknowledged(t *testing.T) {
	t.Parallel()

	store := &stubStore{n: 0}
	rec := testlog.New()
	p := tracking.NewProcessor(store, rec.Logger())

	require.NoError(t, p.Handle(context.Background(), event(domain.DeliveryDelivered)))
	entries := rec.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "warn", entries[0].Level)
}

func TestHandle_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	p := tracking.NewProcessor(&stubStore{err: boom}, testlog.New().Logger())

	require.ErrorIs(t, p.Handle(context.Background(), event(domain.DeliveryPickedUp)), boom)
}
