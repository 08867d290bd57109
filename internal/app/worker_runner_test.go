package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"delivery-matching/internal/apperr"
	"delivery-matching/internal/domain"
	"delivery-matching/internal/logx"
	"delivery-matching/internal/transport/kafka"
)

func TestWorkerRunner_MustRun_NoPanicOnNil(t *testing.T) {
	r := &WorkerRunner{runFn: func(*dig.Container) error { return nil }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_NoPanicOnCanceled(t *testing.T) {
	r := &WorkerRunner{runFn: func(*dig.Container) error { return context.Canceled }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_PanicsOnOtherError(t *testing.T) {
	sentinel := errors.New("boom")
	r := &WorkerRunner{runFn: func(*dig.Container) error { return sentinel }}
	require.Panics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRun_ReturnsError_WhenConsumerNil(t *testing.T) {
	err := workerRun(context.Background(), nil, logx.Nop(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "kafka consumer is nil")
}

type spyStatusHandler struct {
	called int
	ctx    context.Context
	event  domain.DeliveryStatusEvent
	err    error
}

func (s *spyStatusHandler) Handle(ctx context.Context, e domain.DeliveryStatusEvent) error {
	s.called++
	s.ctx = ctx
	s.event = e
	return s.err
}

func TestMakeStatusHandler_PassesEventWithDeadline(t *testing.T) {
	spy := &spyStatusHandler{}
	h := makeStatusHandler(spy, 2*time.Second)

	ev := domain.DeliveryStatusEvent{OrderID: 7, Status: domain.DeliveryPickedUp}
	require.NoError(t, h(context.Background(), ev))

	require.Equal(t, 1, spy.called)
	require.Equal(t, ev, spy.event)

	deadline, ok := spy.ctx.Deadline()
	require.True(t, ok, "expected context with deadline")
	remaining := time.Until(deadline)
	require.Greater(t, remaining, 1*time.Second)
	require.Less(t, remaining, 3*time.Second)
}

func TestMakeStatusHandler_InvalidIsPermanent(t *testing.T) {
	spy := &spyStatusHandler{err: fmt.Errorf("bad status: %w", apperr.ErrInvalid)}
	h := makeStatusHandler(spy, time.Second)

	err := h(context.Background(), domain.DeliveryStatusEvent{OrderID: 1})

	require.True(t, kafka.IsPermanent(err))
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestMakeStatusHandler_OtherErrorsStayTransient(t *testing.T) {
	sentinel := errors.New("db down")
	spy := &spyStatusHandler{err: sentinel}
	h := makeStatusHandler(spy, time.Second)

	err := h(context.Background(), domain.DeliveryStatusEvent{OrderID: 1})

	require.False(t, kafka.IsPermanent(err))
	require.ErrorIs(t, err, sentinel)
}
