package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meetyhq/MeetyBooker/internal/domain"
	"github.com/meetyhq/MeetyBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_NotifiesBacklog(t *testing.T) {
	pending := mocks.NewMockPendingLister(t)
	notifier := mocks.NewMockBacklogNotifier(t)
	log := newTestLogger(t)

	s := New(pending, notifier, 50*time.Millisecond, log)

	backlog := []*domain.Meeting{
		{MeetingID: "m1", Status: domain.StatusPending},
		{MeetingID: "m2", Status: domain.StatusPending},
	}
	pending.EXPECT().ListPending(mock.Anything).Return(backlog, nil)
	notifier.EXPECT().NotifyPendingBacklog(mock.Anything, 2).Return()

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(pending.Calls), 1)
}

func TestScheduler_Tick_EmptyBacklogSkipsNotify(t *testing.T) {
	pending := mocks.NewMockPendingLister(t)
	notifier := mocks.NewMockBacklogNotifier(t)
	log := newTestLogger(t)

	s := New(pending, notifier, 50*time.Millisecond, log)

	pending.EXPECT().ListPending(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	notifier.AssertNotCalled(t, "NotifyPendingBacklog")
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	pending := mocks.NewMockPendingLister(t)
	notifier := mocks.NewMockBacklogNotifier(t)
	log := newTestLogger(t)

	s := New(pending, notifier, 50*time.Millisecond, log)

	pending.EXPECT().ListPending(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(pending.Calls), 1)
	notifier.AssertNotCalled(t, "NotifyPendingBacklog")
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	pending := mocks.NewMockPendingLister(t)
	notifier := mocks.NewMockBacklogNotifier(t)
	log := newTestLogger(t)

	s := New(pending, notifier, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	pending := mocks.NewMockPendingLister(t)
	notifier := mocks.NewMockBacklogNotifier(t)
	log := newTestLogger(t)

	s := New(pending, notifier, 30*time.Millisecond, log)

	pending.EXPECT().ListPending(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(pending.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
