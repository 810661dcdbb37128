package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meetyhq/MeetyBooker/internal/domain"
	"github.com/meetyhq/MeetyBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func validInput() domain.CreateMeetingInput {
	return domain.CreateMeetingInput{
		AttendeeName:    "Alice",
		Email:           "alice@example.com",
		Date:            "2026-09-01",
		StartTime:       "10:00",
		DurationMinutes: 60,
	}
}

func TestMeetingService_CreateMeeting_Success(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	notifier := mocks.NewMockMeetingNotifier(t)
	log := newTestLogger(t)

	svc := NewMeetingService(store, NewConflictDetector(store), notifier, log)

	notified := make(chan struct{})
	store.EXPECT().QueryByStatusAndDate(mock.Anything, domain.StatusApproved, "2026-09-01").Return(nil, nil)
	store.EXPECT().Put(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyMeetingRequested(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, m *domain.Meeting) { close(notified) }).Return()

	meeting, confirmation, err := svc.CreateMeeting(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, meeting.Status)
	assert.False(t, meeting.IsConflict)
	assert.Equal(t, "11:00", meeting.EndTime)
	assert.NotEmpty(t, meeting.MeetingID)
	assert.Equal(t,
		"Thank you Alice. Your meeting request for 2026-09-01 from 10:00 to 11:00 has been created. Have a nice day!",
		confirmation,
	)

	waitNotified(t, notified)
}

// waitNotified blocks until the fire-and-forget notifier goroutine has run,
// so mock expectations cannot race test teardown.
func waitNotified(t *testing.T, notified <-chan struct{}) {
	t.Helper()
	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestMeetingService_CreateMeeting_ConflictStaysPending(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	notifier := mocks.NewMockMeetingNotifier(t)
	log := newTestLogger(t)

	svc := NewMeetingService(store, NewConflictDetector(store), notifier, log)

	approved := []*domain.Meeting{
		{MeetingID: "m1", StartTime: "10:30", EndTime: "11:30", Status: domain.StatusApproved},
	}
	notified := make(chan struct{})
	store.EXPECT().QueryByStatusAndDate(mock.Anything, domain.StatusApproved, "2026-09-01").Return(approved, nil)
	store.EXPECT().Put(mock.Anything, mock.Anything).Run(func(ctx context.Context, m *domain.Meeting) {
		assert.True(t, m.IsConflict)
		assert.Equal(t, domain.StatusPending, m.Status)
	}).Return(nil)
	notifier.EXPECT().NotifyMeetingRequested(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, m *domain.Meeting) { close(notified) }).Return()

	meeting, _, err := svc.CreateMeeting(context.Background(), validInput())

	require.NoError(t, err)
	assert.True(t, meeting.IsConflict)
	assert.Equal(t, domain.StatusPending, meeting.Status)

	waitNotified(t, notified)
}

func TestMeetingService_CreateMeeting_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CreateMeetingInput)
	}{
		{"empty name", func(in *domain.CreateMeetingInput) { in.AttendeeName = "  " }},
		{"empty email", func(in *domain.CreateMeetingInput) { in.Email = "" }},
		{"malformed date", func(in *domain.CreateMeetingInput) { in.Date = "01/09/2026" }},
		{"malformed time", func(in *domain.CreateMeetingInput) { in.StartTime = "10am" }},
		{"zero duration", func(in *domain.CreateMeetingInput) { in.DurationMinutes = 0 }},
		{"negative duration", func(in *domain.CreateMeetingInput) { in.DurationMinutes = -30 }},
		{"crosses midnight", func(in *domain.CreateMeetingInput) {
			in.StartTime = "23:30"
			in.DurationMinutes = 60
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockMeetingStore(t)
			notifier := mocks.NewMockMeetingNotifier(t)
			log := newTestLogger(t)

			svc := NewMeetingService(store, NewConflictDetector(store), notifier, log)

			input := validInput()
			tc.mutate(&input)

			_, _, err := svc.CreateMeeting(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			store.AssertNotCalled(t, "QueryByStatusAndDate")
			store.AssertNotCalled(t, "Put")
		})
	}
}

func TestMeetingService_CreateMeeting_ConflictCheckErrorAborts(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	notifier := mocks.NewMockMeetingNotifier(t)
	log := newTestLogger(t)

	svc := NewMeetingService(store, NewConflictDetector(store), notifier, log)

	store.EXPECT().QueryByStatusAndDate(mock.Anything, domain.StatusApproved, "2026-09-01").
		Return(nil, errors.New("store unavailable"))

	_, _, err := svc.CreateMeeting(context.Background(), validInput())

	require.Error(t, err)
	store.AssertNotCalled(t, "Put")
}

func TestMeetingService_CreateMeeting_PutError(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	notifier := mocks.NewMockMeetingNotifier(t)
	log := newTestLogger(t)

	svc := NewMeetingService(store, NewConflictDetector(store), notifier, log)

	store.EXPECT().QueryByStatusAndDate(mock.Anything, domain.StatusApproved, "2026-09-01").Return(nil, nil)
	store.EXPECT().Put(mock.Anything, mock.Anything).Return(errors.New("write failed"))

	_, _, err := svc.CreateMeeting(context.Background(), validInput())

	require.Error(t, err)
}

func TestMeetingService_ChangeStatus_Approve(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	notifier := mocks.NewMockMeetingNotifier(t)
	log := newTestLogger(t)

	svc := NewMeetingService(store, NewConflictDetector(store), notifier, log)

	updated := &domain.Meeting{MeetingID: "m1", Status: domain.StatusApproved}
	notified := make(chan struct{})
	store.EXPECT().UpdateStatus(mock.Anything, "m1", domain.StatusApproved).Return(updated, nil)
	notifier.EXPECT().NotifyStatusChanged(mock.Anything, updated).
		Run(func(ctx context.Context, m *domain.Meeting) { close(notified) }).Return()

	meeting, err := svc.ChangeStatus(context.Background(), "m1", domain.StatusApproved)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, meeting.Status)

	waitNotified(t, notified)
}

func TestMeetingService_ChangeStatus_InvalidStatus(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	notifier := mocks.NewMockMeetingNotifier(t)
	log := newTestLogger(t)

	svc := NewMeetingService(store, NewConflictDetector(store), notifier, log)

	_, err := svc.ChangeStatus(context.Background(), "m1", domain.StatusPending)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	store.AssertNotCalled(t, "UpdateStatus")
}

func TestMeetingService_ChangeStatus_NotFound(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	notifier := mocks.NewMockMeetingNotifier(t)
	log := newTestLogger(t)

	svc := NewMeetingService(store, NewConflictDetector(store), notifier, log)

	store.EXPECT().UpdateStatus(mock.Anything, "missing", domain.StatusRejected).
		Return(nil, domain.ErrMeetingNotFound)

	_, err := svc.ChangeStatus(context.Background(), "missing", domain.StatusRejected)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMeetingNotFound)
}

func TestMeetingService_ChangeStatus_NotPending(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	notifier := mocks.NewMockMeetingNotifier(t)
	log := newTestLogger(t)

	svc := NewMeetingService(store, NewConflictDetector(store), notifier, log)

	store.EXPECT().UpdateStatus(mock.Anything, "m1", domain.StatusRejected).
		Return(nil, domain.ErrMeetingNotPending)

	_, err := svc.ChangeStatus(context.Background(), "m1", domain.StatusRejected)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMeetingNotPending)
}
