package service

import (
	"context"
	"errors"
	"testing"

	"github.com/meetyhq/MeetyBooker/internal/domain"
	"github.com/meetyhq/MeetyBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConflictDetector_EmptyDay(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	detector := NewConflictDetector(store)

	store.EXPECT().QueryByStatusAndDate(mock.Anything, domain.StatusApproved, "2026-09-01").Return(nil, nil)

	conflict, err := detector.HasConflict(context.Background(), "2026-09-01", "10:00", "11:00")

	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestConflictDetector_Overlap(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	detector := NewConflictDetector(store)

	approved := []*domain.Meeting{
		{MeetingID: "m1", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusApproved},
		{MeetingID: "m2", StartTime: "10:30", EndTime: "11:30", Status: domain.StatusApproved},
	}
	store.EXPECT().QueryByStatusAndDate(mock.Anything, domain.StatusApproved, "2026-09-01").Return(approved, nil)

	conflict, err := detector.HasConflict(context.Background(), "2026-09-01", "10:00", "11:00")

	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestConflictDetector_AdjacentSlotsDoNotConflict(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	detector := NewConflictDetector(store)

	approved := []*domain.Meeting{
		{MeetingID: "m1", StartTime: "09:00", EndTime: "10:00", Status: domain.StatusApproved},
		{MeetingID: "m2", StartTime: "11:00", EndTime: "12:00", Status: domain.StatusApproved},
	}
	store.EXPECT().QueryByStatusAndDate(mock.Anything, domain.StatusApproved, "2026-09-01").Return(approved, nil)

	conflict, err := detector.HasConflict(context.Background(), "2026-09-01", "10:00", "11:00")

	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestConflictDetector_StoreError(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	detector := NewConflictDetector(store)

	storeErr := errors.New("connection refused")
	store.EXPECT().QueryByStatusAndDate(mock.Anything, domain.StatusApproved, "2026-09-01").Return(nil, storeErr)

	_, err := detector.HasConflict(context.Background(), "2026-09-01", "10:00", "11:00")

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
