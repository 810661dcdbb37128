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

func TestMeetingQueryService_ListApproved_SinglePage(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	svc := NewMeetingQueryService(store)

	page := []*domain.Meeting{
		{MeetingID: "m1", Date: "2026-09-01", Status: domain.StatusApproved},
		{MeetingID: "m2", Date: "2026-09-02", Status: domain.StatusApproved},
	}
	store.EXPECT().
		QueryByStatusAndDateRange(mock.Anything, domain.StatusApproved, "2026-09-01", "2026-09-07", "", queryPageSize).
		Return(page, "", nil)

	res, err := svc.ListApproved(context.Background(), "2026-09-01", "2026-09-07")

	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestMeetingQueryService_ListApproved_ExhaustsCursor(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	svc := NewMeetingQueryService(store)

	first := []*domain.Meeting{{MeetingID: "m1", Date: "2026-09-01"}}
	second := []*domain.Meeting{{MeetingID: "m2", Date: "2026-09-02"}}

	store.EXPECT().
		QueryByStatusAndDateRange(mock.Anything, domain.StatusApproved, "2026-09-01", "2026-09-07", "", queryPageSize).
		Return(first, "2026-09-01|m1", nil)
	store.EXPECT().
		QueryByStatusAndDateRange(mock.Anything, domain.StatusApproved, "2026-09-01", "2026-09-07", "2026-09-01|m1", queryPageSize).
		Return(second, "", nil)

	res, err := svc.ListApproved(context.Background(), "2026-09-01", "2026-09-07")

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "m1", res[0].MeetingID)
	assert.Equal(t, "m2", res[1].MeetingID)
}

func TestMeetingQueryService_ListApproved_InvalidWindow(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	svc := NewMeetingQueryService(store)

	_, err := svc.ListApproved(context.Background(), "2026-09-07", "2026-09-01")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	store.AssertNotCalled(t, "QueryByStatusAndDateRange")
}

func TestMeetingQueryService_ListApproved_MalformedDate(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	svc := NewMeetingQueryService(store)

	_, err := svc.ListApproved(context.Background(), "not-a-date", "2026-09-07")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMeetingQueryService_ListApproved_StoreError(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	svc := NewMeetingQueryService(store)

	store.EXPECT().
		QueryByStatusAndDateRange(mock.Anything, domain.StatusApproved, "2026-09-01", "2026-09-07", "", queryPageSize).
		Return(nil, "", errors.New("db error"))

	_, err := svc.ListApproved(context.Background(), "2026-09-01", "2026-09-07")

	require.Error(t, err)
}

func TestMeetingQueryService_ListPending_ExhaustsCursor(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	svc := NewMeetingQueryService(store)

	first := []*domain.Meeting{{MeetingID: "m1", Status: domain.StatusPending}}
	second := []*domain.Meeting{{MeetingID: "m2", Status: domain.StatusPending}}

	store.EXPECT().
		QueryByStatus(mock.Anything, domain.StatusPending, "", queryPageSize).
		Return(first, "2026-09-01|m1", nil)
	store.EXPECT().
		QueryByStatus(mock.Anything, domain.StatusPending, "2026-09-01|m1", queryPageSize).
		Return(second, "", nil)

	res, err := svc.ListPending(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestMeetingQueryService_ListPending_Empty(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	svc := NewMeetingQueryService(store)

	store.EXPECT().
		QueryByStatus(mock.Anything, domain.StatusPending, "", queryPageSize).
		Return(nil, "", nil)

	res, err := svc.ListPending(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestMeetingQueryService_ListPending_StoreError(t *testing.T) {
	store := mocks.NewMockMeetingStore(t)
	svc := NewMeetingQueryService(store)

	store.EXPECT().
		QueryByStatus(mock.Anything, domain.StatusPending, "", queryPageSize).
		Return(nil, "", errors.New("db error"))

	_, err := svc.ListPending(context.Background())

	require.Error(t, err)
}
