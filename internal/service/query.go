package service

import (
	"context"
	"fmt"

	"github.com/meetyhq/MeetyBooker/internal/domain"
	"github.com/meetyhq/MeetyBooker/internal/service/ports"
)

const queryPageSize = 100

// MeetingQueryService is the read-only projection over the store: the
// calendar view (approved meetings in a window) and the approval queue
// (pending meetings). Both exhaust the store's cursor before returning, so
// callers always get the complete result set.
type MeetingQueryService struct {
	store ports.MeetingStore
}

func NewMeetingQueryService(store ports.MeetingStore) *MeetingQueryService {
	return &MeetingQueryService{store: store}
}

// ListApproved returns every approved meeting with a date inside the
// inclusive [startDate, endDate] window, ordered by date ascending.
func (s *MeetingQueryService) ListApproved(ctx context.Context, startDate, endDate string) ([]*domain.Meeting, error) {
	start, err := domain.NormalizeDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	end, err := domain.NormalizeDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if end < start {
		return nil, fmt.Errorf("%w: end date %s precedes start date %s", domain.ErrValidation, end, start)
	}

	var res []*domain.Meeting
	cursor := ""
	for {
		page, next, err := s.store.QueryByStatusAndDateRange(ctx, domain.StatusApproved, start, end, cursor, queryPageSize)
		if err != nil {
			return nil, fmt.Errorf("query approved meetings: %w", err)
		}
		res = append(res, page...)

		if next == "" {
			return res, nil
		}
		cursor = next
	}
}

// ListPending returns every meeting awaiting an operator decision.
func (s *MeetingQueryService) ListPending(ctx context.Context) ([]*domain.Meeting, error) {
	var res []*domain.Meeting
	cursor := ""
	for {
		page, next, err := s.store.QueryByStatus(ctx, domain.StatusPending, cursor, queryPageSize)
		if err != nil {
			return nil, fmt.Errorf("query pending meetings: %w", err)
		}
		res = append(res, page...)

		if next == "" {
			return res, nil
		}
		cursor = next
	}
}
