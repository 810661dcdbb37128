package service

import (
	"context"
	"fmt"

	"github.com/meetyhq/MeetyBooker/internal/domain"
	"github.com/meetyhq/MeetyBooker/internal/service/ports"
)

// ConflictDetector decides whether a proposed slot collides with an already
// approved meeting. Pending and rejected meetings never block a booking.
type ConflictDetector struct {
	store ports.MeetingStore
}

func NewConflictDetector(store ports.MeetingStore) *ConflictDetector {
	return &ConflictDetector{store: store}
}

// HasConflict reports whether [start, end) overlaps any approved meeting on
// date. A store failure is returned as an error and must never be read as
// "slot available" — a failed check aborts the booking instead.
func (d *ConflictDetector) HasConflict(ctx context.Context, date, start, end string) (bool, error) {
	approved, err := d.store.QueryByStatusAndDate(ctx, domain.StatusApproved, date)
	if err != nil {
		return false, fmt.Errorf("query approved meetings: %w", err)
	}

	for _, m := range approved {
		if domain.Overlaps(start, end, m.StartTime, m.EndTime) {
			return true, nil
		}
	}

	return false, nil
}
