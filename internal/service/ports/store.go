package ports

import (
	"context"

	"github.com/meetyhq/MeetyBooker/internal/domain"
)

// MeetingStore is the persistence contract for meeting records. Paged
// queries take an opaque cursor ("" for the first page) and return the
// cursor of the next page, or "" when exhausted.
type MeetingStore interface {
	// Put writes the full record; it is idempotent by meeting id.
	Put(ctx context.Context, m *domain.Meeting) error

	QueryByStatusAndDate(ctx context.Context, status domain.MeetingStatus, date string) ([]*domain.Meeting, error)
	QueryByStatusAndDateRange(ctx context.Context, status domain.MeetingStatus, startDate, endDate, cursor string, limit int) ([]*domain.Meeting, string, error)
	QueryByStatus(ctx context.Context, status domain.MeetingStatus, cursor string, limit int) ([]*domain.Meeting, string, error)

	// UpdateStatus moves a pending meeting to status and returns the updated
	// record. It fails with domain.ErrMeetingNotFound for an unknown id and
	// domain.ErrMeetingNotPending for a record already decided.
	UpdateStatus(ctx context.Context, meetingID string, status domain.MeetingStatus) (*domain.Meeting, error)
}
