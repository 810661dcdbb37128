package ports

import (
	"context"

	"github.com/meetyhq/MeetyBooker/internal/domain"
)

type MeetingNotifier interface {
	NotifyMeetingRequested(ctx context.Context, m *domain.Meeting)
	NotifyStatusChanged(ctx context.Context, m *domain.Meeting)
	NotifyPendingBacklog(ctx context.Context, count int)
}
