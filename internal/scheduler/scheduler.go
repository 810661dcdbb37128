package scheduler

import (
	"context"
	"time"

	"github.com/meetyhq/MeetyBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type PendingLister interface {
	ListPending(ctx context.Context) ([]*domain.Meeting, error)
}

type BacklogNotifier interface {
	NotifyPendingBacklog(ctx context.Context, count int)
}

// Scheduler periodically checks the approval queue and reminds the operator
// while requests are waiting for a decision.
type Scheduler struct {
	pending  PendingLister
	notifier BacklogNotifier
	interval time.Duration
	logger   logger.Logger
}

func New(
	pending PendingLister,
	notifier BacklogNotifier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		pending:  pending,
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	pending, err := s.pending.ListPending(ctx)
	if err != nil {
		s.logger.Error("failed to list pending meetings",
			logger.String("error", err.Error()),
		)
		return
	}

	if len(pending) == 0 {
		return
	}

	s.logger.Info("pending meetings awaiting review",
		logger.Int("count", len(pending)),
	)

	s.notifier.NotifyPendingBacklog(ctx, len(pending))
}
