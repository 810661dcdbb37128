package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meetyhq/MeetyBooker/internal/domain"
	"github.com/meetyhq/MeetyBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// dateLocks hands out one mutex per calendar date so that the conflict check
// and the write that follows it cannot interleave with another booking for
// the same date. Entries are retained for the process lifetime; one mutex
// per date ever booked costs nothing worth reclaiming.
type dateLocks struct {
	mu     sync.Mutex
	byDate map[string]*sync.Mutex
}

func (l *dateLocks) lock(date string) func() {
	l.mu.Lock()
	m, ok := l.byDate[date]
	if !ok {
		m = &sync.Mutex{}
		l.byDate[date] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// MeetingService owns the booking lifecycle: it validates a request, records
// it as pending with a creation-time conflict snapshot, and applies operator
// decisions. Bookings for the same date are serialized through a per-date
// lock, so the service assumes a single writer process in front of the store.
type MeetingService struct {
	store    ports.MeetingStore
	detector *ConflictDetector
	notifier ports.MeetingNotifier
	logger   logger.Logger
	locks    dateLocks
}

func NewMeetingService(
	store ports.MeetingStore,
	detector *ConflictDetector,
	notifier ports.MeetingNotifier,
	logger logger.Logger,
) *MeetingService {
	return &MeetingService{
		store:    store,
		detector: detector,
		notifier: notifier,
		logger:   logger,
		locks:    dateLocks{byDate: make(map[string]*sync.Mutex)},
	}
}

// CreateMeeting records a booking request. The meeting always starts out
// pending; an overlap with an approved meeting only sets the advisory
// IsConflict flag, the final decision stays with the operator. The returned
// string is the confirmation message for the requester.
func (s *MeetingService) CreateMeeting(ctx context.Context, input domain.CreateMeetingInput) (*domain.Meeting, string, error) {
	if strings.TrimSpace(input.AttendeeName) == "" {
		return nil, "", fmt.Errorf("%w: attendee name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, "", fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	date, err := domain.NormalizeDate(input.Date)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	startTime, err := domain.NormalizeClock(input.StartTime)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	endTime, err := domain.EndTime(startTime, input.DurationMinutes)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Hold the date lock across check and write so concurrent bookings for
	// the same date cannot both observe the pre-write approved set.
	unlock := s.locks.lock(date)
	defer unlock()

	isConflict, err := s.detector.HasConflict(ctx, date, startTime, endTime)
	if err != nil {
		return nil, "", fmt.Errorf("conflict check: %w", err)
	}

	now := time.Now().UTC()
	meeting := &domain.Meeting{
		MeetingID:       uuid.New().String(),
		AttendeeName:    input.AttendeeName,
		Email:           input.Email,
		Date:            date,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: input.DurationMinutes,
		Status:          domain.StatusPending,
		IsConflict:      isConflict,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.store.Put(ctx, meeting); err != nil {
		return nil, "", fmt.Errorf("put meeting: %w", err)
	}

	s.logger.Info("meeting request created",
		logger.String("meeting_id", meeting.MeetingID),
		logger.String("date", meeting.Date),
		logger.String("start_time", meeting.StartTime),
		logger.String("end_time", meeting.EndTime),
		logger.Any("is_conflict", meeting.IsConflict),
	)

	go s.notifier.NotifyMeetingRequested(context.WithoutCancel(ctx), meeting)

	confirmation := fmt.Sprintf(
		"Thank you %s. Your meeting request for %s from %s to %s has been created. Have a nice day!",
		meeting.AttendeeName, meeting.Date, meeting.StartTime, meeting.EndTime,
	)

	return meeting, confirmation, nil
}

// ChangeStatus applies an operator decision to a pending meeting. Approving
// a meeting flagged as a conflict is allowed; the flag is advisory and is
// never recomputed here.
func (s *MeetingService) ChangeStatus(ctx context.Context, meetingID string, newStatus domain.MeetingStatus) (*domain.Meeting, error) {
	if !newStatus.IsDecision() {
		return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidStatus, newStatus)
	}

	updated, err := s.store.UpdateStatus(ctx, meetingID, newStatus)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("meeting status changed",
		logger.String("meeting_id", updated.MeetingID),
		logger.String("status", string(updated.Status)),
	)

	go s.notifier.NotifyStatusChanged(context.WithoutCancel(ctx), updated)

	return updated, nil
}
