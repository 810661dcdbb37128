package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/meetyhq/MeetyBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const meetingColumns = `meeting_id, attendee_name, email, date, start_time, end_time,
		duration_minutes, status, is_conflict, created_at, updated_at`

// PostgresStore implements the meeting store on Postgres. Paged queries use
// keyset cursors over (date, meeting_id), encoded as "date|meeting_id".
type PostgresStore struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPostgresStore(db *dbpg.DB) *PostgresStore {
	return &PostgresStore{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (s *PostgresStore) Put(ctx context.Context, m *domain.Meeting) error {
	query := `INSERT INTO meetings (` + meetingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  ON CONFLICT (meeting_id) DO UPDATE SET
				attendee_name = EXCLUDED.attendee_name,
				email = EXCLUDED.email,
				date = EXCLUDED.date,
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				duration_minutes = EXCLUDED.duration_minutes,
				status = EXCLUDED.status,
				is_conflict = EXCLUDED.is_conflict,
				updated_at = EXCLUDED.updated_at`
	_, err := s.db.ExecWithRetry(
		ctx, s.strategy, query,
		m.MeetingID, m.AttendeeName, m.Email, m.Date, m.StartTime, m.EndTime,
		m.DurationMinutes, m.Status, m.IsConflict, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert meeting: %w", err)
	}

	return nil
}

func (s *PostgresStore) QueryByStatusAndDate(ctx context.Context, status domain.MeetingStatus, date string) ([]*domain.Meeting, error) {
	query := `SELECT ` + meetingColumns + `
			  FROM meetings
			  WHERE status = $1 AND date = $2
			  ORDER BY start_time`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, status, date)
	if err != nil {
		return nil, fmt.Errorf("query meetings by status and date: %w", err)
	}
	defer rows.Close()

	return scanMeetings(rows)
}

func (s *PostgresStore) QueryByStatusAndDateRange(ctx context.Context, status domain.MeetingStatus, startDate, endDate, cursor string, limit int) ([]*domain.Meeting, string, error) {
	afterDate, afterID, err := decodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	query := `SELECT ` + meetingColumns + `
			  FROM meetings
			  WHERE status = $1 AND date BETWEEN $2 AND $3
			    AND (date, meeting_id) > ($4, $5)
			  ORDER BY date, meeting_id
			  LIMIT $6`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, status, startDate, endDate, afterDate, afterID, limit)
	if err != nil {
		return nil, "", fmt.Errorf("query meetings by status and date range: %w", err)
	}
	defer rows.Close()

	res, err := scanMeetings(rows)
	if err != nil {
		return nil, "", err
	}

	return res, nextCursor(res, limit), nil
}

func (s *PostgresStore) QueryByStatus(ctx context.Context, status domain.MeetingStatus, cursor string, limit int) ([]*domain.Meeting, string, error) {
	afterDate, afterID, err := decodeCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	query := `SELECT ` + meetingColumns + `
			  FROM meetings
			  WHERE status = $1
			    AND (date, meeting_id) > ($2, $3)
			  ORDER BY date, meeting_id
			  LIMIT $4`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, status, afterDate, afterID, limit)
	if err != nil {
		return nil, "", fmt.Errorf("query meetings by status: %w", err)
	}
	defer rows.Close()

	res, err := scanMeetings(rows)
	if err != nil {
		return nil, "", err
	}

	return res, nextCursor(res, limit), nil
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, meetingID string, status domain.MeetingStatus) (*domain.Meeting, error) {
	query := `UPDATE meetings
			  SET status = $2, updated_at = now()
			  WHERE meeting_id = $1 AND status = $3
			  RETURNING ` + meetingColumns

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, meetingID, status, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("update meeting status: %w", err)
	}

	m, err := scanMeeting(row)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scan updated meeting: %w", err)
	}

	// No row updated: the meeting either does not exist or is already in a
	// terminal state.
	checkQuery := `SELECT status FROM meetings WHERE meeting_id = $1`
	checkRow, err := s.db.QueryRowWithRetry(ctx, s.strategy, checkQuery, meetingID)
	if err != nil {
		return nil, fmt.Errorf("check meeting: %w", err)
	}

	var current domain.MeetingStatus
	if err = checkRow.Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("scan meeting status: %w", err)
	}

	return nil, domain.ErrMeetingNotPending
}

func scanMeeting(row *sql.Row) (*domain.Meeting, error) {
	var m domain.Meeting
	err := row.Scan(
		&m.MeetingID, &m.AttendeeName, &m.Email, &m.Date, &m.StartTime, &m.EndTime,
		&m.DurationMinutes, &m.Status, &m.IsConflict, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanMeetings(rows *sql.Rows) ([]*domain.Meeting, error) {
	var res []*domain.Meeting
	for rows.Next() {
		var m domain.Meeting
		if err := rows.Scan(
			&m.MeetingID, &m.AttendeeName, &m.Email, &m.Date, &m.StartTime, &m.EndTime,
			&m.DurationMinutes, &m.Status, &m.IsConflict, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}

// decodeCursor splits a "date|meeting_id" keyset cursor. An empty cursor
// decodes to the zero tuple, which sorts before every real row.
func decodeCursor(cursor string) (date, id string, err error) {
	if cursor == "" {
		return "", "", nil
	}

	parts := strings.SplitN(cursor, "|", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("malformed cursor %q", cursor)
	}
	return parts[0], parts[1], nil
}

func nextCursor(page []*domain.Meeting, limit int) string {
	if len(page) < limit {
		return ""
	}
	last := page[len(page)-1]
	return last.Date + "|" + last.MeetingID
}
