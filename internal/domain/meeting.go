package domain

import "time"

type MeetingStatus string

const (
	StatusPending  MeetingStatus = "pending"
	StatusApproved MeetingStatus = "approved"
	StatusRejected MeetingStatus = "rejected"
)

// IsDecision reports whether s is a valid operator decision for a pending
// meeting. Approved and rejected are terminal; no transition leaves them.
func (s MeetingStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

type Meeting struct {
	MeetingID       string        `json:"meeting_id" bson:"_id"`
	AttendeeName    string        `json:"attendee_name" bson:"attendeeName"`
	Email           string        `json:"email" bson:"email"`
	Date            string        `json:"date" bson:"date"`
	StartTime       string        `json:"start_time" bson:"startTime"`
	EndTime         string        `json:"end_time" bson:"endTime"`
	DurationMinutes int           `json:"duration_minutes" bson:"durationMinutes"`
	Status          MeetingStatus `json:"status" bson:"status"`
	IsConflict      bool          `json:"is_conflict" bson:"isConflict"`
	CreatedAt       time.Time     `json:"created_at" bson:"createdAt"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updatedAt"`
}

type CreateMeetingInput struct {
	AttendeeName    string
	Email           string
	Date            string
	StartTime       string
	DurationMinutes int
}
