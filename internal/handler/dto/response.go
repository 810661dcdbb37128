package dto

import (
	"time"

	"github.com/meetyhq/MeetyBooker/internal/domain"
)

type MeetingResponse struct {
	MeetingID       string `json:"meeting_id"`
	AttendeeName    string `json:"attendee_name"`
	Email           string `json:"email"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	IsConflict      bool   `json:"is_conflict"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type CreateMeetingResponse struct {
	Meeting      MeetingResponse `json:"meeting"`
	Confirmation string          `json:"confirmation"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToMeetingResponse(m *domain.Meeting) MeetingResponse {
	return MeetingResponse{
		MeetingID:       m.MeetingID,
		AttendeeName:    m.AttendeeName,
		Email:           m.Email,
		Date:            m.Date,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		DurationMinutes: m.DurationMinutes,
		Status:          string(m.Status),
		IsConflict:      m.IsConflict,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       m.UpdatedAt.Format(time.RFC3339),
	}
}

func ToMeetingResponses(meetings []*domain.Meeting) []MeetingResponse {
	res := make([]MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		res = append(res, ToMeetingResponse(m))
	}
	return res
}
