package dto

type CreateMeetingRequest struct {
	AttendeeName    string `json:"attendee_name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
}

type ChangeStatusRequest struct {
	NewStatus string `json:"new_status" binding:"required"`
}
