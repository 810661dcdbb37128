package domain

import "errors"

var (
	ErrMeetingNotFound = errors.New("meeting not found")
)

var (
	ErrMeetingNotPending = errors.New("meeting is not in pending status")
	ErrInvalidStatus     = errors.New("status must be approved or rejected")
)

var (
	ErrValidation = errors.New("validation error")
)
