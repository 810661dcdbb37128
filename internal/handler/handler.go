package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/meetyhq/MeetyBooker/internal/domain"
	"github.com/meetyhq/MeetyBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type MeetingSvc interface {
	CreateMeeting(ctx context.Context, input domain.CreateMeetingInput) (*domain.Meeting, string, error)
	ChangeStatus(ctx context.Context, meetingID string, newStatus domain.MeetingStatus) (*domain.Meeting, error)
}

type MeetingQuerySvc interface {
	ListApproved(ctx context.Context, startDate, endDate string) ([]*domain.Meeting, error)
	ListPending(ctx context.Context) ([]*domain.Meeting, error)
}

type Handler struct {
	meetingService MeetingSvc
	queryService   MeetingQuerySvc
}

func NewHandler(meetingService MeetingSvc, queryService MeetingQuerySvc) *Handler {
	return &Handler{
		meetingService: meetingService,
		queryService:   queryService,
	}
}

func (h *Handler) CreateMeeting(c *ginext.Context) {
	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateMeetingInput{
		AttendeeName:    req.AttendeeName,
		Email:           req.Email,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
	}

	meeting, confirmation, err := h.meetingService.CreateMeeting(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateMeetingResponse{
		Meeting:      dto.ToMeetingResponse(meeting),
		Confirmation: confirmation,
	})
}

func (h *Handler) ChangeMeetingStatus(c *ginext.Context) {
	meetingID := c.Param("id")
	if _, err := uuid.Parse(meetingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid meeting id"})
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	meeting, err := h.meetingService.ChangeStatus(c.Request.Context(), meetingID, domain.MeetingStatus(req.NewStatus))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingResponse(meeting))
}

func (h *Handler) ListApproved(c *ginext.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date and end_date query parameters are required",
		})
		return
	}

	meetings, err := h.queryService.ListApproved(c.Request.Context(), startDate, endDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingResponses(meetings))
}

func (h *Handler) ListPending(c *ginext.Context) {
	meetings, err := h.queryService.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetingResponses(meetings))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrMeetingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrMeetingNotPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
