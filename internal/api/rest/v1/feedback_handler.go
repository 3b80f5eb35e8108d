package v1

import (
	"fmt"
	"net/http"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/api/rest/middleware"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler defines the interface for handling feedback operations
type FeedbackHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// feedbackHandler struct holds the services
type feedbackHandler struct {
	feedbackService feedback.Service
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackService feedback.Service) FeedbackHandler {
	return &feedbackHandler{feedbackService: feedbackService}
}

// Submit stores a feedback entry with its sentiment score. The submitting
// user is taken from the authenticated token subject when auth is enabled.
func (handler *feedbackHandler) Submit(ctx *gin.Context) {
	var request FeedbackRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	submittedBy := ctx.GetString(middleware.SubjectKey)

	fb, err := handler.feedbackService.Submit(ctx, request.MenteeProfileID, request.MentorProfileID, submittedBy, request.Text)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error submitting feedback: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, NewFeedbackResponse(fb))
}

// List fetches feedback optionally with query parameters
func (handler *feedbackHandler) List(ctx *gin.Context) {
	query := feedback.NewQuery()

	if menteeID := ctx.Query("menteeProfileId"); len(menteeID) > 0 {
		query.MenteeProfileID = menteeID
	}

	if mentorID := ctx.Query("mentorProfileId"); len(mentorID) > 0 {
		query.MentorProfileID = mentorID
	}

	if label := ctx.Query("label"); len(label) > 0 {
		query.Label = label
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	entries, err := handler.feedbackService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []FeedbackResponse{}
	for _, entry := range entries {
		listResponse = append(listResponse, NewFeedbackResponse(entry))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID fetches a feedback entry by ID
func (handler *feedbackHandler) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	entry, err := handler.feedbackService.GetByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("feedback with id %s not found", id)})
		return
	}

	ctx.JSON(http.StatusOK, NewFeedbackResponse(entry))
}

// DeleteByID deletes a feedback entry by ID
func (handler *feedbackHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := handler.feedbackService.DeleteByID(ctx, id); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("feedback with id %s not found", id)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted feedback with id %s", id)})
}
