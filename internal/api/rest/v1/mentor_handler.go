package v1

import (
	"fmt"
	"net/http"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// MentorHandler defines the interface for handling mentor profile operations
type MentorHandler interface {
	Register(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByProfileID(ctx *gin.Context)
	UpdateByProfileID(ctx *gin.Context)
	DeleteByProfileID(ctx *gin.Context)
	Search(ctx *gin.Context)
}

// mentorHandler struct holds the services
type mentorHandler struct {
	mentorService profiles.MentorService
}

// NewMentorHandler creates a new MentorHandler
func NewMentorHandler(mentorService profiles.MentorService) MentorHandler {
	return &mentorHandler{mentorService: mentorService}
}

// Register creates a new mentor profile
func (handler *mentorHandler) Register(ctx *gin.Context) {
	var request MentorRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	mentor, err := handler.mentorService.Register(ctx, request.ToDomain())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error registering mentor: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, NewMentorResponse(mentor))
}

// List fetches mentors optionally with query parameters
func (handler *mentorHandler) List(ctx *gin.Context) {
	query := profiles.NewMentorQuery()

	if subject := ctx.Query("subject"); len(subject) > 0 {
		query.Subject = subject
	}

	if level := ctx.Query("experienceLevel"); len(level) > 0 {
		query.ExperienceLevel = level
	}

	if city := ctx.Query("city"); len(city) > 0 {
		query.City = city
	}

	if state := ctx.Query("state"); len(state) > 0 {
		query.State = state
	}

	if pairProgramming := ctx.Query("pairProgramming"); len(pairProgramming) > 0 {
		value := strutil.ConvertToBool(pairProgramming)
		query.PairProgramming = &value
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	mentors, err := handler.mentorService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []MentorResponse{}
	for _, mentor := range mentors {
		listResponse = append(listResponse, NewMentorResponse(mentor))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByProfileID fetches a mentor by profile ID
func (handler *mentorHandler) GetByProfileID(ctx *gin.Context) {
	profileID := ctx.Param("id")

	mentor, err := handler.mentorService.GetByProfileID(ctx, profileID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("mentor with profile id %s not found", profileID)})
		return
	}

	ctx.JSON(http.StatusOK, NewMentorResponse(mentor))
}

// UpdateByProfileID replaces the stored mentor fields
func (handler *mentorHandler) UpdateByProfileID(ctx *gin.Context) {
	profileID := ctx.Param("id")

	var request MentorRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	existing, err := handler.mentorService.GetByProfileID(ctx, profileID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("mentor with profile id %s not found", profileID)})
		return
	}

	mentor := request.ToDomain()
	mentor.ProfileID = profileID
	mentor.DateTimeCreated = existing.DateTimeCreated

	if err := handler.mentorService.UpdateByProfileID(ctx, mentor); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating mentor: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, NewMentorResponse(mentor))
}

// DeleteByProfileID deletes a mentor by profile ID
func (handler *mentorHandler) DeleteByProfileID(ctx *gin.Context) {
	profileID := ctx.Param("id")

	if err := handler.mentorService.DeleteByProfileID(ctx, profileID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("mentor with profile id %s not found", profileID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted mentor with profile id %s", profileID)})
}

// Search performs a relevance-ordered text search over mentors
func (handler *mentorHandler) Search(ctx *gin.Context) {
	term := ctx.Query("q")
	if len(term) == 0 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "query parameter q is required"})
		return
	}

	limit := 0
	if rawLimit := ctx.Query("limit"); len(rawLimit) > 0 {
		limit = strutil.ConvertToInt(rawLimit)
	}

	mentors, err := handler.mentorService.Search(ctx, term, limit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("search failed: %v", err)})
		return
	}

	listResponse := []MentorResponse{}
	for _, mentor := range mentors {
		listResponse = append(listResponse, NewMentorResponse(mentor))
	}

	ctx.JSON(http.StatusOK, listResponse)
}
