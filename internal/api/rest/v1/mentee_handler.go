package v1

import (
	"fmt"
	"net/http"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// MenteeHandler defines the interface for handling mentee profile operations
type MenteeHandler interface {
	Register(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByProfileID(ctx *gin.Context)
	UpdateByProfileID(ctx *gin.Context)
	DeleteByProfileID(ctx *gin.Context)
	Search(ctx *gin.Context)
}

// menteeHandler struct holds the services
type menteeHandler struct {
	menteeService profiles.MenteeService
}

// NewMenteeHandler creates a new MenteeHandler
func NewMenteeHandler(menteeService profiles.MenteeService) MenteeHandler {
	return &menteeHandler{menteeService: menteeService}
}

// Register creates a new mentee profile
func (handler *menteeHandler) Register(ctx *gin.Context) {
	var request MenteeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	mentee, err := handler.menteeService.Register(ctx, request.ToDomain())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error registering mentee: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, NewMenteeResponse(mentee))
}

// List fetches mentees optionally with query parameters
func (handler *menteeHandler) List(ctx *gin.Context) {
	query := profiles.NewMenteeQuery()

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

	if incarcerated := ctx.Query("formerlyIncarcerated"); len(incarcerated) > 0 {
		value := strutil.ConvertToBool(incarcerated)
		query.FormerlyIncarcerated = &value
	}

	if lowIncome := ctx.Query("lowIncome"); len(lowIncome) > 0 {
		value := strutil.ConvertToBool(lowIncome)
		query.LowIncome = &value
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

	mentees, err := handler.menteeService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []MenteeResponse{}
	for _, mentee := range mentees {
		listResponse = append(listResponse, NewMenteeResponse(mentee))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByProfileID fetches a mentee by profile ID
func (handler *menteeHandler) GetByProfileID(ctx *gin.Context) {
	profileID := ctx.Param("id")

	mentee, err := handler.menteeService.GetByProfileID(ctx, profileID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("mentee with profile id %s not found", profileID)})
		return
	}

	ctx.JSON(http.StatusOK, NewMenteeResponse(mentee))
}

// UpdateByProfileID replaces the stored mentee fields
func (handler *menteeHandler) UpdateByProfileID(ctx *gin.Context) {
	profileID := ctx.Param("id")

	var request MenteeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	existing, err := handler.menteeService.GetByProfileID(ctx, profileID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("mentee with profile id %s not found", profileID)})
		return
	}

	mentee := request.ToDomain()
	mentee.ProfileID = profileID
	mentee.DateTimeCreated = existing.DateTimeCreated

	if err := handler.menteeService.UpdateByProfileID(ctx, mentee); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error updating mentee: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, NewMenteeResponse(mentee))
}

// DeleteByProfileID deletes a mentee by profile ID
func (handler *menteeHandler) DeleteByProfileID(ctx *gin.Context) {
	profileID := ctx.Param("id")

	if err := handler.menteeService.DeleteByProfileID(ctx, profileID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("mentee with profile id %s not found", profileID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted mentee with profile id %s", profileID)})
}

// Search performs a relevance-ordered text search over mentees
func (handler *menteeHandler) Search(ctx *gin.Context) {
	term := ctx.Query("q")
	if len(term) == 0 {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "query parameter q is required"})
		return
	}

	limit := 0
	if rawLimit := ctx.Query("limit"); len(rawLimit) > 0 {
		limit = strutil.ConvertToInt(rawLimit)
	}

	mentees, err := handler.menteeService.Search(ctx, term, limit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("search failed: %v", err)})
		return
	}

	listResponse := []MenteeResponse{}
	for _, mentee := range mentees {
		listResponse = append(listResponse, NewMenteeResponse(mentee))
	}

	ctx.JSON(http.StatusOK, listResponse)
}
