package v1

import (
	"fmt"
	"net/http"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/matching"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// defaultMatchLimit bounds the result size when the caller does not ask
// for a specific count.
const defaultMatchLimit = 5

// MatchHandler defines the interface for handling match and aid operations
type MatchHandler interface {
	GetMatches(ctx *gin.Context)
	GetAidEstimate(ctx *gin.Context)
}

// matchHandler struct holds the services
type matchHandler struct {
	matcher    matching.Matcher
	aidService profiles.AidEstimationService
}

// NewMatchHandler creates a new MatchHandler
func NewMatchHandler(matcher matching.Matcher, aidService profiles.AidEstimationService) MatchHandler {
	return &matchHandler{matcher: matcher, aidService: aidService}
}

// GetMatches returns ranked mentor profile IDs for a mentee
func (handler *matchHandler) GetMatches(ctx *gin.Context) {
	profileID := ctx.Param("id")

	strategy, err := matching.ParseStrategy(ctx.Query("strategy"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	limit := defaultMatchLimit
	if rawLimit := ctx.Query("limit"); len(rawLimit) > 0 {
		limit = strutil.ConvertToInt(rawLimit)
	}

	request := &matching.Request{
		MenteeProfileID: profileID,
		Limit:           limit,
		Strategy:        strategy,
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	mentorIDs, err := handler.matcher.Match(ctx, request)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("could not match mentee %s: %v", profileID, err)})
		return
	}

	ctx.JSON(http.StatusOK, MatchResponse{
		MenteeProfileID:  profileID,
		Strategy:         string(strategy),
		MentorProfileIDs: mentorIDs,
	})
}

// GetAidEstimate returns the financial aid likelihood for a mentee
func (handler *matchHandler) GetAidEstimate(ctx *gin.Context) {
	profileID := ctx.Param("id")

	probability, err := handler.aidService.Estimate(ctx, profileID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("mentee with profile id %s not found", profileID)})
		return
	}

	ctx.JSON(http.StatusOK, AidEstimateResponse{
		MenteeProfileID: profileID,
		Probability:     probability,
	})
}
