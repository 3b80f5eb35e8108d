package v1

import (
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/matching"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/system"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1. The auth middleware
// guards every mutating route.
func SetupRoutes(r *gin.Engine,
	menteeService profiles.MenteeService,
	mentorService profiles.MentorService,
	matcher matching.Matcher,
	aidService profiles.AidEstimationService,
	feedbackService feedback.Service,
	infoService system.InfoService,
	auth gin.HandlerFunc) {

	v1 := r.Group(BasePath)

	// Service metadata routes
	adminHandler := NewAdminHandler(infoService)
	v1.GET("/info", adminHandler.GetInfo)
	v1.GET("/collections", adminHandler.GetCollections)

	// Mentee routes
	menteeHandler := NewMenteeHandler(menteeService)
	v1.POST("/mentees", auth, menteeHandler.Register)
	v1.GET("/mentees", menteeHandler.List)
	v1.GET("/mentees/search", menteeHandler.Search)
	v1.GET("/mentees/:id", menteeHandler.GetByProfileID)
	v1.PUT("/mentees/:id", auth, menteeHandler.UpdateByProfileID)
	v1.DELETE("/mentees/:id", auth, menteeHandler.DeleteByProfileID)

	// Mentor routes
	mentorHandler := NewMentorHandler(mentorService)
	v1.POST("/mentors", auth, mentorHandler.Register)
	v1.GET("/mentors", mentorHandler.List)
	v1.GET("/mentors/search", mentorHandler.Search)
	v1.GET("/mentors/:id", mentorHandler.GetByProfileID)
	v1.PUT("/mentors/:id", auth, mentorHandler.UpdateByProfileID)
	v1.DELETE("/mentors/:id", auth, mentorHandler.DeleteByProfileID)

	// Matching routes
	matchHandler := NewMatchHandler(matcher, aidService)
	v1.GET("/mentees/:id/matches", matchHandler.GetMatches)
	v1.GET("/mentees/:id/financial-aid", matchHandler.GetAidEstimate)

	// Feedback routes
	feedbackHandler := NewFeedbackHandler(feedbackService)
	v1.POST("/feedback", auth, feedbackHandler.Submit)
	v1.GET("/feedback", feedbackHandler.List)
	v1.GET("/feedback/:id", feedbackHandler.GetByID)
	v1.DELETE("/feedback/:id", auth, feedbackHandler.DeleteByID)
}
