//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/api/rest/middleware"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleFeedback(menteeID, mentorID string) *feedback.Feedback {
	return &feedback.Feedback{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now(),
		MenteeProfileID: menteeID,
		MentorProfileID: mentorID,
		SubmittedBy:     "staff@underdogdevs.org",
		Text:            "My mentor was great",
		Sentiment:       feedback.Sentiment{Compound: 0.6, Label: feedback.LabelPositive},
	}
}

func TestFeedbackHandler_Submit_Success(t *testing.T) {
	mockService := new(MockFeedbackService)
	handler := NewFeedbackHandler(mockService)

	menteeID := uuid.NewString()
	mentorID := uuid.NewString()
	fb := sampleFeedback(menteeID, mentorID)

	mockService.
		On("Submit", mock.Anything, menteeID, mentorID, "staff@underdogdevs.org", "My mentor was great").
		Return(fb, nil)

	requestBody := fmt.Sprintf(`{
		"mentee_profile_id": %q,
		"mentor_profile_id": %q,
		"text": "My mentor was great"
	}`, menteeID, mentorID)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/feedback", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(middleware.SubjectKey, "staff@underdogdevs.org")

	handler.Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), fb.ID)
	assert.Contains(t, w.Body.String(), "positive")
	mockService.AssertExpectations(t)
}

func TestFeedbackHandler_Submit_ValidationError(t *testing.T) {
	mockService := new(MockFeedbackService)
	handler := NewFeedbackHandler(mockService)

	requestBody := `{"mentee_profile_id": "not-a-uuid", "mentor_profile_id": "also-not", "text": "hi"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/feedback", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Submit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFeedbackHandler_List_Success(t *testing.T) {
	mockService := new(MockFeedbackService)
	handler := NewFeedbackHandler(mockService)

	fb := sampleFeedback(uuid.NewString(), uuid.NewString())
	mockService.
		On("List", mock.Anything, mock.Anything).
		Return([]*feedback.Feedback{fb}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/feedback?label=positive", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fb.ID)
	mockService.AssertExpectations(t)
}

func TestFeedbackHandler_List_ValidationError(t *testing.T) {
	mockService := new(MockFeedbackService)
	handler := NewFeedbackHandler(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/feedback?label=furious", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestFeedbackHandler_GetByID_NotFound(t *testing.T) {
	mockService := new(MockFeedbackService)
	handler := NewFeedbackHandler(mockService)

	mockService.
		On("GetByID", mock.Anything, "missing").
		Return(nil, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/feedback/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestFeedbackHandler_DeleteByID_Success(t *testing.T) {
	mockService := new(MockFeedbackService)
	handler := NewFeedbackHandler(mockService)

	id := uuid.NewString()
	mockService.
		On("DeleteByID", mock.Anything, id).
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/feedback/"+id, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: id}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
