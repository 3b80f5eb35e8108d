//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleMentee() *profiles.Mentee {
	return &profiles.Mentee{
		ProfileID:       uuid.NewString(),
		DateTimeCreated: time.Now(),
		FirstName:       "Jamie",
		LastName:        "Rivera",
		Email:           "jamie@example.com",
		City:            "Memphis",
		State:           "TN",
		Country:         "USA",
		Subject:         "Web: HTML, CSS, JavaScript",
		ExperienceLevel: "beginner",
		PairProgramming: true,
	}
}

func TestMenteeHandler_Register_Success(t *testing.T) {
	mockService := new(MockMenteeService)
	handler := NewMenteeHandler(mockService)

	mentee := sampleMentee()
	mockService.
		On("Register", mock.Anything, mock.Anything).
		Return(mentee, nil)

	requestBody := `{
		"first_name": "Jamie",
		"last_name": "Rivera",
		"email": "jamie@example.com",
		"city": "Memphis",
		"state": "TN",
		"country": "USA",
		"subject": "Web: HTML, CSS, JavaScript",
		"experience_level": "beginner",
		"pair_programming": true
	}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/mentees", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), mentee.ProfileID)
	mockService.AssertExpectations(t)
}

func TestMenteeHandler_Register_ValidationError(t *testing.T) {
	mockService := new(MockMenteeService)
	handler := NewMenteeHandler(mockService)

	requestBody := `{"first_name": "Jamie", "experience_level": "wizard"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/mentees", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestMenteeHandler_List_Success(t *testing.T) {
	mockService := new(MockMenteeService)
	handler := NewMenteeHandler(mockService)

	mentee := sampleMentee()
	mockService.
		On("List", mock.Anything, mock.Anything).
		Return([]*profiles.Mentee{mentee}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees?subject=Web%3A%20HTML%2C%20CSS%2C%20JavaScript", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), mentee.ProfileID)
	mockService.AssertExpectations(t)
}

func TestMenteeHandler_List_ValidationError(t *testing.T) {
	mockService := new(MockMenteeService)
	handler := NewMenteeHandler(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees?sortOrder=invalid", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestMenteeHandler_GetByProfileID_Success(t *testing.T) {
	mockService := new(MockMenteeService)
	handler := NewMenteeHandler(mockService)

	mentee := sampleMentee()
	mockService.
		On("GetByProfileID", mock.Anything, mentee.ProfileID).
		Return(mentee, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees/"+mentee.ProfileID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: mentee.ProfileID}}

	handler.GetByProfileID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), mentee.Email)
	mockService.AssertExpectations(t)
}

func TestMenteeHandler_GetByProfileID_NotFound(t *testing.T) {
	mockService := new(MockMenteeService)
	handler := NewMenteeHandler(mockService)

	mockService.
		On("GetByProfileID", mock.Anything, "missing").
		Return(nil, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing"}}

	handler.GetByProfileID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestMenteeHandler_UpdateByProfileID_Success(t *testing.T) {
	mockService := new(MockMenteeService)
	handler := NewMenteeHandler(mockService)

	mentee := sampleMentee()
	mockService.
		On("GetByProfileID", mock.Anything, mentee.ProfileID).
		Return(mentee, nil)
	mockService.
		On("UpdateByProfileID", mock.Anything, mock.Anything).
		Return(nil)

	requestBody := `{
		"first_name": "Jamie",
		"last_name": "Rivera",
		"email": "jamie@example.com",
		"city": "Nashville",
		"country": "USA",
		"subject": "Web: HTML, CSS, JavaScript",
		"experience_level": "intermediate"
	}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/mentees/"+mentee.ProfileID, bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: mentee.ProfileID}}

	handler.UpdateByProfileID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nashville")
	mockService.AssertExpectations(t)
}

func TestMenteeHandler_DeleteByProfileID_Success(t *testing.T) {
	mockService := new(MockMenteeService)
	handler := NewMenteeHandler(mockService)

	profileID := uuid.NewString()
	mockService.
		On("DeleteByProfileID", mock.Anything, profileID).
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/mentees/"+profileID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: profileID}}

	handler.DeleteByProfileID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestMenteeHandler_Search_Success(t *testing.T) {
	mockService := new(MockMenteeService)
	handler := NewMenteeHandler(mockService)

	mentee := sampleMentee()
	mockService.
		On("Search", mock.Anything, "javascript", 0).
		Return([]*profiles.Mentee{mentee}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees/search?q=javascript", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), mentee.ProfileID)
	mockService.AssertExpectations(t)
}

func TestMenteeHandler_Search_MissingTerm(t *testing.T) {
	mockService := new(MockMenteeService)
	handler := NewMenteeHandler(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees/search", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}
