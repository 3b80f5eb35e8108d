//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/matching"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMatchHandler_GetMatches_Success(t *testing.T) {
	mockMatcher := new(MockMatcher)
	mockAidService := new(MockAidEstimationService)
	handler := NewMatchHandler(mockMatcher, mockAidService)

	profileID := uuid.NewString()
	mentorIDs := []string{uuid.NewString(), uuid.NewString()}

	mockMatcher.
		On("Match", mock.Anything, mock.MatchedBy(func(req *matching.Request) bool {
			return req.MenteeProfileID == profileID &&
				req.Limit == 2 &&
				req.Strategy == matching.StrategySortSearch
		})).
		Return(mentorIDs, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees/"+profileID+"/matches?limit=2", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: profileID}}

	handler.GetMatches(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), mentorIDs[0])
	assert.Contains(t, w.Body.String(), "sortsearch")
	mockMatcher.AssertExpectations(t)
}

func TestMatchHandler_GetMatches_DefaultLimit(t *testing.T) {
	mockMatcher := new(MockMatcher)
	mockAidService := new(MockAidEstimationService)
	handler := NewMatchHandler(mockMatcher, mockAidService)

	profileID := uuid.NewString()

	mockMatcher.
		On("Match", mock.Anything, mock.MatchedBy(func(req *matching.Request) bool {
			return req.Limit == defaultMatchLimit
		})).
		Return([]string{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees/"+profileID+"/matches", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: profileID}}

	handler.GetMatches(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockMatcher.AssertExpectations(t)
}

func TestMatchHandler_GetMatches_UnknownStrategy(t *testing.T) {
	mockMatcher := new(MockMatcher)
	mockAidService := new(MockAidEstimationService)
	handler := NewMatchHandler(mockMatcher, mockAidService)

	profileID := uuid.NewString()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees/"+profileID+"/matches?strategy=alphabetical", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: profileID}}

	handler.GetMatches(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMatcher.AssertNotCalled(t, "Match", mock.Anything, mock.Anything)
}

func TestMatchHandler_GetMatches_UnknownMentee(t *testing.T) {
	mockMatcher := new(MockMatcher)
	mockAidService := new(MockAidEstimationService)
	handler := NewMatchHandler(mockMatcher, mockAidService)

	profileID := uuid.NewString()

	mockMatcher.
		On("Match", mock.Anything, mock.Anything).
		Return(nil, errors.New("failed to load mentee"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees/"+profileID+"/matches", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: profileID}}

	handler.GetMatches(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMatcher.AssertExpectations(t)
}

func TestMatchHandler_GetAidEstimate_Success(t *testing.T) {
	mockMatcher := new(MockMatcher)
	mockAidService := new(MockAidEstimationService)
	handler := NewMatchHandler(mockMatcher, mockAidService)

	profileID := uuid.NewString()
	mockAidService.
		On("Estimate", mock.Anything, profileID).
		Return(0.55, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees/"+profileID+"/financial-aid", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: profileID}}

	handler.GetAidEstimate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "0.55")
	mockAidService.AssertExpectations(t)
}

func TestMatchHandler_GetAidEstimate_UnknownMentee(t *testing.T) {
	mockMatcher := new(MockMatcher)
	mockAidService := new(MockAidEstimationService)
	handler := NewMatchHandler(mockMatcher, mockAidService)

	mockAidService.
		On("Estimate", mock.Anything, "missing").
		Return(0.0, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/mentees/missing/financial-aid", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing"}}

	handler.GetAidEstimate(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockAidService.AssertExpectations(t)
}
