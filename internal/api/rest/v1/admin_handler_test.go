//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/system"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminHandler_GetInfo(t *testing.T) {
	handler := NewAdminHandler(new(MockInfoService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/info", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetInfo(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), APIVersion)
	assert.Contains(t, w.Body.String(), ServiceName)
}

func TestAdminHandler_GetCollections_Success(t *testing.T) {
	mockInfoService := new(MockInfoService)
	handler := NewAdminHandler(mockInfoService)

	mockInfoService.
		On("Collections", mock.Anything).
		Return([]system.CollectionCount{
			{Name: "Mentees", Count: 12},
			{Name: "Mentors", Count: 7},
		}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/collections", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetCollections(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mentees")
	assert.Contains(t, w.Body.String(), "12")
	mockInfoService.AssertExpectations(t)
}

func TestAdminHandler_GetCollections_Error(t *testing.T) {
	mockInfoService := new(MockInfoService)
	handler := NewAdminHandler(mockInfoService)

	mockInfoService.
		On("Collections", mock.Anything).
		Return(nil, errors.New("connection lost"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/collections", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GetCollections(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockInfoService.AssertExpectations(t)
}
