package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newTestRouter(repo *MockUserRepository, actingUserID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	v1 := router.Group("/api/v1")

	acting := v1.Group("/")
	acting.Use(func(c *gin.Context) {
		c.Set("user_id", actingUserID)
		c.Next()
	})

	NewHandler(NewService(repo, stubJWT{})).RegisterRoutes(v1, acting)
	return router
}

func TestHandler_Me_WrappedNotFound(t *testing.T) {
	// a wrapped record-not-found must still map to 404, not fall
	// through to the 500 branch
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, int64(7)).
		Return(nil, fmt.Errorf("load user: %w", gorm.ErrRecordNotFound))

	router := newTestRouter(repo, 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandler_Signup_Conflict(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("ExistsByEmail", mock.Anything, "sarah.k@campus.edu").Return(true, nil)

	router := newTestRouter(repo, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/auth/signup",
		strings.NewReader(`{"email":"sarah.k@campus.edu","name":"Sarah K.","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}
