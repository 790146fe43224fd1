package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSecret = "super-secret-admin-key"

func gateRig(secret string) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	r.POST("/guarded", AdminAuth(secret), func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r, &reached
}

func TestAdminAuthRejectsMissingKey(t *testing.T) {
	r, reached := gateRig(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached, "handler must not run after a rejected gate")
}

func TestAdminAuthRejectsWrongLengthKey(t *testing.T) {
	r, reached := gateRig(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set(HeaderAdminKey, "short")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAdminAuthRejectsSameLengthMismatch(t *testing.T) {
	r, reached := gateRig(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set(HeaderAdminKey, "super-secret-admin-kez")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAdminAuthRejectsWhenNoSecretConfigured(t *testing.T) {
	// An unset server secret must never let an empty key through.
	r, reached := gateRig("")

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set(HeaderAdminKey, "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAdminAuthPassesMatchingKey(t *testing.T) {
	r, reached := gateRig(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set(HeaderAdminKey, testSecret)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func TestAdminAuthRejectionBodyCarriesNoDetail(t *testing.T) {
	r, _ := gateRig(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set(HeaderAdminKey, "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
}
