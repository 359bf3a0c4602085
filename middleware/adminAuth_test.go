package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"swimly/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admin/timeslots", AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAdminAuthMiddleware(t *testing.T) {
	prev := config.AppConfig.AdminAPIToken
	config.AppConfig.AdminAPIToken = "admin-secret"
	defer func() { config.AppConfig.AdminAPIToken = prev }()

	router := adminTestRouter()

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"valid token", "Bearer admin-secret", http.StatusOK},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic admin-secret", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/timeslots", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestAdminAuthMiddlewareRejectsWhenUnconfigured(t *testing.T) {
	prev := config.AppConfig.AdminAPIToken
	config.AppConfig.AdminAPIToken = ""
	defer func() { config.AppConfig.AdminAPIToken = prev }()

	router := adminTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/admin/timeslots", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
