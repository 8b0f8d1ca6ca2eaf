package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const testSecret = "test-secret"

func newIdentityRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	r.Use(IdentityMiddleware(secret))
	r.GET("/whoami", func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		companyID, _ := GetCompanyIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "company_id": companyID})
	})
	return r
}

func signToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestIdentityMiddleware_Headers(t *testing.T) {
	r := newIdentityRouter("")

	tests := []struct {
		name       string
		userID     string
		companyID  string
		wantStatus int
	}{
		{name: "both headers", userID: "u-1", companyID: "co-1", wantStatus: http.StatusOK},
		{name: "missing user", companyID: "co-1", wantStatus: http.StatusUnauthorized},
		{name: "missing company", userID: "u-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderUserID, tt.userID)
			}
			if tt.companyID != "" {
				req.Header.Set(HeaderCompanyID, tt.companyID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"user_id":"u-1","company_id":"co-1"}`, w.Body.String())
			}
		})
	}
}

func TestIdentityMiddleware_BearerVerification(t *testing.T) {
	r := newIdentityRouter(testSecret)

	tests := []struct {
		name       string
		auth       string
		wantStatus int
	}{
		{name: "valid token", auth: "Bearer " + signToken(t, "u-1", time.Now().Add(time.Hour)), wantStatus: http.StatusOK},
		{name: "subject mismatch", auth: "Bearer " + signToken(t, "u-2", time.Now().Add(time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "expired", auth: "Bearer " + signToken(t, "u-1", time.Now().Add(-time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "missing", auth: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed", auth: "Token abc", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set(HeaderUserID, "u-1")
			req.Header.Set(HeaderCompanyID, "co-1")
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	r := newIdentityRouter("")
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	req.Header.Set(HeaderUserID, "u-1")
	req.Header.Set(HeaderCompanyID, "co-1")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	instance := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 2})
	r := gin.New()
	r.Use(RateLimit(instance))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}
