package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arklim/access-pass-service/internal/infra/security"
	"github.com/arklim/access-pass-service/internal/usecase"
)

func authRouter(t *testing.T, service *usecase.AuthService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(EnrichContext(), RequireAuth(service))
	router.GET("/protected", func(c *gin.Context) {
		userID, _ := GetAuthenticatedUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	manager, err := security.NewTokenManager("middleware-secret", "access-pass-service", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	service := usecase.NewAuthService(nil, manager)
	router := authRouter(t, service)

	validToken, err := manager.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	otherManager, err := security.NewTokenManager("different-secret", "access-pass-service", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	forgedToken, err := otherManager.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	expiredManager, err := security.NewTokenManager("middleware-secret", "access-pass-service", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	past := time.Now().Add(-2 * time.Hour)
	expiredManager.WithClock(func() time.Time { return past })
	expiredToken, err := expiredManager.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc123", wantStatus: http.StatusForbidden},
		{name: "scheme without token", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer   ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusForbidden},
		{name: "forged signature", header: "Bearer " + forgedToken, wantStatus: http.StatusForbidden},
		{name: "expired token", header: "Bearer " + expiredToken, wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + validToken, wantStatus: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tc.wantStatus, rr.Body.String())
			}
		})
	}
}
