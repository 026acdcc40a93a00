package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arklim/access-pass-service/internal/infra/config"
	"github.com/arklim/access-pass-service/internal/infra/security"
	httproutes "github.com/arklim/access-pass-service/internal/transport/http/routes"
	"github.com/arklim/access-pass-service/internal/usecase"
)

func testEngine(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewDevelopment()
	cfg := &config.AppConfig{App: config.AppSettings{Env: "test"}}

	manager, err := security.NewTokenManager("routes-secret", "access-pass-service", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	return httproutes.Register(httproutes.Dependencies{
		Config: cfg,
		Logger: logger,
		Services: httproutes.ServiceSet{
			Auth: usecase.NewAuthService(nil, manager),
		},
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := testEngine(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := testEngine(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := testEngine(t)

	paths := []string{
		"/auth/me",
		"/users",
		"/passes",
		"/passes/user",
		"/places",
		"/places/access/u1/p1",
		"/places/accessible/u1",
	}

	for _, path := range paths {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)

		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d, want 401", path, w.Code)
		}
	}
}

func TestTamperedTokenForbidden(t *testing.T) {
	r := testEngine(t)

	other, err := security.NewTokenManager("another-secret", "access-pass-service", 30*time.Minute)
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	token, err := other.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/passes", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}
