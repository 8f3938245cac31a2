package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func identityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identity())
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":  UserIDFromContext(c),
			"isGuest": IsGuest(c),
		})
	})
	router.OPTIONS("/whoami", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestIdentityAllowsOptionsWithoutHeaders(t *testing.T) {
	router := identityRouter()

	req := httptest.NewRequest(http.MethodOptions, "/whoami", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestIdentityRejectsMissingHeaders(t *testing.T) {
	router := identityRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestIdentityUserHeader(t *testing.T) {
	router := identityRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-User-Id", "user-123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if want := `"userId":"user-123"`; !strings.Contains(body, want) {
		t.Fatalf("expected %s in body, got %s", want, body)
	}
	if want := `"isGuest":false`; !strings.Contains(body, want) {
		t.Fatalf("expected %s in body, got %s", want, body)
	}
}

func TestIdentityGuestHeader(t *testing.T) {
	router := identityRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Guest-Id", "abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if want := `"userId":"guest:abc"`; !strings.Contains(body, want) {
		t.Fatalf("expected %s in body, got %s", want, body)
	}
	if want := `"isGuest":true`; !strings.Contains(body, want) {
		t.Fatalf("expected %s in body, got %s", want, body)
	}
}

func TestIdentityPrefersUserOverGuest(t *testing.T) {
	router := identityRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-User-Id", "user-123")
	req.Header.Set("X-Guest-Id", "abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if !strings.Contains(resp.Body.String(), `"userId":"user-123"`) {
		t.Fatalf("expected user identity to win, got %s", resp.Body.String())
	}
}
