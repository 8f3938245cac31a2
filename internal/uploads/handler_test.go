package uploads

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"

	"resume-match/internal/shared/server/middleware"
)

func testHandler() *Handler {
	cfg := aws.Config{
		Region:      "us-east-1",
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider("AKID", "SECRET", "")),
	}
	client := s3.NewFromConfig(cfg)
	return NewHandler(s3.NewPresignClient(client), "test-bucket", "documents")
}

func testRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Identity())
	api := router.Group("/api/v1")
	h.RegisterRoutes(api)
	return router
}

func doPresign(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/presign", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestPresignHappyPath(t *testing.T) {
	router := testRouter(testHandler())

	resp := doPresign(t, router, presignRequest{
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		SizeBytes:   1024,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out presignResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.UploadURL == "" {
		t.Fatal("expected upload url")
	}
	if !strings.HasPrefix(out.S3Key, "documents/") {
		t.Fatalf("expected key under prefix, got %s", out.S3Key)
	}
	if !strings.HasSuffix(out.S3Key, "-resume.pdf") {
		t.Fatalf("expected sanitized file name suffix, got %s", out.S3Key)
	}
	if out.ExpiresInSeconds != int64(presignExpires.Seconds()) {
		t.Fatalf("unexpected expiry: %d", out.ExpiresInSeconds)
	}

	parsed, err := url.Parse(out.UploadURL)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	if signed := parsed.Query().Get("X-Amz-SignedHeaders"); !strings.Contains(signed, "host") {
		t.Fatalf("expected host in signed headers: %s", signed)
	}
}

func TestPresignValidation(t *testing.T) {
	router := testRouter(testHandler())

	cases := []struct {
		name string
		req  presignRequest
	}{
		{"missing file name", presignRequest{ContentType: "application/pdf", SizeBytes: 10}},
		{"disallowed content type", presignRequest{FileName: "a.txt", ContentType: "text/plain", SizeBytes: 10}},
		{"zero size", presignRequest{FileName: "a.pdf", ContentType: "application/pdf"}},
		{"oversize", presignRequest{FileName: "a.pdf", ContentType: "application/pdf", SizeBytes: maxUploadBytes + 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doPresign(t, router, tc.req)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
			}
		})
	}
}

func TestPresignRequiresIdentity(t *testing.T) {
	router := testRouter(testHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/presign", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
