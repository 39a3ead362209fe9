package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/userhub/internal/domain/model"
	"github.com/polkiloo/userhub/internal/health"
	"github.com/polkiloo/userhub/internal/server/http/dto"
	"github.com/polkiloo/userhub/internal/server/http/handlers"
	"github.com/polkiloo/userhub/internal/server/http/middleware"
	"github.com/polkiloo/userhub/internal/storage/memory"
	testhelpers "github.com/polkiloo/userhub/internal/test"
	"github.com/polkiloo/userhub/internal/usecase"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	users := usecase.NewUserUseCase(memory.New())
	engine := Setup(users, []health.Probe{{Name: "storage", Pinger: testhelpers.PingerStub{}}}, logger)
	gin.SetMode(gin.TestMode)
	return engine
}

func serve(engine *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	engine := newTestEngine(t)

	resp := serve(engine, http.MethodGet, "/api/users", nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %q", resp.Code, resp.Body.String())
	}

	resp = serve(engine, http.MethodPost, "/api/users", []byte(`{"name":"Alice","email":"alice@example.com"}`))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for create, got %d", resp.Code)
	}
	var created dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created user: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}

	resp = serve(engine, http.MethodPut, "/api/users/1", []byte(`{"name":"Bob","email":"bob@example.com"}`))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for update, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodGet, "/api/users/1", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for get, got %d", resp.Code)
	}
	var fetched dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("failed to decode user: %v", err)
	}
	if fetched.Name != "Bob" {
		t.Fatalf("expected updated name, got %q", fetched.Name)
	}

	resp = serve(engine, http.MethodDelete, "/api/users/1", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for delete, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodDelete, "/api/users/1", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for second delete, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodGet, "/api/users/42", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown user, got %d", resp.Code)
	}
}

func TestSetupHealthRoutes(t *testing.T) {
	engine := newTestEngine(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp := serve(engine, http.MethodGet, path, nil)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, resp.Code)
		}
	}
}

func TestSetupAssignsRequestID(t *testing.T) {
	engine := newTestEngine(t)

	resp := serve(engine, http.MethodGet, "/healthz", nil)
	if resp.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatal("expected request id header")
	}
}

func TestSetupAcceptsGzipBody(t *testing.T) {
	engine := newTestEngine(t)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"name":"Carol"}`)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/users", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for gzip body, got %d", resp.Code)
	}
}

func TestSetupRejectsOversizedPlainBody(t *testing.T) {
	engine := newTestEngine(t)

	name := strings.Repeat("a", maxRequestBody)
	resp := serve(engine, http.MethodPost, "/api/users", []byte(`{"name":"`+name+`"}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for oversized body, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodGet, "/api/users", nil)
	if resp.Body.String() != "[]" {
		t.Fatalf("expected nothing stored, got %q", resp.Body.String())
	}
}

func TestSetupPutUnknownUserDoesNotCreate(t *testing.T) {
	engine := newTestEngine(t)

	resp := serve(engine, http.MethodPut, "/api/users/7", []byte(`{"name":"Ghost"}`))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodGet, "/api/users", nil)
	if resp.Body.String() != "[]" {
		t.Fatalf("expected nothing stored, got %q", resp.Body.String())
	}
}

func TestNewRouterUsesUseCase(t *testing.T) {
	users := usecase.NewUserUseCase(memory.New())
	if _, err := users.Save(context.Background(), &model.User{Name: "Alice"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	engine := newRouter(routerParams{
		Users:  users,
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})

	resp := serve(engine, http.MethodGet, "/api/users/1", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

var _ handlers.UserService = (*usecase.UserUseCase)(nil)
var _ handlers.UserService = testhelpers.UserServiceStub{}
