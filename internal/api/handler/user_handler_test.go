package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/authdash/dashboard-api/internal/api/middleware"
	"github.com/authdash/dashboard-api/internal/core/domain"
)

func TestUserHandler_Me(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &domain.User{
		ID:           7,
		Email:        "a@x.com",
		Username:     "alice",
		PasswordHash: "digest",
	})

	if err := NewUserHandler().Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(7) || resp["email"] != "a@x.com" || resp["username"] != "alice" {
		t.Fatalf("unexpected projection: %+v", resp)
	}
	if len(resp) != 3 {
		t.Fatalf("projection must carry exactly id, email, username: %+v", resp)
	}
}

func TestUserHandler_Me_NoUserInContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewUserHandler().Me(c)
	if err == nil {
		t.Fatalf("expected error without context user")
	}

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
