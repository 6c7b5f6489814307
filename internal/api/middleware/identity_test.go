package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func gateRequest(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/meals", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	var injected string
	next := func(c echo.Context) error {
		called = true
		injected, _ = c.Get(ContextUserID).(string)
		return c.NoContent(http.StatusOK)
	}

	if err := RequireUser()(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, called, injected
}

func TestRequireUser_MissingCookie(t *testing.T) {
	rec, called, _ := gateRequest(t, nil)

	if called {
		t.Fatalf("handler must not run without identity cookie")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["error"] != "Action Unauthorized" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRequireUser_EmptyCookieValue(t *testing.T) {
	rec, called, _ := gateRequest(t, &http.Cookie{Name: UserIDCookie, Value: ""})

	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected empty identifier to be rejected, code=%d called=%v", rec.Code, called)
	}
}

func TestRequireUser_InjectsIdentifier(t *testing.T) {
	rec, called, injected := gateRequest(t, &http.Cookie{Name: UserIDCookie, Value: "user-123"})

	if !called {
		t.Fatalf("expected handler to run")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if injected != "user-123" {
		t.Fatalf("expected identifier injected into context, got %q", injected)
	}
}

func TestRequireUser_PresenceOnly(t *testing.T) {
	// The gate is a capability check: any non-empty identifier passes,
	// existence is never verified.
	_, called, injected := gateRequest(t, &http.Cookie{Name: UserIDCookie, Value: "never-registered"})
	if !called || injected != "never-registered" {
		t.Fatalf("expected arbitrary identifier to pass the gate")
	}
}
