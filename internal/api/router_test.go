package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
)

// TestRouter exercises the wired stack end to end: routing, the identity
// gate, validation, the central error handler and the repositories (over
// sqlmock). A single router is shared because the prometheus middleware
// registers collectors on the default registry.
func TestRouter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	e := NewRouter(db, zerolog.Nop())

	identified := func(req *http.Request) *http.Request {
		req.AddCookie(&http.Cookie{Name: "userId", Value: "11111111-2222-3333-4444-555555555555"})
		return req
	}

	t.Run("meal routes reject missing identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/meals", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Action Unauthorized") {
			t.Fatalf("unexpected body: %q", rec.Body.String())
		}
	})

	t.Run("registration sets the identity cookie", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, login, created_at FROM users WHERE login = $1`)).
			WithArgs("alice").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (id, name, login, created_at) VALUES ($1, $2, $3, $4)`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Alice","login":"alice"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		cookies := rec.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != "userId" || cookies[0].Value == "" {
			t.Fatalf("expected identity cookie, got %+v", cookies)
		}
	})

	t.Run("registration conflict", func(t *testing.T) {
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, login, created_at FROM users WHERE login = $1`)).
			WithArgs("alice").
			WillReturnRows(
				sqlmock.NewRows([]string{"id", "name", "login", "created_at"}).
					AddRow("uid-1", "Alice", "alice", created),
			)

		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Bob","login":"alice"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["message"] != "User already exists" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("metrics route wins over the id parameter", func(t *testing.T) {
		dt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY datetime ASC NULLS LAST`)).
			WillReturnRows(
				sqlmock.NewRows([]string{"id", "name", "description", "datetime", "is_in_diet", "user_id"}).
					AddRow("mid-1", "Lunch", "Rice", dt, true, "uid-1").
					AddRow("mid-2", "Snack", "Cake", dt.Add(time.Hour), false, "uid-1").
					AddRow("mid-3", "Dinner", "Fish", dt.Add(2*time.Hour), true, "uid-1"),
			)

		req := identified(httptest.NewRequest(http.MethodGet, "/meals/metrics", nil))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var body map[string]int
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["totalMealsRegistered"] != 3 || body["bestSequenceInDiet"] != 1 {
			t.Fatalf("unexpected metrics: %v", body)
		}
	})

	t.Run("malformed meal id", func(t *testing.T) {
		req := identified(httptest.NewRequest(http.MethodGet, "/meals/not-a-uuid", nil))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "id must be a valid uuid") {
			t.Fatalf("unexpected body: %q", rec.Body.String())
		}
	})

	t.Run("delete of an absent meal still succeeds", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM meals WHERE id = $1 AND user_id = $2`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		req := identified(httptest.NewRequest(http.MethodDelete, "/meals/aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", nil))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("sql expectations: %v", err)
	}
}
