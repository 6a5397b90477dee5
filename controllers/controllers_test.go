package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("код %d, ожидался 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("нечитаемый ответ: %v", err)
	}
	if body["status"] != "OK" {
		t.Errorf("status = %q, ожидалось OK", body["status"])
	}
}

func TestGetMetaHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/meta", nil)
	rec := httptest.NewRecorder()

	GetMetaHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("код %d, ожидался 200", rec.Code)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("нечитаемый ответ: %v", err)
	}
	for _, key := range []string{"company", "chair_colors", "categories", "rooms"} {
		if _, ok := body[key]; !ok {
			t.Errorf("в справочниках нет ключа %q", key)
		}
	}
}

func TestUpsertEventHandlerBadRequest(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"битый JSON", "{не json"},
		{"нечитаемая дата", `{"date":"03/06/2024","start_time":"09:00","end_time":"10:00","title":"X"}`},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(c.body))
		rec := httptest.NewRecorder()

		UpsertEventHandler(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: код %d, ожидался 400", c.name, rec.Code)
		}
	}
}

func TestCopyWeekHandlerBadRequest(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"пустой source_session_id", `{"target_date":"2024-06-10"}`},
		{"нечитаемая дата", `{"source_session_id":"2024-W23","target_date":"июнь"}`},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/copy-week", strings.NewReader(c.body))
		rec := httptest.NewRecorder()

		CopyWeekHandler(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: код %d, ожидался 400", c.name, rec.Code)
		}
	}
}
