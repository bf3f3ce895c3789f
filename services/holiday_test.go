package services

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func newTestHolidayService(baseURL string) *HolidayService {
	return &HolidayService{
		client:  resty.New().SetBaseURL(baseURL),
		country: "ID",
		years:   make(map[int]map[string]bool),
	}
}

func TestIsHolidayCachesPerYear(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path != "/PublicHolidays/2026/ID" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"date":"2026-08-17","localName":"Hari Kemerdekaan","name":"Independence Day"}]`))
	}))
	defer srv.Close()

	svc := newTestHolidayService(srv.URL)

	independence := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	got, err := svc.IsHoliday(independence)
	if err != nil {
		t.Fatalf("IsHoliday returned error: %v", err)
	}
	if !got {
		t.Fatalf("expected %s to be a holiday", independence.Format("2006-01-02"))
	}

	ordinary := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)
	got, err = svc.IsHoliday(ordinary)
	if err != nil {
		t.Fatalf("IsHoliday returned error: %v", err)
	}
	if got {
		t.Fatalf("expected %s to be an ordinary day", ordinary.Format("2006-01-02"))
	}

	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected one upstream request for the year, got %d", n)
	}
}

func TestIsHolidayDegradesWhenAPIFails(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := newTestHolidayService(srv.URL)

	day := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	got, err := svc.IsHoliday(day)
	if err != nil {
		t.Fatalf("a failing API must degrade, not error: %v", err)
	}
	if got {
		t.Fatalf("degraded lookup must report no holiday")
	}

	// The failure result is cached; the flapping API is not re-hit.
	if _, err := svc.IsHoliday(day.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("IsHoliday returned error: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected one upstream request despite the failure, got %d", n)
	}
}
