package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"nutritional-planner/config"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newLookupTest spins up a mock FoodData Central server and a LookupService
// pointed at it. The hit counter exposes how many requests reached upstream.
func newLookupTest(t *testing.T, status int, body string) (LookupService, *httptest.Server, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	svc := NewLookupService(config.LookupConfig{
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Timeout:  2 * time.Second,
		CacheTTL: time.Minute,
	}, testLogger())

	return svc, server, &hits
}

const foodListBody = `[
	{"fdcId": 1, "description": "Cheddar cheese", "dataType": "Branded"},
	{"fdcId": 2, "description": "Whole milk", "dataType": "Branded"},
	{"fdcId": 3, "description": "Rolled oats", "dataType": "Branded"}
]`

func TestFetchFoods_Success(t *testing.T) {
	svc, _, _ := newLookupTest(t, http.StatusOK, foodListBody)

	foods, err := svc.FetchFoods(context.Background())
	if err != nil {
		t.Fatalf("FetchFoods returned error: %v", err)
	}
	if len(foods) != 3 {
		t.Fatalf("got %d foods, want 3", len(foods))
	}
	if foods[0].Description != "Cheddar cheese" {
		t.Errorf("foods[0].Description = %q, want %q", foods[0].Description, "Cheddar cheese")
	}
}

// TestFetchFoods_CachedSecondCall verifies the TTL cache short-circuits the
// second fetch so upstream sees exactly one request.
func TestFetchFoods_CachedSecondCall(t *testing.T) {
	svc, _, hits := newLookupTest(t, http.StatusOK, foodListBody)

	if _, err := svc.FetchFoods(context.Background()); err != nil {
		t.Fatalf("first FetchFoods returned error: %v", err)
	}
	if _, err := svc.FetchFoods(context.Background()); err != nil {
		t.Fatalf("second FetchFoods returned error: %v", err)
	}

	if got := hits.Load(); got != 1 {
		t.Errorf("upstream hit %d times, want 1 (second call should be cached)", got)
	}
}

func TestFetchFoods_UpstreamError(t *testing.T) {
	svc, _, _ := newLookupTest(t, http.StatusInternalServerError, `{"error":"boom"}`)

	_, err := svc.FetchFoods(context.Background())
	if !errors.Is(err, ErrLookupUnavailable) {
		t.Errorf("FetchFoods error = %v, want ErrLookupUnavailable", err)
	}
}

func TestFetchFoods_NoAPIKey(t *testing.T) {
	svc := NewLookupService(config.LookupConfig{
		BaseURL:  "http://localhost:0",
		Timeout:  time.Second,
		CacheTTL: time.Minute,
	}, testLogger())

	_, err := svc.FetchFoods(context.Background())
	if !errors.Is(err, ErrLookupUnavailable) {
		t.Errorf("FetchFoods error = %v, want ErrLookupUnavailable", err)
	}
}

// TestFetchFoods_Timeout verifies an expired caller deadline surfaces as
// ErrLookupUnavailable rather than hanging or leaking a transport error.
func TestFetchFoods_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	svc := NewLookupService(config.LookupConfig{
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Timeout:  2 * time.Second,
		CacheTTL: time.Minute,
	}, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.FetchFoods(ctx)
	if !errors.Is(err, ErrLookupUnavailable) {
		t.Errorf("FetchFoods error = %v, want ErrLookupUnavailable", err)
	}
}

// TestFetchFoods_TruncatesToPageSize verifies oversized upstream responses
// are clipped to the first five records.
func TestFetchFoods_TruncatesToPageSize(t *testing.T) {
	body := `[
		{"fdcId": 1, "description": "a"}, {"fdcId": 2, "description": "b"},
		{"fdcId": 3, "description": "c"}, {"fdcId": 4, "description": "d"},
		{"fdcId": 5, "description": "e"}, {"fdcId": 6, "description": "f"},
		{"fdcId": 7, "description": "g"}
	]`
	svc, _, _ := newLookupTest(t, http.StatusOK, body)

	foods, err := svc.FetchFoods(context.Background())
	if err != nil {
		t.Fatalf("FetchFoods returned error: %v", err)
	}
	if len(foods) != 5 {
		t.Errorf("got %d foods, want 5", len(foods))
	}
}
