package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/rifqialifauzan/football-data-service/internal/usecase"
)

type fetchResult struct {
	payload map[string]any
	err     error
}

func newScriptedServer(t *testing.T, calls *atomic.Int32, statuses []int, body string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Auth-Token"); got != "secret-token" {
			t.Errorf("expected auth token header, got %q", got)
		}

		idx := int(calls.Add(1)) - 1
		if idx >= len(statuses) {
			idx = len(statuses) - 1
		}

		status := statuses[idx]
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(body))
		}
	}))
}

func newTestClient(srv *httptest.Server, clk clockwork.Clock, maxTries int) *Client {
	return NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		Token:      "secret-token",
		Clock:      clk,
		Retry: RetryPolicy{
			MaxTries: maxTries,
			Delays:   DefaultRetryPolicy().Delays,
		},
	})
}

func TestClient_Competition_RetriesThrottledThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := newScriptedServer(t, &calls, []int{
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusOK,
	}, `{"id": 2021, "name": "Premier League", "code": "PL"}`)
	defer srv.Close()

	clk := clockwork.NewFakeClock()
	client := newTestClient(srv, clk, 5)

	done := make(chan fetchResult, 1)
	go func() {
		payload, err := client.Competition(context.Background(), "PL")
		done <- fetchResult{payload: payload, err: err}
	}()

	// Two 429 responses mean two backoff waits before the 200.
	for i := 0; i < 2; i++ {
		clk.BlockUntil(1)
		clk.Advance(time.Minute)
	}

	res := <-done
	if res.err != nil {
		t.Fatalf("expected success after retries, got %v", res.err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", got)
	}
	if name, _ := res.payload["name"].(string); name != "Premier League" {
		t.Fatalf("expected decoded payload, got %v", res.payload)
	}
}

func TestClient_Competition_ExhaustsRetriesOnServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := newScriptedServer(t, &calls, []int{
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		http.StatusInternalServerError,
		http.StatusInternalServerError,
	}, "")
	defer srv.Close()

	clk := clockwork.NewFakeClock()
	client := newTestClient(srv, clk, 5)

	done := make(chan fetchResult, 1)
	go func() {
		payload, err := client.Competition(context.Background(), "PL")
		done <- fetchResult{payload: payload, err: err}
	}()

	// Five attempts, four waits in between.
	for i := 0; i < 4; i++ {
		clk.BlockUntil(1)
		clk.Advance(10 * time.Second)
	}

	res := <-done
	if !errors.Is(res.err, usecase.ErrRetriesExhausted) {
		t.Fatalf("expected ErrRetriesExhausted, got %v", res.err)
	}
	if got := calls.Load(); got != 5 {
		t.Fatalf("expected exactly 5 attempts, got %d", got)
	}
}

func TestClient_Competition_FailsImmediatelyOnNonRetryableStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := newScriptedServer(t, &calls, []int{http.StatusNotFound}, "")
	defer srv.Close()

	client := newTestClient(srv, clockwork.NewFakeClock(), 5)

	_, err := client.Competition(context.Background(), "NOPE")
	if !errors.Is(err, usecase.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError in chain, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", statusErr.StatusCode)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly 1 attempt, got %d", got)
	}
}

func TestClient_CompetitionTeams_MapsSquadAndCoach(t *testing.T) {
	t.Parallel()

	payload := `{
		"count": 2,
		"teams": [
			{
				"id": 57,
				"name": "Arsenal FC",
				"shortName": "Arsenal",
				"tla": "ARS",
				"address": "75 Drayton Park London N5 1BU",
				"area": {"id": 2072, "name": "England"},
				"squad": [
					{"id": 3141, "name": "Bukayo Saka", "position": "Right Winger", "dateOfBirth": "2001-09-05", "nationality": "England", "shirtNumber": 7}
				],
				"coach": {"id": 11604, "name": "Mikel Arteta", "firstName": "Mikel", "lastName": "Arteta", "nationality": "Spain", "contract": {"start": "2019-12", "until": "2027-06"}}
			},
			{
				"id": 63,
				"name": "Fulham FC",
				"shortName": "Fulham",
				"tla": "FUL",
				"area": {"id": 2072, "name": "England"},
				"squad": [],
				"coach": {"id": 11603, "name": "Marco Silva", "nationality": "Portugal"}
			}
		]
	}`

	var calls atomic.Int32
	srv := newScriptedServer(t, &calls, []int{http.StatusOK}, payload)
	defer srv.Close()

	client := newTestClient(srv, clockwork.NewFakeClock(), 5)

	teams, err := client.CompetitionTeams(context.Background(), "PL", "")
	if err != nil {
		t.Fatalf("fetch teams failed: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}

	arsenal := teams[0]
	if arsenal.ID != 57 || arsenal.AreaName != "England" {
		t.Fatalf("unexpected team mapping: %+v", arsenal)
	}
	if len(arsenal.Squad) != 1 {
		t.Fatalf("expected 1 squad member, got %d", len(arsenal.Squad))
	}
	if arsenal.Squad[0].ShirtNumber == nil || *arsenal.Squad[0].ShirtNumber != 7 {
		t.Fatalf("expected shirt number 7, got %v", arsenal.Squad[0].ShirtNumber)
	}

	fulham := teams[1]
	if len(fulham.Squad) != 0 {
		t.Fatalf("expected empty squad, got %d members", len(fulham.Squad))
	}
	if fulham.Coach == nil || fulham.Coach.Name != "Marco Silva" {
		t.Fatalf("expected coach mapped, got %+v", fulham.Coach)
	}
}
