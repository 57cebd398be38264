package cfbd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/college-fantasy/internal/usecase"
)

const gamesJSON = `[
  {"id":1,"season":2024,"week":1,"seasonType":"regular","startDate":"2024-08-24T16:00:00.000Z","startTimeTBD":false,"homeTeam":"Georgia Tech","awayTeam":"Florida State"},
  {"id":2,"season":2024,"week":1,"seasonType":"regular","startDate":"2024-08-31T19:30:00.000Z","startTimeTBD":true,"homeTeam":"Alabama","awayTeam":"Western Kentucky"},
  {"id":3,"season":2024,"week":16,"seasonType":"postseason","startDate":"2024-12-21T01:00:00.000Z","homeTeam":"Notre Dame","awayTeam":"Indiana"},
  {"id":4,"season":2024,"week":2,"season_type":"regular","start_date":"2024-09-07T23:30:00.000Z","home_team":"Texas","away_team":"Michigan"}
]`

func TestClient_ListCollegiateGames(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games" || r.URL.Query().Get("year") != "2024" || r.URL.Query().Get("seasonType") != "regular" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(gamesJSON))
	}))
	defer srv.Close()

	client, err := NewClient(ClientConfig{BaseURL: srv.URL, Token: "secret", HTTPClient: &http.Client{Timeout: 5 * time.Second}})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	games, err := client.ListCollegiateGames(context.Background(), 2024)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("expected postseason game dropped, got %d", len(games))
	}
	want := time.Date(2024, time.August, 24, 16, 0, 0, 0, time.UTC)
	if games[0].Kickoff == nil || !games[0].Kickoff.Equal(want) {
		t.Fatalf("unexpected kickoff: %v", games[0].Kickoff)
	}
	if games[1].Kickoff != nil {
		t.Fatalf("expected TBD kickoff to be nil, got %v", games[1].Kickoff)
	}
	if games[2].HomeRaw != "Texas" || games[2].Week != 2 || games[2].Kickoff == nil {
		t.Fatalf("legacy payload not decoded: %+v", games[2])
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, want: usecase.ErrNotYetAvailable},
		{name: "empty season", status: http.StatusOK, body: "[]", want: usecase.ErrNotYetAvailable},
		{name: "server error", status: http.StatusServiceUnavailable, want: usecase.ErrTransport},
		{name: "rate limited", status: http.StatusTooManyRequests, want: usecase.ErrTransport},
		{name: "bad token", status: http.StatusUnauthorized, want: usecase.ErrDependencyUnavailable},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client, err := NewClient(ClientConfig{BaseURL: srv.URL, HTTPClient: &http.Client{Timeout: 5 * time.Second}})
			if err != nil {
				t.Fatalf("new client: %v", err)
			}
			if _, err := client.ListCollegiateGames(context.Background(), 2030); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client, err := NewClient(ClientConfig{BaseURL: srv.URL, HTTPClient: &http.Client{Timeout: time.Second}})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.ListCollegiateGames(context.Background(), 2024); !errors.Is(err, usecase.ErrTransport) {
		t.Fatalf("expected ErrTransport for closed server, got %v", err)
	}
}
