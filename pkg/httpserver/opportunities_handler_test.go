package httpserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sportarb/oddsarb/internal/arbitrage"
)

func TestHandleOpportunities_SingleSport(t *testing.T) {
	srv, _, history := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities?sport=americanfootball_nfl", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp OpportunitiesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.GamesScanned != 5 {
		t.Errorf("expected 5 games scanned, got %d", resp.GamesScanned)
	}
	if len(resp.Opportunities) == 0 {
		t.Fatal("expected opportunities from mock odds")
	}

	// Sorted by profit descending.
	for i := 1; i < len(resp.Opportunities); i++ {
		if resp.Opportunities[i].ProfitFraction > resp.Opportunities[i-1].ProfitFraction {
			t.Error("expected opportunities sorted by profit descending")
		}
	}

	if history.Len() != len(resp.Opportunities) {
		t.Errorf("expected history to record %d opportunities, got %d",
			len(resp.Opportunities), history.Len())
	}
}

func TestHandleOpportunities_AllConfiguredSports(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/opportunities", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp OpportunitiesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Sports) != 2 {
		t.Errorf("expected 2 sports, got %v", resp.Sports)
	}
	if resp.GamesScanned != 10 {
		t.Errorf("expected 10 games scanned across both sports, got %d", resp.GamesScanned)
	}
}

func TestHandleSummary(t *testing.T) {
	srv, _, history := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var empty arbitrage.Summary
	if err := json.NewDecoder(rec.Body).Decode(&empty); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if empty.TotalOpportunities != 0 {
		t.Errorf("expected empty summary, got %d opportunities", empty.TotalOpportunities)
	}

	history.Add(arbitrage.CreateTestOpportunity("game-1", "NFL"))
	history.Add(arbitrage.CreateTestOpportunity("game-2", "NBA"))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var summary arbitrage.Summary
	if err := json.NewDecoder(rec.Body).Decode(&summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if summary.TotalOpportunities != 2 {
		t.Errorf("expected 2 opportunities, got %d", summary.TotalOpportunities)
	}
	if summary.BySport["NFL"] != 1 || summary.BySport["NBA"] != 1 {
		t.Errorf("expected one opportunity per sport, got %v", summary.BySport)
	}
}

func TestHandleSports(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sports", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var sports []struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&sports); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(sports) != 4 {
		t.Errorf("expected 4 mock sports, got %d", len(sports))
	}
}

func TestHandleStakes(t *testing.T) {
	srv, _, _ := newTestServer(t)

	opp := arbitrage.CreateTestOpportunity("game-1", "NFL")
	body, _ := json.Marshal(StakesRequest{Opportunity: opp, Bankroll: 1000.0})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stakes", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var plan arbitrage.StakePlan
	if err := json.NewDecoder(rec.Body).Decode(&plan); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if plan.TotalStaked < 999.99 || plan.TotalStaked > 1000.01 {
		t.Errorf("expected total staked ~1000, got %f", plan.TotalStaked)
	}
	if plan.ExpectedProfit <= 0 {
		t.Errorf("expected positive profit, got %f", plan.ExpectedProfit)
	}
}

func TestHandleStakes_InvalidBankroll(t *testing.T) {
	srv, _, _ := newTestServer(t)

	opp := arbitrage.CreateTestOpportunity("game-1", "NFL")

	for _, bankroll := range []float64{0, -100} {
		body, _ := json.Marshal(StakesRequest{Opportunity: opp, Bankroll: bankroll})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/stakes", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("bankroll %f: expected 400, got %d", bankroll, rec.Code)
		}
	}
}

func TestHandleStakes_BadRequest(t *testing.T) {
	srv, _, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed-json", "{not json"},
		{"missing-opportunity", `{"bankroll": 1000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/stakes", bytes.NewReader([]byte(tt.body)))
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}
