package httpserver

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/sportarb/oddsarb/internal/arbitrage"
	"github.com/sportarb/oddsarb/internal/odds"
	"go.uber.org/zap"
)

// OpportunitiesHandler serves the scan API: fetch current odds, run the
// arbitrage engine over them and report what it found.
type OpportunitiesHandler struct {
	collector *odds.Collector
	engine    *arbitrage.Engine
	history   *arbitrage.History
	sports    []string
	logger    *zap.Logger
}

// NewOpportunitiesHandler creates a new opportunities handler.
func NewOpportunitiesHandler(
	collector *odds.Collector,
	engine *arbitrage.Engine,
	history *arbitrage.History,
	sports []string,
	logger *zap.Logger,
) *OpportunitiesHandler {
	return &OpportunitiesHandler{
		collector: collector,
		engine:    engine,
		history:   history,
		sports:    sports,
		logger:    logger,
	}
}

// OpportunitiesResponse is the JSON body for GET /api/v1/opportunities.
type OpportunitiesResponse struct {
	Sports        []string                 `json:"sports"`
	GamesScanned  int                      `json:"games_scanned"`
	Opportunities []*arbitrage.Opportunity `json:"opportunities"`
}

// ErrorResponse is the JSON body for error results.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleOpportunities runs a scan across the requested sport, or every
// configured sport when the sport query parameter is absent. Detected
// opportunities are appended to the shared history.
func (h *OpportunitiesHandler) HandleOpportunities(w http.ResponseWriter, r *http.Request) {
	sports := h.sports
	if sport := r.URL.Query().Get("sport"); sport != "" {
		sports = []string{sport}
	}

	resp := OpportunitiesResponse{
		Sports:        sports,
		Opportunities: make([]*arbitrage.Opportunity, 0),
	}

	for _, sport := range sports {
		games, err := h.collector.Games(r.Context(), sport)
		if err != nil {
			h.logger.Error("games-fetch-failed",
				zap.String("sport", sport),
				zap.Error(err))
			writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "failed to fetch odds for " + sport})
			return
		}

		resp.GamesScanned += len(games)
		for _, opp := range h.engine.ScanAll(games) {
			resp.Opportunities = append(resp.Opportunities, opp)
			if h.history != nil {
				h.history.Add(opp)
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSummary reports aggregate statistics over every opportunity recorded
// since the process started.
func (h *OpportunitiesHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeJSON(w, http.StatusOK, arbitrage.NewHistory().Summary())
		return
	}

	writeJSON(w, http.StatusOK, h.history.Summary())
}

// HandleSports lists the sports available from the odds provider.
func (h *OpportunitiesHandler) HandleSports(w http.ResponseWriter, r *http.Request) {
	sports, err := h.collector.Sports(r.Context())
	if err != nil {
		h.logger.Error("sports-fetch-failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "failed to fetch sports"})
		return
	}

	writeJSON(w, http.StatusOK, sports)
}

// StakesRequest is the JSON body for POST /api/v1/stakes.
type StakesRequest struct {
	Opportunity *arbitrage.Opportunity `json:"opportunity"`
	Bankroll    float64                `json:"bankroll"`
}

// HandleStakes sizes an opportunity against a bankroll.
func (h *OpportunitiesHandler) HandleStakes(w http.ResponseWriter, r *http.Request) {
	var req StakesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Opportunity == nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "opportunity is required"})
		return
	}

	plan, err := arbitrage.AllocateStakes(req.Opportunity, req.Bankroll)
	if err != nil {
		if errors.Is(err, arbitrage.ErrInvalidBankroll) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("stake-allocation-failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "stake allocation failed"})
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
