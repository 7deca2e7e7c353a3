package odds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client is an HTTP client for The Odds API v4.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new odds provider client.
func NewClient(baseURL string, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Provider payload shapes. The API nests outcome prices under
// bookmakers -> markets -> outcomes; only the "h2h" market is consumed.
type apiEvent struct {
	ID           string         `json:"id"`
	SportKey     string         `json:"sport_key"`
	SportTitle   string         `json:"sport_title"`
	CommenceTime string         `json:"commence_time"`
	HomeTeam     string         `json:"home_team"`
	AwayTeam     string         `json:"away_team"`
	Bookmakers   []apiBookmaker `json:"bookmakers"`
}

type apiBookmaker struct {
	Key     string      `json:"key"`
	Title   string      `json:"title"`
	Markets []apiMarket `json:"markets"`
}

type apiMarket struct {
	Key      string       `json:"key"`
	Outcomes []apiOutcome `json:"outcomes"`
}

type apiOutcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FetchSports fetches the list of available sports.
func (c *Client) FetchSports(ctx context.Context) ([]Sport, error) {
	params := url.Values{}
	params.Add("apiKey", c.apiKey)

	body, err := c.get(ctx, fmt.Sprintf("%s/sports?%s", c.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}

	var sports []Sport
	err = json.Unmarshal(body, &sports)
	if err != nil {
		return nil, fmt.Errorf("unmarshal sports: %w", err)
	}

	return sports, nil
}

// FetchGames fetches head-to-head odds for a sport and flattens the provider
// payload into Games. Decimal format is requested explicitly, so every quote
// is tagged FormatDecimal; non-h2h markets are dropped here so the engine
// never sees spreads or totals.
func (c *Client) FetchGames(ctx context.Context, sport string, regions string) ([]Game, error) {
	params := url.Values{}
	params.Add("apiKey", c.apiKey)
	params.Add("regions", regions)
	params.Add("markets", "h2h")
	params.Add("oddsFormat", "decimal")

	requestURL := fmt.Sprintf("%s/sports/%s/odds?%s", c.baseURL, url.PathEscape(sport), params.Encode())

	c.logger.Debug("fetching-odds",
		zap.String("sport", sport),
		zap.String("regions", regions))

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var events []apiEvent
	err = json.Unmarshal(body, &events)
	if err != nil {
		return nil, fmt.Errorf("unmarshal odds: %w", err)
	}

	games := make([]Game, 0, len(events))
	for _, ev := range events {
		games = append(games, flattenEvent(ev))
	}

	c.logger.Debug("fetched-odds",
		zap.String("sport", sport),
		zap.Int("games", len(games)))

	return games, nil
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "oddsarb/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		FetchErrorsTotal.Inc()
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		FetchErrorsTotal.Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		FetchErrorsTotal.Inc()
		return nil, fmt.Errorf("read response body: %w", err)
	}

	FetchesTotal.WithLabelValues("api").Inc()

	return body, nil
}

func flattenEvent(ev apiEvent) Game {
	game := Game{
		ID:           ev.ID,
		Sport:        ev.SportTitle,
		HomeTeam:     ev.HomeTeam,
		AwayTeam:     ev.AwayTeam,
		CommenceTime: ev.CommenceTime,
	}

	for _, bk := range ev.Bookmakers {
		name := bk.Title
		if name == "" {
			name = bk.Key
		}

		for _, mkt := range bk.Markets {
			if mkt.Key != "h2h" {
				continue
			}

			for _, out := range mkt.Outcomes {
				game.Quotes = append(game.Quotes, Quote{
					Bookmaker: name,
					Outcome:   out.Name,
					Price:     out.Price,
					Format:    FormatDecimal,
				})
			}
		}
	}

	return game
}
