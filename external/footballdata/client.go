package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/rifqialifauzan/football-data-service/internal/platform/logging"
	"github.com/rifqialifauzan/football-data-service/internal/usecase"
)

const (
	defaultBaseURL  = "https://api.football-data.org"
	defaultTimeout  = 20 * time.Second
	maxResponseSize = 6 << 20
)

// StatusError is a non-retryable upstream response. errors.Is matches it
// against usecase.ErrUpstream; errors.As exposes the status code.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider status=%d", e.StatusCode)
	}
	return fmt.Sprintf("provider status=%d body=%s", e.StatusCode, e.Body)
}

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Timeout    time.Duration
	Retry      RetryPolicy
	Clock      clockwork.Clock
	Logger     *logging.Logger
}

// Client issues authenticated GETs against the football-data v4 API with
// bounded, fixed-delay retries. Backoff waits run on the injected clock so
// tests never sleep for real.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	retry      RetryPolicy
	clock      clockwork.Clock
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		retry:      cfg.Retry.normalized(),
		clock:      clock,
		logger:     logger,
	}
}

// Competition fetches /v4/competitions/{code} and returns the raw decoded
// payload so arbitrary provider metadata survives into the league document.
func (c *Client) Competition(ctx context.Context, code string) (map[string]any, error) {
	var payload map[string]any
	path := "/v4/competitions/" + url.PathEscape(strings.TrimSpace(code))
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch competition code=%s: %w", code, err)
	}
	return payload, nil
}

// CompetitionTeams fetches the competition's team list with squads. Season is
// optional and passed through verbatim when set.
func (c *Client) CompetitionTeams(ctx context.Context, code, season string) ([]usecase.UpstreamTeam, error) {
	path := "/v4/competitions/" + url.PathEscape(strings.TrimSpace(code)) + "/teams"
	query := map[string]string{}
	if strings.TrimSpace(season) != "" {
		query["season"] = strings.TrimSpace(season)
	}

	var envelope teamsEnvelope
	if err := c.getJSON(ctx, path, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch competition teams code=%s: %w", code, err)
	}

	out := make([]usecase.UpstreamTeam, 0, len(envelope.Teams))
	for _, item := range envelope.Teams {
		out = append(out, mapTeamToUpstream(item))
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query map[string]string, target any) error {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	lastStatus := 0
	for attempt := 1; attempt <= c.retry.MaxTries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Auth-Token", c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: send request: %s", usecase.ErrUpstream, c.sanitize(err.Error()))
		}

		raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("%w: read response body: %v", usecase.ErrUpstream, readErr)
		}

		if resp.StatusCode == http.StatusOK {
			return raw, nil
		}

		delay, retryable := c.retry.DelayFor(resp.StatusCode)
		if !retryable {
			statusErr := &StatusError{StatusCode: resp.StatusCode, Body: abbreviateBody(raw)}
			c.logger.WarnContext(ctx, "football-data request failed", "url", fullURL, "status", resp.StatusCode)
			return nil, crerr.Mark(statusErr, usecase.ErrUpstream)
		}

		lastStatus = resp.StatusCode
		if attempt == c.retry.MaxTries {
			break
		}

		c.logger.WarnContext(ctx, "football-data request throttled, backing off",
			"url", fullURL,
			"status", resp.StatusCode,
			"attempt", attempt,
			"delay", delay.String(),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(delay):
		}
	}

	err := fmt.Errorf("%w: gave up after %d tries, last status %d", usecase.ErrRetriesExhausted, c.retry.MaxTries, lastStatus)
	c.logger.WarnContext(ctx, "football-data retries exhausted", "url", fullURL, "error", err)
	return nil, err
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.token != "" {
		value = strings.ReplaceAll(value, c.token, "REDACTED")
	}
	return value
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
