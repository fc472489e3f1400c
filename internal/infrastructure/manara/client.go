package manara

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/manara-web/internal/config"
	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/pkg/errors"
	"github.com/manara-web/internal/pkg/metrics"
	"github.com/manara-web/internal/pkg/validator"
)

const (
	opListMosques = "list_mosques"
	opGetMosque   = "get_mosque"
	opHealth      = "health"

	maxBodyBytes = 10 << 20
)

// Client - read-only client of the Manara mosque API
type Client struct {
	httpClient *http.Client
	baseURL    string
	filterMode string
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

// NewClient creates a client for the mosque API. breakerCfg may be nil.
func NewClient(cfg *config.UpstreamConfig, breakerCfg *config.BreakerConfig, logger *zap.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:    cfg.BaseURL,
		filterMode: cfg.FilterMode,
		breaker:    newBreaker(breakerCfg, logger),
		logger:     logger,
	}
}

// FiltersServerSide reports whether q/city_id are forwarded to the API.
func (c *Client) FiltersServerSide() bool {
	return c.filterMode == config.FilterModeServer
}

// FetchMosques returns the mosque collection
func (c *Client) FetchMosques(ctx context.Context, filter domain.MosqueFilter) ([]domain.Mosque, error) {
	started := time.Now()

	endpoint := c.baseURL + "/mosques.json"
	if c.FiltersServerSide() {
		params := url.Values{}
		if filter.Query != "" {
			params.Set("q", filter.Query)
		}
		if filter.CityID != nil {
			params.Set("city_id", strconv.Itoa(*filter.CityID))
		}
		if len(params) > 0 {
			endpoint += "?" + params.Encode()
		}
	}

	result, err := c.execute(func() (interface{}, error) {
		body, err := c.get(ctx, endpoint, "mosques")
		if err != nil {
			return nil, err
		}

		var mosques []domain.Mosque
		if err := json.Unmarshal(body, &mosques); err != nil {
			c.logger.Error("Failed to decode mosques", zap.Error(err))
			return nil, errors.ErrFetch.WithMessage("Failed to fetch mosques: invalid response body").Wrap(err)
		}
		for i := range mosques {
			if err := validator.Validate(&mosques[i]); err != nil {
				c.logger.Error("Upstream returned an invalid mosque",
					zap.Int("index", i),
					zap.String("id", mosques[i].ID),
					zap.Error(err))
				return nil, errors.ErrFetch.WithMessage("Failed to fetch mosques: invalid mosque at index %d", i).Wrap(err)
			}
		}
		if mosques == nil {
			mosques = []domain.Mosque{}
		}
		return mosques, nil
	})
	if err != nil {
		metrics.ObserveUpstream(opListMosques, metrics.OutcomeError, started)
		return nil, err
	}

	mosques := result.([]domain.Mosque)
	metrics.ObserveUpstream(opListMosques, metrics.OutcomeSuccess, started)

	c.logger.Debug("Mosques fetched",
		zap.Int("count", len(mosques)),
		zap.String("query", filter.Query),
		zap.Duration("took", time.Since(started)))

	return mosques, nil
}

// FetchMosqueByID returns one mosque with its donations
func (c *Client) FetchMosqueByID(ctx context.Context, id string) (*domain.Mosque, error) {
	started := time.Now()

	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("Mosque id is required")
	}

	endpoint := fmt.Sprintf("%s/mosques/%s.json", c.baseURL, url.PathEscape(id))

	result, err := c.execute(func() (interface{}, error) {
		body, err := c.get(ctx, endpoint, "mosque")
		if err != nil {
			return nil, err
		}

		var mosque domain.Mosque
		if err := json.Unmarshal(body, &mosque); err != nil {
			c.logger.Error("Failed to decode mosque", zap.String("id", id), zap.Error(err))
			return nil, errors.ErrFetch.WithMessage("Failed to fetch mosque: invalid response body").Wrap(err)
		}
		if err := validator.Validate(&mosque); err != nil {
			c.logger.Error("Upstream returned an invalid mosque", zap.String("id", id), zap.Error(err))
			return nil, errors.ErrFetch.WithMessage("Failed to fetch mosque: invalid payload").Wrap(err)
		}
		return &mosque, nil
	})
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, errors.ErrNotFound) {
			outcome = metrics.OutcomeNotFound
		}
		metrics.ObserveUpstream(opGetMosque, outcome, started)
		return nil, err
	}

	metrics.ObserveUpstream(opGetMosque, metrics.OutcomeSuccess, started)
	return result.(*domain.Mosque), nil
}

// Health - HEAD probe of the collection endpoint
func (c *Client) Health(ctx context.Context) error {
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/mosques.json", nil)
	if err != nil {
		return errors.ErrFetch.WithMessage("API health check failed").Wrap(err)
	}
	setNoCache(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("API health check failed", zap.Error(err))
		metrics.ObserveUpstream(opHealth, metrics.OutcomeError, started)
		return errors.ErrFetch.WithMessage("API health check failed").Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(opHealth, metrics.OutcomeError, started)
		return errors.ErrFetch.WithMessage("API health check failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	metrics.ObserveUpstream(opHealth, metrics.OutcomeSuccess, started)
	return nil
}

// get performs a GET and returns the full body of a 2xx response.
// 404 becomes ErrNotFound, any other failure ErrFetch.
func (c *Client) get(ctx context.Context, endpoint, what string) ([]byte, error) {
	c.logger.Debug("Calling mosque API", zap.String("url", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.ErrFetch.WithMessage("Failed to fetch %s: invalid request", what).Wrap(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	setNoCache(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("url", endpoint), zap.Error(err))
		return nil, errors.ErrFetch.WithMessage("Failed to fetch %s: service unreachable", what).Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && what == "mosque" {
		return nil, errors.ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("Mosque API returned error",
			zap.String("url", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrFetch.WithMessage("Failed to fetch %s: %d %s", what, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.logger.Error("Failed to read response", zap.Error(err))
		return nil, errors.ErrFetch.WithMessage("Failed to fetch %s: truncated response", what).Wrap(err)
	}

	return body, nil
}

func (c *Client) execute(fn func() (interface{}, error)) (interface{}, error) {
	if c.breaker == nil {
		return fn()
	}

	result, err := c.breaker.Execute(fn)
	if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errors.ErrFetch.WithMessage("Mosque service is temporarily unavailable").Wrap(err)
	}
	return result, err
}

func setNoCache(req *http.Request) {
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
}
