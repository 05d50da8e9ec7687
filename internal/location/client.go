// Package location resolves PIN codes to city/state/area via the public
// postal API. Lookups are advisory: callers render the result as a
// convenience, registration never blocks on it.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"udyam/internal/domain"
	"udyam/internal/platform/metrics"
	dErrors "udyam/pkg/domain-errors"
)

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// Upstream response shape of api.postalpincode.in.
type apiResponse struct {
	Status     string `json:"Status"`
	Message    string `json:"Message"`
	PostOffice []struct {
		Name     string `json:"Name"`
		District string `json:"District"`
		State    string `json:"State"`
		Country  string `json:"Country"`
	} `json:"PostOffice"`
}

// Client looks up PIN codes. Concurrent lookups for the same code are
// coalesced into one upstream call; results are cached in Redis when a cache
// client is configured.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics
	group      singleflight.Group
}

// Option configures optional Client collaborators.
type Option func(*Client)

// WithCache enables Redis-backed caching of lookup results.
func WithCache(cache *redis.Client, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithMetrics records lookup outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		cacheTTL:   time.Hour,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves a six-digit PIN code to a location. An unknown code fails
// with a not-found domain error; an unreachable upstream with unavailable.
func (c *Client) Lookup(ctx context.Context, pincode string) (domain.Location, error) {
	if !pincodePattern.MatchString(pincode) {
		return domain.Location{}, dErrors.New(dErrors.CodeBadRequest, "PIN code must be 6 digits")
	}

	if loc, ok := c.fromCache(ctx, pincode); ok {
		c.observe("hit")
		return loc, nil
	}

	v, err, _ := c.group.Do(pincode, func() (any, error) {
		// Coalesced callers share this one upstream call; detach it from
		// the first caller's cancellation so their fates stay independent.
		return c.fetch(context.WithoutCancel(ctx), pincode)
	})
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			c.observe("miss")
		} else {
			c.observe("error")
		}
		return domain.Location{}, err
	}

	loc := v.(domain.Location)
	c.observe("fetched")
	c.toCache(ctx, pincode, loc)
	return loc, nil
}

func (c *Client) fetch(ctx context.Context, pincode string) (domain.Location, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, pincode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Location{}, dErrors.Wrap(dErrors.CodeInternal, "failed to build lookup request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Location{}, dErrors.Wrap(dErrors.CodeUnavailable, "PIN code lookup service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Location{}, dErrors.New(dErrors.CodeUnavailable, "PIN code lookup service unavailable")
	}

	var payload []apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Location{}, dErrors.Wrap(dErrors.CodeUnavailable, "PIN code lookup service unavailable", err)
	}
	if len(payload) == 0 || payload[0].Status != "Success" || len(payload[0].PostOffice) == 0 {
		return domain.Location{}, dErrors.New(dErrors.CodeNotFound, "No location found for this PIN code")
	}

	offices := payload[0].PostOffice
	loc := domain.Location{
		City:    offices[0].District,
		State:   offices[0].State,
		Country: offices[0].Country,
		Area:    offices[0].Name,
		Pincode: pincode,
	}
	for _, po := range offices {
		loc.Suggestions = append(loc.Suggestions, domain.LocationSuggestion{
			Name:     po.Name,
			District: po.District,
			State:    po.State,
		})
	}
	return loc, nil
}

func (c *Client) fromCache(ctx context.Context, pincode string) (domain.Location, bool) {
	if c.cache == nil {
		return domain.Location{}, false
	}
	raw, err := c.cache.Get(ctx, cacheKey(pincode)).Bytes()
	if err != nil {
		return domain.Location{}, false
	}
	var loc domain.Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		return domain.Location{}, false
	}
	return loc, true
}

func (c *Client) toCache(ctx context.Context, pincode string, loc domain.Location) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKey(pincode), raw, c.cacheTTL).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to cache location", "pincode", pincode, "error", err.Error())
	}
}

func (c *Client) observe(outcome string) {
	if c.metrics != nil {
		c.metrics.LocationLookups.WithLabelValues(outcome).Inc()
	}
}

func cacheKey(pincode string) string {
	return "udyam:pincode:" + pincode
}
