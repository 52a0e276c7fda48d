package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/corebank/accounts/internal/domain"
	"github.com/corebank/accounts/internal/infrastructure/metrics"
	"github.com/corebank/accounts/internal/usecase"
)

// CustomerClient implements usecase.CustomerClient against the customer
// service REST API. Lookups are cached; the cache is best-effort and a
// cache failure never fails the lookup.
type CustomerClient struct {
	baseURL    string
	httpClient *http.Client
	cache      usecase.Cache
	cacheTTL   time.Duration
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// NewCustomerClient creates a new CustomerClient. cache may be nil to
// disable caching; metrics may be nil.
func NewCustomerClient(baseURL string, cache usecase.Cache, cacheTTL time.Duration, logger zerolog.Logger, m *metrics.Metrics) *CustomerClient {
	return &CustomerClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		metrics:  m,
	}
}

type customerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FindCustomerByID looks up a customer in the customer service.
func (c *CustomerClient) FindCustomerByID(ctx context.Context, id int64) (*domain.Customer, error) {
	cacheKey := fmt.Sprintf("customer:%d", id)

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey); err == nil {
			var resp customerResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				c.observeLookup("cache_hit")

				return &domain.Customer{ID: resp.ID, Name: resp.Name}, nil
			}
		} else if !errors.Is(err, usecase.ErrCacheMiss) {
			c.logger.Warn().Err(err).Int64("customer_id", id).Msg("customer cache read failed")
		}
	}

	customer, err := c.fetch(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.observeLookup("not_found")
		} else {
			c.observeLookup("error")
		}

		return nil, err
	}

	c.observeLookup("found")

	if c.cache != nil {
		payload, err := json.Marshal(customerResponse{ID: customer.ID, Name: customer.Name})
		if err == nil {
			if err := c.cache.Set(ctx, cacheKey, string(payload), c.cacheTTL); err != nil {
				c.logger.Warn().Err(err).Int64("customer_id", id).Msg("customer cache write failed")
			}
		}
	}

	return customer, nil
}

func (c *CustomerClient) fetch(ctx context.Context, id int64) (*domain.Customer, error) {
	url := fmt.Sprintf("%s/api/v1/customers/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCustomerUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCustomerUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrCustomerNotFound
	default:
		return nil, fmt.Errorf("%w: customer service returned %d", domain.ErrCustomerUnavailable, resp.StatusCode)
	}

	var body customerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCustomerUnavailable, err)
	}

	return &domain.Customer{ID: body.ID, Name: body.Name}, nil
}

func (c *CustomerClient) observeLookup(outcome string) {
	if c.metrics == nil {
		return
	}

	c.metrics.CustomerLookups.WithLabelValues(outcome).Inc()
}
