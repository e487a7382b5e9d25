// Package apistore is the HTTP implementation of store.Store, speaking JSON
// to the Ledgerly API with a bearer token. A 401 from the server is
// translated to apperrors.ErrUnauthorized (session expiry); every other
// failure, transport-level or otherwise, surfaces as ErrStoreUnavailable.
package apistore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/session"
	"ledgerly/internal/store"
)

// Config holds transport timeouts for the API client.
type Config struct {
	// Timeout bounds the entire request; a context deadline can still
	// override it.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

// DefaultConfig returns conservative client timeouts.
func DefaultConfig() Config {
	return Config{
		Timeout:             30 * time.Second,
		DialTimeout:         5 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		ResponseHeader:      10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
	}
}

func newHTTPClient(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}

// Client implements store.Store over HTTP.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens session.TokenSource
}

// New creates a client for the API rooted at baseURL (e.g.
// "http://localhost:8080/api/v1"). The token source is consulted on every
// request so a refreshed token is picked up without rebuilding the client.
func New(baseURL string, tokens session.TokenSource, cfg Config) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("apistore: base URL is required")
	}
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("apistore: invalid base URL: %w", err)
	}
	return &Client{
		base:   base,
		http:   newHTTPClient(cfg),
		tokens: tokens,
	}, nil
}

// errorBody matches the server's error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do issues one request and decodes the response into out when out is
// non-nil. Failures are mapped into the shared taxonomy here, in one place.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reader)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.AccessToken(ctx)
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return apperrors.ErrUnauthorized
	}
	if resp.StatusCode == http.StatusNotFound {
		return apperrors.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil && eb.Error.Message != "" {
			return apperrors.Wrap(apperrors.ErrStoreUnavailable,
				fmt.Errorf("%s: %s", eb.Error.Code, eb.Error.Message))
		}
		return apperrors.Wrap(apperrors.ErrStoreUnavailable,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// CreateBudget implements store.Store.
func (c *Client) CreateBudget(ctx context.Context, in store.BudgetInput) (*models.Budget, error) {
	var resp struct {
		Budget models.Budget `json:"budget"`
	}
	if err := c.do(ctx, http.MethodPost, "/budgets", in, &resp); err != nil {
		return nil, err
	}
	return &resp.Budget, nil
}

// ListBudgetSummaries implements store.Store.
func (c *Client) ListBudgetSummaries(ctx context.Context) ([]models.BudgetSummary, error) {
	var resp struct {
		Budgets []models.BudgetSummary `json:"budgets"`
	}
	if err := c.do(ctx, http.MethodGet, "/budgets", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Budgets, nil
}

// CreateTransaction implements store.Store.
func (c *Client) CreateTransaction(ctx context.Context, in store.TransactionInput) (*models.Transaction, error) {
	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodPost, "/transactions", in, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

// ListTransactions implements store.Store.
func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var resp struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := c.do(ctx, http.MethodGet, "/transactions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// GetTransaction implements store.Store.
func (c *Client) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodGet, "/transactions/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

// UpdateTransaction implements store.Store.
func (c *Client) UpdateTransaction(ctx context.Context, id string, in store.TransactionInput) (*models.Transaction, error) {
	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	if err := c.do(ctx, http.MethodPut, "/transactions/"+url.PathEscape(id), in, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

// DeleteTransaction implements store.Store.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+url.PathEscape(id), nil, nil)
}
