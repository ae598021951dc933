// Package gateway is the REST client for the stratus backend: registration
// and login, session validation, sponsor-code redemption, and the dashboard
// indicator feed.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	dashboardDomain "github.com/felixgeelhaar/stratus/internal/dashboard/domain"
	identityDomain "github.com/felixgeelhaar/stratus/internal/identity/domain"
	"github.com/sony/gobreaker/v2"
)

const defaultTimeout = 15 * time.Second

// Client talks to the backend REST API. It performs no retries and no
// caching; every failure is reported once to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]dashboardDomain.Metric]
	logger     *slog.Logger
}

// BreakerConfig tunes the circuit breaker guarding the dashboard feed.
type BreakerConfig struct {
	// Enabled turns the breaker on. When off, feed fetches go straight
	// through.
	Enabled bool

	// MaxRequests is the number of probes allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state.
	Interval time.Duration

	// Timeout is the period of the open state.
	Timeout time.Duration

	// FailureThreshold is the number of consecutive failures that trips
	// the breaker.
	FailureThreshold uint32
}

// DefaultBreakerConfig returns sensible defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:          true,
		MaxRequests:      3,
		Interval:         10 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// NewClient creates a backend client. baseURL is the server root without
// the /api prefix, e.g. "http://localhost:5000".
func NewClient(baseURL string, timeout time.Duration, breakerCfg BreakerConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}

	if breakerCfg.Enabled {
		settings := gobreaker.Settings{
			Name:        "dashboard-feed",
			MaxRequests: breakerCfg.MaxRequests,
			Interval:    breakerCfg.Interval,
			Timeout:     breakerCfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerCfg.FailureThreshold
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Info("circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String(),
				)
			},
		}
		c.breaker = gobreaker.NewCircuitBreaker[[]dashboardDomain.Metric](settings)
	}

	return c
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type redeemRequest struct {
	Code   string `json:"code"`
	Module string `json:"module"`
}

type authResponse struct {
	Message string               `json:"message"`
	Token   string               `json:"token"`
	User    *identityDomain.User `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Register creates an account and returns the issued session.
func (c *Client) Register(ctx context.Context, email, password string) (*identityDomain.Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", "", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &identityDomain.Session{Token: resp.Token, User: resp.User}, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*identityDomain.Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &identityDomain.Session{Token: resp.Token, User: resp.User}, nil
}

// CurrentUser validates the token and returns the user's current
// entitlement record. A 401 maps to ErrUnauthorized.
func (c *Client) CurrentUser(ctx context.Context, token string) (*identityDomain.User, error) {
	var user identityDomain.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Redeem exchanges a sponsor code for permanent access to one module. The
// response carries the refreshed user record and, optionally, a rotated
// token.
func (c *Client) Redeem(ctx context.Context, token, code, module string) (*identityDomain.RedeemResult, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/sponsor/redeem", token, redeemRequest{Code: code, Module: module}, &resp)
	if err != nil {
		return nil, err
	}
	return &identityDomain.RedeemResult{Token: resp.Token, User: resp.User}, nil
}

// SponsorLinks returns each module's external sponsor page.
func (c *Client) SponsorLinks(ctx context.Context) (dashboardDomain.SponsorLinks, error) {
	var links dashboardDomain.SponsorLinks
	if err := c.do(ctx, http.MethodGet, "/api/sponsor/links", "", nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// CheckAccess asks the server for its advisory access decision. The
// client-side entitlement check remains binding for UI gating.
func (c *Client) CheckAccess(ctx context.Context, token, module string) (*identityDomain.AccessCheck, error) {
	var check identityDomain.AccessCheck
	path := "/api/sponsor/check/" + url.PathEscape(module)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &check); err != nil {
		return nil, err
	}
	return &check, nil
}

// Dashboard fetches the full module-agnostic indicator feed. The call is
// guarded by a circuit breaker: after repeated transport failures it fails
// fast instead of hammering an unreachable backend. An open breaker reads
// as the backend being unavailable.
func (c *Client) Dashboard(ctx context.Context) ([]dashboardDomain.Metric, error) {
	fetch := func() ([]dashboardDomain.Metric, error) {
		var metrics []dashboardDomain.Metric
		if err := c.do(ctx, http.MethodGet, "/api/dashboard", "", nil, &metrics); err != nil {
			return nil, err
		}
		return metrics, nil
	}

	if c.breaker == nil {
		return fetch()
	}

	metrics, err := c.breaker.Execute(fetch)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: circuit open", ErrNetworkUnavailable)
	}
	return metrics, err
}

// do executes one request and decodes the response into out. Transport
// failures map to ErrNetworkUnavailable, 401 to ErrUnauthorized, and any
// other non-2xx status to a RequestFailedError carrying the backend's
// error message verbatim.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.responseError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) responseError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var errResp errorResponse
	_ = json.Unmarshal(data, &errResp)

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Debug("bearer token rejected", "path", resp.Request.URL.Path)
		return ErrUnauthorized
	}

	return &RequestFailedError{StatusCode: resp.StatusCode, Message: errResp.Error}
}
