package adnetwork

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
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

const maxResponseBytes = 1 << 20

// Options configures a Client.
type Options struct {
	BaseURL     string
	Token       string
	HTTPClient  *http.Client
	RetryPolicy RetryPolicy
	Logger      *slog.Logger
	// Now returns the current time. It picks the day of the spend report.
	Now func() time.Time
}

// Client talks JSON to the ad network. It implements port.AdNetwork and
// port.SpendReporter. Every returned error matches domain.ErrTransientIO.
type Client struct {
	baseURL     *url.URL
	token       string
	httpClient  *http.Client
	retryPolicy RetryPolicy
	retryStatus map[int]struct{}
	logger      *slog.Logger
	now         func() time.Time
}

var (
	_ port.AdNetwork     = (*Client)(nil)
	_ port.SpendReporter = (*Client)(nil)
)

// HTTPError is a non-2xx response.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ad network: status %d", e.StatusCode)
	}
	return fmt.Sprintf("ad network: status %d: %s", e.StatusCode, e.Message)
}

func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" || opts.HTTPClient == nil || opts.Logger == nil {
		return nil, ErrInvalidArgument
	}
	if err := opts.RetryPolicy.Validate(); err != nil {
		return nil, err
	}
	parsed, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, err
	}
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	retryStatus := make(map[int]struct{}, len(opts.RetryPolicy.RetryStatusCodes))
	for _, code := range opts.RetryPolicy.RetryStatusCodes {
		retryStatus[code] = struct{}{}
	}

	return &Client{
		baseURL:     parsed,
		token:       opts.Token,
		httpClient:  opts.HTTPClient,
		retryPolicy: opts.RetryPolicy,
		retryStatus: retryStatus,
		logger:      opts.Logger.With(slog.String("component", "adnetwork")),
		now:         now,
	}, nil
}

type campaignResponse struct {
	Budget decimal.Decimal   `json:"budget"`
	Status port.RemoteStatus `json:"status"`
}

type budgetRequest struct {
	Budget decimal.Decimal `json:"budget"`
}

type endTimeRequest struct {
	EndTime time.Time `json:"end_time"`
}

type statusResponse struct {
	Status port.RemoteStatus `json:"status"`
}

type spendResponse struct {
	Spend decimal.Decimal `json:"spend"`
}

// Campaign returns the remote budget and run state.
func (c *Client) Campaign(ctx context.Context, remoteID string) (port.RemoteCampaign, error) {
	var resp campaignResponse
	if err := c.do(ctx, http.MethodGet, c.campaignPath(remoteID, ""), nil, nil, &resp); err != nil {
		return port.RemoteCampaign{}, err
	}
	return port.RemoteCampaign{Budget: resp.Budget, Active: resp.Status == port.RemoteStatusActive}, nil
}

// UpdateBudget sets the remote daily budget.
func (c *Client) UpdateBudget(ctx context.Context, remoteID string, budget decimal.Decimal) error {
	if budget.IsNegative() {
		return errors.Join(domain.ErrTransientIO, ErrInvalidArgument)
	}
	return c.do(ctx, http.MethodPut, c.campaignPath(remoteID, "budget"), nil, budgetRequest{Budget: budget.Round(2)}, nil)
}

// UpdateEndTime sets when the remote campaign stops delivering.
func (c *Client) UpdateEndTime(ctx context.Context, remoteID string, end time.Time) error {
	return c.do(ctx, http.MethodPut, c.campaignPath(remoteID, "end_time"), nil, endTimeRequest{EndTime: end.UTC()}, nil)
}

func (c *Client) Activate(ctx context.Context, remoteID string) error {
	return c.do(ctx, http.MethodPost, c.campaignPath(remoteID, "activate"), nil, nil, nil)
}

func (c *Client) Pause(ctx context.Context, remoteID string) error {
	return c.do(ctx, http.MethodPost, c.campaignPath(remoteID, "pause"), nil, nil, nil)
}

// Status returns the remote run state. Unknown values are treated as paused.
func (c *Client) Status(ctx context.Context, remoteID string) (port.RemoteStatus, error) {
	var resp statusResponse
	if err := c.do(ctx, http.MethodGet, c.campaignPath(remoteID, "status"), nil, nil, &resp); err != nil {
		return "", err
	}
	if resp.Status != port.RemoteStatusActive {
		return port.RemoteStatusPaused, nil
	}
	return port.RemoteStatusActive, nil
}

// DailySpent returns today's cumulative spend in UTC.
func (c *Client) DailySpent(ctx context.Context, remoteID string) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("campaign_id", remoteID)
	query.Set("date", c.now().UTC().Format(time.DateOnly))

	var resp spendResponse
	if err := c.do(ctx, http.MethodGet, "/v1/reports/spend", query, nil, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.Spend, nil
}

func (c *Client) campaignPath(remoteID, action string) string {
	p := "/v1/campaigns/" + url.PathEscape(remoteID)
	if action != "" {
		p += "/" + action
	}
	return p
}

// do sends one logical request, retrying transport errors and retryable
// statuses with exponential backoff.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return errors.Join(domain.ErrTransientIO, err)
		}
	}

	u := *c.baseURL
	u.Path += path
	u.RawQuery = query.Encode()
	target := u.String()

	var lastErr error
	for attempt := uint32(1); ; attempt++ {
		err := c.attempt(ctx, method, target, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !c.shouldRetry(err) {
			return errors.Join(domain.ErrTransientIO, err)
		}
		if attempt >= c.retryPolicy.MaxAttempts {
			return errors.Join(domain.ErrTransientIO, ErrRetryExhausted, lastErr)
		}

		delay := c.retryPolicy.delay(attempt)
		c.logger.Debug("retrying ad network request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("attempt", int(attempt)),
			slog.Duration("delay", delay),
			slog.Any("error", err))
		if err = sleepWithContext(ctx, delay); err != nil {
			return errors.Join(domain.ErrTransientIO, err)
		}
	}
}

func (c *Client) attempt(ctx context.Context, method, target string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readHTTPError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readHTTPError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &HTTPError{StatusCode: status, Message: payload.Error}
	}
	return &HTTPError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}

func (c *Client) shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		_, ok := c.retryStatus[httpErr.StatusCode]
		return ok
	}
	var syntaxErr *json.SyntaxError
	return !errors.As(err, &syntaxErr)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
