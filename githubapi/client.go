package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/go-github/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Client talks to the GitHub REST API on behalf of a logged-in user. Every
// call carries the user's bearer token; the underlying HTTP client enforces
// a hard timeout and write calls retry transient failures with exponential
// backoff.
type Client struct {
	baseURL    string // empty means api.github.com
	timeout    time.Duration
	maxRetries uint64
	l          *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, maxRetries uint64, l *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		maxRetries: maxRetries,
		l:          l,
	}
}

func (c *Client) api(ctx context.Context, token string) (*github.Client, error) {
	base := &http.Client{Timeout: c.timeout}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	gh := github.NewClient(oauth2.NewClient(ctx, ts))

	if c.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(c.baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}
		gh.BaseURL = u
	}

	return gh, nil
}

// do runs one API call under the retry policy. Transport errors and 5xx
// responses are retried until the backoff gives up; any other response is
// definitive. The returned status is 0 only when no response ever arrived.
func (c *Client) do(ctx context.Context, name string, call func() (*github.Response, error)) (int, error) {
	var status int

	operation := func() error {
		resp, err := call()
		if resp != nil {
			status = resp.StatusCode
		}
		if err == nil {
			return nil
		}
		if resp == nil {
			c.l.Warn("github request failed", zap.String("op", name), zap.Error(err))
			return err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			c.l.Warn("github responded with server error",
				zap.String("op", name), zap.Int("status", resp.StatusCode))
			return fmt.Errorf("github responded %d", resp.StatusCode)
		}
		// 4xx: the request itself is wrong, retrying cannot help.
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, bo); err != nil && status == 0 {
		return 0, err
	}

	return status, nil
}
