// Package api is the client for the upstream Ability Draft aggregation API.
// All heavy statistics (win rates, Wilson intervals, pair/triplet counts)
// are computed upstream; this client only fetches and decodes.
package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"github.com/valyala/fasthttp"

	"abilitydraft-stats/internal/config"
	"abilitydraft-stats/internal/constants"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotFound is returned for 404 responses; it is terminal, never retried.
var ErrNotFound = errors.New("resource not found")

type Client struct {
	baseURL string
	http    *fasthttp.Client
	logger  zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		http: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger: logger,
	}
}

// All responses arrive as { "data": <payload> } envelopes.
type envelope[T any] struct {
	Data T `json:"data"`
}

func doRequest[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T

	url := c.baseURL + path

	backoff := retry.WithMaxRetries(constants.MaxAPIRetries, retry.NewExponential(constants.RetryBaseDelay))

	var body []byte
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		status, retryAfter, respBody, err := c.attempt(ctx, url)
		if err != nil {
			return retry.RetryableError(err)
		}

		switch {
		case status == fasthttp.StatusOK:
			body = respBody
			return nil
		case status == fasthttp.StatusNotFound:
			return ErrNotFound
		case status == fasthttp.StatusServiceUnavailable:
			// Transient by contract. Honor the server's backoff hint
			// before handing control back to the retry loop.
			if retryAfter > 0 {
				if err := sleepCtx(ctx, retryAfter); err != nil {
					return err
				}
			}
			return retry.RetryableError(fmt.Errorf("upstream unavailable (503)"))
		default:
			return retry.RetryableError(fmt.Errorf("API error: %d", status))
		}
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("path", path).Msg("upstream request failed")
		return zero, err
	}

	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return env.Data, nil
}

func (c *Client) attempt(ctx context.Context, url string) (int, time.Duration, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.http.DoDeadline(req, resp, deadline); err != nil {
			return 0, 0, nil, err
		}
	} else {
		if err := c.http.Do(req, resp); err != nil {
			return 0, 0, nil, err
		}
	}

	status := resp.StatusCode()
	retryAfter := parseRetryAfter(resp)

	// The response buffer is recycled on release; the body must be copied
	// out before returning.
	body := append([]byte(nil), resp.Body()...)
	return status, retryAfter, body, nil
}

// parseRetryAfter reads the Retry-After header as whole seconds, clamped to
// MaxRetryAfterHint. Zero when absent or unparsable.
func parseRetryAfter(resp *fasthttp.Response) time.Duration {
	raw := string(resp.Header.Peek(fasthttp.HeaderRetryAfter))
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0
	}
	hint := time.Duration(seconds) * time.Second
	if hint > constants.MaxRetryAfterHint {
		hint = constants.MaxRetryAfterHint
	}
	return hint
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
