package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/PremDutta/pm-job-hub/internal/config"
)

// ErrExhausted means all retry attempts for a URL were spent. Callers
// must treat it as "zero postings from this page" and keep going.
var ErrExhausted = errors.New("fetch: retries exhausted")

// Client wraps every adapter request with identity rotation, human-like
// pacing, per-host rate limiting, and bounded retry/backoff on the
// blocking signals boards actually send (429, 403, timeouts).
type Client struct {
	hc      *http.Client
	limiter *HostLimiter
	cfg     config.Config
	rng     *rand.Rand

	accept string // per-request Accept override, "" = identity default
}

func NewClient(cfg config.Config, limiter *HostLimiter) *Client {
	return &Client{
		hc:      &http.Client{Timeout: time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second},
		limiter: limiter,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithAccept returns a shallow copy that sends the given Accept header
// instead of the rotated identity's (JSON endpoints want application/json).
func (c *Client) WithAccept(accept string) *Client {
	cp := *c
	cp.accept = accept
	return &cp
}

// Get fetches url under the full policy. A nil error always comes with
// a body; exhausted retries return ErrExhausted.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	for attempt := 0; attempt < c.cfg.Fetch.Retries; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.WaitURL(ctx, url); err != nil {
				return nil, err
			}
		}

		body, retryWait, err := c.attempt(ctx, url, attempt)
		if err == nil {
			return body, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if retryWait > 0 {
			if err := sleepCtx(ctx, retryWait); err != nil {
				return nil, err
			}
		}
	}
	return nil, ErrExhausted
}

// attempt performs a single request. On failure it returns how long to
// wait before the next attempt.
func (c *Client) attempt(ctx context.Context, url string, attempt int) (body []byte, retryWait time.Duration, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	c.applyIdentity(req)

	res, err := c.hc.Do(req)
	if err != nil {
		// timeout or transport error: short randomized backoff
		log.Printf("[fetch] request error url=%q attempt=%d err=%v", url, attempt+1, err)
		return nil, c.window(c.cfg.Fetch.RetryWaitMinMs, c.cfg.Fetch.RetryWaitMaxMs), err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusOK:
		b, rerr := io.ReadAll(res.Body)
		if rerr != nil {
			return nil, c.window(c.cfg.Fetch.RetryWaitMinMs, c.cfg.Fetch.RetryWaitMaxMs), rerr
		}
		return b, 0, nil

	case res.StatusCode == http.StatusTooManyRequests:
		log.Printf("[fetch] rate limited url=%q attempt=%d", url, attempt+1)
		return nil, c.window(c.cfg.Fetch.RateLimitWaitMinMs, c.cfg.Fetch.RateLimitWaitMaxMs),
			fmt.Errorf("status %d", res.StatusCode)

	case res.StatusCode == http.StatusForbidden:
		// blocked: extended delay, next attempt rotates identity anyway
		log.Printf("[fetch] blocked (403) url=%q attempt=%d", url, attempt+1)
		return nil, c.window(c.cfg.Fetch.BlockedWaitMinMs, c.cfg.Fetch.BlockedWaitMaxMs),
			fmt.Errorf("status %d", res.StatusCode)

	default:
		log.Printf("[fetch] status %d url=%q attempt=%d", res.StatusCode, url, attempt+1)
		return nil, c.window(c.cfg.Fetch.RetryWaitMinMs, c.cfg.Fetch.RetryWaitMaxMs),
			fmt.Errorf("status %d", res.StatusCode)
	}
}

// Pace sleeps a randomized human-like delay between non-retry requests.
// This is a deliberate politeness control; never bypass it.
func (c *Client) Pace(ctx context.Context) error {
	d := c.window(c.cfg.Fetch.PaceMinMs, c.cfg.Fetch.PaceMaxMs)
	if c.rng.Float64() < c.cfg.Fetch.ExtraPaceChance {
		d += c.window(c.cfg.Fetch.ExtraPaceMinMs, c.cfg.Fetch.ExtraPaceMaxMs)
	}
	return sleepCtx(ctx, d)
}

func (c *Client) applyIdentity(req *http.Request) {
	id := identities[c.rng.Intn(len(identities))]
	req.Header.Set("User-Agent", id.UserAgent)
	if c.accept != "" {
		req.Header.Set("Accept", c.accept)
	} else {
		req.Header.Set("Accept", id.Accept)
	}
	req.Header.Set("Accept-Language", id.Language)
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Cache-Control", "max-age=0")
}

func (c *Client) window(minMs, maxMs int) time.Duration {
	if maxMs <= minMs {
		return time.Duration(minMs) * time.Millisecond
	}
	ms := minMs + c.rng.Intn(maxMs-minMs)
	return time.Duration(ms) * time.Millisecond
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
