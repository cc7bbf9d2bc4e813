package network

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"sync"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

var ErrRequestFailed = errors.New("request failed")

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
}

// Options tune how politely a client crawls.
type Options struct {
	// Delay is the base pause between requests; each pause is randomized
	// between 0.5x and 1.5x.
	Delay      time.Duration
	MaxRetries int
	Backoff    time.Duration
}

func DefaultOptions() Options {
	return Options{
		Delay:      2 * time.Second,
		MaxRetries: 3,
		Backoff:    time.Second,
	}
}

type Client struct {
	http       tls_client.HttpClient
	rotator    *Rotator
	userAgents []string
	opts       Options

	mu      sync.Mutex
	rand    *rand.Rand
	lastHit time.Time
}

func NewClient(rotator *Rotator, opts Options) (*Client, error) {
	jar, _ := fhttpcookiejar.New(nil)

	client, err := tls_client.NewHttpClient(
		tls_client.NewNoopLogger(),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(30),
		tls_client.WithCookieJar(jar),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:       client,
		rotator:    rotator,
		userAgents: append([]string{}, userAgents...),
		opts:       opts,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Do sends req, waiting out the polite delay first and retrying transient
// failures. The caller owns the returned body.
func (c *Client) Do(req *fhttp.Request) (*fhttp.Response, error) {
	ctx := req.Context()
	var lastErr error
	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, c.opts.Backoff*time.Duration(attempt)); err != nil {
				return nil, err
			}
		}
		if err := c.wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.send(req)
		if err != nil {
			lastErr = err
			continue
		}
		if !Retryable(resp.StatusCode) || attempt == c.opts.MaxRetries {
			return resp, nil
		}
		_ = resp.Body.Close()
		lastErr = fmt.Errorf("%w: http %d", ErrRequestFailed, resp.StatusCode)
	}
	return nil, lastErr
}

func (c *Client) send(req *fhttp.Request) (*fhttp.Response, error) {
	proxy, _ := c.rotateProxy()
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.randomUA())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if proxy != nil {
		c.rotator.Report(proxy, resp.StatusCode)
	}
	return resp, nil
}

// Retryable reports whether a response status is worth another attempt.
func Retryable(status int) bool {
	switch status {
	case 408, 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}

func (c *Client) wait(ctx context.Context) error {
	if c.opts.Delay <= 0 {
		return nil
	}
	c.mu.Lock()
	pause := time.Duration(float64(c.opts.Delay) * (0.5 + c.rand.Float64()))
	next := c.lastHit.Add(pause)
	now := time.Now()
	if next.Before(now) {
		next = now
	}
	c.lastHit = next
	c.mu.Unlock()

	return sleep(ctx, time.Until(next))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) rotateProxy() (*url.URL, error) {
	if c.rotator == nil {
		return nil, nil
	}
	proxy, err := c.rotator.Next()
	if err != nil {
		return nil, err
	}

	if proxy != nil {
		_ = c.http.SetProxy(proxy.String())
	}
	return proxy, nil
}

func (c *Client) randomUA() string {
	if len(c.userAgents) == 0 {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userAgents[c.rand.Intn(len(c.userAgents))]
}
