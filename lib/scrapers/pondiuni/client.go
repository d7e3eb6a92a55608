package pondiuni

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"facultyhub-backend/lib/retry"
	"facultyhub-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/purell"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/pondiuni")

const (
	defaultBaseURL        = "https://www.pondiuni.edu.in"
	defaultRequestTimeout = time.Second * 30
	userAgent             = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

// Page is the successfully fetched HTML of one faculty profile.
type Page struct {
	HTML      string
	SourceURL string
}

// Attempt records the outcome of one fetch attempt for diagnostics.
type Attempt struct {
	URL       string
	Err       string
	Transient bool
}

// FetchFailure is returned when every URL, round and fallback has been
// exhausted for a node id.
type FetchFailure struct {
	NodeID   string
	Attempts []Attempt
}

func (e *FetchFailure) Error() string {
	return fmt.Sprintf(
		"failed to fetch profile for node %s after %d attempts",
		e.NodeID, len(e.Attempts),
	)
}

type ClientOptions struct {
	// BaseURL is the primary host; FallbackURLs are tried after it within
	// each round. Empty values fall back to PONDIUNI_BASE_URL /
	// PONDIUNI_FALLBACK_URLS, then to the built-in defaults.
	BaseURL        string
	FallbackURLs   []string
	Rounds         int
	RequestTimeout time.Duration

	// Browser enables the headless-browser fallback pass.
	Browser *BrowserFetcher
	// Cache stores browser-fetched HTML and serves it as a last resort.
	Cache *Cache
}

type Client struct {
	http    *resty.Client
	bases   []string
	rounds  int
	browser *BrowserFetcher
	cache   *Cache
}

func NewClient(opts ClientOptions) *Client {
	base := opts.BaseURL
	if base == "" {
		base = os.Getenv("PONDIUNI_BASE_URL")
	}
	if base == "" {
		base = defaultBaseURL
	}
	fallbacks := opts.FallbackURLs
	if len(fallbacks) == 0 {
		if env := os.Getenv("PONDIUNI_FALLBACK_URLS"); env != "" {
			for _, f := range strings.Split(env, ",") {
				if f = strings.TrimSpace(f); f != "" {
					fallbacks = append(fallbacks, f)
				}
			}
		}
	}
	rounds := opts.Rounds
	if rounds <= 0 {
		rounds = 4
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New()
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(timeout)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	telemetry.InstrumentResty(client, "scrapers/pondiuni/http")

	return &Client{
		http:    client,
		bases:   append([]string{base}, fallbacks...),
		rounds:  rounds,
		browser: opts.Browser,
		cache:   opts.Cache,
	}
}

// ProfileURLs builds the ordered candidate URLs for a node id, primary
// host first.
func (c *Client) ProfileURLs(nodeID string) []string {
	urls := make([]string, 0, len(c.bases))
	for _, base := range c.bases {
		raw := fmt.Sprintf("%s/?q=node/%s", strings.TrimRight(base, "/"), url.QueryEscape(nodeID))
		normalized, err := purell.NormalizeURLString(raw, purell.FlagsSafe|purell.FlagSortQuery)
		if err != nil {
			urls = append(urls, raw)
			continue
		}
		urls = append(urls, normalized)
	}
	return urls
}

type attemptError struct {
	err       error
	transient bool
}

func (e *attemptError) Error() string { return e.err.Error() }
func (e *attemptError) Unwrap() error { return e.err }

type httpStatusError struct {
	status int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.status)
}

// isTransientNetErr classifies the error families that justify another
// retry round: resets, timeouts, DNS hiccups, aborted and half-closed
// connections. Anything else fails fast.
func isTransientNetErr(err error) bool {
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		s := statusErr.status
		return s == 408 || s == 429 || s >= 500
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsNotFound
	}
	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) {
		return true
	}

	msg := err.Error()
	for _, fragment := range []string{
		"connection reset", "broken pipe", "aborted",
		"timeout", "no such host", "EOF",
	} {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

func (c *Client) fetchOnce(ctx context.Context, link string) (Page, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return Page{}, err
	}
	status := res.StatusCode()
	if status < 200 || status >= 400 {
		return Page{}, &httpStatusError{status: status}
	}
	html := string(res.Body())
	if strings.TrimSpace(html) == "" {
		return Page{}, &httpStatusError{status: status}
	}
	return Page{HTML: html, SourceURL: link}, nil
}

// Fetch resolves a node id to HTML. It runs up to Rounds rounds over the
// candidate URLs with exponential jittered backoff between rounds; when
// plain HTTP is exhausted it falls back to the headless browser (single
// pass) and then to previously cached HTML. The passed context is the
// only bound on total elapsed time.
func (c *Client) Fetch(ctx context.Context, nodeID string) (Page, error) {
	ctx, span := tracer.Start(ctx, "client:Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("node_id", nodeID))

	urls := c.ProfileURLs(nodeID)

	var page Page
	var attempts []Attempt

	policy := retry.Policy{
		Attempts:  c.rounds,
		BaseDelay: time.Second,
		Factor:    2,
		MaxJitter: time.Millisecond * 500,
		Retryable: func(err error) bool {
			var ae *attemptError
			if errors.As(err, &ae) {
				return ae.transient
			}
			return false
		},
	}

	err := retry.Do(ctx, policy, func(ctx context.Context) error {
		var roundErr *attemptError
		for _, link := range urls {
			got, err := c.fetchOnce(ctx, link)
			if err == nil {
				page = got
				return nil
			}

			transient := isTransientNetErr(err)
			attempts = append(attempts, Attempt{
				URL:       link,
				Err:       err.Error(),
				Transient: transient,
			})
			slog.WarnContext(ctx, "fetch attempt failed",
				"node_id", nodeID,
				"url", link,
				"transient", transient,
				"err", err,
			)
			roundErr = &attemptError{err: err, transient: transient}
		}
		return roundErr
	})
	if err == nil {
		return page, nil
	}
	span.RecordError(err)

	if c.browser != nil {
		got, berr := c.browser.FetchAny(ctx, urls)
		if berr == nil {
			if c.cache != nil {
				if cerr := c.cache.Put(nodeID, got); cerr != nil {
					slog.WarnContext(ctx, "failed to cache browser-fetched html", "node_id", nodeID, "err", cerr)
				}
			}
			span.SetStatus(codes.Ok, "BROWSER FALLBACK")
			return got, nil
		}
		slog.WarnContext(ctx, "browser fallback unavailable", "node_id", nodeID, "err", berr)
	}

	if c.cache != nil {
		got, cerr := c.cache.Get(nodeID)
		if cerr == nil {
			slog.WarnContext(ctx, "serving stale cached html", "node_id", nodeID)
			span.SetStatus(codes.Ok, "CACHE FALLBACK")
			return got, nil
		}
	}

	span.SetStatus(codes.Error, "all fetch paths exhausted")
	return Page{}, &FetchFailure{NodeID: nodeID, Attempts: attempts}
}
