package pondiuni

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// BrowserFetcher navigates candidate URLs with a headless browser. It is
// a single best-effort pass used only after plain HTTP fetching has been
// exhausted; it never retries with backoff.
type BrowserFetcher struct {
	NavigationTimeout time.Duration
}

func NewBrowserFetcher() *BrowserFetcher {
	return &BrowserFetcher{
		NavigationTimeout: time.Second * 45,
	}
}

// FetchAny tries each URL in order and returns the first non-empty HTML
// document. The browser process is released on every exit path.
func (b *BrowserFetcher) FetchAny(ctx context.Context, urls []string) (Page, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(
		ctx,
		append(
			chromedp.DefaultExecAllocatorOptions[:],
			chromedp.UserAgent(userAgent),
			chromedp.Flag("headless", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var errList []error
	for _, link := range urls {
		html, err := b.navigate(browserCtx, link)
		if err != nil {
			slog.WarnContext(ctx, "browser navigation failed", "url", link, "err", err)
			errList = append(errList, err)
			continue
		}
		if strings.TrimSpace(html) == "" {
			errList = append(errList, fmt.Errorf("empty document from %s", link))
			continue
		}
		return Page{HTML: html, SourceURL: link}, nil
	}

	if len(errList) == 0 {
		return Page{}, fmt.Errorf("no candidate urls")
	}
	return Page{}, errors.Join(errList...)
}

func (b *BrowserFetcher) navigate(ctx context.Context, link string) (string, error) {
	timeout := b.NavigationTimeout
	if timeout <= 0 {
		timeout = time.Second * 45
	}
	navCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(navCtx, chromedp.Tasks{
		chromedp.Navigate(link),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	})
	if err != nil {
		return "", err
	}
	return html, nil
}
