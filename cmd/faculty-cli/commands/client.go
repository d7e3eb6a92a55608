package commands

import (
	"log/slog"
	"time"

	"facultyhub-backend/lib/configutil"
	"facultyhub-backend/lib/scrapers/pondiuni"
)

type Config struct {
	BaseURL        string   `json:"baseUrl"`
	FallbackURLs   []string `json:"fallbackUrls"`
	Rounds         int      `json:"rounds"`
	CacheDir       string   `json:"cacheDir"`
	BrowserEnabled bool     `json:"browserEnabled"`
	BatchSize      int      `json:"batchSize"`
	BatchDelaySecs int      `json:"batchDelaySecs"`
}

func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		slog.Debug("no config.json5, using defaults", "err", err)
		return Config{}
	}
	return cfg
}

// newClient builds the scrape client from config. The browser and cache
// fallbacks are opt-in; discovery runs without them.
func newClient(cfg Config, withFallbacks bool) (*pondiuni.Client, func()) {
	opts := pondiuni.ClientOptions{
		BaseURL:      cfg.BaseURL,
		FallbackURLs: cfg.FallbackURLs,
		Rounds:       cfg.Rounds,
	}
	cleanup := func() {}
	if withFallbacks {
		if cfg.BrowserEnabled {
			opts.Browser = pondiuni.NewBrowserFetcher()
		}
		if cfg.CacheDir != "" {
			cache, err := pondiuni.OpenCache(cfg.CacheDir)
			if err != nil {
				slog.Warn("failed to open html cache", "dir", cfg.CacheDir, "err", err)
			} else {
				opts.Cache = cache
				cleanup = func() { cache.Close() }
			}
		}
	}
	return pondiuni.NewClient(opts), cleanup
}

func batchOptions(cfg Config) (size int, delay time.Duration) {
	return cfg.BatchSize, time.Duration(cfg.BatchDelaySecs) * time.Second
}
