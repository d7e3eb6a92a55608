package pondiuni

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"go.opentelemetry.io/otel/attribute"
)

// DiscoveredProfile is a node id confirmed to host a faculty profile.
type DiscoveredProfile struct {
	NodeID string
	Name   string
}

// Discover probes the node id range [from, to] and reports the ids that
// resolve to faculty profiles. Node ids on the portal are opaque and
// sparse, so probing is the only enumeration mechanism. Fetch failures and
// non-profile pages are skipped, not reported as errors.
func (c *Client) Discover(ctx context.Context, from, to, concurrency int) ([]DiscoveredProfile, error) {
	ctx, span := tracer.Start(ctx, "client:Discover")
	defer span.End()
	span.SetAttributes(
		attribute.Int("from", from),
		attribute.Int("to", to),
	)

	if concurrency <= 0 {
		concurrency = 1
	}

	ids := make(chan int)
	var mutex sync.Mutex
	found := []DiscoveredProfile{}

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range ids {
				nodeID := strconv.Itoa(id)
				profile, err := c.ScrapeProfile(ctx, nodeID)
				if err != nil {
					if !errors.Is(err, ErrNoProfile) {
						slog.WarnContext(ctx, "discovery probe failed", "node_id", nodeID, "err", err)
					}
					continue
				}
				mutex.Lock()
				found = append(found, DiscoveredProfile{NodeID: nodeID, Name: profile.Name})
				mutex.Unlock()
			}
		}()
	}

loop:
	for id := from; id <= to; id++ {
		select {
		case ids <- id:
		case <-ctx.Done():
			break loop
		}
	}
	close(ids)
	wg.Wait()

	sort.Slice(found, func(i, j int) bool {
		a, _ := strconv.Atoi(found[i].NodeID)
		b, _ := strconv.Atoi(found[j].NodeID)
		return a < b
	})
	return found, ctx.Err()
}
