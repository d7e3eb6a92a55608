package faculty

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"facultyhub-backend/lib/scrapers/pondiuni"

	"go.opentelemetry.io/otel/attribute"
)

// BatchFailure records why one node id in a batch run did not produce a
// profile.
type BatchFailure struct {
	NodeID string
	Err    error
}

type BatchResult struct {
	Successful []*pondiuni.FacultyProfile
	Failed     []BatchFailure
}

type BatchOptions struct {
	// Size is the number of ids scraped concurrently per batch.
	Size int
	// Delay is the pause between batches, keeping load on the portal low.
	Delay time.Duration
}

const (
	defaultBatchSize  = 5
	defaultBatchDelay = time.Second * 2
)

// ScrapeBatch scrapes the given node ids in fixed-size concurrent batches.
// A failing id never aborts the run; its error is collected and the batch
// moves on. Order of Successful follows the input id order.
func ScrapeBatch(ctx context.Context, client *pondiuni.Client, ids []string, opts BatchOptions) BatchResult {
	ctx, span := tracer.Start(ctx, "ScrapeBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("ids", len(ids)))

	size := opts.Size
	if size <= 0 {
		size = defaultBatchSize
	}
	delay := opts.Delay
	if delay <= 0 {
		delay = defaultBatchDelay
	}

	profiles := make([]*pondiuni.FacultyProfile, len(ids))
	failures := make([]*BatchFailure, len(ids))

	for start := 0; start < len(ids); start += size {
		if start > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
			}
		}
		if ctx.Err() != nil {
			for i := start; i < len(ids); i++ {
				failures[i] = &BatchFailure{NodeID: ids[i], Err: ctx.Err()}
			}
			break
		}

		end := min(start+size, len(ids))
		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				profile, err := client.ScrapeProfile(ctx, ids[i])
				if err != nil {
					slog.WarnContext(ctx, "batch scrape failed", "node_id", ids[i], "err", err)
					failures[i] = &BatchFailure{NodeID: ids[i], Err: err}
					return
				}
				profiles[i] = profile
			}(i)
		}
		wg.Wait()
	}

	result := BatchResult{
		Successful: []*pondiuni.FacultyProfile{},
		Failed:     []BatchFailure{},
	}
	for i := range ids {
		if profiles[i] != nil {
			result.Successful = append(result.Successful, profiles[i])
		}
		if failures[i] != nil {
			result.Failed = append(result.Failed, *failures[i])
		}
	}
	span.SetAttributes(
		attribute.Int("successful", len(result.Successful)),
		attribute.Int("failed", len(result.Failed)),
	)
	return result
}
