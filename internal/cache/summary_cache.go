package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainstats/internal/summary"
	"github.com/2beens/trainstats/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

type summarizer interface {
	Summarize(ctx context.Context, userID int64, periodDays int) (*summary.ActivitySummary, error)
}

// SummaryCache decorates a Summarizer with a redis-backed cache. The
// engine itself stays cache-free; this sits at the calling layer and
// caches the whole computation. Cache failures degrade to computing
// the summary, never to an error.
type SummaryCache struct {
	redisClient *redis.Client
	summarizer  summarizer
	ttl         time.Duration
}

func NewSummaryCache(redisClient *redis.Client, s summarizer, ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		redisClient: redisClient,
		summarizer:  s,
		ttl:         ttl,
	}
}

func summaryCacheKey(userID int64, periodDays int) string {
	return fmt.Sprintf("summary::%d::%d", userID, periodDays)
}

func (c *SummaryCache) Summarize(ctx context.Context, userID int64, periodDays int) (_ *summary.ActivitySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.summary.summarize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	key := summaryCacheKey(userID, periodDays)

	cached, err := c.redisClient.Get(ctx, key).Result()
	switch {
	case err == nil:
		var cachedSummary summary.ActivitySummary
		unmarshalErr := json.Unmarshal([]byte(cached), &cachedSummary)
		if unmarshalErr == nil {
			return &cachedSummary, nil
		}
		log.Warnf("unmarshal cached summary [%s]: %s", key, unmarshalErr)
	case !errors.Is(err, redis.Nil):
		log.Warnf("get cached summary [%s]: %s", key, err)
	}

	computed, err := c.summarizer.Summarize(ctx, userID, periodDays)
	if err != nil {
		return nil, err
	}

	summaryJson, err := json.Marshal(computed)
	if err != nil {
		log.Warnf("marshal summary for cache [%s]: %s", key, err)
		return computed, nil
	}
	if err := c.redisClient.Set(ctx, key, summaryJson, c.ttl).Err(); err != nil {
		log.Warnf("set cached summary [%s]: %s", key, err)
	}

	return computed, nil
}
