package extractor

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"doc-quiz/internal/cache"
	"doc-quiz/internal/domain"
	"doc-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedExtractor memoizes extraction results by content hash. Concurrent
// uploads of identical bytes share a single extraction.
type CachedExtractor struct {
	next  domain.TextExtractor
	cache domain.Cache
	ttl   time.Duration
	group singleflight.Group
}

// NewCachedExtractor wraps next. With a nil cache it returns next unchanged.
func NewCachedExtractor(next domain.TextExtractor, c domain.Cache, ttl time.Duration) domain.TextExtractor {
	if c == nil {
		return next
	}
	return &CachedExtractor{next: next, cache: c, ttl: ttl}
}

// Extract serves clean results from the cache. Degraded results are never
// stored, so a transient failure is retried on the next upload.
func (c *CachedExtractor) Extract(ctx context.Context, filename string, r io.Reader) domain.Extraction {
	format := domain.FormatOf(filename)
	if format == domain.FormatUnknown {
		return c.next.Extract(ctx, filename, r)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Extraction{Format: format, Reason: fmt.Sprintf("failed to read document: %v", err)}
	}

	key := contentKey(data, format)
	// The shared extraction outlives any single caller; each caller only
	// stops waiting when its own context ends.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		if cached, ok := c.lookup(shared, key); ok {
			return cached, nil
		}
		result := c.next.Extract(shared, filename, bytes.NewReader(data))
		if !result.Degraded() {
			c.store(shared, key, result)
		}
		return result, nil
	})

	select {
	case res := <-ch:
		return res.Val.(domain.Extraction)
	case <-ctx.Done():
		return domain.Extraction{Format: format, Reason: fmt.Sprintf("extraction abandoned: %v", ctx.Err())}
	}
}

func contentKey(data []byte, format domain.DocumentFormat) string {
	sum := sha256.Sum256(data)
	return cache.GenerateCacheKey("extractor", "text", hex.EncodeToString(sum[:]), string(format))
}

func (c *CachedExtractor) lookup(ctx context.Context, key string) (domain.Extraction, bool) {
	raw, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Extraction cache read failed", zap.String("key", key), zap.Error(err))
		}
		return domain.Extraction{}, false
	}

	var result domain.Extraction
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		logger.Get().Warn("Discarding malformed cached extraction", zap.String("key", key), zap.Error(err))
		if err := c.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Failed to evict malformed cached extraction", zap.String("key", key), zap.Error(err))
		}
		return domain.Extraction{}, false
	}
	logger.Get().Debug("Extraction cache hit", zap.String("key", key))
	return result, true
}

func (c *CachedExtractor) store(ctx context.Context, key string, result domain.Extraction) {
	raw, err := json.Marshal(result)
	if err != nil {
		logger.Get().Warn("Failed to marshal extraction for caching", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, string(raw), c.ttl); err != nil {
		logger.Get().Warn("Extraction cache write failed", zap.String("key", key), zap.Error(err))
	}
}

var _ domain.TextExtractor = (*CachedExtractor)(nil)
