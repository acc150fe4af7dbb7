package assets

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/OleksaDid/simple-debts/internal/config"
	"github.com/OleksaDid/simple-debts/pkg/clients"
	"github.com/OleksaDid/simple-debts/pkg/metrics"
	"go.uber.org/zap"
)

const (
	maxRetries     = 3
	retryInterval  = time.Second * 1
	enqueueTimeout = time.Second * 5
)

// Cleaner removes user pictures from the asset storage in the background.
type Cleaner struct {
	baseURL       string
	client        clients.HTTPClientI
	workerPool    WorkerPoolI
	retryInterval time.Duration
}

func New(cfg *config.Config, client clients.HTTPClientI) *Cleaner {
	return &Cleaner{
		baseURL:       strings.TrimSuffix(cfg.AssetsAddress, "/"),
		client:        client,
		workerPool:    NewWorkerPool(cfg.AssetsWorkers),
		retryInterval: retryInterval,
	}
}

// Owns reports whether url points into the configured storage.
func (c *Cleaner) Owns(url string) bool {
	return c.baseURL != "" && strings.HasPrefix(url, c.baseURL+"/")
}

// DeleteAsset schedules the removal and returns immediately. Failures are
// only logged; the caller's request is never affected.
func (c *Cleaner) DeleteAsset(ctx context.Context, url string) {
	if !c.Owns(url) {
		zap.L().Debug("Asset is not hosted by storage, skipping", zap.String("url", url))
		metrics.AssetDeletions.WithLabelValues("skipped").Inc()
		return
	}

	taskCtx := context.WithoutCancel(ctx)
	enqueueCtx, cancel := context.WithTimeout(taskCtx, enqueueTimeout)
	defer cancel()

	err := c.workerPool.AddTask(enqueueCtx, func() error {
		err := c.deleteAsset(taskCtx, url)
		if err != nil {
			metrics.AssetDeletions.WithLabelValues("failed").Inc()
			return err
		}
		metrics.AssetDeletions.WithLabelValues("deleted").Inc()
		return nil
	})
	if err != nil {
		zap.L().Error("Failed to schedule asset deletion", zap.String("url", url), zap.Error(err))
		metrics.AssetDeletions.WithLabelValues("dropped").Inc()
	}
}

func (c *Cleaner) deleteAsset(ctx context.Context, url string) error {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, respHeaders, err := c.client.Delete(ctx, url, nil)
		if err != nil {
			lastErr = err
			c.wait(c.retryInterval * time.Duration(attempt))
			continue
		}

		switch {
		case statusCode == http.StatusOK, statusCode == http.StatusAccepted,
			statusCode == http.StatusNoContent, statusCode == http.StatusNotFound:
			zap.L().Info("Asset deleted", zap.String("url", url), zap.Int("status", statusCode))
			return nil
		case statusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited with status %d", statusCode)
			c.wait(c.retryAfter(respHeaders, attempt))
		case statusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("storage responded with status %d", statusCode)
			c.wait(c.retryInterval * time.Duration(attempt))
		default:
			return fmt.Errorf("unexpected status code %d deleting %s", statusCode, url)
		}
	}
	return fmt.Errorf("failed to delete asset %s after %d retries: %w", url, maxRetries, lastErr)
}

func (c *Cleaner) retryAfter(respHeaders http.Header, attempt int) time.Duration {
	retryAfter := c.retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("Rate limit detected, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", retryAfter))
	return retryAfter
}

func (c *Cleaner) wait(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// Close waits for the scheduled deletions.
func (c *Cleaner) Close() {
	c.workerPool.Close()
}
