package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level.
// It implements ChartHooks, RenderHooks and CacheHooks.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks logging to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger.WithPrefix("events")}
}

func (h *LogHooks) OnAdded(_ context.Context, chartID, datasetID string) {
	h.logger.Debug("added", "chart", short(chartID), "dataset", datasetID)
}

func (h *LogHooks) OnActivated(_ context.Context, chartID, datasetID string) {
	h.logger.Debug("activated", "chart", short(chartID), "dataset", datasetID)
}

func (h *LogHooks) OnDrawn(_ context.Context, chartID, datasetID string, animated bool) {
	h.logger.Debug("drawn", "chart", short(chartID), "dataset", datasetID, "animated", animated)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render started", "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("render complete", "format", format, "bytes", size, "took", d.Round(time.Microsecond))
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

var (
	_ ChartHooks  = (*LogHooks)(nil)
	_ RenderHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
)
