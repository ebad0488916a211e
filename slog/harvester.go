package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pmilosz/leadharvest"
)

// Ensure LoggingHarvester implements leadharvest.Harvester.
var _ leadharvest.Harvester = (*LoggingHarvester)(nil)

// LoggingHarvester wraps a Harvester with debug logging.
type LoggingHarvester struct {
	next   leadharvest.Harvester
	logger *slog.Logger
}

// NewLoggingHarvester creates a new LoggingHarvester.
func NewLoggingHarvester(next leadharvest.Harvester, logger *slog.Logger) *LoggingHarvester {
	return &LoggingHarvester{next: next, logger: logger}
}

// Harvest delegates to the wrapped harvester and logs the outcome.
func (h *LoggingHarvester) Harvest(ctx context.Context, url string) (emails []string) {
	defer func(begin time.Time) {
		h.logger.Info("harvest",
			"url", url,
			"emails", len(emails),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return h.next.Harvest(ctx, url)
}

// HarvestURL delegates to the wrapped harvester and logs the outcome.
func (h *LoggingHarvester) HarvestURL(ctx context.Context, url string) (result *leadharvest.HarvestResult) {
	defer func(begin time.Time) {
		h.logger.Info("harvest",
			"url", url,
			"status", result.Status.String(),
			"emails", len(result.Emails),
			"duration", time.Since(begin),
			"err", result.Err,
		)
	}(time.Now())
	return h.next.HarvestURL(ctx, url)
}
