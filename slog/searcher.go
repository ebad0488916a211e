package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pmilosz/leadharvest"
)

// Ensure LoggingPlaceSearcher implements leadharvest.PlaceSearcher.
var _ leadharvest.PlaceSearcher = (*LoggingPlaceSearcher)(nil)

// LoggingPlaceSearcher wraps a PlaceSearcher with debug logging.
type LoggingPlaceSearcher struct {
	next   leadharvest.PlaceSearcher
	logger *slog.Logger
}

// NewLoggingPlaceSearcher creates a new LoggingPlaceSearcher.
func NewLoggingPlaceSearcher(next leadharvest.PlaceSearcher, logger *slog.Logger) *LoggingPlaceSearcher {
	return &LoggingPlaceSearcher{next: next, logger: logger}
}

// SearchPlaces delegates to the wrapped searcher and logs the operation.
func (s *LoggingPlaceSearcher) SearchPlaces(ctx context.Context, query leadharvest.PlaceQuery) (businesses []*leadharvest.Business, err error) {
	defer func(begin time.Time) {
		s.logger.Info("places search",
			"query", query.Text(),
			"count", len(businesses),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchPlaces(ctx, query)
}
