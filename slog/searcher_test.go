package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/pmilosz/leadharvest"
	"github.com/pmilosz/leadharvest/mock"
	lhslog "github.com/pmilosz/leadharvest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPlaceSearcher_SearchPlaces(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.PlaceSearcher{
		SearchPlacesFn: func(ctx context.Context, query leadharvest.PlaceQuery) ([]*leadharvest.Business, error) {
			return []*leadharvest.Business{{Name: "Ace Plumbing"}}, nil
		},
	}

	searcher := lhslog.NewLoggingPlaceSearcher(inner, logger)
	businesses, err := searcher.SearchPlaces(context.Background(), leadharvest.PlaceQuery{
		Keyword: "plumbers",
		City:    "Austin",
		State:   "TX",
	})

	require.NoError(t, err)
	assert.Len(t, businesses, 1)
	output := buf.String()
	assert.Contains(t, output, "places search")
	assert.Contains(t, output, "plumbers in Austin, TX")
	assert.Contains(t, output, "count=1")
	assert.Contains(t, output, "duration=")
}
