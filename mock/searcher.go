package mock

import (
	"context"

	"github.com/pmilosz/leadharvest"
)

var _ leadharvest.PlaceSearcher = (*PlaceSearcher)(nil)

// PlaceSearcher is a mock implementation of leadharvest.PlaceSearcher.
type PlaceSearcher struct {
	SearchPlacesFn func(ctx context.Context, query leadharvest.PlaceQuery) ([]*leadharvest.Business, error)
}

func (s *PlaceSearcher) SearchPlaces(ctx context.Context, query leadharvest.PlaceQuery) ([]*leadharvest.Business, error) {
	return s.SearchPlacesFn(ctx, query)
}
