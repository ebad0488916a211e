package leadharvest

import "context"

// Business is a business returned by a place search, before it becomes a
// stored lead.
type Business struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	PlaceID string `json:"placeId"`
}

// PlaceQuery describes a business search.
type PlaceQuery struct {
	Keyword string
	City    string
	State   string

	// MaxResults caps the number of businesses returned across result pages.
	// Zero means the searcher's default.
	MaxResults int
}

// Text renders the query as free text, e.g. "warehouses in San Jose, CA".
func (q PlaceQuery) Text() string {
	text := q.Keyword
	if q.City != "" {
		text += " in " + q.City
		if q.State != "" {
			text += ", " + q.State
		}
	}
	return text
}

// Validate returns an error if the query is unusable.
func (q PlaceQuery) Validate() error {
	if q.Keyword == "" {
		return Errorf(EINVALID, "search keyword required")
	}
	return nil
}

// PlaceSearcher finds businesses matching a text query.
// Implementations page through results and look up per-place details
// (website, phone) so callers receive complete Business records.
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, query PlaceQuery) ([]*Business, error)
}
