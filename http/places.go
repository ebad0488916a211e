package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pmilosz/leadharvest"
)

// DefaultPlacesBaseURL is the Google Places API endpoint prefix.
const DefaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place"

// defaultMaxResults caps a search when the query doesn't specify one.
const defaultMaxResults = 50

// Compile-time interface verification.
var _ leadharvest.PlaceSearcher = (*PlacesClient)(nil)

// PlacesClient finds businesses through the Google Places Text Search API
// and enriches each hit with a Place Details lookup (website, phone).
type PlacesClient struct {
	apiKey     string
	baseURL    string
	client     *http.Client
	pageDelays []time.Duration
}

// PlacesOption configures a PlacesClient.
type PlacesOption func(*PlacesClient)

// WithPlacesBaseURL overrides the API endpoint prefix. Used in tests.
func WithPlacesBaseURL(u string) PlacesOption {
	return func(c *PlacesClient) {
		c.baseURL = u
	}
}

// WithPlacesHTTPClient replaces the underlying HTTP client.
func WithPlacesHTTPClient(client *http.Client) PlacesOption {
	return func(c *PlacesClient) {
		c.client = client
	}
}

// WithPageTokenDelays overrides the next-page polling delays. Used in
// tests to avoid real sleeps.
func WithPageTokenDelays(delays []time.Duration) PlacesOption {
	return func(c *PlacesClient) {
		c.pageDelays = delays
	}
}

// NewPlacesClient creates a PlacesClient for the given API key.
func NewPlacesClient(apiKey string, opts ...PlacesOption) *PlacesClient {
	c := &PlacesClient{
		apiKey:     apiKey,
		baseURL:    DefaultPlacesBaseURL,
		client:     &http.Client{Timeout: 15 * time.Second},
		pageDelays: retryDelays(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResponse is the wire shape of a Text Search page.
type searchResponse struct {
	Results []struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		PlaceID          string `json:"place_id"`
	} `json:"results"`
	NextPageToken string `json:"next_page_token"`
	Status        string `json:"status"`
	ErrorMessage  string `json:"error_message"`
}

// detailsResponse is the wire shape of a Place Details lookup.
type detailsResponse struct {
	Result struct {
		Name                 string `json:"name"`
		FormattedAddress     string `json:"formatted_address"`
		FormattedPhoneNumber string `json:"formatted_phone_number"`
		Website              string `json:"website"`
	} `json:"result"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// SearchPlaces runs a text search like "warehouses in San Jose, CA" and
// returns up to query.MaxResults businesses, paging through results with
// the API's next-page token.
func (c *PlacesClient) SearchPlaces(ctx context.Context, query leadharvest.PlaceQuery) ([]*leadharvest.Business, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if c.apiKey == "" {
		return nil, leadharvest.Errorf(leadharvest.EINVALID, "Google Places API key required")
	}

	maxResults := query.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	var businesses []*leadharvest.Business
	pageToken := ""

	for {
		page, err := c.searchPage(ctx, query.Text(), pageToken)
		if err != nil {
			return nil, err
		}

		for _, hit := range page.Results {
			if len(businesses) >= maxResults {
				return businesses, nil
			}

			business := &leadharvest.Business{
				Name:    hit.Name,
				Address: hit.FormattedAddress,
				PlaceID: hit.PlaceID,
			}
			// Website and phone only come from the details endpoint.
			// A failed lookup still yields a usable (if thinner) lead.
			if err := c.fillDetails(ctx, business); err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
			}
			businesses = append(businesses, business)
		}

		if page.NextPageToken == "" || len(businesses) >= maxResults {
			return businesses, nil
		}
		pageToken = page.NextPageToken
	}
}

// searchPage fetches one page of text search results. When a page token
// is supplied the request is retried with delays: tokens take a moment to
// become valid and the API answers INVALID_REQUEST until then.
func (c *PlacesClient) searchPage(ctx context.Context, text, pageToken string) (*searchResponse, error) {
	params := url.Values{}
	params.Set("query", text)
	params.Set("key", c.apiKey)
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}
	endpoint := c.baseURL + "/textsearch/json?" + params.Encode()

	var page searchResponse
	attempt := func() error {
		if err := c.getJSON(ctx, endpoint, &page); err != nil {
			return err
		}
		switch page.Status {
		case "OK", "ZERO_RESULTS":
			return nil
		case "INVALID_REQUEST":
			// Page token not warm yet.
			return leadharvest.Errorf(leadharvest.EUNAVAILABLE, "places page token not ready")
		default:
			return leadharvest.Errorf(leadharvest.EUNAVAILABLE, "places search failed: %s %s", page.Status, page.ErrorMessage)
		}
	}

	var err error
	if pageToken == "" {
		err = attempt()
	} else {
		err = withRetry(ctx, c.pageDelays, attempt)
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// fillDetails looks up website and phone for a business in place.
func (c *PlacesClient) fillDetails(ctx context.Context, business *leadharvest.Business) error {
	params := url.Values{}
	params.Set("place_id", business.PlaceID)
	params.Set("fields", "name,formatted_address,formatted_phone_number,website")
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + "/details/json?" + params.Encode()

	var details detailsResponse
	if err := c.getJSON(ctx, endpoint, &details); err != nil {
		return err
	}
	if details.Status != "OK" {
		return leadharvest.Errorf(leadharvest.EUNAVAILABLE, "place details failed: %s %s", details.Status, details.ErrorMessage)
	}

	business.Phone = details.Result.FormattedPhoneNumber
	business.Website = details.Result.Website
	if business.Address == "" {
		business.Address = details.Result.FormattedAddress
	}
	return nil
}

// getJSON fetches a URL and decodes the JSON response body into v.
func (c *PlacesClient) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d for places request", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}
