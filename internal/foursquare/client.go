// Package foursquare is a thin client for the Foursquare Places API (v3).
package foursquare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"places-api/internal/models"
	"places-api/internal/places"
)

const (
	DefaultBaseURL = "https://api.foursquare.com/v3"

	DefaultSearchFields  = "fsq_id,name,location,categories,geocodes"
	DefaultDetailsFields = "fsq_id,name,description,location,categories,rating,stats,website,tel,hours,geocodes"

	DefaultSearchLimit = 10
	DefaultPhotoLimit  = 10

	// maxErrorBody bounds how much of an error response is kept for diagnostics.
	maxErrorBody = 4 << 10
)

// UpstreamError is a non-2xx answer from the Places API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Foursquare API error: %d", e.StatusCode)
}

// SearchParams mirrors the query parameters of GET /places/search.
type SearchParams struct {
	Query      string
	Near       string
	LL         string
	Radius     int
	Categories string
	Limit      int
	Sort       string
	Fields     string
}

func (p SearchParams) values() url.Values {
	v := url.Values{}
	if p.Query != "" {
		v.Set("query", p.Query)
	}
	if p.Near != "" {
		v.Set("near", p.Near)
	}
	if p.LL != "" {
		v.Set("ll", p.LL)
	}
	if p.Radius > 0 {
		v.Set("radius", strconv.Itoa(p.Radius))
	}
	if p.Categories != "" {
		v.Set("categories", p.Categories)
	}
	if p.Sort != "" {
		v.Set("sort", strings.ToUpper(p.Sort))
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	v.Set("limit", strconv.Itoa(limit))

	fields := p.Fields
	if fields == "" {
		fields = DefaultSearchFields
	}
	v.Set("fields", fields)
	return v
}

// Client talks to the Places API with a fixed API key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client. An empty baseURL selects the public endpoint.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// SearchPlaces runs a text or proximity search.
func (c *Client) SearchPlaces(ctx context.Context, params SearchParams) ([]models.RawPlace, error) {
	var body struct {
		Results []models.RawPlace `json:"results"`
	}
	if err := c.get(ctx, "/places/search", params.values(), &body); err != nil {
		return nil, fmt.Errorf("foursquare: search places: %w", err)
	}
	if body.Results == nil {
		body.Results = []models.RawPlace{}
	}
	return body.Results, nil
}

// GetPlace fetches the detail record of a single place.
func (c *Client) GetPlace(ctx context.Context, id string) (models.RawPlace, error) {
	var place models.RawPlace
	q := url.Values{"fields": {DefaultDetailsFields}}
	if err := c.get(ctx, "/places/"+url.PathEscape(id), q, &place); err != nil {
		return models.RawPlace{}, fmt.Errorf("foursquare: get place %s: %w", id, err)
	}
	return place, nil
}

// GetPlacePhotos lists up to limit photos of a place.
func (c *Client) GetPlacePhotos(ctx context.Context, id string, limit int) ([]models.PhotoRef, error) {
	if limit <= 0 {
		limit = DefaultPhotoLimit
	}
	var photos []models.PhotoRef
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, "/places/"+url.PathEscape(id)+"/photos", q, &photos); err != nil {
		return nil, fmt.Errorf("foursquare: get photos of %s: %w", id, err)
	}
	return photos, nil
}

// PhotoFetcher exposes the photo endpoint as a normalizer photo lookup.
func (c *Client) PhotoFetcher(limit int) places.PhotoFetcher {
	return places.PhotoFetcherFunc(func(ctx context.Context, id string) ([]models.PhotoRef, error) {
		return c.GetPlacePhotos(ctx, id, limit)
	})
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
