// Package jsearch adapts the JSearch API (RapidAPI) into canonical listing
// records. JSearch is the primary provider: its records win dedup conflicts
// when the pipeline runs it first.
package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/careerpilot/jobmatch/internal/listing"
)

const (
	apiURL     = "https://jsearch.p.rapidapi.com"
	searchPath = "/search"
	apiHost    = "jsearch.p.rapidapi.com"
)

type Client struct {
	key        string
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
}

func New(logger *zap.Logger, key string) *Client {
	return &Client{
		key:    key,
		logger: logger,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Name() string { return "jsearch" }

// searchResponse is the provider envelope around the job items.
type searchResponse struct {
	Status string           `json:"status"`
	Data   []map[string]any `json:"data"`
}

// Search queries JSearch and adapts the response. The location is folded
// into the query string because the provider has no separate location
// parameter on its basic search endpoint.
func (c *Client) Search(ctx context.Context, query, location string) (*listing.Listings, error) {
	q := url.Values{}
	text := query
	if location != "" {
		text = fmt.Sprintf("%s in %s", query, location)
	}
	q.Set("query", text)
	q.Set("num_pages", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL+searchPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.key)
	req.Header.Set("X-RapidAPI-Host", apiHost)
	req.URL.RawQuery = q.Encode()

	c.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decoding jsearch response: %w", err)
	}

	listings, err := Adapt(response.Data, location)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("got response from jsearch", zap.Int("items", listings.Len()))

	return listings, nil
}
