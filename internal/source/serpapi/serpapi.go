// Package serpapi adapts the SerpAPI google_jobs engine into canonical
// listing records. SerpAPI exposes no structured skill list, so the adapter
// falls back to scanning descriptions for known skills.
package serpapi

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
	apiURL     = "https://serpapi.com"
	searchPath = "/search.json"
	engine     = "google_jobs"
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

func (c *Client) Name() string { return "serpapi" }

type searchResponse struct {
	JobsResults []map[string]any `json:"jobs_results"`
}

func (c *Client) Search(ctx context.Context, query, location string) (*listing.Listings, error) {
	q := url.Values{}
	q.Set("engine", engine)
	q.Set("q", query)
	if location != "" {
		q.Set("location", location)
	}
	q.Set("hl", "en")
	q.Set("gl", "us")
	q.Set("api_key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL+searchPath, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = q.Encode()

	c.logger.Debug("make request", zap.String("url", req.URL.Host+req.URL.Path))

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
		return nil, fmt.Errorf("decoding serpapi response: %w", err)
	}

	listings, err := Adapt(response.JobsResults, location)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("got response from serpapi", zap.Int("items", listings.Len()))

	return listings, nil
}
