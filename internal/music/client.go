// Package music searches videos through a keyless YouTube proxy for the
// mood-matched playlist screen.
package music

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jaynujangad03/moodcam/internal/logging"
)

// DefaultBaseURL is the public keyless proxy the app ships with.
const DefaultBaseURL = "https://yt.lemnoslife.com/noKey"

const maxResults = 10

// ErrEmptyQuery is returned for a blank search query.
var ErrEmptyQuery = errors.New("music: empty search query")

// Result is one playable search hit.
type Result struct {
	Title        string
	Channel      string
	ThumbnailURL string
	ExternalURL  string
}

// Client talks to a YouTube-compatible search endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger logging.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// searchResponse mirrors the subset of the YouTube Data API v3 search
// response the app reads.
type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns up to ten video hits for the query.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	u := fmt.Sprintf("%s/search?part=snippet&q=%s&type=video&maxResults=%d",
		c.baseURL, url.QueryEscape(query), maxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("music: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("music: search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("music: unexpected status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("music: decode response: %w", err)
	}

	results := make([]Result, 0, len(body.Items))
	for _, item := range body.Items {
		if item.ID.VideoID == "" {
			continue
		}
		results = append(results, Result{
			Title:        item.Snippet.Title,
			Channel:      item.Snippet.ChannelTitle,
			ThumbnailURL: item.Snippet.Thumbnails.Default.URL,
			ExternalURL:  "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		})
	}

	c.logger.Info(ctx, "music search", "query", query, "results", len(results))
	return results, nil
}
