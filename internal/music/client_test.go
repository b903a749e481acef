package music

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaynujangad03/moodcam/internal/logging"
)

const sampleResponse = `{
  "items": [
    {
      "id": {"videoId": "abc123"},
      "snippet": {
        "title": "Happy vibes mix",
        "channelTitle": "Lofi Beats",
        "thumbnails": {"default": {"url": "https://img.example/abc123.jpg"}}
      }
    },
    {
      "id": {},
      "snippet": {"title": "channel result, no videoId", "channelTitle": "Some Channel"}
    },
    {
      "id": {"videoId": "def456"},
      "snippet": {
        "title": "Rainy day piano",
        "channelTitle": "Calm Keys",
        "thumbnails": {"default": {"url": "https://img.example/def456.jpg"}}
      }
    }
  ]
}`

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "snippet", q.Get("part"))
		assert.Equal(t, "happy songs", q.Get("q"))
		assert.Equal(t, "video", q.Get("type"))
		assert.Equal(t, "10", q.Get("maxResults"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, logging.NewNop())
	results, err := c.Search(context.Background(), "happy songs")
	require.NoError(t, err)

	require.Len(t, results, 2, "items without a videoId are skipped")
	assert.Equal(t, Result{
		Title:        "Happy vibes mix",
		Channel:      "Lofi Beats",
		ThumbnailURL: "https://img.example/abc123.jpg",
		ExternalURL:  "https://www.youtube.com/watch?v=abc123",
	}, results[0])
	assert.Equal(t, "https://www.youtube.com/watch?v=def456", results[1].ExternalURL)
}

func TestSearch_EmptyQuery(t *testing.T) {
	c := NewClient("http://unused", time.Second, logging.NewNop())
	_, err := c.Search(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSearch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logging.NewNop())
	_, err := c.Search(context.Background(), "anything")
	assert.ErrorContains(t, err, "unexpected status 403")
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("", time.Second, logging.NewNop())
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}
