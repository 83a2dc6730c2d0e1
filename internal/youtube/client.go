// Package youtube is a thin client for the two Data API v3 endpoints the
// dashboard reads: videos.list (chart=mostPopular) and channels.list
// (part=statistics).
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yt-trending/internal/metrics"
	"github.com/yt-trending/internal/models"
)

// DefaultBaseURL is the production YouTube Data API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

const (
	requestTimeout = 15 * time.Second

	// channels.list accepts at most 50 IDs per call.
	maxIDsPerBatch = 50
)

// HTTPError is returned when the API answers with a non-2xx status. The
// decoded error body is kept so callers can surface it verbatim.
type HTTPError struct {
	StatusCode int
	Payload    models.APIErrorPayload
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("youtube api http %d: %s", e.StatusCode, e.Payload)
}

// APIError is returned when a 2xx response carries an error payload in the
// body instead of items.
type APIError struct {
	Payload models.APIErrorPayload
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube api error: %s", e.Payload)
}

// Client handles direct HTTP requests to the YouTube Data API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithLogger sets the logger used for batch warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new YouTube client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MostPopular fetches the "most popular" chart for a region. A 2xx response
// without an items field yields an empty slice, not an error. Non-2xx
// statuses become *HTTPError, error payloads inside 2xx responses become
// *APIError; neither is retried.
func (c *Client) MostPopular(ctx context.Context, regionCode string, maxResults int) ([]models.Video, error) {
	q := url.Values{}
	q.Set("part", "snippet,statistics")
	q.Set("chart", "mostPopular")
	q.Set("regionCode", regionCode)
	q.Set("maxResults", strconv.Itoa(maxResults))
	q.Set("key", c.apiKey)

	body, err := c.get(ctx, metrics.EndpointVideos, c.baseURL+"/videos?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var decoded models.VideoListResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.EndpointVideos, metrics.StatusError).Inc()
		return nil, fmt.Errorf("failed to decode videos response: %w", err)
	}
	if decoded.Error != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.EndpointVideos, metrics.StatusError).Inc()
		return nil, &APIError{Payload: *decoded.Error}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(metrics.EndpointVideos, metrics.StatusOK).Inc()
	if decoded.Items == nil {
		return []models.Video{}, nil
	}
	return decoded.Items, nil
}

// SubscriberCounts resolves subscriber counts for the given channel IDs.
// Empty and duplicate IDs are dropped; the remainder is fetched in batches
// of at most 50, issued sequentially. A failing batch is logged and skipped
// so partial results survive, which is why there is no error return.
// Channels with hidden subscriber counts are simply absent from the map.
func (c *Client) SubscriberCounts(ctx context.Context, channelIDs []string) map[string]int64 {
	unique := dedupe(channelIDs)
	result := make(map[string]int64, len(unique))
	if len(unique) == 0 {
		return result
	}

	for start := 0; start < len(unique); start += maxIDsPerBatch {
		end := min(start+maxIDsPerBatch, len(unique))
		batch := unique[start:end]
		if err := c.fetchSubscriberBatch(ctx, batch, result); err != nil {
			c.logger.Warn("channel statistics batch failed",
				slog.Int("batch_size", len(batch)),
				slog.String("error", err.Error()),
			)
		}
	}
	return result
}

func (c *Client) fetchSubscriberBatch(ctx context.Context, batch []string, out map[string]int64) error {
	q := url.Values{}
	q.Set("part", "statistics")
	q.Set("id", strings.Join(batch, ","))
	q.Set("key", c.apiKey)

	body, err := c.get(ctx, metrics.EndpointChannels, c.baseURL+"/channels?"+q.Encode())
	if err != nil {
		return err
	}

	var decoded models.ChannelListResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.EndpointChannels, metrics.StatusError).Inc()
		return fmt.Errorf("failed to decode channels response: %w", err)
	}
	if decoded.Error != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.EndpointChannels, metrics.StatusError).Inc()
		return &APIError{Payload: *decoded.Error}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(metrics.EndpointChannels, metrics.StatusOK).Inc()
	for _, ch := range decoded.Items {
		if ch.ID == "" || ch.Statistics.SubscriberCount == "" {
			continue
		}
		n, err := strconv.ParseInt(ch.Statistics.SubscriberCount, 10, 64)
		if err != nil {
			continue
		}
		out[ch.ID] = n
	}
	return nil
}

// get issues one GET and returns the raw body of a 2xx response. Non-2xx
// statuses are turned into *HTTPError carrying the decoded error body.
func (c *Client) get(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, metrics.StatusError).Inc()
		return nil, fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, metrics.StatusError).Inc()
		return nil, fmt.Errorf("failed to read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, metrics.StatusError).Inc()
		return nil, &HTTPError{StatusCode: resp.StatusCode, Payload: decodeErrorPayload(body)}
	}
	return body, nil
}

// decodeErrorPayload extracts the error object from a response body. Bodies
// that are not the documented JSON shape are wrapped as a raw-text message.
func decodeErrorPayload(body []byte) models.APIErrorPayload {
	var wrapper struct {
		Error models.APIErrorPayload `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && (wrapper.Error.Code != 0 || wrapper.Error.Message != "") {
		return wrapper.Error
	}
	return models.APIErrorPayload{Message: strings.TrimSpace(string(body))}
}

// dedupe drops empty IDs and duplicates, preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
