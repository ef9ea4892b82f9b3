package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/yt-insights/ytca/internal/analytics"
)

const youtubeAPIBaseURL = "https://www.googleapis.com/youtube/v3"

// ErrUnsupportedURL means the URL is not a recognizable channel URL
var ErrUnsupportedURL = errors.New("unsupported YouTube channel URL")

// YouTubeClient resolves channel URLs with direct HTTP requests to the YouTube API
type YouTubeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// ClientOption configures a YouTubeClient.
type ClientOption func(*YouTubeClient)

// WithBaseURL sets a custom API base URL (useful for testing).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *YouTubeClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *YouTubeClient) {
		c.client = client
	}
}

// NewYouTubeClient creates a new YouTube client
func NewYouTubeClient(apiKey string, opts ...ClientOption) *YouTubeClient {
	c := &YouTubeClient{
		apiKey:  apiKey,
		baseURL: youtubeAPIBaseURL,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExtractChannelIDFromURL extracts the channel ID from the common YouTube
// channel URL formats, looking up handles and custom names when needed.
func (c *YouTubeClient) ExtractChannelIDFromURL(ctx context.Context, channelURL string) (string, error) {
	channelURL = strings.TrimSpace(channelURL)
	if !strings.Contains(channelURL, "://") {
		channelURL = "https://" + channelURL
	}

	parsedURL, err := url.Parse(channelURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}

	host := strings.ToLower(parsedURL.Hostname())
	path := strings.TrimRight(parsedURL.Path, "/")

	switch {
	case matchesHost(host, "youtu.be"):
		return "", fmt.Errorf("%w: youtu.be links point to videos, not channels", ErrUnsupportedURL)
	case !matchesHost(host, "youtube.com"):
		return "", fmt.Errorf("%w: %s", ErrUnsupportedURL, channelURL)
	}

	switch {
	case strings.HasPrefix(path, "/channel/"):
		// youtube.com/channel/UC...
		id := firstSegment(strings.TrimPrefix(path, "/channel/"))
		if id == "" {
			return "", fmt.Errorf("%w: missing channel ID", ErrUnsupportedURL)
		}
		return id, nil
	case strings.HasPrefix(path, "/@"):
		// youtube.com/@Handle
		return c.lookupChannelID(ctx, "forHandle", firstSegment(strings.TrimPrefix(path, "/@")))
	case strings.HasPrefix(path, "/c/"):
		return c.lookupChannelID(ctx, "forUsername", firstSegment(strings.TrimPrefix(path, "/c/")))
	case strings.HasPrefix(path, "/user/"):
		return c.lookupChannelID(ctx, "forUsername", firstSegment(strings.TrimPrefix(path, "/user/")))
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedURL, channelURL)
}

// matchesHost reports whether host is domain itself or one of its subdomains
func matchesHost(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

func firstSegment(path string) string {
	segment, _, _ := strings.Cut(path, "/")
	return segment
}

// lookupChannelID resolves a handle or legacy username via channels.list
func (c *YouTubeClient) lookupChannelID(ctx context.Context, param, value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("%w: empty %s", ErrUnsupportedURL, param)
	}

	query := url.Values{}
	query.Set("part", "id")
	query.Set(param, value)
	query.Set("key", c.apiKey)
	requestURL := c.baseURL + "/channels?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &analytics.UpstreamError{Op: "channels.list", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &analytics.UpstreamError{Op: "channels.list", Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &analytics.UpstreamError{Op: "channels.list", Status: resp.StatusCode, Body: string(body)}
	}

	var response struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Items) == 0 || response.Items[0].ID == "" {
		return "", fmt.Errorf("%w: no channel for %s=%s", analytics.ErrChannelNotFound, param, value)
	}
	return response.Items[0].ID, nil
}
