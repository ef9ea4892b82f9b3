package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yt-insights/ytca/internal/analytics"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) *YouTubeSource {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	source, err := NewYouTubeSource(context.Background(), "test-key",
		option.WithEndpoint(server.URL+"/"),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)
	return source
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestYouTubeSource_UploadsPlaylist(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/channels", r.URL.Path)
		switch r.URL.Query().Get("id") {
		case "UC1":
			writeJSON(w, http.StatusOK, `{"items":[{"id":"UC1","contentDetails":{"relatedPlaylists":{"uploads":"UU1"}}}]}`)
		case "UCempty":
			writeJSON(w, http.StatusOK, `{"items":[{"id":"UCempty","contentDetails":{"relatedPlaylists":{}}}]}`)
		default:
			writeJSON(w, http.StatusOK, `{"items":[]}`)
		}
	})

	playlistID, err := source.UploadsPlaylist(context.Background(), "UC1")
	require.NoError(t, err)
	assert.Equal(t, "UU1", playlistID)

	_, err = source.UploadsPlaylist(context.Background(), "UCmissing")
	assert.ErrorIs(t, err, analytics.ErrChannelNotFound)

	_, err = source.UploadsPlaylist(context.Background(), "UCempty")
	assert.ErrorIs(t, err, analytics.ErrNoUploads)
}

func TestYouTubeSource_PlaylistPage(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/playlistItems", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "UU1", query.Get("playlistId"))
		assert.Equal(t, "50", query.Get("maxResults"))

		if query.Get("pageToken") == "" {
			writeJSON(w, http.StatusOK, `{
				"nextPageToken": "tok2",
				"items": [
					{"contentDetails": {"videoId": "v1"}},
					{"contentDetails": {}},
					{"contentDetails": {"videoId": "v2"}}
				]
			}`)
			return
		}
		assert.Equal(t, "tok2", query.Get("pageToken"))
		writeJSON(w, http.StatusOK, `{"items":[{"contentDetails":{"videoId":"v3"}}]}`)
	})

	page, err := source.PlaylistPage(context.Background(), "UU1", "", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, page.VideoIDs)
	assert.Equal(t, "tok2", page.NextCursor)

	page, err = source.PlaylistPage(context.Background(), "UU1", "tok2", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"v3"}, page.VideoIDs)
	assert.Empty(t, page.NextCursor)
}

func TestYouTubeSource_PlaylistNotFound(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error":{"code":404,"message":"playlist not found","errors":[{"reason":"playlistNotFound"}]}}`)
	})

	_, err := source.PlaylistPage(context.Background(), "UU1", "", 50)
	assert.ErrorIs(t, err, analytics.ErrNoUploads)
	assert.True(t, analytics.IsNotFound(err))
}

func TestYouTubeSource_Videos(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"items":[
			{
				"id": "v1",
				"snippet": {"title": "Is Messi the GOAT?", "publishedAt": "2026-01-05T18:00:00Z"},
				"statistics": {"viewCount": "1000", "likeCount": "50", "commentCount": "5"},
				"contentDetails": {"duration": "PT10M"}
			},
			{"id": "v2"}
		]}`)
	})

	videos, err := source.Videos(context.Background(), []string{"v1", "v2"})
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "v1", videos[0].ID)
	assert.Equal(t, "Is Messi the GOAT?", videos[0].Title)
	assert.Equal(t, time.Date(2026, 1, 5, 18, 0, 0, 0, time.UTC), videos[0].PublishedAt)
	assert.Equal(t, int64(1000), videos[0].ViewCount)
	assert.Equal(t, int64(50), videos[0].LikeCount)
	assert.Equal(t, int64(5), videos[0].CommentCount)
	assert.Equal(t, "PT10M", videos[0].Duration)

	// Missing parts fall back to zero values.
	assert.Equal(t, "v2", videos[1].ID)
	assert.Zero(t, videos[1].ViewCount)
	assert.True(t, videos[1].PublishedAt.IsZero())
}

func TestYouTubeSource_UpstreamError(t *testing.T) {
	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"error":{"code":403,"message":"quota exceeded","errors":[{"reason":"quotaExceeded"}]}}`)
	})

	_, err := source.Videos(context.Background(), []string{"v1"})
	require.Error(t, err)

	var upstream *analytics.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "videos.list", upstream.Op)
	assert.Equal(t, http.StatusForbidden, upstream.Status)
	assert.Contains(t, upstream.Body, "quota exceeded")
	assert.False(t, analytics.IsNotFound(err))
}

func TestToRawVideo(t *testing.T) {
	raw := toRawVideo(&youtube.Video{
		Id:      "v1",
		Snippet: &youtube.VideoSnippet{Title: "Broken date", PublishedAt: "yesterday"},
	})

	assert.Equal(t, "v1", raw.ID)
	assert.Equal(t, "Broken date", raw.Title)
	assert.True(t, raw.PublishedAt.IsZero())
	assert.Empty(t, raw.Duration)
}
