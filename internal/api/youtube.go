package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/yt-insights/ytca/internal/analytics"
	"github.com/yt-insights/ytca/internal/models"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var videoParts = []string{"snippet", "statistics", "contentDetails"}

// YouTubeSource reads channel uploads through the YouTube Data API v3
type YouTubeSource struct {
	service *youtube.Service
}

// NewYouTubeSource creates a source authenticated with apiKey. Extra options
// are applied after the key, so tests can point it at a fake endpoint.
func NewYouTubeSource(ctx context.Context, apiKey string, opts ...option.ClientOption) (*YouTubeSource, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &YouTubeSource{service: service}, nil
}

// UploadsPlaylist returns the ID of the channel's uploads playlist
func (s *YouTubeSource) UploadsPlaylist(ctx context.Context, channelID string) (string, error) {
	response, err := s.service.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return "", upstreamError("channels.list", err)
	}

	if len(response.Items) == 0 {
		return "", fmt.Errorf("%w: %s", analytics.ErrChannelNotFound, channelID)
	}

	channel := response.Items[0]
	if channel.ContentDetails == nil ||
		channel.ContentDetails.RelatedPlaylists == nil ||
		channel.ContentDetails.RelatedPlaylists.Uploads == "" {
		return "", fmt.Errorf("%w: %s", analytics.ErrNoUploads, channelID)
	}

	return channel.ContentDetails.RelatedPlaylists.Uploads, nil
}

// PlaylistPage fetches one page of playlist items starting at cursor
func (s *YouTubeSource) PlaylistPage(ctx context.Context, playlistID, cursor string, pageSize int) (models.PlaylistPage, error) {
	call := s.service.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(int64(pageSize)).
		Context(ctx)
	if cursor != "" {
		call = call.PageToken(cursor)
	}

	response, err := call.Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return models.PlaylistPage{}, fmt.Errorf("%w: %s", analytics.ErrNoUploads, playlistID)
		}
		return models.PlaylistPage{}, upstreamError("playlistItems.list", err)
	}

	page := models.PlaylistPage{
		VideoIDs:   make([]string, 0, len(response.Items)),
		NextCursor: response.NextPageToken,
	}
	for _, item := range response.Items {
		if item == nil || item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		page.VideoIDs = append(page.VideoIDs, item.ContentDetails.VideoId)
	}
	return page, nil
}

// Videos fetches details for up to 50 video IDs
func (s *YouTubeSource) Videos(ctx context.Context, ids []string) ([]models.RawVideo, error) {
	response, err := s.service.Videos.List(videoParts).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstreamError("videos.list", err)
	}

	videos := make([]models.RawVideo, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil {
			continue
		}
		videos = append(videos, toRawVideo(item))
	}
	return videos, nil
}

// toRawVideo is the single ingestion point for upstream video records. Missing
// parts default to zero values instead of failing the run.
func toRawVideo(v *youtube.Video) models.RawVideo {
	raw := models.RawVideo{ID: v.Id}

	if v.Snippet != nil {
		raw.Title = v.Snippet.Title
		if published, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt); err == nil {
			raw.PublishedAt = published.UTC()
		}
	}
	if v.Statistics != nil {
		raw.ViewCount = int64(v.Statistics.ViewCount)
		raw.LikeCount = int64(v.Statistics.LikeCount)
		raw.CommentCount = int64(v.Statistics.CommentCount)
	}
	if v.ContentDetails != nil {
		raw.Duration = v.ContentDetails.Duration
	}

	return raw
}

func upstreamError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		body := apiErr.Body
		if body == "" {
			body = apiErr.Message
		}
		return &analytics.UpstreamError{Op: op, Status: apiErr.Code, Body: body, Err: err}
	}
	return &analytics.UpstreamError{Op: op, Err: err}
}
