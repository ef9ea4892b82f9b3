package analytics

import (
	"context"
	"fmt"

	"github.com/yt-insights/ytca/internal/models"
)

const (
	// DefaultMaxResults applies when a request does not name a cap.
	DefaultMaxResults = 50
	// MaxResultsLimit is the hard ceiling; larger requests are clamped.
	MaxResultsLimit = 200

	playlistPageSize = 50
	detailsBatchSize = 50
)

// VideoSource is the video platform as seen by the engine. Pages are pulled
// one at a time with the cursor returned by the previous page.
type VideoSource interface {
	UploadsPlaylist(ctx context.Context, channelID string) (string, error)
	PlaylistPage(ctx context.Context, playlistID, cursor string, pageSize int) (models.PlaylistPage, error)
	Videos(ctx context.Context, ids []string) ([]models.RawVideo, error)
}

// ClampMaxResults maps a requested cap onto [1, MaxResultsLimit], using the
// default for non-positive values.
func ClampMaxResults(n int) int {
	if n <= 0 {
		return DefaultMaxResults
	}
	return min(n, MaxResultsLimit)
}

// Fetch pulls up to maxResults of a channel's most recent uploads. Calls are
// strictly sequential and the first failure aborts the fetch.
func Fetch(ctx context.Context, src VideoSource, channelID string, maxResults int) ([]models.RawVideo, error) {
	limit := ClampMaxResults(maxResults)

	playlistID, err := src.UploadsPlaylist(ctx, channelID)
	if err != nil {
		return nil, err
	}

	ids, err := collectVideoIDs(ctx, src, playlistID, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoVideos, channelID)
	}

	videos := make([]models.RawVideo, 0, len(ids))
	for start := 0; start < len(ids); start += detailsBatchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+detailsBatchSize, len(ids))
		batch, err := src.Videos(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		videos = append(videos, batch...)
	}

	if len(videos) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoVideos, channelID)
	}
	return videos, nil
}

func collectVideoIDs(ctx context.Context, src VideoSource, playlistID string, limit int) ([]string, error) {
	var ids []string
	cursor := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := src.PlaylistPage(ctx, playlistID, cursor, min(playlistPageSize, limit-len(ids)))
		if err != nil {
			return nil, err
		}
		ids = append(ids, page.VideoIDs...)

		if len(ids) >= limit || page.NextCursor == "" || len(page.VideoIDs) == 0 {
			break
		}
		cursor = page.NextCursor
	}

	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}
