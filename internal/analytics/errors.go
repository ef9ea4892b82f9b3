package analytics

import (
	"errors"
	"fmt"
)

var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrNoUploads       = errors.New("uploads playlist not found")
	ErrNoVideos        = errors.New("no videos found for channel")
)

// UpstreamError reports a failed call to the video platform. Any UpstreamError
// aborts the whole run.
type UpstreamError struct {
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: upstream returned status %d: %s", e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the channel has nothing to analyze, as
// opposed to the upstream failing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrChannelNotFound) ||
		errors.Is(err, ErrNoUploads) ||
		errors.Is(err, ErrNoVideos)
}
