package services

import (
	"context"
	"errors"
	"log"
	"time"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"
)

const videoLookupTimeout = 10 * time.Second

// VideoStatus describes the outcome of a video lookup.
type VideoStatus int

const (
	VideoFound VideoStatus = iota
	VideoNotFound
	VideoTimedOut
	VideoFailed
)

// VideoResult is the outcome of a single lookup. URL is set only when
// Status is VideoFound.
type VideoResult struct {
	Status VideoStatus
	URL    string
}

// String renders the result as the field value stored on a unit.
func (r VideoResult) String() string {
	switch r.Status {
	case VideoFound:
		return r.URL
	case VideoNotFound:
		return "No relevant video found."
	case VideoTimedOut:
		return "YouTube fetch timeout."
	default:
		return "Error fetching video."
	}
}

type YouTubeService struct {
	svc *youtube.Service
}

func NewYouTubeService(ctx context.Context, apiKey string) (*YouTubeService, error) {
	var opts []option.ClientOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	} else {
		// Without credentials the client still constructs; requests fail
		// per call instead of at startup.
		opts = append(opts, option.WithoutAuthentication())
	}
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &YouTubeService{svc: svc}, nil
}

// FindVideo searches for the most relevant video and never returns an
// error. Failures collapse into the result status so callers can attach
// a value to the unit unconditionally.
func (s *YouTubeService) FindVideo(ctx context.Context, query string) VideoResult {
	ctx, cancel := context.WithTimeout(ctx, videoLookupTimeout)
	defer cancel()

	resp, err := s.svc.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(1).
		Type("video").
		Context(ctx).
		Do()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
			return VideoResult{Status: VideoTimedOut}
		}
		log.Printf("Error fetching YouTube video: %v", err)
		return VideoResult{Status: VideoFailed}
	}
	if len(resp.Items) == 0 || resp.Items[0].Id == nil || resp.Items[0].Id.VideoId == "" {
		return VideoResult{Status: VideoNotFound}
	}
	return VideoResult{
		Status: VideoFound,
		URL:    "https://www.youtube.com/watch?v=" + resp.Items[0].Id.VideoId,
	}
}
