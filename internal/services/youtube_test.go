package services

import "testing"

func TestVideoResult_String(t *testing.T) {
	tests := []struct {
		name   string
		result VideoResult
		want   string
	}{
		{"found returns url", VideoResult{Status: VideoFound, URL: "https://www.youtube.com/watch?v=abc123"}, "https://www.youtube.com/watch?v=abc123"},
		{"not found", VideoResult{Status: VideoNotFound}, "No relevant video found."},
		{"timed out", VideoResult{Status: VideoTimedOut}, "YouTube fetch timeout."},
		{"failed", VideoResult{Status: VideoFailed}, "Error fetching video."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.result.String(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
