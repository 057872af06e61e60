package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type extractorFunc func(filename string, data []byte) (string, error)

func (f extractorFunc) ExtractText(filename string, data []byte) (string, error) {
	return f(filename, data)
}

func staticExtractor(content string) extractorFunc {
	return func(filename string, data []byte) (string, error) {
		return content, nil
	}
}

func TestDetectFromURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4 raw bytes"))
	}))
	defer srv.Close()

	var gotFilename string
	extractor := extractorFunc(func(filename string, data []byte) (string, error) {
		gotFilename = filename
		if len(data) == 0 {
			t.Errorf("expected downloaded bytes to reach the extractor")
		}
		return "Newton's laws of motion describe forces.", nil
	})

	gen := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "```json\n{\"domain\": \"Physics\", \"subdomain\": \"Mechanics\", \"explanation\": \"Forces and motion.\"}\n```", nil
	})

	svc := NewDomainService(gen, extractor)
	detection, err := svc.DetectFromURL(context.Background(), srv.URL+"/files/lecture.pdf?version=2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotFilename != "lecture.pdf" {
		t.Errorf("expected extractor to see %q, got %q", "lecture.pdf", gotFilename)
	}
	if detection.Filename != "lecture.pdf" {
		t.Errorf("expected filename %q, got %q", "lecture.pdf", detection.Filename)
	}
	if detection.Domain != "Physics" || detection.Subdomain != "Mechanics" {
		t.Errorf("expected Physics/Mechanics, got %q/%q", detection.Domain, detection.Subdomain)
	}
}

func TestDetectFromURL_Non200IsBadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	svc := NewDomainService(
		generatorFunc(func(ctx context.Context, prompt string) (string, error) { return "", nil }),
		staticExtractor("unused"),
	)

	_, err := svc.DetectFromURL(context.Background(), srv.URL+"/missing.pdf")
	var badReq *BadRequestError
	if !errors.As(err, &badReq) {
		t.Fatalf("expected *BadRequestError, got %v", err)
	}
	if badReq.Message != "Failed to download file." {
		t.Errorf("unexpected message %q", badReq.Message)
	}
}

func TestDetectFromURL_UnreachableHostIsBadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	svc := NewDomainService(
		generatorFunc(func(ctx context.Context, prompt string) (string, error) { return "", nil }),
		staticExtractor("unused"),
	)

	_, err := svc.DetectFromURL(context.Background(), url+"/lecture.pdf")
	var badReq *BadRequestError
	if !errors.As(err, &badReq) {
		t.Fatalf("expected *BadRequestError, got %v", err)
	}
}

func TestDetectFromURL_MissingFieldsGetDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bytes"))
	}))
	defer srv.Close()

	gen := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		return `{"domain": "Mathematics"}`, nil
	})

	svc := NewDomainService(gen, staticExtractor("some content"))
	detection, err := svc.DetectFromURL(context.Background(), srv.URL+"/notes.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detection.Domain != "Mathematics" {
		t.Errorf("expected domain %q, got %q", "Mathematics", detection.Domain)
	}
	if detection.Subdomain != "Unknown" {
		t.Errorf("expected default subdomain, got %q", detection.Subdomain)
	}
	if detection.Explanation != "No explanation provided." {
		t.Errorf("expected default explanation, got %q", detection.Explanation)
	}
}

func TestDetectFromURL_ReplyNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bytes"))
	}))
	defer srv.Close()

	gen := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "This looks like a physics lecture.", nil
	})

	svc := NewDomainService(gen, staticExtractor("some content"))
	_, err := svc.DetectFromURL(context.Background(), srv.URL+"/notes.docx")

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %v", err)
	}
	if genErr.Message != "Gemini response is not in valid JSON format." {
		t.Errorf("unexpected message %q", genErr.Message)
	}
}

func TestDetectFromURL_ExtractorErrorPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("bytes"))
	}))
	defer srv.Close()

	extractor := extractorFunc(func(filename string, data []byte) (string, error) {
		return "", &UnsupportedFileError{Ext: ".txt"}
	})

	svc := NewDomainService(
		generatorFunc(func(ctx context.Context, prompt string) (string, error) { return "", nil }),
		extractor,
	)

	_, err := svc.DetectFromURL(context.Background(), srv.URL+"/notes.txt")
	var unsupported *UnsupportedFileError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *UnsupportedFileError, got %v", err)
	}
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain path", "https://example.com/files/lecture.pdf", "lecture.pdf"},
		{"query string ignored", "https://example.com/files/lecture.pdf?version=2&x=1", "lecture.pdf"},
		{"fragment ignored", "https://example.com/slides.pptx#page=4", "slides.pptx"},
		{"nested path", "https://cdn.example.com/a/b/c/notes.docx", "notes.docx"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := filenameFromURL(tc.url); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
