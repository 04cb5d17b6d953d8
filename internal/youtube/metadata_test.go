package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("url"); got != "https://www.youtube.com/watch?v=pMSXPgAUq_k" {
			t.Errorf("unexpected url param: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title":"A Talk","author_name":"Some Channel","thumbnail_url":"https://i.ytimg.com/vi/pMSXPgAUq_k/hqdefault.jpg"}`))
	}))
	defer server.Close()

	client := NewClientWithEndpoint(server.URL)
	meta, err := client.Metadata(context.Background(), "https://youtu.be/pMSXPgAUq_k")
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if meta.Title != "A Talk" || meta.Author != "Some Channel" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
}

func TestClientMetadataRejectsNonVideoURL(t *testing.T) {
	client := NewClient()
	if _, err := client.Metadata(context.Background(), "https://example.com/clip"); err == nil {
		t.Fatal("expected error for non-youtube url")
	}
}

func TestClientMetadataHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithEndpoint(server.URL)
	if _, err := client.Metadata(context.Background(), "https://youtu.be/pMSXPgAUq_k"); err == nil {
		t.Fatal("expected error for HTTP 404")
	}
}
