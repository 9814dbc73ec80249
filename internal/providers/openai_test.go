package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestOpenAI_AnalyzeImage(t *testing.T) {
	var gotReq openaiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Missing Authorization header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("Decoding request: %v", err)
		}
		resp := openaiResponse{
			Choices: []openaiChoice{{Message: openaiResponseMessage{Content: `{"items":[]}`}}},
			Usage:   openaiUsage{TotalTokens: 42},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := &OpenAI{
		apiKey:  "test-key",
		model:   "gpt-4o",
		baseURL: server.URL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}

	resp, err := o.AnalyzeImage(context.Background(), testAnalyzeRequest())
	if err != nil {
		t.Fatalf("AnalyzeImage error: %v", err)
	}
	if resp.Content != `{"items":[]}` {
		t.Errorf("Content = %q", resp.Content)
	}

	if len(gotReq.Messages) != 1 || len(gotReq.Messages[0].Content) != 2 {
		t.Fatalf("Request shape: %+v", gotReq)
	}
	img := gotReq.Messages[0].Content[1]
	if img.Type != "image_url" || img.ImageURL == nil ||
		!strings.HasPrefix(img.ImageURL.URL, "data:image/jpeg;base64,") {
		t.Errorf("Image part = %+v, want base64 data URI", img)
	}
	if gotReq.ResponseFormat == nil || gotReq.ResponseFormat.Type != "json_object" {
		t.Errorf("ResponseFormat = %+v, want json_object", gotReq.ResponseFormat)
	}
}

func TestOpenAI_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(503)
	}))
	defer server.Close()

	o := &OpenAI{
		apiKey:  "test-key",
		model:   "gpt-4o",
		baseURL: server.URL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}

	_, err := o.AnalyzeImage(context.Background(), testAnalyzeRequest())
	if err == nil {
		t.Fatal("Expected error for 503")
	}
	if IsAuthError(err) || IsRateLimitError(err) {
		t.Errorf("503 should be neither auth nor rate limit: %v", err)
	}
}
