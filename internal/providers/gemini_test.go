package providers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testAnalyzeRequest() AnalyzeRequest {
	return AnalyzeRequest{
		Image:       []byte("fake image bytes"),
		MimeType:    "image/jpeg",
		Instruction: "analyze this meal",
		Schema:      json.RawMessage(`{"type":"OBJECT"}`),
		Temperature: 0.1,
	}
}

func TestGemini_AnalyzeImage(t *testing.T) {
	var gotReq geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Error("Missing API key in x-goog-api-key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("Decoding request: %v", err)
		}
		resp := geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Parts: []geminiPart{{Text: `{"items":[]}`}}}},
			},
			UsageMetadata: geminiUsage{TotalTokenCount: 75},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	g := &Gemini{
		apiKey: "test-key",
		model:  "gemini-2.0-flash",
		client: &http.Client{
			Transport: &rewriteTransport{
				base:    server.Client().Transport,
				baseURL: server.URL,
			},
		},
	}

	resp, err := g.AnalyzeImage(context.Background(), testAnalyzeRequest())
	if err != nil {
		t.Fatalf("AnalyzeImage error: %v", err)
	}
	if resp.Content != `{"items":[]}` {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.TokensUsed != 75 {
		t.Errorf("TokensUsed = %d, want 75", resp.TokensUsed)
	}

	// The image must travel as inline data alongside the instruction.
	if len(gotReq.Contents) != 1 || len(gotReq.Contents[0].Parts) != 2 {
		t.Fatalf("Request shape: %+v", gotReq)
	}
	inline := gotReq.Contents[0].Parts[1].InlineData
	if inline == nil || inline.MimeType != "image/jpeg" {
		t.Fatalf("InlineData = %+v", inline)
	}
	decoded, err := base64.StdEncoding.DecodeString(inline.Data)
	if err != nil || string(decoded) != "fake image bytes" {
		t.Errorf("Inline data = %q, err = %v", decoded, err)
	}
	gc := gotReq.GenerationConfig
	if gc == nil || gc.ResponseMimeType != "application/json" || len(gc.ResponseSchema) == 0 {
		t.Errorf("GenerationConfig = %+v, want JSON mime type and schema", gc)
	}
}

func TestGemini_RateLimitSingleAttempt(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(429)
	}))
	defer server.Close()

	g := &Gemini{
		apiKey: "test-key",
		model:  "gemini-2.0-flash",
		client: &http.Client{
			Transport: &rewriteTransport{base: server.Client().Transport, baseURL: server.URL},
		},
	}

	_, err := g.AnalyzeImage(context.Background(), testAnalyzeRequest())
	if !IsRateLimitError(err) {
		t.Errorf("Error = %v, want rate limit", err)
	}
	if calls != 1 {
		t.Errorf("Calls = %d, want exactly 1 (no automatic retry)", calls)
	}
}

func TestGemini_AuthErrorFromStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(403)
		w.Write([]byte("API key invalid"))
	}))
	defer server.Close()

	g := &Gemini{
		apiKey: "bad-key",
		model:  "gemini-2.0-flash",
		client: &http.Client{
			Transport: &rewriteTransport{base: server.Client().Transport, baseURL: server.URL},
		},
	}

	_, err := g.AnalyzeImage(context.Background(), testAnalyzeRequest())
	if !IsAuthError(err) {
		t.Errorf("Error = %v, want auth error", err)
	}
}
