package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/just-manoj/PathoAi-API/internal/vision"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("test-token", "gpt-4o-mini")
	client.apiURL = srv.URL
	return client, srv
}

func completion(content string) string {
	resp := map[string]any{
		"id":    "chatcmpl-1",
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
	raw, _ := json.Marshal(resp)
	return string(raw)
}

func TestAnalyzeParsesFencedJSON(t *testing.T) {
	var gotReq chatRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(completion("```json\n{\"observation\":\"o\",\"preliminaryDiagnosis\":\"d\",\"confidenceLevel\":\"High\",\"disclaimer\":\"x\"}\n```")))
	})

	res, err := client.Analyze(context.Background(), vision.Request{
		ImageBase64:     "aGVsbG8=",
		Organ:           "liver",
		ClinicalContext: "suspected cirrhosis",
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	want := vision.Result{Observation: "o", PreliminaryDiagnosis: "d", ConfidenceLevel: "High", Disclaimer: "x"}
	if res != want {
		t.Fatalf("result = %+v, want %+v", res, want)
	}

	if gotReq.Model != "gpt-4o-mini" {
		t.Fatalf("request model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || len(gotReq.Messages[0].Content) != 2 {
		t.Fatalf("expected one message with text+image parts, got %+v", gotReq.Messages)
	}
	img := gotReq.Messages[0].Content[1]
	if img.ImageURL == nil || img.ImageURL.URL != "data:image/jpeg;base64,aGVsbG8=" {
		t.Fatalf("image part = %+v", img)
	}
	text := gotReq.Messages[0].Content[0].Text
	if !strings.Contains(text, "Organ: liver") || !strings.Contains(text, "Clinical Context: suspected cirrhosis") {
		t.Fatalf("prompt missing metadata: %q", text)
	}
}

func TestAnalyzeInvalidJSONContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completion("Sorry, I cannot help with that.")))
	})

	_, err := client.Analyze(context.Background(), vision.Request{ImageBase64: "aGVsbG8="})
	if !errors.Is(err, vision.ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestAnalyzeProviderError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	})

	_, err := client.Analyze(context.Background(), vision.Request{ImageBase64: "aGVsbG8="})
	if err == nil || !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestAnalyzeEmptyToken(t *testing.T) {
	client := NewClient("", "gpt-4o-mini")
	if _, err := client.Analyze(context.Background(), vision.Request{}); err == nil {
		t.Fatal("expected error for empty token")
	}
}
